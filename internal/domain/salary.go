package domain

import (
	"bytes"
	"encoding/json"
)

// SalaryRange is a compensation band. Invariant after construction: To >= From.
type SalaryRange struct {
	Currency *string `json:"currency"`
	From     int     `json:"from"`
	To       int     `json:"to"`
}

func (s SalaryRange) normalized() SalaryRange {
	out := s.clone()
	if out.To < out.From {
		out.To = out.From
	}
	return out
}

func (s SalaryRange) clone() SalaryRange {
	if s.Currency != nil {
		c := *s.Currency
		s.Currency = &c
	}
	return s
}

// CurrencyOr returns the currency code, or def when none is set.
func (s SalaryRange) CurrencyOr(def string) string {
	if s.Currency == nil {
		return def
	}
	return *s.Currency
}

// ParseSalary decodes a loosely-typed salary object. Absent or null input
// yields (nil, nil). Missing or null "from"/"to" default to 0.
func ParseSalary(raw json.RawMessage) (*SalaryRange, error) {
	if isNull(raw) {
		return nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, newValidationError("salary_range", msgSalaryObject)
	}

	var out SalaryRange
	if c, ok := obj["currency"]; ok && !isNull(c) {
		var cur string
		if err := json.Unmarshal(c, &cur); err != nil {
			return nil, newValidationError("salary_range.currency", "currency must be a string or null")
		}
		out.Currency = &cur
	}

	var err error
	if out.From, err = intOrZero(obj, "from"); err != nil {
		return nil, err
	}
	if out.To, err = intOrZero(obj, "to"); err != nil {
		return nil, err
	}
	return &out, nil
}

func intOrZero(obj map[string]json.RawMessage, key string) (int, error) {
	v, ok := obj[key]
	if !ok || isNull(v) {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, newValidationError("salary_range."+key, key+" must be an integer or null")
	}
	return n, nil
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
