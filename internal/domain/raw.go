package domain

import (
	"bytes"
	"encoding/json"
)

// RawRecord is an unvalidated JSON object, either an hh.ru search item or a
// persisted vacancy.
type RawRecord map[string]json.RawMessage

// String returns the JSON string stored under key. ok is false when the key
// is missing, null or not a string.
func (r RawRecord) String(key string) (s string, ok bool) {
	v, found := r[key]
	if !found || isNull(v) {
		return "", false
	}
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// FromRaw builds a vacancy from an hh.ru search item. The listing link comes
// from "alternate_url" (the human-facing page), falling back to "url"; the
// salary from "salary_range", falling back to "salary".
func FromRaw(r RawRecord) (Vacancy, error) {
	name, err := requiredString(r, "name")
	if err != nil {
		return Vacancy{}, err
	}

	url, _ := r.String("alternate_url")
	if url == "" {
		url, _ = r.String("url")
	}

	salaryRaw := r["salary_range"]
	if isNull(salaryRaw) || isEmptyObject(salaryRaw) {
		salaryRaw = r["salary"]
	}

	return build(name, url, salaryRaw, r)
}

// FromStored rebuilds a vacancy from its persisted form.
func FromStored(r RawRecord) (Vacancy, error) {
	name, err := requiredString(r, "name")
	if err != nil {
		return Vacancy{}, err
	}
	url, err := requiredString(r, "url")
	if err != nil {
		return Vacancy{}, err
	}
	return build(name, url, r["salary_range"], r)
}

func build(name, url string, salaryRaw json.RawMessage, r RawRecord) (Vacancy, error) {
	salary, err := ParseSalary(salaryRaw)
	if err != nil {
		return Vacancy{}, err
	}
	snippet, err := parseSnippet(r)
	if err != nil {
		return Vacancy{}, err
	}
	return NewVacancy(name, url, salary, snippet)
}

// parseSnippet treats a missing "snippet" key as an empty object; a present
// value must be a JSON object.
func parseSnippet(r RawRecord) (Snippet, error) {
	raw, ok := r["snippet"]
	if !ok {
		return Snippet{}, nil
	}
	var s Snippet
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return nil, newValidationError("snippet", msgSnippetObject)
	}
	return s, nil
}

func requiredString(r RawRecord, key string) (string, error) {
	s, ok := r.String(key)
	if !ok {
		return "", newValidationError(key, msgNonEmpty)
	}
	return s, nil
}

func isEmptyObject(raw json.RawMessage) bool {
	return bytes.Equal(bytes.Join(bytes.Fields(raw), nil), []byte("{}"))
}
