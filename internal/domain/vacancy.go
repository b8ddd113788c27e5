package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"strings"
)

// Snippet is the free-form description block hh.ru attaches to a vacancy
// (usually "requirement" and "responsibility"). Stored as-is.
type Snippet map[string]any

// Text returns the string value under key, or "" when it is missing or not a string.
func (s Snippet) Text(key string) string {
	v, _ := s[key].(string)
	return v
}

// Vacancy is an immutable, validated job listing.
// Two vacancies are ordered and compared by Salary().To only.
type Vacancy struct {
	name    string
	url     string
	salary  SalaryRange
	snippet Snippet
}

// NewVacancy validates and normalizes its inputs. A nil salary means the
// listing carries no salary and becomes {nil, 0, 0}.
func NewVacancy(name, url string, salary *SalaryRange, snippet Snippet) (Vacancy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Vacancy{}, newValidationError("name", msgNonEmpty)
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return Vacancy{}, newValidationError("url", msgNonEmpty)
	}
	if snippet == nil {
		return Vacancy{}, newValidationError("snippet", msgSnippetObject)
	}

	var sr SalaryRange
	if salary != nil {
		sr = salary.normalized()
	}

	return Vacancy{
		name:    name,
		url:     url,
		salary:  sr,
		snippet: maps.Clone(snippet),
	}, nil
}

func (v Vacancy) Name() string        { return v.name }
func (v Vacancy) URL() string         { return v.url }
func (v Vacancy) Salary() SalaryRange { return v.salary.clone() }

// Snippet returns a shallow copy so callers cannot mutate the vacancy.
func (v Vacancy) Snippet() Snippet { return maps.Clone(v.snippet) }

// stored is the on-disk shape of a vacancy.
type stored struct {
	Name        string      `json:"name"`
	URL         string      `json:"url"`
	SalaryRange SalaryRange `json:"salary_range"`
	Snippet     Snippet     `json:"snippet"`
}

// MarshalJSON writes the stored shape. hh.ru highlight markup in snippets is
// left unescaped.
func (v Vacancy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(stored{
		Name:        v.name,
		URL:         v.url,
		SalaryRange: v.salary,
		Snippet:     v.snippet,
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
