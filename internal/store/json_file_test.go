package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"vacancy-finder/internal/domain"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "vacancies_test.json")
}

func sampleVacancies(t *testing.T) []domain.Vacancy {
	t.Helper()
	rur, usd := "RUR", "USD"
	a, err := domain.NewVacancy("Dev1", "https://hh.ru/vac1",
		&domain.SalaryRange{Currency: &rur, From: 100, To: 200}, domain.Snippet{"requirement": "req1"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := domain.NewVacancy("Dev2", "https://hh.ru/vac2",
		&domain.SalaryRange{Currency: &usd, From: 50, To: 150},
		domain.Snippet{"requirement": "<highlighttext>Go</highlighttext>", "responsibility": nil})
	if err != nil {
		t.Fatal(err)
	}
	c, err := domain.NewVacancy("Dev3", "https://hh.ru/vac3", nil, domain.Snippet{})
	if err != nil {
		t.Fatal(err)
	}
	return []domain.Vacancy{a, b, c}
}

func assertSameVacancies(t *testing.T, got, want []domain.Vacancy) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d vacancies, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Name() != w.Name() || g.URL() != w.URL() ||
			!reflect.DeepEqual(g.Salary(), w.Salary()) || !reflect.DeepEqual(g.Snippet(), w.Snippet()) {
			t.Errorf("vacancy %d differs:\n got  %+v %+v %v\n want %+v %+v %v",
				i, g.Name(), g.Salary(), g.Snippet(), w.Name(), w.Salary(), w.Snippet())
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := tempPath(t)
	h := NewJSONFileHandler(path)
	in := sampleVacancies(t)

	if err := h.Save(in, WithIndent("  ")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	var generic []map[string]any
	if err := json.Unmarshal(b, &generic); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if generic[0]["name"] != "Dev1" || generic[2]["salary_range"].(map[string]any)["currency"] != nil {
		t.Errorf("unexpected document: %s", b)
	}
	if !strings.Contains(string(b), "<highlighttext>") {
		t.Errorf("html in snippets should not be escaped: %s", b)
	}

	out, err := h.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameVacancies(t, out, in)
}

func TestSave_Overwrites(t *testing.T) {
	h := NewJSONFileHandler(tempPath(t))
	vs := sampleVacancies(t)

	if err := h.Save(vs); err != nil {
		t.Fatal(err)
	}
	if err := h.Save(vs[:1]); err != nil {
		t.Fatal(err)
	}
	out, err := h.Load()
	if err != nil {
		t.Fatal(err)
	}
	assertSameVacancies(t, out, vs[:1])
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "v.json")
	if err := NewJSONFileHandler(path).Save(nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, _ := os.ReadFile(path)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Errorf("empty save wrote %q", b)
	}
}

func TestLoad_NotFound(t *testing.T) {
	h := NewJSONFileHandler(filepath.Join(t.TempDir(), "missing", "does_not_exist.json"))
	_, err := h.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err should also match os.ErrNotExist")
	}
}

func TestLoad_ParseError(t *testing.T) {
	for _, content := range []string{"{not json", `{"a":1}`, `[1,2]`} {
		path := tempPath(t)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewJSONFileHandler(path).Load()
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("content %q: err = %v, want *ParseError", content, err)
		}
	}
}

func TestLoad_InvalidRecord(t *testing.T) {
	path := tempPath(t)
	_ = os.WriteFile(path, []byte(`[{"name":"","url":"u","salary_range":null,"snippet":{}}]`), 0o644)

	_, err := NewJSONFileHandler(path).Load()
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestClear_OverwritesWithEmptyArray(t *testing.T) {
	path := tempPath(t)
	h := NewJSONFileHandler(path)
	if err := h.Save(sampleVacancies(t)); err != nil {
		t.Fatal(err)
	}

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	b, _ := os.ReadFile(path)
	var loaded []any
	if err := json.Unmarshal(b, &loaded); err != nil || len(loaded) != 0 {
		t.Errorf("file after Clear = %q", b)
	}
}

func TestClear_OnMissingFileCreatesEmpty(t *testing.T) {
	path := tempPath(t)
	h := NewJSONFileHandler(path)

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
	vs, err := h.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vs) != 0 {
		t.Errorf("got %d vacancies, want 0", len(vs))
	}
}

func TestLoadRaw(t *testing.T) {
	h := NewJSONFileHandler(tempPath(t))
	if err := h.Save(sampleVacancies(t)); err != nil {
		t.Fatal(err)
	}
	raws, err := h.LoadRaw()
	if err != nil {
		t.Fatal(err)
	}
	if u, _ := raws[1].String("url"); u != "https://hh.ru/vac2" {
		t.Errorf("raw url = %q", u)
	}
}

func TestNewJSONFileHandler_DefaultPath(t *testing.T) {
	if p := NewJSONFileHandler("").Path(); p != DefaultPath {
		t.Errorf("Path() = %q, want %q", p, DefaultPath)
	}
}
