package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/logger"
	"vacancy-finder/internal/scrape/headhunter"
	"vacancy-finder/internal/store"
)

type fakeFetcher struct {
	items    string
	err      error
	keywords []string
}

func (f *fakeFetcher) Name() string { return "fake" }

func (f *fakeFetcher) Fetch(_ context.Context, kw string) ([]domain.RawRecord, error) {
	f.keywords = append(f.keywords, kw)
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.RawRecord
	if err := json.Unmarshal([]byte(f.items), &out); err != nil {
		return nil, err
	}
	return out, nil
}

const fetchedItems = `[
	{"name":"Go developer","alternate_url":"https://hh.ru/vacancy/1","salary":{"from":200000,"to":300000,"currency":"RUR"},
	 "snippet":{"requirement":"Опыт с <highlighttext>Go</highlighttext>","responsibility":"Писать микросервисы"}},
	{"name":"Python developer","alternate_url":"https://hh.ru/vacancy/2","salary":{"from":150000,"to":null,"currency":"RUR"},
	 "snippet":{"requirement":"Django","responsibility":null}},
	{"name":"Intern","alternate_url":"https://hh.ru/vacancy/3","salary":null,"snippet":{}}
]`

func runApp(t *testing.T, f *fakeFetcher, path string, input string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(f, store.NewJSONFileHandler(path), Options{
		In:     strings.NewReader(input),
		Out:    &out,
		Logger: logger.Discard(),
		Indent: "  ",
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return app, out.String()
}

func TestApp_SearchTopAndMatch(t *testing.T) {
	f := &fakeFetcher{items: fetchedItems}
	path := filepath.Join(t.TempDir(), "v.json")

	app, out := runApp(t, f, path, "1\ngolang\n2\n2\n3\nмикросервисы\n0\n")

	if len(f.keywords) != 1 || f.keywords[0] != "golang" {
		t.Errorf("fetch keywords = %v", f.keywords)
	}
	if len(app.Vacancies()) != 3 {
		t.Fatalf("held %d vacancies, want 3", len(app.Vacancies()))
	}
	if !strings.Contains(out, "Found 3 vacancies.") {
		t.Errorf("missing search summary:\n%s", out)
	}
	goIdx := strings.Index(out, "Go developer")
	pyIdx := strings.Index(out, "Python developer")
	if goIdx < 0 || pyIdx < 0 || goIdx > pyIdx {
		t.Errorf("top list not ordered by salary:\n%s", out)
	}
	if strings.Contains(out, "Intern  ") {
		t.Errorf("top 2 should not include the intern:\n%s", out)
	}
	if !strings.Contains(out, "Found 1 vacancies:\n- Go developer (https://hh.ru/vacancy/1)") {
		t.Errorf("keyword search output wrong:\n%s", out)
	}
}

func TestApp_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "v.json")
	f := &fakeFetcher{items: fetchedItems}

	_, out := runApp(t, f, path, "1\ngo\n4\n4\n")
	if !strings.Contains(out, "Saved 3 vacancies (3 not in the previous file).") ||
		!strings.Contains(out, "Saved 3 vacancies (0 not in the previous file).") {
		t.Errorf("save output:\n%s", out)
	}

	app, out := runApp(t, &fakeFetcher{}, path, "5\n")
	if !strings.Contains(out, "Loaded 3 vacancies from file.") || len(app.Vacancies()) != 3 {
		t.Errorf("load output:\n%s", out)
	}
	if got := app.Vacancies()[1].Salary(); got.From != 150000 || got.To != 150000 {
		t.Errorf("reloaded salary = %+v", got)
	}

	_, out = runApp(t, &fakeFetcher{}, path, "6\n5\n")
	if !strings.Contains(out, "Saved vacancies removed.") || !strings.Contains(out, "Loaded 0 vacancies from file.") {
		t.Errorf("clear output:\n%s", out)
	}
}

func TestApp_ReportsErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "none.json")

	f := &fakeFetcher{err: &headhunter.RequestFailure{StatusCode: 503, Page: 0}}
	app, out := runApp(t, f, missing, "1\njava\n5\n")
	if !strings.Contains(out, "Error: search request failed with HTTP 503") {
		t.Errorf("fetch failure not reported:\n%s", out)
	}
	if !strings.Contains(out, "Error: no saved vacancies yet") {
		t.Errorf("missing file not reported:\n%s", out)
	}
	if len(app.Vacancies()) != 0 {
		t.Errorf("failed operations changed state")
	}

	corrupt := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(corrupt, []byte("{oops"), 0o644)
	_, out = runApp(t, &fakeFetcher{}, corrupt, "5\n")
	if !strings.Contains(out, fmt.Sprintf("Error: saved file %s is not valid JSON", corrupt)) {
		t.Errorf("parse error not reported:\n%s", out)
	}

	bad := &fakeFetcher{items: `[{"name":"  ","url":"u"}]`}
	_, out = runApp(t, bad, missing, "1\nx\n")
	if !strings.Contains(out, "Error: bad vacancy data (name: value must be a non-empty string)") {
		t.Errorf("validation error not reported:\n%s", out)
	}
}

func TestApp_GuardsAndBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.json")
	_, out := runApp(t, &fakeFetcher{items: fetchedItems}, path, "2\n3\n4\n9\n1\ngo\n2\nmany\n")

	for _, want := range []string{
		"Run a search (option 1) or load a file (option 5) first.",
		"No vacancies yet (option 1).",
		"Nothing to save.",
		"Unknown option, try again.",
		"Please enter a number.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
