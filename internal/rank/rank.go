package rank

import (
	"slices"
	"strings"

	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/scrape/util"
)

// TopBySalary returns the n best-paid vacancies, highest upper bound first.
// vs is not modified.
func TopBySalary(vs []domain.Vacancy, n int) []domain.Vacancy {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(vs)
	domain.SortBySalary(sorted, true)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// SnippetFields are the snippet keys searched by MatchKeyword.
var SnippetFields = []string{"requirement", "responsibility"}

// MatchKeyword keeps vacancies whose requirement or responsibility text
// contains kw, case-insensitively. Highlight markup is ignored.
func MatchKeyword(vs []domain.Vacancy, kw string) []domain.Vacancy {
	kw = strings.ToLower(strings.TrimSpace(kw))
	var out []domain.Vacancy
	for _, v := range vs {
		if strings.Contains(SearchText(v), kw) {
			out = append(out, v)
		}
	}
	return out
}

// SearchText is the lowercased plain text MatchKeyword looks at.
func SearchText(v domain.Vacancy) string {
	sn := v.Snippet()
	parts := make([]string, 0, len(SnippetFields))
	for _, f := range SnippetFields {
		parts = append(parts, util.HTMLText(sn.Text(f)))
	}
	return strings.ToLower(strings.Join(parts, " "))
}
