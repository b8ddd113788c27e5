package scrape

import (
	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/scrape/util"
)

// ExistingURLs collects the canonical "url" of every record that has one.
func ExistingURLs(records []domain.RawRecord) map[string]struct{} {
	out := make(map[string]struct{}, len(records))
	for _, r := range records {
		u, ok := r.String("url")
		if !ok {
			continue
		}
		out[util.CanonicalizeURL(u)] = struct{}{}
	}
	return out
}

// FilterNew keeps records whose url is not in existing. A record without a
// url is always kept.
func FilterNew(records []domain.RawRecord, existing map[string]struct{}) []domain.RawRecord {
	var out []domain.RawRecord
	for _, r := range records {
		u, ok := r.String("url")
		if ok && seen(existing, u) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// NewVacancies is FilterNew for already normalized vacancies.
func NewVacancies(vs []domain.Vacancy, existing map[string]struct{}) []domain.Vacancy {
	var out []domain.Vacancy
	for _, v := range vs {
		if seen(existing, v.URL()) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func seen(existing map[string]struct{}, u string) bool {
	_, ok := existing[util.CanonicalizeURL(u)]
	return ok
}
