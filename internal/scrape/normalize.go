package scrape

import (
	"fmt"

	"vacancy-finder/internal/domain"
)

// Normalize converts fetched items into vacancies. The first invalid item
// aborts the conversion.
func Normalize(raws []domain.RawRecord) ([]domain.Vacancy, error) {
	out := make([]domain.Vacancy, 0, len(raws))
	for i, r := range raws {
		v, err := domain.FromRaw(r)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
