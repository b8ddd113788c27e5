package types

import (
	"context"

	"vacancy-finder/internal/domain"
)

// Fetcher searches one listing source by keyword.
// Implementations return the upstream items unvalidated, in page order.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, keyword string) ([]domain.RawRecord, error)
}

// SearchPage is one page of a listing-search response.
type SearchPage struct {
	Items []domain.RawRecord `json:"items"`
	Found int                `json:"found"`
	Pages int                `json:"pages"`
	Page  int                `json:"page"`
}
