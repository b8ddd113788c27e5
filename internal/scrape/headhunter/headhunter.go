package headhunter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/scrape/types"
)

const (
	DefaultBaseURL   = "https://api.hh.ru/vacancies"
	DefaultUserAgent = "HH-User-Agent"
	DefaultPerPage   = 20
	DefaultMaxPages  = 20
)

type Config struct {
	BaseURL   string
	UserAgent string
	Token     string // optional OAuth bearer token
	PerPage   int
	MaxPages  int
	Timeout   time.Duration // 0 leaves the transport default
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		PerPage:   DefaultPerPage,
		MaxPages:  DefaultMaxPages,
	}
}

type Scraper struct {
	cfg Config
	hc  *http.Client
}

var _ types.Fetcher = (*Scraper)(nil)

// New fills zero fields of cfg with defaults. The config is copied and not
// changed afterwards.
func New(cfg Config) *Scraper {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = def.PerPage
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = def.MaxPages
	}
	return &Scraper{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *Scraper) Name() string { return "hh.ru" }

func (s *Scraper) Config() Config { return s.cfg }

// Fetch walks pages 0..MaxPages-1 for keyword and returns every item in page
// order. Empty pages do not end the walk: hh.ru does not guarantee that an
// empty page is the last one. Any non-2xx page fails the whole call and
// nothing is returned.
func (s *Scraper) Fetch(ctx context.Context, keyword string) ([]domain.RawRecord, error) {
	var out []domain.RawRecord
	for page := 0; page < s.cfg.MaxPages; page++ {
		res, err := s.fetchPage(ctx, keyword, page)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Items...)
	}
	if out == nil {
		out = []domain.RawRecord{}
	}
	return out, nil
}

func (s *Scraper) fetchPage(ctx context.Context, keyword string, page int) (types.SearchPage, error) {
	var res types.SearchPage

	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return res, fmt.Errorf("hh parse base url: %w", err)
	}
	u.RawQuery = BuildParams(keyword, page, s.cfg.PerPage).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return res, fmt.Errorf("hh build request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return res, fmt.Errorf("hh get page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return res, &RequestFailure{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Page:       page,
			Body:       string(b),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("hh decode page %d: %w", page, err)
	}
	return res, nil
}

// BuildParams returns the query for one search page.
func BuildParams(keyword string, page, perPage int) url.Values {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	q := url.Values{}
	q.Set("text", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}
