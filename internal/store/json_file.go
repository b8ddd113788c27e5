package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vacancy-finder/internal/domain"

	"github.com/gofrs/flock"
)

const DefaultPath = "data/vacancies.json"

// FileHandler persists a whole collection of vacancies at once.
type FileHandler interface {
	Save(vs []domain.Vacancy, opts ...SaveOption) error
	Load() ([]domain.Vacancy, error)
	Clear() error
}

type saveOptions struct {
	indent string
}

type SaveOption func(*saveOptions)

// WithIndent pretty-prints the document with the given indent per level.
func WithIndent(indent string) SaveOption {
	return func(o *saveOptions) { o.indent = indent }
}

// JSONFileHandler stores vacancies as a single JSON array. Every operation
// holds an advisory lock on "<path>.lock" so two sessions sharing a file take
// turns; a write replaces the file contents, it never merges.
type JSONFileHandler struct {
	path string
}

var _ FileHandler = (*JSONFileHandler)(nil)

func NewJSONFileHandler(path string) *JSONFileHandler {
	if path == "" {
		path = DefaultPath
	}
	return &JSONFileHandler{path: path}
}

func (h *JSONFileHandler) Path() string { return h.path }

// Save overwrites the file with vs.
func (h *JSONFileHandler) Save(vs []domain.Vacancy, opts ...SaveOption) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}
	if vs == nil {
		vs = []domain.Vacancy{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep hh.ru <highlighttext> readable
	enc.SetIndent("", o.indent)
	if err := enc.Encode(vs); err != nil {
		return fmt.Errorf("encode vacancies: %w", err)
	}
	return h.write(buf.Bytes())
}

// Load reads and re-validates every stored vacancy. A missing file yields
// ErrNotFound, malformed JSON a *ParseError.
func (h *JSONFileHandler) Load() ([]domain.Vacancy, error) {
	raws, err := h.LoadRaw()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Vacancy, 0, len(raws))
	for i, r := range raws {
		v, err := domain.FromStored(r)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", h.path, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// LoadRaw returns the stored objects without validating them.
func (h *JSONFileHandler) LoadRaw() ([]domain.RawRecord, error) {
	if _, err := os.Stat(h.path); err != nil {
		return nil, h.statErr(err)
	}

	lock := flock.New(h.lockPath())
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", h.path, err)
	}
	defer lock.Unlock()

	b, err := os.ReadFile(h.path)
	if err != nil {
		return nil, h.statErr(err)
	}

	var raws []domain.RawRecord
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil, &ParseError{Path: h.path, Err: err}
	}
	if raws == nil {
		raws = []domain.RawRecord{}
	}
	return raws, nil
}

// Clear replaces the file with an empty array, creating it if needed.
func (h *JSONFileHandler) Clear() error {
	return h.write([]byte("[]\n"))
}

// write replaces the file via tmp+rename under the exclusive lock.
func (h *JSONFileHandler) write(b []byte) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}

	lock := flock.New(h.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", h.path, err)
	}
	defer lock.Unlock()

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", h.path, err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", h.path, err)
	}
	return nil
}

func (h *JSONFileHandler) lockPath() string { return h.path + ".lock" }

func (h *JSONFileHandler) statErr(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, h.path, err)
	}
	return fmt.Errorf("read %s: %w", h.path, err)
}
