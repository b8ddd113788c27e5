// Package cli is the interactive menu around the fetcher, the vacancy model
// and the JSON store.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/scrape/types"
	"vacancy-finder/internal/store"
)

var ErrExitRequested = errors.New("exit requested")

// rawLoader is implemented by stores that can return records unvalidated.
type rawLoader interface {
	LoadRaw() ([]domain.RawRecord, error)
}

type App struct {
	fetcher types.Fetcher
	files   store.FileHandler
	log     *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
	indent  string

	// replaced wholesale by search and load
	vacancies []domain.Vacancy
}

type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
	Indent string // JSON indent used on save
}

func NewApp(fetcher types.Fetcher, files store.FileHandler, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &App{
		fetcher: fetcher,
		files:   files,
		log:     log,
		scanner: bufio.NewScanner(opts.In),
		out:     opts.Out,
		indent:  opts.Indent,
	}
}

// Vacancies returns the collection currently held in memory.
func (a *App) Vacancies() []domain.Vacancy { return a.vacancies }

// Run reads menu choices until "0" or end of input.
func (a *App) Run(ctx context.Context) error {
	for {
		a.printMenu()
		choice, ok := a.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		err := a.handleChoice(ctx, choice)
		if errors.Is(err, ErrExitRequested) {
			return nil
		}
		if err != nil {
			a.log.Error("operation failed", "choice", choice, "err", err)
			a.printf("Error: %s\n", describe(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (a *App) printMenu() {
	a.printf("\n=== Menu ===\n")
	a.printf("1) Search vacancies by keyword\n")
	a.printf("2) Top N vacancies by salary\n")
	a.printf("3) Find keyword in vacancy descriptions\n")
	a.printf("4) Save vacancies to file\n")
	a.printf("5) Load vacancies from file\n")
	a.printf("6) Clear saved vacancies\n")
	a.printf("0) Exit\n")
}

func (a *App) handleChoice(ctx context.Context, choice string) error {
	switch choice {
	case "0":
		return ErrExitRequested
	case "1":
		return a.search(ctx)
	case "2":
		return a.top()
	case "3":
		return a.match()
	case "4":
		return a.save()
	case "5":
		return a.load()
	case "6":
		return a.clear()
	default:
		a.printf("Unknown option, try again.\n")
		return nil
	}
}

func (a *App) prompt(label string) (string, bool) {
	a.printf("%s", label)
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func (a *App) promptInt(label string) (int, bool) {
	s, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		a.printf("Please enter a number.\n")
		return 0, false
	}
	return n, true
}
