package cli

import (
	"context"
	"errors"
	"fmt"

	"vacancy-finder/internal/domain"
	"vacancy-finder/internal/format"
	"vacancy-finder/internal/rank"
	"vacancy-finder/internal/scrape"
	"vacancy-finder/internal/scrape/headhunter"
	"vacancy-finder/internal/store"
)

func (a *App) search(ctx context.Context) error {
	kw, ok := a.prompt("Search keyword: ")
	if !ok {
		return nil
	}

	a.log.Info("fetching", "source", a.fetcher.Name(), "keyword", kw)
	raws, err := a.fetcher.Fetch(ctx, kw)
	if err != nil {
		return err
	}
	vs, err := scrape.Normalize(raws)
	if err != nil {
		return err
	}

	a.vacancies = vs
	a.log.Info("fetched", "source", a.fetcher.Name(), "keyword", kw, "count", len(vs))
	a.printf("Found %d vacancies.\n", len(vs))
	return nil
}

func (a *App) top() error {
	if len(a.vacancies) == 0 {
		a.printf("Run a search (option 1) or load a file (option 5) first.\n")
		return nil
	}
	n, ok := a.promptInt("How many vacancies to show? ")
	if !ok {
		return nil
	}
	return format.Table(a.out, rank.TopBySalary(a.vacancies, n))
}

func (a *App) match() error {
	if len(a.vacancies) == 0 {
		a.printf("No vacancies yet (option 1).\n")
		return nil
	}
	kw, ok := a.prompt("Keyword in description: ")
	if !ok {
		return nil
	}
	found := rank.MatchKeyword(a.vacancies, kw)
	a.printf("Found %d vacancies:\n", len(found))
	return format.List(a.out, found)
}

func (a *App) save() error {
	if len(a.vacancies) == 0 {
		a.printf("Nothing to save.\n")
		return nil
	}

	fresh := len(a.vacancies)
	if rl, ok := a.files.(rawLoader); ok {
		stored, err := rl.LoadRaw()
		switch {
		case err == nil:
			fresh = len(scrape.NewVacancies(a.vacancies, scrape.ExistingURLs(stored)))
		case errors.Is(err, store.ErrNotFound):
			// first save
		default:
			// The file is about to be replaced anyway
			a.log.Warn("could not read previous file", "err", err)
		}
	}

	if err := a.files.Save(a.vacancies, store.WithIndent(a.indent)); err != nil {
		return err
	}
	a.log.Info("saved", "count", len(a.vacancies), "new", fresh)
	a.printf("Saved %d vacancies (%d not in the previous file).\n", len(a.vacancies), fresh)
	return nil
}

func (a *App) load() error {
	vs, err := a.files.Load()
	if err != nil {
		return err
	}
	a.vacancies = vs
	a.printf("Loaded %d vacancies from file.\n", len(vs))
	return nil
}

func (a *App) clear() error {
	if err := a.files.Clear(); err != nil {
		return err
	}
	a.printf("Saved vacancies removed.\n")
	return nil
}

// describe turns core errors into one-line messages for the user.
func describe(err error) string {
	var rf *headhunter.RequestFailure
	var pe *store.ParseError
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &rf):
		return fmt.Sprintf("search request failed with HTTP %d", rf.StatusCode)
	case errors.Is(err, store.ErrNotFound):
		return "no saved vacancies yet"
	case errors.As(err, &pe):
		return fmt.Sprintf("saved file %s is not valid JSON", pe.Path)
	case errors.As(err, &ve):
		return fmt.Sprintf("bad vacancy data (%s: %s)", ve.Field, ve.Msg)
	default:
		return err.Error()
	}
}
