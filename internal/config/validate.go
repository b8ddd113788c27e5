package config

import (
	"fmt"
	"strings"
)

// hh.ru refuses pages beyond the first 2000 results.
const maxReachableResults = 2000

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a trimmed copy of cfg together with hard
// errors (same rules as Validate) and soft warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.API.BaseURL = strings.TrimSpace(out.API.BaseURL)
	out.API.UserAgent = strings.TrimSpace(out.API.UserAgent)
	out.Storage.Path = strings.TrimSpace(out.Storage.Path)
	out.Logging.Level = strings.ToLower(strings.TrimSpace(out.Logging.Level))
	out.Secrets.KeyringAccount = strings.TrimSpace(out.Secrets.KeyringAccount)

	if err := Validate(out); err != nil {
		for _, line := range strings.Split(err.Error(), "\n- ")[1:] {
			res.addErr("%s", line)
		}
	}

	if out.API.PerPage > 0 && out.API.MaxPages > 0 && out.API.PerPage*out.API.MaxPages > maxReachableResults {
		res.addWarn("api.per_page*api.max_pages = %d exceeds %d; the API rejects the later pages and the whole fetch fails.",
			out.API.PerPage*out.API.MaxPages, maxReachableResults)
	}

	return out, res
}
