package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func Validate(cfg Config) error {
	var errs []string

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("api.base_url %q must be an absolute URL", cfg.API.BaseURL))
	}
	if strings.TrimSpace(cfg.API.UserAgent) == "" {
		errs = append(errs, "api.user_agent is required")
	}
	if cfg.API.PerPage < 1 || cfg.API.PerPage > 100 {
		errs = append(errs, "api.per_page must be 1..100")
	}
	if cfg.API.MaxPages < 1 {
		errs = append(errs, "api.max_pages must be >= 1")
	}
	if cfg.API.TimeoutSeconds < 0 {
		errs = append(errs, "api.timeout_seconds must be >= 0")
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		errs = append(errs, "storage.path is required")
	}
	if strings.Trim(cfg.Storage.Indent, " \t") != "" {
		errs = append(errs, "storage.indent may contain only spaces and tabs")
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, "logging.level must be one of: debug, info, warn, error")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n- ")
}
