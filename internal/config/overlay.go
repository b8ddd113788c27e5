package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config.yml.
const (
	EnvBaseURL        = "VACFINDER_API_BASE_URL"
	EnvUserAgent      = "VACFINDER_USER_AGENT"
	EnvPerPage        = "VACFINDER_PER_PAGE"
	EnvMaxPages       = "VACFINDER_MAX_PAGES"
	EnvDataFile       = "VACFINDER_DATA_FILE"
	EnvLogLevel       = "VACFINDER_LOG_LEVEL"
	EnvKeyringAccount = "VACFINDER_KEYRING_ACCOUNT"
)

// ApplyEnv loads envFile into the process environment (variables already set
// win) and then overlays VACFINDER_* values onto cfg.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
		}
		// Missing .env is the normal case
	}

	setString(&cfg.API.BaseURL, EnvBaseURL)
	setString(&cfg.API.UserAgent, EnvUserAgent)
	setString(&cfg.Storage.Path, EnvDataFile)
	setString(&cfg.Logging.Level, EnvLogLevel)
	setString(&cfg.Secrets.KeyringAccount, EnvKeyringAccount)

	if err := setInt(&cfg.API.PerPage, EnvPerPage); err != nil {
		return err
	}
	return setInt(&cfg.API.MaxPages, EnvMaxPages)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, v)
	}
	*dst = n
	return nil
}
