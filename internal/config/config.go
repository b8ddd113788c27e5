package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		UserAgent      string `yaml:"user_agent"`
		PerPage        int    `yaml:"per_page"`
		MaxPages       int    `yaml:"max_pages"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Storage struct {
		Path   string `yaml:"path"`
		Indent string `yaml:"indent"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Secrets struct {
		// KeyringAccount names the OS keychain entry holding an hh.ru API token.
		// Empty disables the keychain lookup.
		KeyringAccount string `yaml:"keyring_account"`
	} `yaml:"secrets"`
}

func Default() Config {
	var cfg Config
	cfg.API.BaseURL = "https://api.hh.ru/vacancies"
	cfg.API.UserAgent = "HH-User-Agent"
	cfg.API.PerPage = 20
	cfg.API.MaxPages = 20
	cfg.Storage.Path = "data/vacancies.json"
	cfg.Storage.Indent = "  "
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads path over the defaults, so a partial file is fine.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Timeout is the per-request limit; 0 leaves the transport default.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
