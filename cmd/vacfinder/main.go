package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vacancy-finder/internal/cli"
	"vacancy-finder/internal/config"
	"vacancy-finder/internal/logger"
	"vacancy-finder/internal/scrape/headhunter"
	"vacancy-finder/internal/secrets"
	"vacancy-finder/internal/store"
)

func main() {
	var (
		dataDir     = flag.String("data-dir", os.Getenv("VACFINDER_DATA_DIR"), "directory for config.yml and saved vacancies")
		defaultCfg  = flag.String("config", filepath.Join("config", "config.yml"), "config copied on first run")
		envFile     = flag.String("env-file", ".env", "optional .env file with VACFINDER_* overrides")
		setToken    = flag.String("set-token", "", "store an hh.ru API token in the OS keychain and exit")
		deleteToken = flag.Bool("delete-token", false, "remove the stored hh.ru API token and exit")
		writeConfig = flag.Bool("write-config", false, "write the effective config back to config.yml and exit")
	)
	flag.Parse()

	if *dataDir == "" {
		*dataDir = "."
	}

	userCfgPath, err := config.EnsureUserConfig(*dataDir, *defaultCfg)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.ApplyEnv(&cfg, *envFile); err != nil {
		log.Fatalf("env overlay failed: %v", err)
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, "-", e)
		}
		log.Fatalf("invalid config %s", userCfgPath)
	}

	lg := logger.New(cfg.Logging.Level, os.Stderr)

	switch {
	case *writeConfig:
		if err := config.SaveAtomic(userCfgPath, cfg); err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Println("Config written to", userCfgPath)
		return
	case *setToken != "":
		if err := secrets.SetAPIToken(cfg.Secrets.KeyringAccount, *setToken); err != nil {
			log.Fatalf("store token: %v", err)
		}
		fmt.Println("Token saved.")
		return
	case *deleteToken:
		if err := secrets.DeleteAPIToken(cfg.Secrets.KeyringAccount); err != nil {
			log.Fatalf("delete token: %v", err)
		}
		fmt.Println("Token removed.")
		return
	}

	token, err := secrets.TokenFor(cfg)
	if err != nil {
		// Anonymous access still works
		lg.Warn("keychain lookup failed", "err", err)
	}

	hh := headhunter.New(headhunter.Config{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Token:     token,
		PerPage:   cfg.API.PerPage,
		MaxPages:  cfg.API.MaxPages,
		Timeout:   cfg.Timeout(),
	})

	dataPath := cfg.Storage.Path
	if !filepath.IsAbs(dataPath) {
		dataPath = filepath.Join(*dataDir, dataPath)
	}
	files := store.NewJSONFileHandler(dataPath)

	lg.Debug("starting", "config", userCfgPath, "data", dataPath, "source", hh.Name())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(hh, files, cli.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: lg,
		Indent: cfg.Storage.Indent,
	})
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("stopped", "err", err)
		os.Exit(1)
	}
}
