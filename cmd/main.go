package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/session"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	sess := session.New("")
	var store session.TokenStore

	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if sqlStore, err := session.NewSQLiteStore(db); err == nil {
			store = sqlStore
			if stored, err := sqlStore.Load(); err == nil && stored != nil {
				sess.Set(stored.Token)
			}
		} else {
			logger.Warnf("session store unavailable: %v", err)
		}
	} else {
		logger.Warnf("session database unavailable: %v", err)
	}

	client := catalog.NewClient(catalog.ClientOpts{
		BaseURL:   config.API.BaseURL,
		Tokens:    sess,
		Logger:    logger,
		Timeout:   time.Duration(config.API.TimeoutSeconds) * time.Second,
		RateLimit: config.API.RateLimit,
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Client:  client,
		Session: sess,
		Store:   store,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "harmonyctl",
		Usage:    "Browse and manage the HarmonyHub music catalog",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrUnauthorized) {
			logger.Fatal("credential rejected, run `harmonyctl login` again")
		}
		logger.Fatalf("application error: %v", err)
	}
}
