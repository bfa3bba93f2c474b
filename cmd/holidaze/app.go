package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/api"
	"github.com/holidaze/client-go/internal/auth"
	"github.com/holidaze/client-go/internal/config"
	"github.com/holidaze/client-go/internal/venues"
)

// app wires the gateway, services and session store for one command
// invocation.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	store  *auth.Store
	auth   *auth.Service
	venues *venues.Service
}

func newApp() (*app, error) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Logger:  &log,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		store:  auth.NewStore(cfg.SessionFile, log),
		auth:   auth.NewService(client, log),
		venues: venues.NewService(client, log),
	}, nil
}
