package main

import (
	"errors"
	"fmt"

	"github.com/Belphemur/ReelRate/internal/client"
	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/services"
	"github.com/Belphemur/ReelRate/internal/session"
)

// app holds the wired dependencies shared by every command.
type app struct {
	client  client.Client
	store   session.Store
	service services.ReviewService
}

func newApp(cfg *config.Config) (*app, error) {
	if cfg.TMDB.AccessToken == "" {
		logger := config.GetLogger()
		logger.Warn().Msg("No TMDB access token configured (set TMDB_ACCESS_TOKEN), requests will be rejected")
	}

	store, err := session.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	c := client.NewClient(cfg)
	return &app{
		client:  c,
		store:   store,
		service: services.NewReviewService(c, store),
	}, nil
}

func (a *app) Close() error {
	return errors.Join(a.client.Close(), a.store.Close())
}
