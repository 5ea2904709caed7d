package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nlog/notes-system/internal/api"
	"github.com/nlog/notes-system/internal/core/service"
	mongodb "github.com/nlog/notes-system/internal/infrastructure/db/mongo"
	"github.com/nlog/notes-system/internal/pkg/config"
	"github.com/nlog/notes-system/pkg/logger"
)

// @title        nLog app
// @version      1.0.0
// @description  A secure and simple Notes Management API. It allows users to sign up, login and manage their notes. Each user can access only their own notes. JWT-based authentication ensures secure access.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("token service configuration invalid")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Username: cfg.Mongo.Username,
		Password: cfg.Mongo.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	accounts := mongodb.NewAccountRepository(db)
	notes := mongodb.NewNoteRepository(db)

	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create account indexes")
	}
	if err := notes.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create note indexes")
	}

	e := api.NewRouter(api.Deps{
		Accounts: accounts,
		Notes:    notes,
		Tokens:   tokens,
		TokenTTL: cfg.TokenTTL(),
		DB:       db,
		Logger:   log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("nLog API listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
