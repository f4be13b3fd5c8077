package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/springcrm/crm-api/internal/core/ports"
	"github.com/springcrm/crm-api/internal/infrastructure/config"
	mongodb "github.com/springcrm/crm-api/internal/infrastructure/db/mongo"
	"github.com/springcrm/crm-api/internal/infrastructure/security"
	"github.com/springcrm/crm-api/internal/infrastructure/seed"
	"github.com/springcrm/crm-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// bootstrap loads configuration, initialises the logger and opens the store.
// The returned cleanup disconnects from MongoDB.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, *mongo.Client, *mongo.Database, func(), error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Logger{}, nil, nil, nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "crm-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, log, nil, nil, nil, err
	}
	cleanup := func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
	return cfg, log, client, db, cleanup, nil
}

func seedAdmins(ctx context.Context, path string, repo ports.AccountRepository, verifier *security.BcryptVerifier, log zerolog.Logger) error {
	res, err := seed.NewSeeder(repo, verifier, log).FromFile(ctx, path)
	if err != nil {
		return fmt.Errorf("seed admins: %w", err)
	}
	log.Info().
		Int("created", len(res.Created)).
		Int("skipped", len(res.Skipped)).
		Int("invalid", len(res.Invalid)).
		Str("file", path).
		Msg("admin seeding finished")
	return nil
}
