package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/springcrm/crm-api/internal/api"
	"github.com/springcrm/crm-api/internal/api/handler"
	"github.com/springcrm/crm-api/internal/core/ports"
	"github.com/springcrm/crm-api/internal/core/service"
	"github.com/springcrm/crm-api/internal/infrastructure/cache"
	mongodb "github.com/springcrm/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/springcrm/crm-api/internal/infrastructure/db/redis"
	"github.com/springcrm/crm-api/internal/infrastructure/queue"
	"github.com/springcrm/crm-api/internal/infrastructure/security"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Action: func(c *cli.Context) error {
			return serve(c.Context)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, log, mongoClient, db, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// --- Repositories ---
	accounts := mongodb.NewAccountRepository(db)
	orgs := mongodb.NewOrganizationRepository(db)
	clients := mongodb.NewClientRepository(db)
	txs := mongodb.NewTransactionRepository(db)
	if err := mongodb.EnsureIndexes(ctx, accounts, orgs, clients, txs); err != nil {
		return err
	}

	// --- Security ---
	verifier := security.NewBcryptVerifier(cfg.Auth.BcryptCost)
	codec, err := security.NewTokenCodec(security.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
		TTL:    cfg.Auth.TokenTTL,
	}, nil)
	if err != nil {
		return err
	}

	if cfg.SeedFile != "" {
		if err := seedAdmins(ctx, cfg.SeedFile, accounts, verifier, log); err != nil {
			return err
		}
	}

	// --- Profile cache ---
	readiness := map[string]handler.Pinger{"mongodb": mongodb.Pinger{Client: mongoClient}}
	var profiles ports.ProfileCache
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		profiles = redisdb.NewProfileCache(rdb, cfg.Cache.ProfileTTL)
		readiness["redis"] = redisdb.Pinger{Client: rdb}
	} else {
		mem, err := cache.NewMemoryProfileCache(ctx, cfg.Cache.ProfileTTL)
		if err != nil {
			return err
		}
		defer mem.Close()
		profiles = mem
	}

	// --- Audit trail ---
	audit := queue.NewAuditDispatcher(cfg.Audit.Workers, cfg.Audit.QueueSize, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:       log,
		Tokens:    codec,
		Register:  service.NewRegisterService(accounts, verifier, audit, log),
		Login:     service.NewLoginService(accounts, verifier, codec, audit, log),
		Profiles:  service.NewProfileService(accounts, profiles, log),
		Accounts:  service.NewAccountAdminService(accounts, profiles, log),
		Orgs:      service.NewOrganizationService(orgs, clients, txs, log),
		Clients:   service.NewClientService(orgs, clients, log),
		Txs:       service.NewTransactionService(orgs, txs, log),
		Readiness: readiness,
		Metrics:   true,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := audit.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("audit trail not fully drained")
	}
	log.Info().Msg("server stopped")
	return nil
}
