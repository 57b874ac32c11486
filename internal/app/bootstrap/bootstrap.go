package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ledgerservice "stablecoin/contexts/token-core/ledger-service"
	hostadapter "stablecoin/contexts/token-core/ledger-service/adapters/host"
	"stablecoin/contexts/token-core/ledger-service/adapters/memory"
	messagingadapter "stablecoin/contexts/token-core/ledger-service/adapters/messaging"
	postgresadapter "stablecoin/contexts/token-core/ledger-service/adapters/postgres"
	"stablecoin/internal/platform/config"
	"stablecoin/internal/platform/db"
	"stablecoin/internal/platform/httpserver"
	"stablecoin/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	bus := messaging.NewBus(logger)
	notifier := messagingadapter.NewNotifier(bus)

	var (
		module ledgerservice.Module
		pg     *db.Postgres
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("POSTGRES_DSN not set, ledger state will not survive restarts",
			"event", "bootstrap_memory_store",
			"module", "internal/app/bootstrap",
			"layer", "app",
		)
		store := memory.NewStore()
		host := memory.NewHost()
		host.RegisterAccount(cfg.OwnerAccount)
		module = ledgerservice.NewModule(ledgerservice.Dependencies{
			Store:               store,
			Authority:           host,
			Accounts:            host,
			Notifier:            notifier,
			Clock:               host,
			Owner:               cfg.OwnerAccount,
			MemoLimit:           cfg.MemoLimitBytes,
			RaiseCeilingOnIssue: cfg.EnableIssueCeilingRaise,
			ShrinkCeilingOnBurn: cfg.EnableBurnCeilingShrink,
			Logger:              logger,
		})
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repo.Migrate(ctx); err != nil {
			_ = pg.Close()
			return nil, err
		}

		module = ledgerservice.NewModule(ledgerservice.Dependencies{
			Store:               repo,
			Authority:           hostadapter.GatewayAuthority{},
			Accounts:            hostadapter.OpenDirectory{},
			Notifier:            notifier,
			Clock:               nil,
			Owner:               cfg.OwnerAccount,
			MemoLimit:           cfg.MemoLimitBytes,
			RaiseCeilingOnIssue: cfg.EnableIssueCeilingRaise,
			ShrinkCeilingOnBurn: cfg.EnableBurnCeilingShrink,
			Logger:              logger,
		})
	}

	server := httpserver.New(module, logger, ":"+cfg.HTTPPort)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres == nil {
		return nil
	}
	return a.postgres.Close()
}
