package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignregistry "clout/contexts/campaign-bounty/campaign-registry"
	registrypostgres "clout/contexts/campaign-bounty/campaign-registry/adapters/postgres"
	registryworkers "clout/contexts/campaign-bounty/campaign-registry/application/workers"
	reviewinsights "clout/contexts/campaign-bounty/review-insights"
	submissionledger "clout/contexts/campaign-bounty/submission-ledger"
	ledgerpostgres "clout/contexts/campaign-bounty/submission-ledger/adapters/postgres"
	ledgerworkers "clout/contexts/campaign-bounty/submission-ledger/application/workers"
	waitlistservice "clout/contexts/community/waitlist-service"
	waitlistpostgres "clout/contexts/community/waitlist-service/adapters/postgres"
	authorization "clout/contexts/identity-access/authorization-service"
	profilesadapter "clout/contexts/identity-access/authorization-service/adapters/profiles"
	profileservice "clout/contexts/identity-access/profile-service"
	profilepostgres "clout/contexts/identity-access/profile-service/adapters/postgres"
	"clout/internal/platform/config"
	"clout/internal/platform/db"
	"clout/internal/platform/httpserver"
	"clout/internal/platform/messaging"
	"clout/internal/platform/storage"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres          *db.Postgres
	outboxRelay       ledgerworkers.OutboxRelay
	entriesConsumer   registryworkers.SubmissionCreatedConsumer
	reconciliation    registryworkers.ReconciliationJob
	enableConsumer    bool
	enableReconcile   bool
	pollInterval      time.Duration
	reconcileInterval time.Duration
	logger            *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	signer := storage.NewSigner(cfg.StoragePublicBaseURL, cfg.StorageUploadBaseURL)

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	registryModule := campaignregistry.NewModule(campaignregistry.Dependencies{
		Campaigns:   registryRepo,
		Storage:     signer,
		Clock:       registrypostgres.SystemClock{},
		IDGenerator: registrypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := submissionledger.NewModule(submissionledger.Dependencies{
		Submissions: ledgerRepo,
		Campaigns:   ledgerRepo,
		Clock:       ledgerpostgres.SystemClock{},
		IDGenerator: ledgerpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	profileRepo := profilepostgres.NewRepository(pg.DB, logger)
	profileModule := profileservice.NewModule(profileservice.Dependencies{
		Profiles: profileRepo,
		Clock:    profilepostgres.SystemClock{},
		Random:   profilepostgres.MathRandom{},
		Logger:   logger,
	})

	authModule := authorization.NewModule(authorization.Dependencies{
		Roles:  profilesadapter.Resolver{Profiles: profileRepo},
		Logger: logger,
	})

	reviewModule := reviewinsights.NewModule(reviewinsights.Dependencies{
		Submissions: ledgerRepo,
		Campaigns:   registryRepo,
		Profiles:    profileRepo,
		Clock:       ledgerpostgres.SystemClock{},
		Logger:      logger,
	})

	waitlistRepo := waitlistpostgres.NewRepository(pg.DB, logger)
	waitlistModule := waitlistservice.NewModule(waitlistservice.Dependencies{
		Repo:   waitlistRepo,
		Clock:  waitlistpostgres.SystemClock{},
		IDGen:  waitlistpostgres.UUIDGenerator{},
		Logger: logger,
	})

	limiter := httpserver.NewSubmitLimiter(cfg.SubmissionRatePerMinute, cfg.SubmissionRateBurst)
	server := httpserver.New(httpserver.Modules{
		Registry:      registryModule,
		Ledger:        ledgerModule,
		Review:        reviewModule,
		Profiles:      profileModule,
		Authorization: authModule,
		Waitlist:      waitlistModule,
	}, limiter, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker(ctx context.Context) (*WorkerApp, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		outboxRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: bus,
			Clock:     ledgerpostgres.SystemClock{},
			BatchSize: cfg.OutboxRelayBatchSize,
			Logger:    logger,
		},
		entriesConsumer: registryworkers.SubmissionCreatedConsumer{
			Subscriber:    bus,
			Counters:      registryRepo,
			Dedup:         registryRepo,
			Clock:         registrypostgres.SystemClock{},
			ConsumerGroup: "campaign-entries-cg",
			DedupTTL:      7 * 24 * time.Hour,
			Logger:        logger,
		},
		reconciliation: registryworkers.ReconciliationJob{
			Counters:  registryRepo,
			Campaigns: registryRepo,
			Clock:     registrypostgres.SystemClock{},
			Limit:     100,
			Logger:    logger,
		},
		enableConsumer:    cfg.EnableEntriesConsumer,
		enableReconcile:   cfg.EnableReconciliation,
		pollInterval:      time.Duration(cfg.WorkerPollIntervalSecs) * time.Second,
		reconcileInterval: time.Duration(cfg.ReconcileIntervalSecs) * time.Second,
		logger:            logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if w.enableConsumer {
		if err := w.entriesConsumer.Start(ctx); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	lastReconcile := time.Now()
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		if w.enableReconcile && time.Since(lastReconcile) >= w.reconcileInterval {
			if err := w.reconciliation.RunOnce(ctx); err != nil {
				return err
			}
			lastReconcile = time.Now()
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
