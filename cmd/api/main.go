package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/a1technologies/cooling-crm/internal/api/http"
	"github.com/a1technologies/cooling-crm/internal/api/http/handlers"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/config"
	"github.com/a1technologies/cooling-crm/internal/events"
	"github.com/a1technologies/cooling-crm/internal/idgen"
	"github.com/a1technologies/cooling-crm/internal/observability"
	"github.com/a1technologies/cooling-crm/internal/persistence"
	"github.com/a1technologies/cooling-crm/internal/repository"
	"github.com/a1technologies/cooling-crm/internal/seed"
	"github.com/a1technologies/cooling-crm/internal/service"
	"github.com/a1technologies/cooling-crm/internal/session"
	"github.com/a1technologies/cooling-crm/internal/worker"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var contentStore repository.ContentStore
	health := handlers.HealthDependencies{}
	if pool := pg.PoolHandle(); pool != nil {
		contentStore = repository.NewPostgresContentStore(pool)
		health.Postgres = pg
	} else {
		contentStore = repository.NewLogContentStore(logger)
	}

	slot, closeSlot := openSessionSlot(ctx, cfg, logger, &health)
	defer closeSlot()

	var verifier session.PasswordVerifier
	if cfg.Auth.EnforcePassword {
		v, err := auth.NewDemoPasswordVerifier(cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash demo password", zap.Error(err))
		}
		verifier = v
		logger.Info("password check enabled for demo accounts")
	}

	data, err := seed.Default()
	if err != nil {
		logger.Fatal("failed to load seed data", zap.Error(err))
	}

	ids, err := idgen.NewSnowflake(cfg.App.NodeID)
	if err != nil {
		logger.Fatal("failed to init id generator", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(data.Products)
	requestRepo := repository.NewServiceRequestRepository(data.ServiceRequests)
	technicianRepo := repository.NewTechnicianRepository(data.Technicians)
	historyRepo := repository.NewStatusHistoryRepository()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))

	sessions := session.NewManager(session.ManagerDependencies{
		Slot:      slot,
		Directory: session.NewStaticDirectory(data.Identities),
		Verifier:  verifier,
		SlotKey:   cfg.Session.SlotKey,
		TTL:       cfg.Session.TTL(),
		Logger:    logger,
	})
	authService := service.NewAuthService(*cfg, service.AuthDependencies{Sessions: sessions})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ProductRepo: productRepo,
		IDs:         ids,
	})
	ledgerService := service.NewLedgerService(service.LedgerDependencies{
		RequestRepo:    requestRepo,
		ProductRepo:    productRepo,
		TechnicianRepo: technicianRepo,
		HistoryRepo:    historyRepo,
		Dispatcher:     dispatcher,
		IDs:            ids,
	})
	contentService, err := service.NewContentService(ctx, data.Content, service.ContentDependencies{
		Store:      contentStore,
		Dispatcher: dispatcher,
		IDs:        ids,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to load site content", zap.Error(err))
	}

	autosave, err := worker.StartContentAutosave(cfg.Content.AutosaveCron, contentService, logger)
	if err != nil {
		logger.Fatal("invalid CONTENT_AUTOSAVE_CRON", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions, logger)
	metrics := observability.NewMetrics()
	v := validator.New()

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, health),
		Metrics:         handlers.NewMetricsHandler(metrics),
		Auth:            handlers.NewAuthHandler(authService, v, cfg.App.Env == "production"),
		Products:        handlers.NewProductsHandler(catalogService, v),
		ServiceRequests: handlers.NewServiceRequestsHandler(ledgerService, v),
		Content:         handlers.NewContentHandler(contentService, v),
		Views: handlers.NewViewsHandler(handlers.ViewsDependencies{
			Auth:    authService,
			Catalog: catalogService,
			Ledger:  ledgerService,
			Content: contentService,
		}),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	autosave.Stop()
	if contentService.Dirty() {
		if err := contentService.Persist(context.Background(), worker.AutosaveActor); err != nil {
			logger.Error("failed to persist content on shutdown", zap.Error(err))
		}
	}
}

// openSessionSlot builds the configured identity slot and records its store for readiness.
func openSessionSlot(ctx context.Context, cfg *config.Config, logger *zap.Logger, health *handlers.HealthDependencies) (session.Slot, func()) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb := persistence.NewRedis(ctx, cfg.Redis, logger)
		health.Redis = rdb
		return session.NewRedisSlot(rdb.Client), rdb.Close
	case config.SessionBackendMemory:
		logger.Warn("session slot is in memory; logins do not survive restarts")
		return session.NewMemorySlot(), func() {}
	default:
		db, err := persistence.OpenBolt(cfg.Session.BoltPath, logger)
		if err != nil {
			logger.Fatal("failed to open session store", zap.Error(err))
		}
		slot, err := session.NewBoltSlot(db.DB)
		if err != nil {
			db.Close()
			logger.Fatal("failed to init session bucket", zap.Error(err))
		}
		health.Bolt = db
		return slot, db.Close
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
