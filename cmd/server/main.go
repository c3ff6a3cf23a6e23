package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pradera/pradera/application/usecase"
	"github.com/pradera/pradera/infrastructure/adapter/postgres"
	"github.com/pradera/pradera/infrastructure/config"
	"github.com/pradera/pradera/infrastructure/http/router"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/jwt"
	"github.com/pradera/pradera/infrastructure/service/logger"
	"github.com/pradera/pradera/infrastructure/service/password"
	"github.com/pradera/pradera/infrastructure/service/ratelimit"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("pradera: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "pradera-api",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env": cfg.Environment,
	})
	if cfg.JWTSecretIsDefault {
		severity := "MEDIUM"
		if cfg.IsProduction() {
			severity = "HIGH"
		}
		logger.LogSecurityEvent(ctx, structuredLogger, "default_jwt_secret", severity, map[string]interface{}{
			"hint": "set JWT_SECRET; tokens signed with the default secret can be forged",
		})
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	structuredLogger.Info(ctx, "Database connection established", nil)

	if err := postgres.MigrateUp(db.DB); err != nil {
		return err
	}
	structuredLogger.Info(ctx, "Schema migrated", nil)

	limiter, err := ratelimit.NewRateLimitService(ctx, ratelimit.RateLimitConfig{
		Enabled:       cfg.RateLimitEnabled,
		RedisURL:      cfg.RedisURL,
		IPAttempts:    cfg.RateLimitIPAttempts,
		IPWindow:      cfg.RateLimitIPWindow,
		BlockDuration: cfg.RateLimitBlockDuration,
	}, structuredLogger)
	if err != nil {
		// Login throttling is optional; the API keeps serving without it.
		structuredLogger.Error(ctx, "Failed to initialize rate limit service", err, nil)
		limiter = ratelimit.NoopRateLimitService{}
	}

	tokenService, err := jwt.NewJWTService(cfg)
	if err != nil {
		return err
	}
	passwordService := password.NewBcryptPasswordService(cfg.BcryptCost)
	m := metrics.New()

	// Repositories
	userRepo := postgres.NewUserRepositoryAdapter(db.DB)
	projectRepo := postgres.NewProjectRepository(db.DB)
	workerRepo := postgres.NewWorkerRepository(db.DB)
	crewRepo := postgres.NewCrewRepository(db.DB)
	materialRepo := postgres.NewMaterialRepository(db.DB)
	siteLogRepo := postgres.NewSiteLogRepository(db.DB)
	communicationRepo := postgres.NewCommunicationRepository(db.DB)
	certificateRepo := postgres.NewCertificateRepository(db.DB)
	planningRepo := postgres.NewPlanningRepository(db.DB)
	auditRepo := postgres.NewAuditRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	opts := usecase.Options{BannedWords: cfg.BannedWords}

	api := router.New(router.Dependencies{
		Config:      cfg,
		Logger:      structuredLogger,
		Metrics:     m,
		Tokens:      tokenService,
		RateLimiter: limiter,
		Ping:        db.PingContext,

		Auth:           usecase.NewAuthUseCase(userRepo, tokenService, passwordService, structuredLogger, tokenService.TTL(), opts),
		Projects:       usecase.NewProjectUseCase(projectRepo, structuredLogger, opts),
		Workers:        usecase.NewWorkerUseCase(workerRepo, structuredLogger, opts),
		Crews:          usecase.NewCrewUseCase(crewRepo, structuredLogger, opts),
		Materials:      usecase.NewMaterialUseCase(materialRepo, structuredLogger, opts),
		SiteLogs:       usecase.NewSiteLogUseCase(siteLogRepo, structuredLogger, opts),
		Communications: usecase.NewCommunicationUseCase(communicationRepo, structuredLogger, opts),
		Certificates:   usecase.NewCertificateUseCase(certificateRepo, structuredLogger, opts),
		Planning:       usecase.NewPlanningUseCase(planningRepo, structuredLogger, opts),
		Reports:        usecase.NewReportUseCase(reportRepo, workerRepo, siteLogRepo, m),
		Audit:          usecase.NewAuditUseCase(auditRepo, opts),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		structuredLogger.Info(ctx, "Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := server.Shutdown(shutdownCtx)

		// In-flight audit writes finish on their own bounded timeout.
		api.Audit.Wait()
		structuredLogger.Info(ctx, "Server exited", nil)
		return err
	})

	return g.Wait()
}
