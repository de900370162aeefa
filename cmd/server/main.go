package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"healify/internal/assessment"
	"healify/internal/config"
	"healify/internal/conversation"
	"healify/internal/disease"
	"healify/internal/i18n"
	"healify/internal/logging"
	"healify/internal/outbreak"
	"healify/internal/platform/postgres"
	"healify/internal/platform/telegram"
	"healify/internal/platform/validate"
	"healify/internal/prediction"
	"healify/internal/report"
	"healify/internal/water"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Infrastructure
	db := openDatabase(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	var tgClient *telegram.Client
	if cfg.NotificationsEnabled() {
		tgClient = telegram.NewClient(cfg.TelegramToken)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN or HEALTH_OFFICER_CHAT_ID not set, reports and alerts will not be delivered")
	}

	// 2. Reference data and engines
	registry := disease.Default()
	catalog := i18n.Default()
	matcher := prediction.NewMatcher(registry)
	validator := validate.New()

	// 3. Services
	conversationRepo := conversation.NewMemoryRepository()
	assessmentRepo := assessment.NewMemoryRepository()
	if db != nil {
		conversationRepo = conversation.NewRepository(db)
		assessmentRepo = assessment.NewRepository(db)
	}

	conversationSvc, err := conversation.NewService(conversationRepo, catalog, registry, logger.With("component", "conversation"))
	if err != nil {
		logger.Error("chat responders", "error", err)
		os.Exit(1)
	}
	assessmentSvc := assessment.NewService(assessmentRepo, catalog, matcher, validator, logger.With("component", "assessment"))

	// nil interfaces, not typed nil pointers, when delivery is off
	var reportSender report.TelegramClient
	var waterNotifier water.Notifier
	if tgClient != nil {
		reportSender = tgClient
		waterNotifier = tgClient
	}
	reportSvc := report.NewService(reportSender, cfg.HealthOfficerChatID, cfg.ReportFontPath, catalog, logger.With("component", "report"))
	waterSvc := water.NewService(
		water.NewClient(cfg.WaterPredictionURL, cfg.WaterPredictionTimeout),
		waterNotifier, cfg.HealthOfficerChatID, validator, logger.With("component", "water"),
	)
	outbreakSvc := outbreak.NewService(catalog)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Accept-Language, Content-Type, Content-Length, Accept-Encoding")
			if r.Method == http.MethodOptions {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		conversation.RegisterRoutes(r, conversation.NewHandler(conversationSvc))
		assessment.RegisterRoutes(r, assessment.NewHandler(assessmentSvc, catalog))
		report.RegisterRoutes(r, report.NewHandler(reportSvc, assessmentSvc))
		water.RegisterRoutes(r, water.NewHandler(waterSvc, catalog))
		outbreak.RegisterRoutes(r, outbreak.NewHandler(outbreakSvc))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// openDatabase returns nil when no database is configured or reachable;
// the caller then keeps everything in memory.
func openDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger) *sql.DB {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, using in-memory storage")
		return nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Warn("could not connect to database, using in-memory storage", "error", err)
		return nil
	}
	logger.Info("connected to database")

	if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		logger.Error("migrations failed, using in-memory storage", "error", err)
		_ = db.Close()
		return nil
	}
	logger.Info("migrations applied")
	return db
}
