package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/adityarao21/text-analyzer/internal/config"
	"github.com/adityarao21/text-analyzer/internal/controllers"
	"github.com/adityarao21/text-analyzer/internal/metrics"
	"github.com/adityarao21/text-analyzer/internal/models"
	"github.com/adityarao21/text-analyzer/internal/orchestrator"
	"github.com/adityarao21/text-analyzer/internal/services"
	"github.com/adityarao21/text-analyzer/internal/views"
	"github.com/adityarao21/text-analyzer/migrations"
	"github.com/adityarao21/text-analyzer/templates"

	"github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg := config.MustLoad()
	if err := run(cfg); err != nil {
		panic(err)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Setup the database (optional) ---------------
	var historyService *models.HistoryService
	if cfg.Database.URL != "" {
		log.Println("Connecting to database...")
		db, err := models.NewDatabase(ctx, models.DefaultDatabaseConfig(cfg.Database.URL))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		log.Println("Database connected successfully")

		// run migrations
		sqlDB := stdlib.OpenDBFromPool(db.Pool)
		if err := models.MigrateFS(sqlDB, migrations.FS, "."); err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Warning: closing migration connection: %v", err)
		}

		historyService = models.NewHistoryService(db.Pool)
		log.Println("Analysis history enabled")
	} else {
		log.Println("DATABASE_URL not set, running without analysis history")
	}

	// Setup capability adapters ---------------
	// A missing vendor key leaves that capability unconfigured; the service
	// starts degraded and reports the gap per request instead of refusing
	// to boot.
	var translator orchestrator.Translator
	if svc, err := services.NewTranslatorService(cfg.APIs.RapidAPIKey); err != nil {
		log.Printf("Warning: translation service disabled: %v", err)
	} else {
		translator = svc
		log.Println("Translation service loaded")
	}

	var chat orchestrator.ChatResponder
	if svc, err := services.NewChatService(ctx, cfg.APIs.GeminiAPIKey, cfg.APIs.GeminiModel); err != nil {
		log.Printf("Warning: chat service disabled: %v", err)
	} else {
		defer svc.Close()
		chat = svc
		log.Printf("Chat service loaded (model %s)", cfg.APIs.GeminiModel)
	}

	sentiment := services.NewSentimentService()
	log.Println("Sentiment service loaded")

	// Setup orchestration ---------------
	recorder := metrics.NewRecorder()
	orch := orchestrator.New(orchestrator.Config{
		Translator:        translator,
		Sentiment:         sentiment,
		Chat:              chat,
		Recorder:          recorder,
		AdapterTimeout:    cfg.Analysis.AdapterTimeout,
		DefaultSourceLang: cfg.Analysis.DefaultSourceLang,
		DefaultTargetLang: cfg.Analysis.DefaultTargetLang,
	})

	// Setup controllers ---------------
	analyzeCtrl := controllers.NewAnalyzeController(
		orch,
		services.NewResponseFormatter(),
		recorder,
		historyService,
	)

	homeTpl, err := views.ParseFS(templates.FS, "home.gohtml")
	if err != nil {
		return err
	}
	staticCtrl := controllers.NewStaticController(controllers.StaticTemplates{
		Home: homeTpl,
	})

	// CSRF middleware for the browser-facing pages
	csrfKey := []byte(cfg.Security.CSRFSecret)
	if len(csrfKey) == 0 {
		log.Println("Warning: CSRF_SECRET not set, generating an ephemeral key")
		csrfKey = make([]byte, 32)
		if _, err := rand.Read(csrfKey); err != nil {
			return fmt.Errorf("failed to generate CSRF key: %w", err)
		}
	}
	csrfMw := csrf.Protect(csrfKey, csrf.Secure(cfg.Security.SecureCookies), csrf.Path("/"))

	// Setup router and routes ---------------
	r := chi.NewRouter()

	// ---- Browser-facing routes ----
	r.Group(func(r chi.Router) {
		r.Use(csrfMw)
		r.Get("/", staticCtrl.GetHome)
	})

	// ---- JSON API ----
	r.Group(func(r chi.Router) {
		r.Post("/analyze", analyzeCtrl.PostAnalyze)
		r.Get("/metrics", analyzeCtrl.GetMetrics)
		r.Get("/health", controllers.HealthCheck)
		if historyService != nil {
			r.Get("/history", analyzeCtrl.GetHistory)
		}
	})

	// Start the server ---------------
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	fmt.Printf("Starting server at port %s...\n", cfg.Server.Port)
	return server.ListenAndServe()
}
