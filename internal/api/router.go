package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/deokisok/ootd/internal/api/handlers"
	mw "github.com/deokisok/ootd/internal/api/middleware"
	"github.com/deokisok/ootd/internal/buildconfig"
	"github.com/deokisok/ootd/internal/config"
	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/rerank"
	"github.com/deokisok/ootd/internal/service"
	"github.com/deokisok/ootd/internal/store"
	"github.com/deokisok/ootd/internal/vision"
	"github.com/deokisok/ootd/internal/weather"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and request metrics.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	userStore := store.NewUserStore(db)
	garmentStore := store.NewGarmentStore(db)
	profileStore := store.NewProfileStore(db)
	feedbackStore := store.NewFeedbackStore(db)
	sessionStore := store.NewSessionStore(db)

	// External clients via provider factory
	var visionClient domain.VisionClient
	var rerankClient domain.RerankClient
	var weatherClient domain.WeatherClient

	var err error
	visionClient, err = vision.NewClient(config.VisionProvider(), config.OpenAIAPIKey())
	if err != nil {
		logger.Warn("vision client initialization failed", zap.String("provider", config.VisionProvider()), zap.Error(err))
	} else {
		logger.Info("vision client initialized", zap.String("provider", config.VisionProvider()))
	}

	rerankClient, err = rerank.NewClient(config.RerankProvider(), config.RerankAPIKey())
	if err != nil {
		logger.Warn("rerank client initialization failed", zap.String("provider", config.RerankProvider()), zap.Error(err))
	} else if rerankClient != nil {
		logger.Info("rerank client initialized", zap.String("provider", config.RerankProvider()))
	}

	weatherClient, err = weather.NewClient(config.WeatherProvider())
	if err != nil {
		logger.Warn("weather client initialization failed", zap.String("provider", config.WeatherProvider()), zap.Error(err))
	} else if weatherClient != nil {
		logger.Info("weather client initialized", zap.String("provider", config.WeatherProvider()))
	}

	// Services
	closetSvc := service.NewClosetService(garmentStore, visionClient, logger)
	recommendSvc := service.NewRecommendationService(garmentStore, profileStore, sessionStore, rerankClient, weatherClient, logger, config.RecommendTopK())
	feedbackSvc := service.NewFeedbackService(sessionStore, feedbackStore, profileStore, logger)
	reportSvc := service.NewReportService(garmentStore, profileStore, feedbackStore)

	// Handlers
	userHandler := handlers.NewUserHandler(userStore)
	garmentHandler := handlers.NewGarmentHandler(closetSvc)
	recommendHandler := handlers.NewRecommendHandler(recommendSvc)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackSvc)
	reportHandler := handlers.NewReportHandler(reportSvc)
	profileHandler := handlers.NewProfileHandler(profileStore)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	// User creation (no auth, bootstrap endpoint)
	r.Post("/v1/users", userHandler.Create)

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(userStore))

		r.Route("/garments", func(r chi.Router) {
			r.Post("/", garmentHandler.Create)
			r.Post("/bulk", garmentHandler.BulkCreate)
			r.Get("/", garmentHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", garmentHandler.GetByID)
				r.Patch("/", garmentHandler.Update)
				r.Delete("/", garmentHandler.MarkDelete)
				r.Post("/delete", garmentHandler.ConfirmDelete)
				r.Post("/restore", garmentHandler.Restore)
				r.Post("/analyze", garmentHandler.Analyze)
			})
		})

		r.Post("/recommendations", recommendHandler.Create)
		r.Post("/feedback", feedbackHandler.Create)
		r.Get("/report", reportHandler.Get)
		r.Get("/profile", profileHandler.Get)
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that only route.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.UserStore     = (*store.UserStore)(nil)
	_ domain.GarmentStore  = (*store.GarmentStore)(nil)
	_ domain.ProfileStore  = (*store.ProfileStore)(nil)
	_ domain.FeedbackStore = (*store.FeedbackStore)(nil)
	_ domain.SessionStore  = (*store.SessionStore)(nil)
	_ domain.VisionClient  = (*vision.OpenAIClient)(nil)
	_ domain.VisionClient  = (*vision.MockClient)(nil)
	_ domain.RerankClient  = (*rerank.OpenAIClient)(nil)
	_ domain.RerankClient  = (*rerank.AnthropicClient)(nil)
	_ domain.RerankClient  = (*rerank.MockClient)(nil)
	_ domain.WeatherClient = (*weather.OpenMeteoClient)(nil)
	_ domain.WeatherClient = (*weather.MockClient)(nil)
)
