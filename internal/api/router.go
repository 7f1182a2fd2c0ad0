package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rsaisankalp/ashram-assert/internal/api/handlers"
	"github.com/rsaisankalp/ashram-assert/internal/api/middleware"
	"github.com/rsaisankalp/ashram-assert/internal/auth"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/storage"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *slog.Logger
	Service        *inventory.Service
	JWTService     *auth.JWTService
	Store          storage.ObjectStore
	AllowedOrigins []string
	RateLimitReqs  int
	RateLimitSecs  int
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Redis)
	authHandler := handlers.NewAuthHandler(cfg.Service, cfg.JWTService)
	ashramHandler := handlers.NewAshramHandler(cfg.Service)
	assetHandler := handlers.NewAssetHandler(cfg.Service)
	documentHandler := handlers.NewDocumentHandler(cfg.Service, cfg.Store)
	dashboardHandler := handlers.NewDashboardHandler(cfg.Service)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService, cfg.Service))

			r.Route("/ashrams", func(r chi.Router) {
				r.Post("/", ashramHandler.Create)
				r.Post("/{id}/assignments", ashramHandler.Assign)
				r.Get("/{id}/assets", ashramHandler.ListAssets)
				r.Get("/{id}/dashboard", ashramHandler.Dashboard)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assetHandler.List)
				r.Post("/", assetHandler.Create)
				r.Get("/{id}", assetHandler.Get)
				r.Put("/{id}", assetHandler.Update)
				r.Post("/{id}/archive", assetHandler.Archive)
				r.Delete("/{id}", assetHandler.Delete)

				r.Post("/{id}/reminders", assetHandler.ScheduleReminder)
				r.Post("/{id}/reminders/{reminderID}/complete", assetHandler.CompleteReminder)

				r.Post("/{id}/documents", documentHandler.Upload)
				r.Post("/{id}/documents/link", documentHandler.Link)
				r.Get("/{id}/documents/{documentID}", documentHandler.Download)
			})

			r.Get("/reminders", assetHandler.UpcomingReminders)
			r.Get("/dashboard", dashboardHandler.HeadOffice)
		})
	})

	return &Router{r}
}
