package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexv/vkminiapp/internal/middleware"
)

// RouterConfig はルーター構築に必要な依存をまとめる。
type RouterConfig struct {
	Logger            *slog.Logger
	MetricsRecorder   middleware.HTTPMetricsRecorder
	MetricsHandler    http.Handler
	CORSAllowedOrigin string
	HealthChecker     HealthChecker
	AuthService       AuthServiceInterface
	UserService       UserServiceInterface
	AddressService    AddressServiceInterface
}

// NewRouter はアプリケーションの全ルートを登録したルーターを構築する。
// ミドルウェアはRecovery → RequestID → Logging → Metrics → CORSの順で適用される。
func NewRouter(cfg *RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestIDMiddleware())
	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(cfg.Logger))
	}
	if cfg.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.MetricsRecorder))
	}
	r.Use(middleware.NewCORSMiddleware(cfg.CORSAllowedOrigin))

	authHandler := NewAuthHandler(cfg.AuthService)
	userHandler := NewUserHandler(cfg.UserService)
	addressHandler := NewAddressHandler(cfg.AddressService)
	sampleHandler := NewSampleHandler()
	healthHandler := NewHealthHandler(cfg.HealthChecker)

	r.Get("/", sampleHandler.Index)
	r.Get("/health", healthHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/vk", authHandler.AuthVK)

		r.Route("/users/{vk_id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/phone", userHandler.UpdatePhone)
			r.Put("/email", userHandler.UpdateEmail)
			r.Get("/addresses", addressHandler.ListAddresses)
		})

		r.Post("/addresses", addressHandler.CreateAddress)
		r.Delete("/addresses/{address_id}", addressHandler.DeleteAddress)

		r.Get("/data", sampleHandler.GetData)
		r.Get("/items/{item_id}", sampleHandler.GetItem)
	})

	return r
}
