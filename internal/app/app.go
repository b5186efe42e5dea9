package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	signup "accounts/internal/http/handlers/auth/sign_up"
	"accounts/internal/http/handlers/controller"
	"accounts/internal/http/metrics"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:      NewRouter(deps, s),
		Addr:         address,
		ReadTimeout:  deps.Config.HTTPReadTimeout,
		WriteTimeout: deps.Config.HTTPWriteTimeout,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(deps.HTTPMetrics.Middleware)

	router.Method(
		http.MethodPost,
		"/signup",
		controller.Adapt(signup.New(deps.Logger, deps.EmailValidator, s.AddAccount)),
	)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsRegistry))

	return router
}
