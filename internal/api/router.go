package api

import (
	"net/http"
	"time"
	"waste_tracker/internal/api/handler"
	"waste_tracker/internal/api/middleware"
	"waste_tracker/internal/app/service"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(
	authService *service.AuthService,
	wasteService *service.WasteService,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS(config.AppConfig.CORSAllowedOrigins))

	// Verifies the bearer token when present, puts claims in context.
	// The Authenticator middleware on protected routes decides 401 vs 403.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		api.Route("/auth", authHandler.RegisterRoutes)

		// Record routes (authenticated; delete is admin-only)
		wasteHandler := handler.NewWasteHandler(wasteService)
		api.Route("/waste-records", wasteHandler.RegisterRoutes)

		// Reference catalogs (authenticated)
		api.Group(wasteHandler.RegisterCatalogRoutes)
	})

	return r
}
