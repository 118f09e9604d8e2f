// Package rest wires the HTTP surface of the flow editor.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands/bus"
	querybus "github.com/NicollasRezende/flow-management-app/application/queries/bus"
	"github.com/NicollasRezende/flow-management-app/infrastructure/config"
	"github.com/NicollasRezende/flow-management-app/interfaces/http/rest/handlers"
	"github.com/NicollasRezende/flow-management-app/interfaces/http/rest/middleware"
	"github.com/NicollasRezende/flow-management-app/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	cfg        *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		cfg:        cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Authentication is optional: without a configured secret the
		// editor runs open, matching local development.
		if rt.cfg.JWTSecret != "" {
			validator, err := auth.NewJWTValidator(auth.JWTConfig{
				SecretKey: rt.cfg.JWTSecret,
				Issuer:    rt.cfg.JWTIssuer,
			})
			if err != nil {
				rt.logger.Error("failed to create JWT validator, rejecting all requests", zap.Error(err))
				r.Use(func(http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						http.Error(w, "authentication unavailable", http.StatusServiceUnavailable)
					})
				})
			} else {
				r.Use(middleware.Authenticate(validator, rt.logger))
			}
		}

		flowHandler := handlers.NewFlowHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Route("/flow", func(r chi.Router) {
			r.Get("/", flowHandler.GetFlow)
			r.Post("/save", flowHandler.SaveFlow)
			r.Post("/import", flowHandler.ImportFlow)
			r.Get("/export", flowHandler.ExportFlow)
			r.Post("/validate", flowHandler.ValidateFlow)
		})

		menuHandler := handlers.NewMenuHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Route("/menus", func(r chi.Router) {
			r.Post("/", menuHandler.AddMenu)
			r.Put("/{menuID}", menuHandler.UpdateMenu)
			r.Put("/{menuID}/position", menuHandler.MoveMenu)
			r.Delete("/{menuID}", menuHandler.DeleteMenu)
		})

		r.Post("/connections", menuHandler.Connect)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
