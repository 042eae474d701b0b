package rest

import (
	"net/http"

	"pipeline-backend/application/queries/bus"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/interfaces/http/rest/handlers"
	"pipeline-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	queryBus *bus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(queryBus *bus.QueryBus, cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
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

	// CORS configuration: the editor frontend is served from arbitrary
	// origins, so everything is allowed, credentials included.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness: the fixed Ping/Pong payload the frontend polls
	router.Get("/", rt.root)
	router.Get("/health", rt.healthCheck)

	// Pipeline analysis endpoints
	router.Route("/pipelines", func(r chi.Router) {
		pipelineHandler := handlers.NewPipelineHandler(rt.queryBus, rt.logger, rt.cfg.MaxPipelineBytes)
		r.Post("/parse", pipelineHandler.ParsePipeline)
		r.Post("/validate", pipelineHandler.ValidatePipeline)
	})

	return router
}

// root handles the liveness root endpoint
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"Ping":"Pong"}`))
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
