package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/airfreightlabs/uld-load-planner/internal/api"
	"github.com/airfreightlabs/uld-load-planner/internal/calculator"
	"github.com/airfreightlabs/uld-load-planner/internal/config"
	"github.com/airfreightlabs/uld-load-planner/internal/tools"
	"github.com/airfreightlabs/uld-load-planner/internal/uldspec"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	calculator calculator.Calculator
	registry   *tools.Registry
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if _, ok := uldspec.Lookup(cfg.DefaultULDType); !ok {
		return nil, fmt.Errorf("default ULD type %q is not in the specification table", cfg.DefaultULDType)
	}

	calc := calculator.New()
	registry := tools.New(calc, cfg.DefaultULDType)
	handler := api.NewHandler(calc, registry, cfg.DefaultULDType,
		api.WithKnowledgeBaseID(cfg.KnowledgeBaseID),
	)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	rootHandler := BuildRootHandler(apiRouter)

	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           rootHandler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return &App{
		calculator: calc,
		registry:   registry,
		handler:    handler,
		router:     apiRouter,
		logger:     logger,
		server:     server,
	}, nil
}

// BuildRootHandler constructs the root HTTP handler: a service descriptor at
// the root path and the API router under /api/.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(serviceDescriptor{
			Service: "uld-load-planner",
			Endpoints: []string{
				"GET /api/health",
				"GET /api/uld-types",
				"GET /api/tools",
				"POST /api/tools/{tool}",
				"POST /api/calculate/weight",
				"POST /api/calculate/volume",
				"POST /api/calculate/requirements",
				"POST /api/validate/weight",
				"POST /api/validate/fit",
				"POST /api/compare",
			},
		})
	}))
	return mux
}

type serviceDescriptor struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
