package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"paie/internal/auth"
	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
	"paie/internal/platform/config"
	"paie/internal/platform/metrics"
	authhandler "paie/internal/transport/http/handlers/auth"
	employeeshandler "paie/internal/transport/http/handlers/employees"
	payrollhandler "paie/internal/transport/http/handlers/payroll"
	reportshandler "paie/internal/transport/http/handlers/reports"
	"paie/internal/transport/http/api"
	"paie/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Log     *slog.Logger
	Engine  *payroll.Engine
	Roster  *roster.Service
	Metrics *metrics.Collector
	Router  http.Handler

	http *http.Server
}

// New wires the engine, roster and HTTP surface. The schedule comes from
// cfg.ScheduleFile when set, otherwise the built-in one is used.
func New(cfg config.Config, log *slog.Logger) (*App, error) {
	schedule := payroll.DefaultSchedule()
	if cfg.ScheduleFile != "" {
		loaded, err := payroll.LoadScheduleFile(cfg.ScheduleFile)
		if err != nil {
			return nil, err
		}
		schedule = loaded
	}
	engine := payroll.NewEngine(schedule)
	svc := roster.NewService(roster.NewStore(), engine, cfg.ComputeWorkers)

	app := &App{
		Config:  cfg,
		Log:     log,
		Engine:  engine,
		Roster:  svc,
		Metrics: metrics.New(),
	}
	app.Router = app.routes()
	app.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	log.Info("payroll engine ready",
		"schedule", schedule.Name,
		"brackets", len(schedule.Brackets),
		"workers", cfg.ComputeWorkers,
		"auth", cfg.AuthEnabled(),
	)
	return app, nil
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	var authenticator *auth.Authenticator
	var protect func(http.Handler) http.Handler
	if cfg.AuthEnabled() {
		authenticator = auth.NewAuthenticator(cfg.AuthSecret, cfg.OperatorPasswordHash, cfg.TokenTTL)
		protect = middleware.RequireOperator
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = a.Metrics
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Log, collector))
	router.Use(middleware.Recoverer(a.Log))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if authenticator != nil {
		router.Use(middleware.Auth(authenticator))
	}
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", middleware.GetRequestID(r.Context()))
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		if authenticator != nil {
			authHandler := authhandler.NewHandler(authenticator)
			r.With(middleware.LoginRateLimit(cfg.RateLimitPerMinute, time.Minute)).Post("/auth/login", authHandler.HandleLogin)
		}

		payrollhandler.NewHandler(a.Engine, collector).RegisterRoutes(r)
		employeeshandler.NewHandler(a.Roster, collector, protect).RegisterRoutes(r)
		reportshandler.NewHandler(a.Roster, collector).RegisterRoutes(r)
	})

	return router
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails, then drains in-flight requests within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("starting HTTP server", "addr", a.http.Addr)
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		a.Log.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.Log.Info("context cancelled, shutting down")
	case err := <-errCh:
		return err
	}
	return a.Shutdown()
}

func (a *App) Shutdown() error {
	a.Log.Info("shutting down server", "timeout", a.Config.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	a.Log.Info("server stopped gracefully")
	return nil
}
