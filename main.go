package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/tracker/authenticator"
	"github.com/blogem/tracker/config"
	"github.com/blogem/tracker/controllers"
	"github.com/blogem/tracker/database"
	"github.com/blogem/tracker/logging"
	"github.com/blogem/tracker/metrics"
	authmiddleware "github.com/blogem/tracker/middleware"
	"github.com/blogem/tracker/monitor"
	"github.com/blogem/tracker/repositories"
	"github.com/blogem/tracker/requestctx"
	"github.com/blogem/tracker/services"
	"github.com/blogem/tracker/storage"
)

// sessionLifetime keeps users logged in for 30 days
const sessionLifetime = 30 * 24 * 3600

// app is everything the router needs, built once at startup
type app struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	db       *sql.DB
	store    storage.RequestStore
	geo      *requestctx.HTTPGeolocator
	repos    *repositories.Repositories
	monitor  *monitor.RequestMonitor
	services *services.Services
	provider authenticator.Provider
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to start", "error", err)
	}
	defer a.Close()

	r, err := setupRouter(a)
	if err != nil {
		logger.Fatalw("Failed to setup router", "error", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infow("Tracker starting", "port", cfg.Server.Port, "database", cfg.Database.Path, "sso", a.provider != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Graceful shutdown failed", "error", err)
	}
}

// newApp opens the database and the request store and wires the services
func newApp(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*app, error) {
	if cfg.Server.SecretKey == "" {
		logger.Warn("SECRET_KEY is not set")
	}

	db, err := database.InitializeDatabase(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := storage.Open(ctx, cfg.Store, logger)

	geo, err := requestctx.NewHTTPGeolocator(requestctx.GeolocatorConfig{
		BaseURL:   cfg.Geolocation.APIURL,
		Timeout:   cfg.Geolocation.Timeout,
		CacheSize: cfg.Geolocation.CacheSize,
		CacheTTL:  cfg.Geolocation.CacheTTL,
	}, logger)
	if err != nil {
		_ = store.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize geolocation: %w", err)
	}

	collector := requestctx.NewCollector(geo, cfg.Server.DisplayTimezone)
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, store, logger)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		store:    store,
		geo:      geo,
		repos:    repos,
		monitor:  monitor.NewRequestMonitor(collector, store, logger, 0),
		services: srvs,
	}

	if cfg.Auth.SeedUsername != "" && cfg.Auth.SeedPassword != "" {
		if err := srvs.Auth.SeedUser(ctx, cfg.Auth.SeedUsername, cfg.Auth.SeedPassword); err != nil {
			logger.Errorw("Failed to seed user", "username", cfg.Auth.SeedUsername, "error", err)
		}
	}

	if cfg.OIDC.Enabled() {
		provider, err := authenticator.NewOpenIDProvider(ctx, cfg.OIDC)
		if err != nil {
			// password login keeps working
			logger.Errorw("Single sign-on disabled", "domain", cfg.OIDC.Domain, "error", err)
		} else {
			a.provider = provider
		}
	}

	return a, nil
}

// Close releases the store, the geolocation cache and the database
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warnw("Failed to close request store", "error", err)
	}
	a.geo.Close()
	if err := a.db.Close(); err != nil {
		a.logger.Warnw("Failed to close database", "error", err)
	}
}

// setupRouter configures all routes
func setupRouter(a *app) (*chi.Mux, error) {
	ctrl := controllers.NewControllers(a.services, a.monitor, a.repos.Audit, a.provider, a.cfg.Auth, a.logger)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(authmiddleware.SecurityHeaders)

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "tracker_session",
		Secure:         a.cfg.Server.UseHTTPS,
		Gclifetime:     3600,
		Maxlifetime:    sessionLifetime,
		CookieLifeTime: sessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "tracker"})
	})

	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/login/sso", ctrl.Auth.SSOLogin)
	r.Get("/callback", ctrl.Auth.Callback)

	// Visitor-facing pages are recorded in the request log
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.MonitorRequests(a.monitor))

		r.Get("/", ctrl.Auth.Landing)
		r.Post("/", ctrl.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireAuth)

			r.Get("/home", ctrl.Dashboard.Home)
			r.Get("/weight", ctrl.Tracking.Weight)
			r.Get("/weight/{month}", ctrl.Tracking.Weight)
			r.Get("/calories", ctrl.Tracking.Calories)
			r.Get("/calories/{month}", ctrl.Tracking.Calories)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.RequireAdmin(a.cfg.Auth))
		r.Use(authmiddleware.AuditLogger(a.repos.Audit, a.logger))

		r.Get("/requests", ctrl.Admin.Requests)
		r.Get("/requests.json", ctrl.Admin.RequestsJSON)
		r.Get("/status", ctrl.Admin.Status)
		r.Get("/weight", ctrl.Admin.AddData)
		r.Post("/weight", ctrl.Admin.CreateWeight)
		r.Post("/calories", ctrl.Admin.CreateCalories)
		r.Get("/users", ctrl.Admin.Users)
		r.Post("/users", ctrl.Admin.CreateUser)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	})

	return r, nil
}
