package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/munimapp/munim/internal/auth"
	"github.com/munimapp/munim/internal/config"
	"github.com/munimapp/munim/internal/events"
	"github.com/munimapp/munim/internal/middleware"
	"github.com/munimapp/munim/internal/service"
	"github.com/munimapp/munim/internal/storage/sqlite"
	"github.com/munimapp/munim/pkg/logging"
	"github.com/munimapp/munim/pkg/rpc/rpcconnect"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers)
		slog.Info("Audit events enabled", "brokers", strings.Join(cfg.KafkaBrokers, ","))
	}
	defer publisher.Close()

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	logger := slog.Default()
	authService := service.NewAuthService(authenticator, jwtManager, logger)
	masterService := service.NewMasterService(store, logger)
	entryService := service.NewEntryService(store, publisher, logger)
	reportService := service.NewReportService(store, logger)

	// Auth endpoints stay open; everything else requires a session. A
	// valid token on an open call still attributes the log line.
	openOpts := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)
	protectedOpts := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
		middleware.RequireAuth(jwtManager),
	)

	r := chi.NewRouter()

	authPath, authHandler := rpcconnect.NewAuthServiceHandler(authService, openOpts)
	r.Mount(strings.TrimSuffix(authPath, "/"), authHandler)

	masterPath, masterHandler := rpcconnect.NewMasterServiceHandler(masterService, protectedOpts)
	r.Mount(strings.TrimSuffix(masterPath, "/"), masterHandler)

	entryPath, entryHandler := rpcconnect.NewEntryServiceHandler(entryService, protectedOpts)
	r.Mount(strings.TrimSuffix(entryPath, "/"), entryHandler)

	reportPath, reportHandler := rpcconnect.NewReportServiceHandler(reportService, protectedOpts)
	r.Mount(strings.TrimSuffix(reportPath, "/"), reportHandler)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	staticDir, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	r.NotFound(spaHandler(staticDir))
	slog.Info("Serving static files", "path", staticDir)

	handler := corsMiddleware(r)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// spaHandler serves the frontend build, falling back to index.html for
// client-side routes.
func spaHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
