package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruff27/banglaghar/internal/ai"
	"github.com/ruff27/banglaghar/internal/auth"
	"github.com/ruff27/banglaghar/internal/config"
	"github.com/ruff27/banglaghar/internal/geo"
	apphttp "github.com/ruff27/banglaghar/internal/http"
	"github.com/ruff27/banglaghar/internal/notify"
	"github.com/ruff27/banglaghar/internal/service"
	"github.com/ruff27/banglaghar/internal/storage/minio"
	"github.com/ruff27/banglaghar/internal/storage/mongo"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting banglaghar", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	initCtx, initCancel := context.WithTimeout(rootCtx, cfg.Mongo.ConnectTimeout)
	defer initCancel()

	db, err := mongo.New(initCtx, cfg.Mongo)
	if err != nil {
		log.Error("mongo_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()

		if cerr := db.Close(closeCtx); cerr != nil {
			log.Warn("mongo_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	files, err := minio.New(initCtx, cfg.S3, cfg.Uploads)
	if err != nil {
		log.Error("minio_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	notifier, err := notify.NewAblyNotifier(cfg.Ably.APIKey)
	if err != nil {
		log.Error("ably_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()

	keys := auth.NewKeyCache(cfg.Auth.JWKSURL(), cfg.Auth.JWKSTTL, clock)
	verifier := auth.NewVerifier(cfg.Auth.Issuer(), keys)

	// Прогрев JWKS не блокирует старт: первый запрос догрузит ключи.
	if err := keys.Refresh(initCtx); err != nil {
		log.Warn("jwks_warmup_failed", slog.String("err", err.Error()))
	}

	geoMetrics := geo.NewMetrics()
	resolver := geo.NewResolver(
		geo.NewOpenCageClient(cfg.Geocoding.Endpoint, cfg.Geocoding.APIKey, cfg.Geocoding.Timeout),
		geoMetrics,
	)

	describer := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)

	svc := service.New(service.Deps{
		Listings:      db,
		Profiles:      db,
		Chat:          db,
		Wishlists:     db,
		Files:         files,
		Resolver:      resolver,
		Notifier:      notifier,
		Describer:     describer,
		Clock:         clock,
		FeaturedLimit: int64(cfg.Featured.Limit),
	})

	apiHandler := apphttp.NewRouter(svc, verifier, apphttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "/api",
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/", apiHandler)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics_serve_failed", slog.String("err", err.Error()))
		}
	}()

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics_shutdown_incomplete", slog.String("err", err.Error()))
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
