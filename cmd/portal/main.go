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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-learning-portal/internal/config"
	portalhttp "github.com/pribylovaa/go-learning-portal/internal/http"
	"github.com/pribylovaa/go-learning-portal/internal/seed"
	"github.com/pribylovaa/go-learning-portal/internal/service"
	"github.com/pribylovaa/go-learning-portal/internal/session"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
	"github.com/pribylovaa/go-learning-portal/internal/storage/minio"
	pmongo "github.com/pribylovaa/go-learning-portal/internal/storage/mongo"
	"github.com/pribylovaa/go-learning-portal/internal/storage/postgres"
	predis "github.com/pribylovaa/go-learning-portal/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting learning-portal", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	catalogStore, err := postgres.New(dbCtx, cfg.Postgres.URL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer catalogStore.Close()
	log.Info("postgres_connected")

	mgCtx, mgCancel := context.WithTimeout(rootCtx, 10*time.Second)
	reviewStore, err := pmongo.New(mgCtx, cfg.Mongo.URL)
	mgCancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = reviewStore.Close(context.Background()) }()
	log.Info("mongo_connected")

	recentStore, err := predis.New(cfg.Redis.URL, cfg.Recent.Max, cfg.Recent.TTL)
	if err != nil {
		log.Error("redis_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = recentStore.Close() }()
	log.Info("redis_connected")

	var media storage.MediaStorage
	if cfg.S3.Enabled() {
		s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
		m, err := minio.New(s3Ctx, cfg.S3)
		s3Cancel()
		if err != nil {
			log.Error("s3_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		media = m
		log.Info("s3_connected", slog.String("bucket", cfg.S3.Bucket))
	}

	// Стартовый каталог: файл — источник истины, загрузка идемпотентна.
	catalog, err := seed.Load(cfg.Catalog.SeedPath)
	if err != nil {
		log.Error("seed_load_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	seedCtx, seedCancel := context.WithTimeout(rootCtx, 30*time.Second)
	err = catalogStore.SaveMaterials(seedCtx, catalog.Materials)
	if err == nil {
		err = catalogStore.SaveAssessments(seedCtx, catalog.Assessments)
	}
	seedCancel()
	if err != nil {
		log.Error("seed_apply_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("catalog_seeded",
		slog.Int("materials", len(catalog.Materials)),
		slog.Int("assessments", len(catalog.Assessments)),
	)

	svc := service.New(catalogStore, reviewStore, recentStore, media, *cfg)
	log.Info("service_initialized")

	// Общая коллекция каталога для сессий; грузим до открытия трафика.
	viewStore := session.NewStore(svc)
	viewStore.Load(rootCtx)
	if msg := viewStore.Err(); msg != "" {
		log.Warn("catalog_preload_failed", slog.String("reason", msg))
	}

	sessions := session.NewManager(session.Options{
		Store:       viewStore,
		Reviews:     svc,
		Registry:    svc,
		Identity:    portalhttp.ContextIdentity{},
		Recent:      svc,
		LoadTimeout: cfg.Timeouts.Service,
	}, 12*time.Hour)

	apiHandler := portalhttp.NewRouter(svc, sessions, portalhttp.Options{
		Logger:     log,
		Timeout:    cfg.Timeouts.Service,
		SessionTTL: 12 * time.Hour,
		BasePath:   "",
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

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

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
	log.Info("portal_ready")

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
