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
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/config"
	panelhttp "github.com/pribylovaa/go-news-panel/internal/http"
	"github.com/pribylovaa/go-news-panel/internal/service"
	"github.com/pribylovaa/go-news-panel/internal/storage/minio"
	"github.com/pribylovaa/go-news-panel/internal/storage/mongo"
)

// Константы для определения окружения.
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
	log.Info("starting panel-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// os.Exit не выполняет defer: ресурсы закрываются через cl.run().
	var cl cleanups
	defer cl.run()

	fail := func(msg string, args ...any) {
		log.Error(msg, args...)
		cl.run()
		os.Exit(1)
	}

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := mongo.New(dbCtx, cfg)
	dbCancel()
	if err != nil {
		fail("mongo_connect_failed", slog.String("err", err.Error()))
	}

	cl.add(func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if cerr := store.Close(closeCtx); cerr != nil {
			log.Warn("mongo_close_failed", slog.String("err", cerr.Error()))
		}
	})

	log.Info("mongo_connected")

	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
	assets, err := minio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		fail("minio_connect_failed", slog.String("err", err.Error()))
	}
	log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))

	svc := service.New(store, assets, cfg)

	if cfg.Redis.URL != "" {
		redisCtx, redisCancel := context.WithTimeout(rootCtx, 5*time.Second)
		pc, err := cache.NewRedisCache(redisCtx, cfg.Redis.URL, cfg.Redis.Prefix, cfg.Redis.TTL)
		redisCancel()
		if err != nil {
			// Без кэша сервис работает, просто медленнее.
			log.Warn("redis_connect_failed", slog.String("err", err.Error()))
		} else {
			svc.SetPublicCache(pc)
			cl.add(func() { _ = pc.Close() })
			log.Info("redis_connected")
		}
	}

	log.Info("service_initialized")

	apiHandler := panelhttp.NewRouter(svc, panelhttp.Options{
		Logger:      log,
		Timeout:     cfg.Timeouts.Service,
		MaxUpload:   cfg.Assets.MaxSizeBytes,
		Metrics:     prometheus.DefaultRegisterer,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	var ready int32 // 0: not ready; 1: ready

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
		fail("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
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
	log.Info("panel_ready")

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

// cleanups: стек функций освобождения ресурсов.
// run вызывает их в обратном порядке добавления и срабатывает один раз.
type cleanups struct {
	fns  []func()
	once sync.Once
}

func (c *cleanups) add(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanups) run() {
	c.once.Do(func() {
		for i := len(c.fns) - 1; i >= 0; i-- {
			c.fns[i]()
		}
	})
}

// setupLogger настраивает slog по окружению.
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
