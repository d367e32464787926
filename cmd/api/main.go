package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmoralesb/panaderia-api/internal/catalog"
	"github.com/dmoralesb/panaderia-api/internal/config"
	"github.com/dmoralesb/panaderia-api/internal/httpx"
	kafkax "github.com/dmoralesb/panaderia-api/internal/kafka"
	"github.com/dmoralesb/panaderia-api/internal/orders"
	"github.com/dmoralesb/panaderia-api/internal/postgres"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := newLogger(cfg.IsDevelopment())
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Init(ctx, db); err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	// Optional order events
	var prod *kafkax.Producer
	if cfg.EventsEnabled() {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
		prod.Start(ctx)
		log.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// Services & handlers
	orderSvc := orders.NewService(&orders.Repo{DB: db})
	router := httpx.NewRouter(cfg, log)
	(&httpx.ProductsHandler{Catalog: &catalog.Repo{DB: db}, Log: log, Dev: cfg.IsDevelopment()}).Register(router)
	(&httpx.OrdersHandler{Orders: orderSvc, Producer: prod, Service: cfg.ServiceName, Log: log, Dev: cfg.IsDevelopment()}).Register(router)
	(&httpx.HealthHandler{Start: time.Now()}).Register(router)
	httpx.RegisterStatic(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	if prod != nil {
		prod.Close() // stop intake, flush remaining events
		prod.WaitClosed()
	}
}

func newLogger(dev bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if dev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}
