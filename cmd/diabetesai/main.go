// @title DiabetesAI API
// @version 1.0
// @description Diabetes risk prediction, risk factor profile and BMI calculator.
// @BasePath /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "diabetesai/docs"
	"diabetesai/internal/adapter/disk"
	"diabetesai/internal/adapter/grpchealth"
	adapthttp "diabetesai/internal/adapter/http"
	"diabetesai/internal/adapter/redisstore"
	"diabetesai/internal/adapter/sqlstore"
	"diabetesai/internal/app"
	"diabetesai/internal/config"
	"diabetesai/internal/domain"
	"diabetesai/internal/model"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("artifact source=%s model=%s scaler=%s", cfg.ArtifactSource, cfg.ModelArtifact, cfg.ScalerArtifact)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("artifact store: %v", err)
	}
	defer func() { _ = closeStore() }()

	loader := model.NewLoader(store,
		model.WithArtifactNames(cfg.ModelArtifact, cfg.ScalerArtifact),
		model.WithONNXRuntime(cfg.ONNXRuntimeLib),
	)
	predictSvc := app.NewPredictionService(loader, cfg.PredictDelay)
	defer func() { _ = predictSvc.Close() }()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	switch err := predictSvc.Load(loadCtx); {
	case err == nil:
		log.Printf("models loaded")
	case errors.Is(err, domain.ErrArtifactsMissing):
		log.Printf("prediction disabled: %v", err)
	default:
		log.Printf("model load failed, will retry on demand: %v", err)
	}
	cancelLoad()

	chartsSvc := app.NewChartsService(domain.PerformanceMetrics)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           adapthttp.New(predictSvc, chartsSvc).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30*time.Second + cfg.PredictDelay,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	var health *grpchealth.Server
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatalf("grpc listen on %s: %v", cfg.GRPCAddr, err)
		}
		health = grpchealth.New(predictSvc)
		go health.Run(ctx, 15*time.Second)
		go func() {
			log.Printf("grpc health listening on %s", cfg.GRPCAddr)
			if err := health.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		log.Printf("server error: %v", err)
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if health != nil {
		health.Shutdown()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	log.Printf("stopped")
}

// openStore returns the artifact store selected by cfg and a func releasing it.
func openStore(cfg *config.Config) (domain.ArtifactStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.ArtifactSource {
	case config.SourcePostgres:
		db, err := sqlstore.Open(sqlstore.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		return db, db.Close, nil

	case config.SourceSQLite:
		db, err := sqlstore.Open(sqlstore.DriverSQLite, cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite: %w", err)
		}
		return db, db.Close, nil

	case config.SourceRedis:
		rs := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.CheckConnection(ctx); err != nil {
			_ = rs.Close()
			return nil, noop, fmt.Errorf("redis: %w", err)
		}
		return rs, rs.Close, nil

	default:
		return disk.New(cfg.ArtifactDir), noop, nil
	}
}
