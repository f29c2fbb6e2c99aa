// Command basicd serves the BasicService gRPC API: a greeting RPC, a
// scripted conversation stream, and a background-run progress stream. An
// admin HTTP server on a second port exposes metrics, health probes, and
// SSE/WebSocket feeds of run events.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	healthsvc "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/cobaltline/basicd/internal/config"
	"github.com/cobaltline/basicd/internal/health"
	"github.com/cobaltline/basicd/internal/httpapi"
	"github.com/cobaltline/basicd/internal/interceptors"
	"github.com/cobaltline/basicd/internal/orchestrator"
	basicv1 "github.com/cobaltline/basicd/internal/pb/basicv1"
	"github.com/cobaltline/basicd/internal/server"
	"github.com/cobaltline/basicd/internal/streaming"
	"github.com/cobaltline/basicd/internal/tracing"
)

func main() {
	configPath := flag.String("config", os.Getenv("BASICD_CONFIG"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("service failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Initialize(cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	scripts, err := config.NewScriptWatcher(cfg.Eliza.ScriptFile, logger)
	if err != nil {
		return fmt.Errorf("load conversation script: %w", err)
	}
	if err := scripts.Start(); err != nil {
		return fmt.Errorf("watch conversation script: %w", err)
	}
	defer scripts.Stop()

	runner := orchestrator.NewSimRunner(orchestrator.SimConfig{
		MinLatency:  cfg.Orchestrator.MinLatency,
		MaxLatency:  cfg.Orchestrator.MaxLatency,
		FailureRate: cfg.Orchestrator.FailureRate,
	})
	orch, err := orchestrator.New(runner, cfg.Orchestrator.MaxWorkers, logger)
	if err != nil {
		return fmt.Errorf("init orchestrator: %w", err)
	}

	bus := streaming.NewManager(cfg.Streaming.RingCapacity)
	svc := server.New(scripts.Current, orch, bus, cfg.Eliza.HistoryLimit, logger)

	// gRPC server
	var opts []grpc.ServerOption
	if cfg.GRPC.TLS.Enabled {
		creds, err := credentials.NewServerTLSFromFile(cfg.GRPC.TLS.CertFile, cfg.GRPC.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("load TLS credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecovery(logger),
			interceptors.UnaryLogging(logger),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecovery(logger),
			interceptors.StreamLogging(logger),
			interceptors.StreamThrottle(cfg.GRPC.StreamMsgsPerSecond, cfg.GRPC.StreamBurst),
		),
	)
	grpcServer := grpc.NewServer(opts...)
	basicv1.RegisterBasicServiceServer(grpcServer, svc)

	hs := healthsvc.NewServer()
	hs.SetServingStatus("basic.v1.BasicService", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("listen on grpc port: %w", err)
	}

	var grpcServing atomic.Bool
	grpcErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening",
			zap.String("address", lis.Addr().String()),
			zap.Bool("tls", cfg.GRPC.TLS.Enabled),
		)
		grpcServing.Store(true)
		grpcErr <- grpcServer.Serve(lis)
	}()

	// Admin HTTP server: metrics, probes, run-event feeds.
	checks := health.NewManager(30*time.Second, logger)
	checks.Register(health.NewFlagChecker("grpc", true, grpcServing.Load))
	checks.Register(health.NewGoroutineChecker(0))
	checks.Start(ctx)
	defer checks.Stop()

	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	health.NewHTTPHandler(checks, logger).RegisterRoutes(adminMux)
	httpapi.NewStreamingHandler(bus, logger).RegisterRoutes(adminMux)

	adminServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Admin.Port),
		Handler:           adminMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	adminErr := make(chan error, 1)
	go func() {
		logger.Info("admin HTTP server listening", zap.String("address", adminServer.Addr))
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			adminErr <- err
			return
		}
		adminErr <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-grpcErr:
		return fmt.Errorf("grpc server: %w", err)
	case err := <-adminErr:
		return fmt.Errorf("admin server: %w", err)
	}

	hs.SetServingStatus("basic.v1.BasicService", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := adminServer.Shutdown(sctx); err != nil {
		logger.Warn("admin server shutdown", zap.Error(err))
	}
	logger.Info("shutdown complete")
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
