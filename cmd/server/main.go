package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
	"github.com/light-bringer/storefront-service/internal/services"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
	httptransport "github.com/light-bringer/storefront-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration (config/config.yaml + STOREFRONT_* env)
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env.Log.Level, cfg.Env.Log.Pretty)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("service", cfg.Env.ServiceName))

	log.Info("starting storefront service",
		zap.String("env", cfg.Env.Name),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("grpc_port", cfg.GRPC.Port),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "failed to initialize services")
	}
	defer serviceOpts.Close()

	// 3. Create servers
	grpcServer := storefront.NewServer(serviceOpts.GRPCHandler, log.Named("grpc"), cfg.GRPC.Reflection)
	lis, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.GRPC.Port)))
	if err != nil {
		return errors.Wrap(err, "failed to listen on gRPC port")
	}

	httpServer := httptransport.NewServer(httptransport.ServerOptions{
		Port:              cfg.HTTP.Port,
		BodyLimit:         cfg.HTTP.MaxRequestBodySize,
		ReadTimeout:       cfg.HTTP.Timeouts.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.Timeouts.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.Timeouts.WriteTimeout,
		IdleTimeout:       cfg.HTTP.Timeouts.IdleTimeout,
	}, serviceOpts.HTTPHandler, log.Named("http"))

	// 4. Serve until a signal arrives or a server fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		return errors.Wrap(grpcServer.Serve(lis), "gRPC server failed")
	})

	g.Go(httpServer.ListenAndServe)

	// 5. Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeouts.ShutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
