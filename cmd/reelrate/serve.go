package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Belphemur/ReelRate/internal/config"
	grpcserver "github.com/Belphemur/ReelRate/internal/grpc"
	"github.com/Belphemur/ReelRate/internal/metrics"
)

func newServeCommand(cfg *config.Config, deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the review API over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg, deps())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, a *app) error {
	logger := config.GetLogger()

	logger.Info().
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Str("language", cfg.TMDB.Language).
		Str("session_provider", cfg.Session.Provider).
		Str("cache_provider", cfg.Cache.Provider).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	grpcServer, healthServer := grpcserver.NewGRPCServer(a.service)

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", address, err)
	}

	logger.Info().Str("address", address).Msg("Starting gRPC server")

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received shutdown signal")
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus(grpcserver.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	logger.Info().Msg("Server stopped gracefully")
	return nil
}
