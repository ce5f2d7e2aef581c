package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/market-chat/internal/config"
	api "github.com/s21platform/market-chat/internal/generated"
	"github.com/s21platform/market-chat/internal/infra"
	"github.com/s21platform/market-chat/internal/pkg/jwt"
	"github.com/s21platform/market-chat/internal/pkg/tx"
	"github.com/s21platform/market-chat/internal/pkg/validator"
	db "github.com/s21platform/market-chat/internal/repository/postgres"
	"github.com/s21platform/market-chat/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	newLogger := func() logger_lib.LoggerInterface {
		return logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)
	}
	logger := newLogger()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
		return
	}
	defer metrics.Disconnect()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(newLogger),
		),
	)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	handler := rest.New(dbRepo, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, newLogger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	logger.Info(fmt.Sprintf("%s listening on :%s", cfg.Service.Name, cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
