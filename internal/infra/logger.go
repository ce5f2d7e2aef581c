package infra

import (
	"context"
	"net/http"

	"google.golang.org/grpc"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/market-chat/internal/config"
)

// NewLogger builds a logger for a single request. Loggers keep the call path
// set by AddFuncName, so requests never share one.
type NewLogger func() logger_lib.LoggerInterface

func LoggerHTTP(next http.Handler, newLogger NewLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, newLogger())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerGRPC(newLogger NewLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(context.WithValue(ctx, config.KeyLogger, newLogger()), req)
	}
}
