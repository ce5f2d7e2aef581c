package infra

import (
	"context"
	"net/http"

	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/market-chat/internal/config"
)

func MetricsHTTP(next http.Handler, metrics pkg.MetricInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
