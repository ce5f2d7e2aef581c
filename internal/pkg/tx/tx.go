package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxMiddlewareHTTP makes the repository available to TxExecute for the
// lifetime of a request.
func TxMiddlewareHTTP(dbRepo DBRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: dbRepo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside one database transaction.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("failed to get tx from context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}
