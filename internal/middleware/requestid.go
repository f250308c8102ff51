// Package middleware reúne os middlewares net/http do serviço.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/KromaEnergia/api-empresas/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// RequestID reaproveita o X-Request-ID do cliente ou gera um novo, e
// coloca no context um logger já marcado com ele.
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			ctx = logger.WithLogger(ctx, log.With("request_id", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
