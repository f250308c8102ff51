package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/utils"
)

// Recovery transforma panic em 500 sem expor detalhes ao cliente.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Errorw("panic_recovered",
					"error", rec,
					"stack", string(debug.Stack()),
				)
				utils.WriteError(w, r, apperror.NewInternal(fmt.Errorf("panic: %v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
