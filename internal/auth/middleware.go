package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/utils"
)

type ctxKey string

const CtxSubject ctxKey = "subject"

// Middleware exige Bearer token nas rotas de escrita; GET, HEAD e OPTIONS passam direto.
func (a *Autenticador) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.WriteError(w, r, apperror.NewUnauthorized("Token ausente"))
			return
		}
		claims, err := a.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			logger.FromContext(r.Context()).Infow("token_rejeitado", "err", err)
			utils.WriteError(w, r, apperror.NewUnauthorized("Token inválido"))
			return
		}

		ctx := context.WithValue(r.Context(), CtxSubject, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(CtxSubject).(string)
	return s
}
