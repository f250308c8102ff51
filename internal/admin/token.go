package admin

import (
	"fmt"
	"io"
	"time"

	"github.com/KromaEnergia/api-empresas/internal/auth"
)

// EmitirToken escreve em w um JWT para subject, para uso nas rotas de escrita.
func EmitirToken(w io.Writer, a *auth.Autenticador, subject string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = auth.TTLPadrao
	}
	tok, err := a.GerarToken(subject, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tok)
	return err
}
