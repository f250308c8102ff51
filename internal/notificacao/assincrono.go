package notificacao

import (
	"context"
	"sync"
	"time"

	"github.com/KromaEnergia/api-empresas/internal/logger"
)

// TimeoutEntrega limita cada entrega feita pelo Assincrono.
const TimeoutEntrega = 10 * time.Second

// Assincrono entrega os eventos fora da goroutine da requisição, com um
// contexto que não é cancelado quando a resposta termina.
type Assincrono struct {
	n       Notificador
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAssincrono(n Notificador, timeout time.Duration) *Assincrono {
	if timeout <= 0 {
		timeout = TimeoutEntrega
	}
	return &Assincrono{n: n, timeout: timeout}
}

// Notificar sempre devolve nil; falhas de entrega vão para o log.
func (a *Assincrono) Notificar(ctx context.Context, ev Evento) error {
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		if err := a.n.Notificar(ctx, ev); err != nil {
			logger.FromContext(ctx).Warnw("notificacao_falhou",
				"entidade", ev.Entidade,
				"acao", ev.Acao,
				"id", ev.ID,
				"err", err,
			)
		}
	}()
	return nil
}

// Esperar bloqueia até as entregas em andamento terminarem.
func (a *Assincrono) Esperar() { a.wg.Wait() }
