// Package notificacao avisa sistemas externos quando empresas e obrigações mudam.
// Falha de notificação nunca desfaz a operação: só é registrada no log.
package notificacao

import (
	"context"
	"errors"
	"time"

	"github.com/KromaEnergia/api-empresas/internal/logger"
)

type Acao string

const (
	AcaoCriada     Acao = "criada"
	AcaoAtualizada Acao = "atualizada"
	AcaoRemovida   Acao = "removida"
)

const (
	EntidadeEmpresa   = "empresa"
	EntidadeObrigacao = "obrigacao_acessoria"
)

type Evento struct {
	Acao      Acao      `json:"acao"`
	Entidade  string    `json:"entidade"`
	ID        uint      `json:"id"`
	EmpresaID uint      `json:"empresa_id,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Nome      string    `json:"nome"`
	Timestamp time.Time `json:"timestamp"`
}

type Notificador interface {
	Notificar(ctx context.Context, ev Evento) error
}

// Nop é o notificador padrão quando nada está configurado.
type Nop struct{}

func (Nop) Notificar(context.Context, Evento) error { return nil }

// Multi entrega o evento para todos e junta os erros.
type Multi []Notificador

func (m Multi) Notificar(ctx context.Context, ev Evento) error {
	var errs []error
	for _, n := range m {
		if err := n.Notificar(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Disparar preenche o timestamp, envia e só loga em caso de erro.
func Disparar(ctx context.Context, n Notificador, ev Evento) {
	if n == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if err := n.Notificar(ctx, ev); err != nil {
		logger.FromContext(ctx).Warnw("notificacao_falhou",
			"entidade", ev.Entidade,
			"acao", ev.Acao,
			"id", ev.ID,
			"err", err,
		)
	}
}

// Montar escolhe os notificadores pelo que estiver configurado e os entrega
// em segundo plano. fechar espera as entregas pendentes e libera a conexão
// com o RabbitMQ, quando houver.
func Montar(rabbitURI, queue, webhookURL string) (n Notificador, fechar func() error, err error) {
	var multi Multi
	fecharPub := func() error { return nil }

	if rabbitURI != "" {
		pub, err := NewPublisherAMQP(rabbitURI, queue)
		if err != nil {
			return nil, fecharPub, err
		}
		multi = append(multi, pub)
		fecharPub = pub.Close
	}
	if webhookURL != "" {
		multi = append(multi, NewWebhook(webhookURL))
	}

	var alvo Notificador
	switch len(multi) {
	case 0:
		return Nop{}, fecharPub, nil
	case 1:
		alvo = multi[0]
	default:
		alvo = multi
	}

	async := NewAssincrono(alvo, TimeoutEntrega)
	fechar = func() error {
		async.Esperar()
		return fecharPub()
	}
	return async, fechar, nil
}
