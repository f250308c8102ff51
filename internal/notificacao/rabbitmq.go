package notificacao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type canal interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// PublisherAMQP publica cada evento como JSON numa fila durável.
// Se a conexão cair (restart do broker), a próxima publicação reconecta.
type PublisherAMQP struct {
	mu      sync.Mutex
	uri     string
	conn    *amqp.Connection
	ch      canal
	queue   string
	reabrir bool
}

func NewPublisherAMQP(uri, queue string) (*PublisherAMQP, error) {
	conn, ch, err := abrir(uri, queue)
	if err != nil {
		return nil, err
	}
	return &PublisherAMQP{uri: uri, conn: conn, ch: ch, queue: queue}, nil
}

func abrir(uri, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

// garantirConexao refaz conexão e canal quando caíram. Chamado com mu travado.
func (p *PublisherAMQP) garantirConexao() error {
	if p.uri == "" {
		return nil
	}
	if !p.reabrir && p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	conn, ch, err := abrir(p.uri, p.queue)
	if err != nil {
		return fmt.Errorf("reconectar rabbitmq: %w", err)
	}
	p.conn, p.ch, p.reabrir = conn, ch, false
	return nil
}

func (p *PublisherAMQP) Notificar(ctx context.Context, ev Evento) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.garantirConexao(); err != nil {
		return err
	}
	err = p.ch.PublishWithContext(
		ctx,
		"",      // default exchange
		p.queue, // routing key = nome da fila
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    ev.Timestamp,
			Body:         body,
			Headers: amqp.Table{
				"entidade": ev.Entidade,
				"acao":     string(ev.Acao),
			},
		},
	)
	if errors.Is(err, amqp.ErrClosed) {
		p.reabrir = true
	}
	return err
}

func (p *PublisherAMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errCh, errConn error
	if p.ch != nil {
		errCh = p.ch.Close()
	}
	if p.conn != nil {
		errConn = p.conn.Close()
	}
	return errors.Join(errCh, errConn)
}
