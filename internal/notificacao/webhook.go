package notificacao

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Webhook faz POST do evento em JSON para uma URL fixa.
type Webhook struct {
	client *resty.Client
	url    string
}

func NewWebhook(url string) *Webhook {
	client := resty.New().
		SetTimeout(3*time.Second).
		SetRetryCount(1).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Webhook{client: client, url: url}
}

func (w *Webhook) Notificar(ctx context.Context, ev Evento) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(ev).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("webhook %s: %w", w.url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook %s respondeu %d", w.url, resp.StatusCode())
	}
	return nil
}
