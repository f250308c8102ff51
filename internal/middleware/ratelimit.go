package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/utils"
)

// Limitador guarda um token bucket por cliente e descarta os ociosos.
type Limitador struct {
	mu       sync.Mutex
	entradas map[string]*entrada
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	agora    func() time.Time

	// ConfiarProxy liga a leitura do X-Forwarded-For. Só deve ficar ligado
	// atrás de um proxy que sobrescreve o cabeçalho.
	ConfiarProxy bool
}

type entrada struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NovoLimitador(rps float64, burst int) *Limitador {
	if burst <= 0 {
		burst = 1
	}
	return &Limitador{
		entradas: make(map[string]*entrada),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  15 * time.Minute,
		agora:    time.Now,
	}
}

func (l *Limitador) get(chave string) *rate.Limiter {
	now := l.agora()

	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entradas[chave]; ok {
		e.lastSeen = now
		return e.lim
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	l.entradas[chave] = &entrada{lim: lim, lastSeen: now}
	return lim
}

// Limpar remove os clientes sem requisição há mais de idleTTL.
func (l *Limitador) Limpar() {
	cutoff := l.agora().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.entradas {
		if e.lastSeen.Before(cutoff) {
			delete(l.entradas, k)
		}
	}
}

// Limpeza roda Limpar a cada minuto até ctx ser cancelado.
func (l *Limitador) Limpeza(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Limpar()
		}
	}
}

// Middleware responde 429 com Retry-After quando o cliente estoura o limite.
func (l *Limitador) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(ChaveCliente(r, l.ConfiarProxy)).Allow() {
			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
			utils.WriteError(w, r, apperror.New(apperror.CodeRateLimited,
				"Muitas requisições, tente novamente em instantes", http.StatusTooManyRequests))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// retryAfter é o tempo, em segundos, para o bucket ganhar um token.
func (l *Limitador) retryAfter() int {
	if l.rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(l.rps))))
}

// ChaveCliente usa o host do RemoteAddr. Com confiarProxy, o primeiro IP do
// X-Forwarded-For tem precedência.
func ChaveCliente(r *http.Request, confiarProxy bool) string {
	if confiarProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
