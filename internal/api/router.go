// Package api monta o roteador HTTP e a cadeia de middlewares.
package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/auth"
	"github.com/KromaEnergia/api-empresas/internal/empresa"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/middleware"
	"github.com/KromaEnergia/api-empresas/internal/notificacao"
	"github.com/KromaEnergia/api-empresas/internal/obrigacao"
	"github.com/KromaEnergia/api-empresas/internal/utils"
	"github.com/KromaEnergia/api-empresas/internal/utils/db"
)

const Banner = "API de Empresas e Obrigações Acessórias"

type Deps struct {
	DB          *gorm.DB
	Log         *logger.Logger
	Notificador notificacao.Notificador
	// Opcionais: nil desliga.
	Auth      *auth.Autenticador
	Limitador *middleware.Limitador

	CORSOrigins []string
}

// NewRouter registra as rotas e devolve o handler já com os middlewares.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Nop()
	}

	empresaHandler := empresa.NewHandler(d.DB, d.Notificador)
	obrigacaoHandler := obrigacao.NewHandler(d.DB, d.Notificador)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(naoEncontrado)
	r.MethodNotAllowedHandler = http.HandlerFunc(metodoNaoPermitido)

	r.HandleFunc("/", banner).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz(d.DB)).Methods(http.MethodGet)

	// Rotas de empresas
	rota(r, http.MethodPost, "/empresas/", empresaHandler.Criar)
	rota(r, http.MethodGet, "/empresas/", empresaHandler.Listar)
	rota(r, http.MethodGet, "/empresas/{id}/", empresaHandler.BuscarPorID)
	rota(r, http.MethodPut, "/empresas/{id}/", empresaHandler.Atualizar)
	rota(r, http.MethodDelete, "/empresas/{id}/", empresaHandler.Deletar)

	// Rotas de obrigações acessórias
	rota(r, http.MethodPost, "/obrigacoes_acessorias/", obrigacaoHandler.Criar)
	rota(r, http.MethodGet, "/obrigacoes_acessorias/", obrigacaoHandler.Listar)
	rota(r, http.MethodGet, "/obrigacoes_acessorias/{id}/", obrigacaoHandler.BuscarPorID)
	rota(r, http.MethodPut, "/obrigacoes_acessorias/{id}/", obrigacaoHandler.Atualizar)
	rota(r, http.MethodDelete, "/obrigacoes_acessorias/{id}/", obrigacaoHandler.Deletar)

	// de dentro pra fora: auth -> rate limit -> cors -> recovery -> log -> request id
	var h http.Handler = r
	if d.Auth != nil {
		h = d.Auth.Middleware(h)
	}
	if d.Limitador != nil {
		h = d.Limitador.Middleware(h)
	}
	h = corsHandler(d.CORSOrigins).Handler(h)
	h = middleware.Recovery(h)
	h = middleware.Log(h)
	h = middleware.RequestID(d.Log)(h)
	return h
}

// rota registra o caminho com e sem a barra final.
func rota(r *mux.Router, metodo, path string, h http.HandlerFunc) {
	r.HandleFunc(path, h).Methods(metodo)
	if sem := strings.TrimSuffix(path, "/"); sem != path && sem != "" {
		r.HandleFunc(sem, h).Methods(metodo)
	}
}

func corsHandler(origens []string) *cors.Cors {
	if len(origens) == 0 {
		origens = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origens,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID, "Retry-After"},
	})
}

// GET /
func banner(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": Banner})
}

// GET /healthz
func healthz(database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context(), database); err != nil {
			logger.FromContext(r.Context()).Warnw("healthz_db_falhou", "err", err)
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "indisponivel"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func naoEncontrado(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
}

func metodoNaoPermitido(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
}
