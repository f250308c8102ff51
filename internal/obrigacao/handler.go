package obrigacao

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/notificacao"
	"github.com/KromaEnergia/api-empresas/internal/utils"
	"github.com/KromaEnergia/api-empresas/internal/validacao"
)

type Handler struct {
	Service Service
}

func NewHandler(db *gorm.DB, n notificacao.Notificador) *Handler {
	return &Handler{Service: NewService(db, NewRepository(), n)}
}

// POST /obrigacoes_acessorias/
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarObrigacaoRequest
	if err := validacao.DecodeStrict(r.Body, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	o, err := h.Service.Criar(r.Context(), req)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

// GET /obrigacoes_acessorias/?skip=0&limit=10&empresa_id=1
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	skip, err := utils.QueryInt(r, "skip", utils.SkipPadrao)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	limit, err := utils.QueryInt(r, "limit", utils.LimitPadrao)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	empresaID, err := utils.QueryInt(r, "empresa_id", 0)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if empresaID < 0 {
		utils.WriteError(w, r, validacao.ErroCampo("query", "empresa_id", msgEmpresaID))
		return
	}
	list, err := h.Service.Listar(r.Context(), uint(empresaID), skip, limit)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /obrigacoes_acessorias/{id}/
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	o, err := h.Service.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

// PUT /obrigacoes_acessorias/{id}/
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var req AtualizarObrigacaoRequest
	if err := validacao.DecodeStrict(r.Body, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	o, err := h.Service.Atualizar(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

// DELETE /obrigacoes_acessorias/{id}/
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	o, err := h.Service.Deletar(r.Context(), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}
