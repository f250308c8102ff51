package empresa

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

// POST /empresas/
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarEmpresaRequest
	if err := validacao.DecodeStrict(r.Body, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	resp, err := h.Service.Criar(r.Context(), req)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// GET /empresas/?skip=0&limit=10
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
	list, err := h.Service.Listar(r.Context(), skip, limit)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /empresas/{id}/
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	resp, err := h.Service.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// PUT /empresas/{id}/
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var req AtualizarEmpresaRequest
	if err := validacao.DecodeStrict(r.Body, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	resp, err := h.Service.Atualizar(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// DELETE /empresas/{id}/
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, MsgNaoEncontrada)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	resp, err := h.Service.Deletar(r.Context(), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
