package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/validacao"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduz qualquer erro para o corpo {"detail": ...}.
// Erros que não são AppError viram 500 e a causa fica só no log.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		appErr = apperror.NewInternal(err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("erro_interno",
			"code", appErr.Code,
			"err", appErr.Err,
			"method", r.Method,
			"path", r.URL.Path,
		)
	}
	WriteJSON(w, appErr.HTTPStatus, appErr.Body())
}

// ParseID lê o {id} da rota. Valor não inteiro é 422; inteiro acima do
// bigint do banco não existe, então vira 404 com a mensagem naoEncontrado.
func ParseID(r *http.Request, naoEncontrado string) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		return 0, apperror.NewNotFound(naoEncontrado)
	}
	if err != nil {
		return 0, validacao.ErroCampo("path", "id", "valor deve ser um inteiro válido")
	}
	return uint(id), nil
}

// QueryInt lê um parâmetro inteiro da query string; ausente devolve def.
func QueryInt(r *http.Request, nome string, def int) (int, error) {
	raw := r.URL.Query().Get(nome)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validacao.ErroCampo("query", nome, "valor deve ser um inteiro válido")
	}
	return n, nil
}
