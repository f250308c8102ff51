package utils

import (
	"net/http"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
)

const (
	SkipPadrao  = 0
	LimitPadrao = 10
	LimitMaximo = 100
)

type Paginacao struct {
	Skip  int
	Limit int
}

// NovaPaginacao rejeita skip negativo ou limit não positivo; limit acima do máximo é truncado.
func NovaPaginacao(skip, limit int) (Paginacao, error) {
	if skip < 0 || limit <= 0 {
		return Paginacao{}, apperror.New(apperror.CodeInvalidPagination,
			"Parâmetros 'skip' e 'limit' devem ser positivos", http.StatusBadRequest)
	}
	if limit > LimitMaximo {
		limit = LimitMaximo
	}
	return Paginacao{Skip: skip, Limit: limit}, nil
}
