package obrigacao

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/testutil"
)

/*
go test -run 'TestHandler_' -v ./internal/obrigacao -count=1
*/

func comID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandler_Criar_OK(t *testing.T) {
	sm := &serviceMock{
		CriarFn: func(_ context.Context, req CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
			assert.Equal(t, uint(1), req.EmpresaID)
			return &models.ObrigacaoAcessoria{ID: 3, Nome: req.Nome, Periodicidade: models.PeriodicidadeMensal, EmpresaID: req.EmpresaID}, nil
		},
	}
	h := &Handler{Service: sm}

	body := `{"nome":"Declaração Mensal","periodicidade":"MENSAL","empresa_id":1}`
	rr := httptest.NewRecorder()
	h.Criar(rr, httptest.NewRequest(http.MethodPost, "/obrigacoes_acessorias/", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.EqualValues(t, 3, got["id"])
	assert.Equal(t, "MENSAL", got["periodicidade"])
	assert.NotContains(t, got, "Empresa")
}

func TestHandler_Criar_EmpresaIDComTipoErrado(t *testing.T) {
	h := &Handler{Service: &serviceMock{}}

	body := `{"nome":"DCTF","periodicidade":"MENSAL","empresa_id":"um"}`
	rr := httptest.NewRecorder()
	h.Criar(rr, httptest.NewRequest(http.MethodPost, "/obrigacoes_acessorias/", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), `"loc":["body","empresa_id"]`)
}

func TestHandler_Criar_EmpresaNaoEncontrada(t *testing.T) {
	sm := &serviceMock{
		CriarFn: func(context.Context, CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
			return nil, apperror.NewConflict(apperror.CodeEmpresaNaoEncontrada, MsgEmpresaNaoEncontrada)
		},
	}
	h := &Handler{Service: sm}

	body := `{"nome":"DCTF","periodicidade":"MENSAL","empresa_id":99}`
	rr := httptest.NewRecorder()
	h.Criar(rr, httptest.NewRequest(http.MethodPost, "/obrigacoes_acessorias/", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Empresa associada não encontrada"}`, rr.Body.String())
}

func TestHandler_Criar_EmpresaIDForaDoBigint(t *testing.T) {
	db, _ := testutil.NovoDBMock(t)
	h := &Handler{Service: NewService(db, NewRepository(), nil)}

	body := `{"nome":"DCTF","periodicidade":"MENSAL","empresa_id":18446744073709551615}`
	rr := httptest.NewRecorder()
	h.Criar(rr, httptest.NewRequest(http.MethodPost, "/obrigacoes_acessorias/", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Empresa associada não encontrada"}`, rr.Body.String())
}

func TestHandler_IDForaDoBigint(t *testing.T) {
	h := &Handler{Service: &serviceMock{}}
	const enorme = "9223372036854775808"

	for _, c := range []struct {
		metodo string
		fn     http.HandlerFunc
	}{
		{http.MethodGet, h.BuscarPorID},
		{http.MethodPut, h.Atualizar},
		{http.MethodDelete, h.Deletar},
	} {
		req := httptest.NewRequest(c.metodo, "/obrigacoes_acessorias/"+enorme+"/", bytes.NewBufferString(`{"nome":"X"}`))
		rr := httptest.NewRecorder()
		c.fn(rr, comID(req, enorme))

		assert.Equal(t, http.StatusNotFound, rr.Code, c.metodo)
		assert.JSONEq(t, `{"detail":"Obrigação acessória não encontrada"}`, rr.Body.String(), c.metodo)
	}
}

func TestHandler_Listar_FiltroEmpresa(t *testing.T) {
	sm := &serviceMock{
		ListarFn: func(_ context.Context, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error) {
			assert.Equal(t, uint(2), empresaID)
			assert.Equal(t, 0, skip)
			assert.Equal(t, 10, limit)
			return []models.ObrigacaoAcessoria{{ID: 1, Nome: "DCTF", Periodicidade: models.PeriodicidadeMensal, EmpresaID: 2}}, nil
		},
	}
	h := &Handler{Service: sm}

	rr := httptest.NewRecorder()
	h.Listar(rr, httptest.NewRequest(http.MethodGet, "/obrigacoes_acessorias/?empresa_id=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.ObrigacaoAcessoria
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestHandler_Listar_EmpresaIDNegativo(t *testing.T) {
	h := &Handler{Service: &serviceMock{}}

	rr := httptest.NewRecorder()
	h.Listar(rr, httptest.NewRequest(http.MethodGet, "/obrigacoes_acessorias/?empresa_id=-2", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandler_BuscarPorID_NaoEncontrada(t *testing.T) {
	sm := &serviceMock{
		BuscarPorIDFn: func(context.Context, uint) (*models.ObrigacaoAcessoria, error) {
			return nil, apperror.NewNotFound(MsgNaoEncontrada)
		},
	}
	h := &Handler{Service: sm}

	rr := httptest.NewRecorder()
	h.BuscarPorID(rr, comID(httptest.NewRequest(http.MethodGet, "/obrigacoes_acessorias/7/", nil), "7"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Obrigação acessória não encontrada"}`, rr.Body.String())
}

func TestHandler_Atualizar_CampoNaoPermitido(t *testing.T) {
	h := &Handler{Service: &serviceMock{}}

	req := httptest.NewRequest(http.MethodPut, "/obrigacoes_acessorias/1/", bytes.NewBufferString(`{"empresa_id":2}`))
	rr := httptest.NewRecorder()
	h.Atualizar(rr, comID(req, "1"))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), `"loc":["body","empresa_id"]`)
}

func TestHandler_Atualizar_OK(t *testing.T) {
	sm := &serviceMock{
		AtualizarFn: func(_ context.Context, id uint, req AtualizarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
			assert.Equal(t, uint(1), id)
			assert.Equal(t, "ANUAL", req.Periodicidade.Valor)
			return &models.ObrigacaoAcessoria{ID: 1, Nome: "DCTF", Periodicidade: models.PeriodicidadeAnual, EmpresaID: 1}, nil
		},
	}
	h := &Handler{Service: sm}

	req := httptest.NewRequest(http.MethodPut, "/obrigacoes_acessorias/1/", bytes.NewBufferString(`{"periodicidade":"ANUAL"}`))
	rr := httptest.NewRecorder()
	h.Atualizar(rr, comID(req, "1"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_Deletar(t *testing.T) {
	sm := &serviceMock{
		DeletarFn: func(_ context.Context, id uint) (*models.ObrigacaoAcessoria, error) {
			return &models.ObrigacaoAcessoria{ID: id, Nome: "DCTF", Periodicidade: models.PeriodicidadeMensal, EmpresaID: 1}, nil
		},
	}
	h := &Handler{Service: sm}

	rr := httptest.NewRecorder()
	h.Deletar(rr, comID(httptest.NewRequest(http.MethodDelete, "/obrigacoes_acessorias/4/", nil), "4"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":4`)
}
