package validacao

/*

go test -v ./internal/validacao -count=1

*/

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/models"
)

func TestNormalizarCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"11222333000144", "11222333000144", true},
		{"11.222.333/0001-44", "11222333000144", true},
		{"1234567890", "1234567890", false},
		{"112223330001445", "112223330001445", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizarCNPJ(tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
		assert.Equal(t, tc.ok, ok, "in=%q", tc.in)
	}
}

func TestNormalizarTelefone(t *testing.T) {
	tel, ok := NormalizarTelefone("(81) 99777-6655")
	assert.True(t, ok)
	assert.Equal(t, "81997776655", tel)

	_, ok = NormalizarTelefone("8199777665")
	assert.False(t, ok)
	_, ok = NormalizarTelefone("+55 81 99777-6655")
	assert.False(t, ok, "13 dígitos não é aceito")
}

func TestNormalizarEmail(t *testing.T) {
	email, ok := NormalizarEmail("  Contato@StarkIndustries.com ")
	assert.True(t, ok)
	assert.Equal(t, "contato@starkindustries.com", email)

	_, ok = NormalizarEmail("sem-arroba")
	assert.False(t, ok)
	_, ok = NormalizarEmail("")
	assert.False(t, ok)
}

func TestParsePeriodicidade(t *testing.T) {
	for in, want := range map[string]models.Periodicidade{
		"MENSAL":     models.PeriodicidadeMensal,
		"mensal":     models.PeriodicidadeMensal,
		"Trimestral": models.PeriodicidadeTrimestral,
		" anual ":    models.PeriodicidadeAnual,
	} {
		got, ok := ParsePeriodicidade(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := ParsePeriodicidade("SEMANAL")
	assert.False(t, ok)
}

func TestNormalizarNome(t *testing.T) {
	n, ok := NormalizarNome("  Stark Industries ", 100)
	assert.True(t, ok)
	assert.Equal(t, "Stark Industries", n)

	_, ok = NormalizarNome("   ", 100)
	assert.False(t, ok)
	_, ok = NormalizarNome(strings.Repeat("a", 101), 100)
	assert.False(t, ok)
}

type updateDTO struct {
	Nome     Campo[string] `json:"nome"`
	Endereco Campo[string] `json:"endereco"`
	Idade    Campo[int]    `json:"idade"`
}

func TestCampo_DistingueAusenteNuloEValor(t *testing.T) {
	var dto updateDTO
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"X","endereco":null}`), &dto))

	assert.True(t, dto.Nome.Definido())
	assert.Equal(t, "X", dto.Nome.Valor)

	assert.True(t, dto.Endereco.Presente)
	assert.True(t, dto.Endereco.Nulo)
	assert.False(t, dto.Endereco.Definido())

	assert.False(t, dto.Idade.Presente)
}

func TestCampo_TipoErrado(t *testing.T) {
	var dto updateDTO
	assert.Error(t, json.Unmarshal([]byte(`{"idade":"dez"}`), &dto))
}

func TestErros(t *testing.T) {
	var e Erros
	assert.NoError(t, e.Err())

	e.Add("cnpj", "CNPJ deve ter exatamente 14 dígitos numéricos")
	e.Add("telefone", "Telefone deve ter exatamente 11 dígitos numéricos")

	appErr, ok := apperror.AsAppError(e.Err())
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPStatus)
	require.Len(t, appErr.Fields, 2)
	assert.Equal(t, []string{"body", "cnpj"}, appErr.Fields[0].Loc)
}

func TestDecodeStrict(t *testing.T) {
	type payload struct {
		Nome      string `json:"nome"`
		EmpresaID uint   `json:"empresa_id"`
	}

	var p payload
	require.NoError(t, DecodeStrict(strings.NewReader(`{"nome":"DCTF","empresa_id":1}`), &p))
	assert.Equal(t, uint(1), p.EmpresaID)

	cases := []struct {
		body string
		loc  []string
	}{
		{`{`, []string{"body"}},
		{``, []string{"body"}},
		{`{"foo":1}`, []string{"body", "foo"}},
		{`{"empresa_id":"um"}`, []string{"body", "empresa_id"}},
		{`{"nome":"a"} {"nome":"b"}`, []string{"body"}},
	}
	for _, tc := range cases {
		var p payload
		err := DecodeStrict(strings.NewReader(tc.body), &p)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok, "body=%q err=%v", tc.body, err)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, tc.loc, appErr.Fields[0].Loc, "body=%q", tc.body)
	}
}
