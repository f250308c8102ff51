package obrigacao

import (
	"math"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/validacao"
)

const (
	maxNome = 100

	msgNome      = "Nome é obrigatório e deve ter no máximo 100 caracteres"
	msgEmpresaID = "empresa_id deve ser um inteiro positivo"
	msgNulo      = "Campo não pode ser nulo"
)

var msgPeriodicidade = "Periodicidade deve ser " + models.ListaPeriodicidades()

type CriarObrigacaoRequest struct {
	Nome          string `json:"nome"`
	Periodicidade string `json:"periodicidade"`
	EmpresaID     uint   `json:"empresa_id"`
}

func (r CriarObrigacaoRequest) Validar() (*models.ObrigacaoAcessoria, error) {
	var erros validacao.Erros
	o := &models.ObrigacaoAcessoria{EmpresaID: r.EmpresaID}
	var ok bool

	if o.Nome, ok = validacao.NormalizarNome(r.Nome, maxNome); !ok {
		erros.Add("nome", msgNome)
	}
	if o.Periodicidade, ok = validacao.ParsePeriodicidade(r.Periodicidade); !ok {
		erros.Add("periodicidade", msgPeriodicidade)
	}
	if r.EmpresaID == 0 {
		erros.Add("empresa_id", msgEmpresaID)
	}

	if err := erros.Err(); err != nil {
		return nil, err
	}
	// acima do bigint nenhuma empresa existe
	if uint64(r.EmpresaID) > math.MaxInt64 {
		return nil, apperror.NewConflict(apperror.CodeEmpresaNaoEncontrada, MsgEmpresaNaoEncontrada)
	}
	return o, nil
}

// AtualizarObrigacaoRequest só permite trocar nome e periodicidade;
// a empresa dona não muda.
type AtualizarObrigacaoRequest struct {
	Nome          validacao.Campo[string] `json:"nome"`
	Periodicidade validacao.Campo[string] `json:"periodicidade"`
}

func (r *AtualizarObrigacaoRequest) Validar() error {
	if !r.Nome.Presente && !r.Periodicidade.Presente {
		return validacao.ErrUpdateVazio()
	}

	var erros validacao.Erros
	if r.Nome.Presente {
		nome, ok := validacao.NormalizarNome(r.Nome.Valor, maxNome)
		switch {
		case r.Nome.Nulo:
			erros.Add("nome", msgNulo)
		case !ok:
			erros.Add("nome", msgNome)
		default:
			r.Nome.Valor = nome
		}
	}
	if r.Periodicidade.Presente {
		p, ok := validacao.ParsePeriodicidade(r.Periodicidade.Valor)
		switch {
		case r.Periodicidade.Nulo:
			erros.Add("periodicidade", msgNulo)
		case !ok:
			erros.Add("periodicidade", msgPeriodicidade)
		default:
			r.Periodicidade.Valor = string(p)
		}
	}
	return erros.Err()
}

func (r *AtualizarObrigacaoRequest) Aplicar(o *models.ObrigacaoAcessoria) {
	if r.Nome.Definido() {
		o.Nome = r.Nome.Valor
	}
	if r.Periodicidade.Definido() {
		o.Periodicidade = models.Periodicidade(r.Periodicidade.Valor)
	}
}
