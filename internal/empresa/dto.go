package empresa

import (
	"strings"

	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/validacao"
)

const (
	maxNome     = 100
	maxEndereco = 200

	msgNome     = "Nome é obrigatório e deve ter no máximo 100 caracteres"
	msgCNPJ     = "CNPJ deve ter 14 dígitos numéricos"
	msgEmail    = "E-mail inválido"
	msgTelefone = "Telefone deve ter exatamente 11 dígitos numéricos"
	msgEndereco = "Endereço deve ter no máximo 200 caracteres"
	msgNulo     = "Campo não pode ser nulo"
)

type CriarEmpresaRequest struct {
	Nome     string  `json:"nome"`
	CNPJ     string  `json:"cnpj"`
	Endereco *string `json:"endereco"`
	Email    string  `json:"email"`
	Telefone string  `json:"telefone"`
}

// Validar normaliza o payload e devolve a empresa pronta para gravar.
// Todos os campos inválidos são reportados juntos.
func (r CriarEmpresaRequest) Validar() (*models.Empresa, error) {
	var erros validacao.Erros
	e := &models.Empresa{}
	var ok bool

	if e.Nome, ok = validacao.NormalizarNome(r.Nome, maxNome); !ok {
		erros.Add("nome", msgNome)
	}
	if e.CNPJ, ok = validacao.NormalizarCNPJ(r.CNPJ); !ok {
		erros.Add("cnpj", msgCNPJ)
	}
	if e.Email, ok = validacao.NormalizarEmail(r.Email); !ok {
		erros.Add("email", msgEmail)
	}
	if e.Telefone, ok = validacao.NormalizarTelefone(r.Telefone); !ok {
		erros.Add("telefone", msgTelefone)
	}
	if e.Endereco, ok = normalizarEndereco(r.Endereco); !ok {
		erros.Add("endereco", msgEndereco)
	}

	if err := erros.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

// AtualizarEmpresaRequest é o PUT parcial: só o que vier no JSON é alterado.
// endereco aceita null (limpa o campo); os demais não.
type AtualizarEmpresaRequest struct {
	Nome     validacao.Campo[string] `json:"nome"`
	CNPJ     validacao.Campo[string] `json:"cnpj"`
	Endereco validacao.Campo[string] `json:"endereco"`
	Email    validacao.Campo[string] `json:"email"`
	Telefone validacao.Campo[string] `json:"telefone"`
}

func (r *AtualizarEmpresaRequest) vazio() bool {
	return !r.Nome.Presente && !r.CNPJ.Presente && !r.Endereco.Presente &&
		!r.Email.Presente && !r.Telefone.Presente
}

// Validar normaliza os valores presentes no próprio request.
func (r *AtualizarEmpresaRequest) Validar() error {
	if r.vazio() {
		return validacao.ErrUpdateVazio()
	}

	var erros validacao.Erros
	obrigatorio(&erros, "nome", &r.Nome, msgNome, func(s string) (string, bool) {
		return validacao.NormalizarNome(s, maxNome)
	})
	obrigatorio(&erros, "cnpj", &r.CNPJ, msgCNPJ, validacao.NormalizarCNPJ)
	obrigatorio(&erros, "email", &r.Email, msgEmail, validacao.NormalizarEmail)
	obrigatorio(&erros, "telefone", &r.Telefone, msgTelefone, validacao.NormalizarTelefone)

	if r.Endereco.Definido() {
		end, ok := normalizarEndereco(&r.Endereco.Valor)
		switch {
		case !ok:
			erros.Add("endereco", msgEndereco)
		case end == nil:
			r.Endereco = validacao.Nulo[string]()
		default:
			r.Endereco.Valor = *end
		}
	}
	return erros.Err()
}

// Aplicar copia para e apenas os campos enviados.
func (r *AtualizarEmpresaRequest) Aplicar(e *models.Empresa) {
	if r.Nome.Definido() {
		e.Nome = r.Nome.Valor
	}
	if r.CNPJ.Definido() {
		e.CNPJ = r.CNPJ.Valor
	}
	if r.Email.Definido() {
		e.Email = r.Email.Valor
	}
	if r.Telefone.Definido() {
		e.Telefone = r.Telefone.Valor
	}
	if r.Endereco.Presente {
		if r.Endereco.Nulo {
			e.Endereco = nil
		} else {
			end := r.Endereco.Valor
			e.Endereco = &end
		}
	}
}

// EmpresaResponse é a empresa com as obrigações buscadas por empresa_id.
type EmpresaResponse struct {
	models.Empresa
	Obrigacoes []models.ObrigacaoAcessoria `json:"obrigacoes"`
}

func novaResposta(e models.Empresa, obrigacoes []models.ObrigacaoAcessoria) EmpresaResponse {
	if obrigacoes == nil {
		obrigacoes = []models.ObrigacaoAcessoria{}
	}
	return EmpresaResponse{Empresa: e, Obrigacoes: obrigacoes}
}

func obrigatorio(erros *validacao.Erros, campo string, c *validacao.Campo[string], msg string, normalizar func(string) (string, bool)) {
	if !c.Presente {
		return
	}
	if c.Nulo {
		erros.Add(campo, msgNulo)
		return
	}
	v, ok := normalizar(c.Valor)
	if !ok {
		erros.Add(campo, msg)
		return
	}
	c.Valor = v
}

// normalizarEndereco apara espaços; string vazia vira nil.
func normalizarEndereco(s *string) (*string, bool) {
	if s == nil {
		return nil, true
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, true
	}
	if len([]rune(v)) > maxEndereco {
		return nil, false
	}
	return &v, true
}
