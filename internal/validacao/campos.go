package validacao

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KromaEnergia/api-empresas/internal/models"
)

var validate = validator.New()

// SomenteDigitos remove qualquer coisa que não seja dígito ASCII.
func SomenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizarCNPJ aceita "11.222.333/0001-44" ou "11222333000144" e devolve só os dígitos.
// ok é falso quando não sobram exatamente 14 dígitos.
func NormalizarCNPJ(s string) (cnpj string, ok bool) {
	cnpj = SomenteDigitos(s)
	return cnpj, len(cnpj) == 14
}

// NormalizarTelefone exige 11 dígitos (DDD + número) depois de limpar a máscara.
func NormalizarTelefone(s string) (tel string, ok bool) {
	tel = SomenteDigitos(s)
	return tel, len(tel) == 11
}

func NormalizarEmail(s string) (email string, ok bool) {
	email = strings.ToLower(strings.TrimSpace(s))
	return email, validate.Var(email, "required,email,max=100") == nil
}

// ParsePeriodicidade aceita "mensal", "Mensal" ou "MENSAL".
func ParsePeriodicidade(s string) (models.Periodicidade, bool) {
	p := models.Periodicidade(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valida()
}

// NormalizarNome apara espaços; vazio ou acima de max é inválido.
func NormalizarNome(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len([]rune(s)) <= max
}
