package validacao

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
)

// Erros acumula os campos inválidos de um payload para devolver todos de uma vez.
type Erros struct {
	campos []apperror.FieldError
}

func (e *Erros) Add(campo, msg string) {
	e.campos = append(e.campos, apperror.FieldError{
		Loc:  []string{"body", campo},
		Msg:  msg,
		Type: "value_error",
	})
}

func (e *Erros) Vazio() bool { return len(e.campos) == 0 }

// Err devolve nil se nada foi acumulado.
func (e *Erros) Err() error {
	if e.Vazio() {
		return nil
	}
	return apperror.NewValidation(e.campos...)
}

// ErroCampo é o InvalidFieldError de um único campo.
func ErroCampo(loc, campo, msg string) error {
	l := []string{loc}
	if campo != "" {
		l = append(l, campo)
	}
	return apperror.NewValidation(apperror.FieldError{
		Loc:  l,
		Msg:  msg,
		Type: "value_error",
	})
}

// ErrUpdateVazio é devolvido quando um PUT não traz nenhum campo.
func ErrUpdateVazio() error {
	return apperror.NewValidation(apperror.FieldError{
		Loc:  []string{"body"},
		Msg:  "Pelo menos um campo deve ser fornecido para atualização",
		Type: "value_error",
	})
}

/*
DecodeStrict decodifica JSON rejeitando chaves desconhecidas
e garantindo que exista exatamente UM objeto JSON.
Falhas viram 422 com o campo problemático quando o decoder informa.
*/
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return erroDecode(err)
	}
	if dec.More() {
		return ErroCampo("body", "", "conteúdo JSON adicional inesperado")
	}
	return nil
}

func erroDecode(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ErroCampo("body", typeErr.Field, "tipo inválido, esperado "+typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return ErroCampo("body", "", "corpo da requisição vazio")
	}
	// json: unknown field "foo"
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		campo := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return ErroCampo("body", campo, "campo desconhecido")
	}
	return ErroCampo("body", "", "JSON inválido")
}
