// Package apperror define o erro de aplicação usado por services e handlers.
// Toda falha de regra de negócio sai daqui com código e status HTTP sugerido.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal     = "INTERNAL_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"

	CodeDuplicateCNPJ        = "DUPLICATE_CNPJ"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeDuplicateObrigacao   = "DUPLICATE_OBRIGACAO"
	CodeEmpresaNaoEncontrada = "EMPRESA_NAO_ENCONTRADA"
	CodeHasDependents        = "HAS_DEPENDENTS"
	CodeInvalidPagination    = "INVALID_PAGINATION"
)

// FieldError descreve um campo rejeitado pela validação.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	// Fields só é preenchido em erros de validação (422).
	Fields []FieldError
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// Body é o corpo JSON devolvido ao cliente.
func (e *AppError) Body() any {
	if len(e.Fields) > 0 {
		return map[string]any{"detail": e.Fields}
	}
	return map[string]string{"detail": e.Message}
}

func New(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidation(fields ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    "Erro de validação",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

func NewNotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// NewConflict usa 400, como o serviço sempre respondeu para duplicidades.
func NewConflict(code, message string) *AppError {
	return New(code, message, http.StatusBadRequest)
}

func NewUnauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Erro interno do servidor",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode diz se err carrega um AppError com o código informado.
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// HTTPStatus devolve o status adequado para qualquer erro.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
