package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codigoUniqueViolation     = "23505"
	codigoForeignKeyViolation = "23503"
)

// ViolacaoUnica devolve o nome do índice único violado, se for o caso.
func ViolacaoUnica(err error) (string, bool) {
	return violacao(err, codigoUniqueViolation)
}

// ViolacaoFK devolve o nome da FK violada, se for o caso.
func ViolacaoFK(err error) (string, bool) {
	return violacao(err, codigoForeignKeyViolation)
}

func violacao(err error, codigo string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codigo {
		return pgErr.ConstraintName, true
	}
	return "", false
}
