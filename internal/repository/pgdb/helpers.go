package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func postgresDuplicate(err error) bool {
	return hasPgCode(err, uniqueViolation)
}

func postgresForeignKey(err error) bool {
	return hasPgCode(err, foreignKeyViolation)
}

func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
