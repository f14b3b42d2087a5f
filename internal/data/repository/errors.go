package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")

	// ErrMissingReference is returned when a foreign key points at a row that does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
)

// postgres SQLSTATE codes
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
