package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate reports that an insert lost a race into a unique index.
// Callers treat it as "the row already exists".
var ErrDuplicate = errors.New("duplicate row")

const pgUniqueViolation = "23505"

// translateDuplicate maps driver-level unique violations to ErrDuplicate.
// Checks the pgx error directly and gorm's translated form, which is what
// the sqlite test driver produces.
func translateDuplicate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
