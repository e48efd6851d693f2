package repositories

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// SQLSTATE class 23 integrity violations
const pgUniqueViolation = "23505"

var (
	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write trips a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation surfaced through the pgdriver.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	return false
}
