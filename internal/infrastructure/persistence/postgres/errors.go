package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// uniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally on a specific constraint name. This is how the
// fingerprint index rejection at commit time gets mapped to a Conflict
// instead of an opaque 500.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
