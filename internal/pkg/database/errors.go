package database

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type sqlStateError interface {
	SQLState() string
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, from either the pgx or the lib/pq driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	var stateErr sqlStateError
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == uniqueViolation
	}
	return false
}
