package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// DeletePhase tells which phase of the two-phase delete an operation landed
// on: the first delete call soft-deletes, the second removes the row.
type DeletePhase string

const (
	DeletePhaseSoft DeletePhase = "soft"
	DeletePhaseHard DeletePhase = "hard"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
