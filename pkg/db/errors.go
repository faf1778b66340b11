package db

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
)

// Postgres error classes, per the SQLSTATE listing.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation reports whether the error is a unique constraint
// violation. When constraintName is given, the match is narrowed to that
// constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) != pgUniqueViolation {
			return false
		}
		return constraintName == "" || pqErr.Constraint == constraintName
	}

	msg := err.Error()
	if !strings.Contains(msg, "duplicate key value") && !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return constraintName == "" || strings.Contains(msg, constraintName)
}

// IsRestrictViolation reports whether the error is the engine rejecting a
// delete (or update) because dependent rows still reference the target row.
func IsRestrictViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgForeignKeyViolation
	}

	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// ClassifyConstraint wraps engine constraint violations in the typed
// constraint-violation error so callers can branch on the code. Other errors
// pass through unchanged.
func ClassifyConstraint(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err, ""):
		return apperrors.Wrap(apperrors.CodeConstraintViolation, err, "uniqueness constraint violated")
	case IsRestrictViolation(err):
		return apperrors.Wrap(apperrors.CodeConstraintViolation, err, "delete restricted by dependent rows")
	default:
		return err
	}
}
