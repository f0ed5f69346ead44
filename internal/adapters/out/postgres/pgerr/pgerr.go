// Package pgerr translates Postgres failures that callers can act on into
// kitchenpos error kinds.
package pgerr

import (
	"errors"

	"kitchenpos/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Translate maps serialization failures and deadlocks to errs.ErrStateIsInvalid:
// another transaction changed the same rows first. Other errors pass through.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case serializationFailure, deadlockDetected:
		return errs.NewStateIsInvalidErrorWithCause("transaction", err)
	default:
		return err
	}
}
