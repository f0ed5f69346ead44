package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, pgerr.Translate(nil))
	})

	t.Run("serialization failure is a state conflict", func(t *testing.T) {
		err := pgerr.Translate(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})

	t.Run("wrapped deadlock is a state conflict", func(t *testing.T) {
		wrapped := fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"})
		require.ErrorIs(t, pgerr.Translate(wrapped), errs.ErrStateIsInvalid)
	})

	t.Run("other postgres errors pass through", func(t *testing.T) {
		original := &pgconn.PgError{Code: "23505"}
		assert.Equal(t, error(original), pgerr.Translate(original))
	})

	t.Run("non postgres errors pass through", func(t *testing.T) {
		original := errors.New("connection reset")
		assert.Equal(t, original, pgerr.Translate(original))
	})
}
