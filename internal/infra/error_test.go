//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"weekboard/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to a database failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errors.New("connection reset"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("classifies no-rows as not found without an explicit kind", func(t *testing.T) {
		err := infra.WrapRepoErr("booking not found", pgx.ErrNoRows)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("no rows deleted", errors.New("0 rows affected"), infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("wrapped cause stays reachable", func(t *testing.T) {
		cause := pgx.ErrNoRows
		err := infra.WrapRepoErr("booking not found", cause)

		assert.ErrorIs(t, err, cause)
	})
}

func TestIsKind(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}

func TestIsRetryable(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock detected", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "non-postgres error", err: errors.New("connection reset"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, infra.IsRetryable(tc.err))
		})
	}
}
