//go:build unit

package booking_test

import (
	"testing"
	"time"

	"weekboard/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, day booking.Weekday, label booking.TimeLabel) booking.Slot {
	t.Helper()
	slot, err := booking.NewSlot(day, label)
	require.NoError(t, err)
	return slot
}

func TestNewBatch(t *testing.T) {
	t.Run("one unsaved booking per slot, all sharing the request fields", func(t *testing.T) {
		slots := []booking.Slot{
			mustSlot(t, booking.Monday, "09:00"),
			mustSlot(t, booking.Monday, "09:30"),
			mustSlot(t, booking.Friday, "18:30"),
		}

		batch, err := booking.NewBatch("2024-W10", "Alice", slots, true, "1234")
		require.NoError(t, err)
		require.Len(t, batch, 3)

		for i, b := range batch {
			assert.Equal(t, int64(0), b.ID(), "id is assigned by the store")
			assert.Equal(t, booking.WeekID("2024-W10"), b.Week())
			assert.Equal(t, slots[i], b.Slot())
			assert.Equal(t, "Alice", b.Name())
			assert.True(t, b.Recurring())
			assert.Equal(t, "1234", b.PIN())
			assert.True(t, b.CreatedAt().IsZero(), "created_at is assigned by the store")
		}
	})

	t.Run("empty slot list is rejected", func(t *testing.T) {
		_, err := booking.NewBatch("2024-W10", "Alice", nil, false, "")
		require.ErrorIs(t, err, booking.ErrNoSlots)
	})

	t.Run("empty name and empty pin are accepted as-is", func(t *testing.T) {
		batch, err := booking.NewBatch("2024-W10", "", []booking.Slot{mustSlot(t, booking.Monday, "09:00")}, false, "")
		require.NoError(t, err)
		assert.Equal(t, "", batch[0].Name())
		assert.Equal(t, "", batch[0].PIN())
	})
}

func TestAuthorizePIN(t *testing.T) {
	slot := mustSlot(t, booking.Monday, "09:00")
	b := booking.Reconstruct(1, "2024-W10", slot, "Alice", false, "1234", time.Now())

	assert.True(t, b.AuthorizePIN("1234"))
	assert.False(t, b.AuthorizePIN("0000"))
	assert.False(t, b.AuthorizePIN(""))
	assert.False(t, b.AuthorizePIN("12345"))

	noPin := booking.Reconstruct(2, "2024-W10", slot, "Bob", false, "", time.Now())
	assert.True(t, noPin.AuthorizePIN(""))
	assert.False(t, noPin.AuthorizePIN("1234"))
}

func TestVisibleIn(t *testing.T) {
	slot := mustSlot(t, booking.Monday, "09:00")

	plain := booking.Reconstruct(1, "2024-W10", slot, "Alice", false, "1234", time.Now())
	assert.True(t, plain.VisibleIn("2024-W10"))
	assert.False(t, plain.VisibleIn("2024-W11"))

	recurring := booking.Reconstruct(2, "2024-W10", slot, "Bob", true, "1234", time.Now())
	assert.True(t, recurring.VisibleIn("2024-W10"))
	assert.True(t, recurring.VisibleIn("2024-W11"))
	assert.True(t, recurring.VisibleIn("2099-W01"))
}
