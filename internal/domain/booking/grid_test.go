//go:build unit

package booking_test

import (
	"testing"

	"weekboard/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	t.Run("places bookings in their cells", func(t *testing.T) {
		grid := booking.NewGrid("2024-W10")
		grid.Place(mustSlot(t, booking.Monday, "09:00"), booking.Cell{BookingID: 1, Name: "Alice"})
		grid.Place(mustSlot(t, booking.Tuesday, "10:30"), booking.Cell{BookingID: 2, Name: "Bob"})

		require.Equal(t, 2, grid.Occupied())

		cell, ok := grid.Cell(booking.Monday, "09:00")
		require.True(t, ok)
		assert.Equal(t, int64(1), cell.BookingID)
		assert.Equal(t, "Alice", cell.Name)

		_, ok = grid.Cell(booking.Monday, "09:30")
		assert.False(t, ok)
	})

	t.Run("later entry wins an occupied cell", func(t *testing.T) {
		slot := mustSlot(t, booking.Monday, "09:00")

		grid := booking.NewGrid("2024-W10")
		grid.Place(slot, booking.Cell{BookingID: 1, Name: "Alice"})
		grid.Place(slot, booking.Cell{BookingID: 2, Name: "Bob"})

		require.Equal(t, 1, grid.Occupied())

		cell, ok := grid.Cell(booking.Monday, "09:00")
		require.True(t, ok)
		assert.Equal(t, int64(2), cell.BookingID)
		assert.Equal(t, "Bob", cell.Name)
	})

	t.Run("out-of-grid rows land in no cell", func(t *testing.T) {
		grid := booking.NewGrid("2024-W10")
		grid.Place(booking.ReconstructSlot("Funday", "09:00"), booking.Cell{BookingID: 1, Name: "Alice"})
		grid.Place(booking.ReconstructSlot(booking.Monday, "23:00"), booking.Cell{BookingID: 2, Name: "Bob"})

		assert.Equal(t, 0, grid.Occupied())
	})
}
