//go:build unit

package view_test

import (
	"bytes"
	"testing"

	"weekboard/internal/domain/booking"
	"weekboard/internal/handler/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridPage(t *testing.T) {
	grid := booking.NewGrid("2024-W10")
	grid.Place(
		booking.ReconstructSlot(booking.Monday, "09:00"),
		booking.Cell{BookingID: 7, Name: "Alice"},
	)

	page := view.NewGridPage(grid)

	assert.Equal(t, "2024-W10", page.Week)
	require.Len(t, page.Days, 7)
	assert.Equal(t, "Monday", page.Days[0])
	assert.Equal(t, "Sunday", page.Days[6])

	require.Len(t, page.Rows, 24)
	assert.Equal(t, "07:00", page.Rows[0].Time)
	assert.Equal(t, "18:30", page.Rows[23].Time)

	for _, row := range page.Rows {
		require.Len(t, row.Cells, 7)
	}

	// 09:00 is the fifth row (07:00, 07:30, 08:00, 08:30, 09:00).
	booked := page.Rows[4].Cells[0]
	assert.True(t, booked.Booked)
	assert.Equal(t, int64(7), booked.ID)
	assert.Equal(t, "Alice", booked.Name)
	assert.Equal(t, "Monday", booked.Day)
	assert.Equal(t, "09:00", booked.Time)

	free := page.Rows[4].Cells[1]
	assert.False(t, free.Booked)
	assert.Equal(t, "Tuesday", free.Day)
}

func TestTemplateRendersGridPage(t *testing.T) {
	grid := booking.NewGrid("2024-W10")
	grid.Place(
		booking.ReconstructSlot(booking.Wednesday, "12:00"),
		booking.Cell{BookingID: 3, Name: "Bob"},
	)

	var buf bytes.Buffer
	err := view.Template().ExecuteTemplate(&buf, "grid.html", view.NewGridPage(grid))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "2024-W10")
	assert.Contains(t, html, "Bob")
	assert.Contains(t, html, "Wednesday")
	assert.Contains(t, html, "18:30")
}
