//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekboard/internal/domain/booking"
	"weekboard/internal/pkg/clock"
	"weekboard/internal/usecase/queries"
	"weekboard/tests/common/builder"
	queriesmock "weekboard/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueries(t *testing.T, now time.Time) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return queries.NewBookingQueries(store, clock.NewMockClock(now)), store
}

func TestListForWeek(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("returns the store's rows untouched", func(t *testing.T) {
		uc, store := newQueries(t, now)

		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = 2
				b.Name = "Bob"
				b.Repeat = true
			}).BuildView(),
		}
		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).Return(views, nil).Times(1)

		got, err := uc.ListForWeek(ctx, "2024-W10")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(views, got))
	})

	t.Run("error: store failure is marked, not hidden", func(t *testing.T) {
		uc, store := newQueries(t, now)

		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := uc.ListForWeek(ctx, "2024-W10")
		require.ErrorIs(t, err, queries.ErrListFailed)
	})
}

func TestGridForWeek(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("projects rows onto their cells", func(t *testing.T) {
		uc, store := newQueries(t, now)

		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = 2
				b.Name = "Bob"
				b.Slots[0].Day = "Tuesday"
				b.Slots[0].Time = "10:30"
			}).BuildView(),
		}
		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).Return(views, nil).Times(1)

		grid, err := uc.GridForWeek(ctx, "2024-W10")
		require.NoError(t, err)
		require.Equal(t, 2, grid.Occupied())

		cell, ok := grid.Cell(booking.Monday, "09:00")
		require.True(t, ok)
		assert.Equal(t, int64(1), cell.BookingID)
		assert.Equal(t, "Alice", cell.Name)

		cell, ok = grid.Cell(booking.Tuesday, "10:30")
		require.True(t, ok)
		assert.Equal(t, int64(2), cell.BookingID)
	})

	t.Run("newest row wins a double-booked cell", func(t *testing.T) {
		uc, store := newQueries(t, now)

		// Same cell booked twice; the store returns rows in id order.
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = 2
				b.Name = "Bob"
			}).BuildView(),
		}
		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).Return(views, nil).Times(1)

		grid, err := uc.GridForWeek(ctx, "2024-W10")
		require.NoError(t, err)
		require.Equal(t, 1, grid.Occupied())

		cell, ok := grid.Cell(booking.Monday, "09:00")
		require.True(t, ok)
		assert.Equal(t, int64(2), cell.BookingID)
		assert.Equal(t, "Bob", cell.Name)
	})

	t.Run("rows outside the display window are dropped silently", func(t *testing.T) {
		uc, store := newQueries(t, now)

		views := []*queries.BookingView{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.Slots[0].Time = "23:00"
			}).BuildView(),
		}
		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).Return(views, nil).Times(1)

		grid, err := uc.GridForWeek(ctx, "2024-W10")
		require.NoError(t, err)
		assert.Equal(t, 0, grid.Occupied())
	})

	t.Run("error: store failure aborts the projection", func(t *testing.T) {
		uc, store := newQueries(t, now)

		store.EXPECT().FindForWeek(ctx, booking.WeekID("2024-W10")).
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := uc.GridForWeek(ctx, "2024-W10")
		require.ErrorIs(t, err, queries.ErrListFailed)
	})
}

func TestCurrentWeek(t *testing.T) {
	uc, _ := newQueries(t, time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, booking.WeekID("2024-W10"), uc.CurrentWeek())

	uc, _ = newQueries(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, booking.WeekID("2025-W01"), uc.CurrentWeek())
}
