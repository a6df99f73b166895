package queries

import (
	"context"
	"time"

	"weekboard/internal/domain/booking"
	"weekboard/internal/pkg/clock"
	"weekboard/internal/pkg/errs"
)

var ErrListFailed = errs.New("failed to list bookings")

// BookingView is the read model for one stored booking. It carries
// everything the grid needs and deliberately omits the PIN.
type BookingView struct {
	ID        int64             `json:"id"`
	Week      booking.WeekID    `json:"week"`
	Weekday   booking.Weekday   `json:"weekday"`
	Time      booking.TimeLabel `json:"time"`
	Name      string            `json:"name"`
	Recurring bool              `json:"recurring"`
	CreatedAt time.Time         `json:"created_at"`
}

type BookingReadStore interface {
	FindForWeek(ctx context.Context, week booking.WeekID) ([]*BookingView, error)
}

type BookingQueries interface {
	// ListForWeek returns the week's bookings plus all recurring ones,
	// in a stable order suitable for grid rendering.
	ListForWeek(ctx context.Context, week booking.WeekID) ([]*BookingView, error)
	// GridForWeek projects ListForWeek onto the weekday × time matrix;
	// a later record for an occupied cell replaces the earlier one.
	GridForWeek(ctx context.Context, week booking.WeekID) (*booking.Grid, error)
	// CurrentWeek is the default when a caller names no week.
	CurrentWeek() booking.WeekID
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) ListForWeek(ctx context.Context, week booking.WeekID) ([]*BookingView, error) {
	views, err := q.store.FindForWeek(ctx, week)
	if err != nil {
		return nil, errs.Mark(err, ErrListFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) GridForWeek(ctx context.Context, week booking.WeekID) (*booking.Grid, error) {
	views, err := q.ListForWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	grid := booking.NewGrid(week)
	for _, v := range views {
		slot := booking.ReconstructSlot(v.Weekday, v.Time)
		grid.Place(slot, booking.Cell{BookingID: v.ID, Name: v.Name})
	}
	return grid, nil
}

func (q *bookingQueriesImpl) CurrentWeek() booking.WeekID {
	return booking.WeekIDOf(q.clock.Now())
}
