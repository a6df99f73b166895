package readstore

import (
	"context"
	"time"

	"weekboard/internal/domain/booking"
	"weekboard/internal/infra"
	"weekboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

// FindForWeek returns the week's own bookings plus every recurring
// booking regardless of the week it was created under, in insertion
// order. The PIN never leaves the write side.
func (r *BookingReadStore) FindForWeek(ctx context.Context, week booking.WeekID) ([]*queries.BookingView, error) {
	query := `
		SELECT id, week_iso, weekday, time, name, repeat, created_at
		FROM bookings
		WHERE week_iso = $1 OR repeat = TRUE
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, week.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for week", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var (
			id        int64
			weekISO   string
			weekday   string
			timeLabel string
			name      string
			recurring bool
			createdAt time.Time
		)
		if err := rows.Scan(&id, &weekISO, &weekday, &timeLabel, &name, &recurring, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &queries.BookingView{
			ID:        id,
			Week:      booking.WeekID(weekISO),
			Weekday:   booking.Weekday(weekday),
			Time:      booking.TimeLabel(timeLabel),
			Name:      name,
			Recurring: recurring,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}
