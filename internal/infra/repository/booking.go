package repository

import (
	"context"
	"errors"
	"time"

	"weekboard/internal/domain/booking"
	"weekboard/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateBatch inserts one row per booking inside a single transaction
// and writes the assigned ids and timestamps back onto the entities.
// Either every slot in the batch is committed or none are.
func (r *BookingRepository) CreateBatch(ctx context.Context, batch []*booking.Booking) error {
	query := `
		INSERT INTO bookings (week_iso, weekday, time, name, repeat, pin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := runInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		for i, b := range batch {
			var (
				id        int64
				createdAt time.Time
			)
			err := tx.QueryRow(
				ctx, query,
				b.Week().String(),
				string(b.Slot().Weekday()),
				string(b.Slot().Time()),
				b.Name(),
				b.Recurring(),
				b.PIN(),
			).Scan(&id, &createdAt)
			if err != nil {
				return err
			}
			batch[i] = booking.Reconstruct(id, b.Week(), b.Slot(), b.Name(), b.Recurring(), b.PIN(), createdAt)
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create booking batch", err, infra.KindDBFailure)
	}

	return nil
}

// FindByID loads a single booking including its stored PIN. The PIN
// check itself belongs to the domain entity, not the repository.
func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	query := `
		SELECT id, week_iso, weekday, time, name, repeat, COALESCE(pin, ''), created_at
		FROM bookings
		WHERE id = $1
	`

	var (
		rowID     int64
		week      string
		weekday   string
		timeLabel string
		name      string
		recurring bool
		pin       string
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &week, &weekday, &timeLabel, &name, &recurring, &pin, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	slot := booking.ReconstructSlot(booking.Weekday(weekday), booking.TimeLabel(timeLabel))
	return booking.Reconstruct(rowID, booking.WeekID(week), slot, name, recurring, pin, createdAt), nil
}

// Delete removes the row. A vanished row is not an error here: two
// concurrent correct-PIN deletes may race, and the end state is the same.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already gone", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}
