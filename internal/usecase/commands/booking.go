package commands

import (
	"context"

	"weekboard/internal/domain/booking"
	"weekboard/internal/infra"
	"weekboard/internal/pkg/errs"
)

var (
	ErrNoSlots                 = errs.New("no slots in booking request")
	ErrInvalidSlot             = errs.New("invalid slot")
	ErrNotAuthorized           = errs.New("not authorized")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SlotParam struct {
	Day  string
	Time string
}

type CreateBookingsParams struct {
	Week      booking.WeekID
	Name      string
	Slots     []SlotParam
	Recurring bool
	PIN       string
}

type BookingRepository interface {
	CreateBatch(ctx context.Context, batch []*booking.Booking) error
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type BookingCommands interface {
	// CreateBookings records one booking per slot as a single atomic
	// unit; on failure no slot of the request remains committed.
	CreateBookings(ctx context.Context, params CreateBookingsParams) error
	// DeleteBooking removes the booking iff it exists and its stored
	// PIN equals pin. A missing booking and a wrong PIN are surfaced
	// identically so callers cannot probe for existence.
	DeleteBooking(ctx context.Context, id int64, pin string) error
}

type bookingCommandsImpl struct {
	repo BookingRepository
}

func NewBookingCommands(repo BookingRepository) BookingCommands {
	return &bookingCommandsImpl{repo: repo}
}

func (c *bookingCommandsImpl) CreateBookings(ctx context.Context, params CreateBookingsParams) error {
	if len(params.Slots) == 0 {
		return ErrNoSlots
	}

	slots := make([]booking.Slot, len(params.Slots))
	for i, sp := range params.Slots {
		slot, err := booking.NewSlot(booking.Weekday(sp.Day), booking.TimeLabel(sp.Time))
		if err != nil {
			return errs.Mark(err, ErrInvalidSlot)
		}
		slots[i] = slot
	}

	batch, err := booking.NewBatch(params.Week, params.Name, slots, params.Recurring, params.PIN)
	if err != nil {
		return errs.Mark(err, ErrNoSlots)
	}

	if err := c.repo.CreateBatch(ctx, batch); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64, pin string) error {
	target, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotAuthorized
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !target.AuthorizePIN(pin) {
		return ErrNotAuthorized
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		// A concurrent correct-PIN delete already removed the row;
		// the end state is identical, so this counts as success.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
