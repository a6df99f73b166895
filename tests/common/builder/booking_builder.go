//go:build unit || e2e

package builder

import (
	"time"

	dombooking "weekboard/internal/domain/booking"
	reqdto "weekboard/internal/handler/dto/request"
	"weekboard/internal/usecase/commands"
	"weekboard/internal/usecase/queries"
)

type BookingBuilder struct {
	ID        int64
	Week      string
	Slots     []reqdto.BookingSlot
	Name      string
	Repeat    bool
	PIN       string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		Week:      "2024-W10",
		Slots:     []reqdto.BookingSlot{{Day: "Monday", Time: "09:00"}},
		Name:      "Alice",
		Repeat:    false,
		PIN:       "1234",
		CreatedAt: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlots(slots ...reqdto.BookingSlot) *BookingBuilder {
	b.Slots = slots
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingsRequest {
	return reqdto.CreateBookingsRequest{
		Week:   b.Week,
		Name:   b.Name,
		Slots:  b.Slots,
		Repeat: b.Repeat,
		PIN:    b.PIN,
	}
}

func (b *BookingBuilder) BuildDeleteRequestDTO() reqdto.DeleteBookingRequest {
	return reqdto.DeleteBookingRequest{
		ID:  b.ID,
		PIN: b.PIN,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingsParams {
	slots := make([]commands.SlotParam, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = commands.SlotParam{Day: s.Day, Time: s.Time}
	}
	return commands.CreateBookingsParams{
		Week:      dombooking.WeekID(b.Week),
		Name:      b.Name,
		Slots:     slots,
		Recurring: b.Repeat,
		PIN:       b.PIN,
	}
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	slot := dombooking.ReconstructSlot(
		dombooking.Weekday(b.Slots[0].Day),
		dombooking.TimeLabel(b.Slots[0].Time),
	)
	return dombooking.Reconstruct(
		b.ID,
		dombooking.WeekID(b.Week),
		slot,
		b.Name,
		b.Repeat,
		b.PIN,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		Week:      dombooking.WeekID(b.Week),
		Weekday:   dombooking.Weekday(b.Slots[0].Day),
		Time:      dombooking.TimeLabel(b.Slots[0].Time),
		Name:      b.Name,
		Recurring: b.Repeat,
		CreatedAt: b.CreatedAt,
	}
}
