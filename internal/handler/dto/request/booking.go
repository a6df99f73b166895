package request

import (
	"weekboard/internal/domain/booking"
	"weekboard/internal/usecase/commands"
)

type BookingSlot struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CreateBookingsRequest struct {
	Week string `json:"week" binding:"required"`
	Name string `json:"name"`
	// An empty slot list binds fine; the usecase rejects it with its own
	// message rather than a generic binding error.
	Slots  []BookingSlot `json:"slots"`
	Repeat bool          `json:"repeat"`
	PIN    string        `json:"pin"`
}

func (r CreateBookingsRequest) ToParams() commands.CreateBookingsParams {
	slots := make([]commands.SlotParam, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = commands.SlotParam{Day: s.Day, Time: s.Time}
	}
	return commands.CreateBookingsParams{
		Week:      booking.WeekID(r.Week),
		Name:      r.Name,
		Slots:     slots,
		Recurring: r.Repeat,
		PIN:       r.PIN,
	}
}

// DeleteBookingRequest binds id permissively: ids the store never
// assigned (0 included) fall through to the not-authorized answer, so
// probing ids is indistinguishable from guessing PINs.
type DeleteBookingRequest struct {
	ID  int64  `json:"id"`
	PIN string `json:"pin"`
}
