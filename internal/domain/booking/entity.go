package booking

import (
	"errors"
	"time"
)

var ErrNoSlots = errors.New("booking batch needs at least one slot")

// Booking is one reserved grid cell. A booking is never mutated in place;
// changing one means deleting it and creating a replacement.
type Booking struct {
	id        int64
	week      WeekID
	slot      Slot
	name      string
	recurring bool
	pin       string
	createdAt time.Time
}

// NewBatch builds one unsaved booking per slot, all sharing the same
// week, name, recurring flag and PIN. IDs are assigned by the store.
func NewBatch(week WeekID, name string, slots []Slot, recurring bool, pin string) ([]*Booking, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	batch := make([]*Booking, len(slots))
	for i, slot := range slots {
		batch[i] = &Booking{
			week:      week,
			slot:      slot,
			name:      name,
			recurring: recurring,
			pin:       pin,
		}
	}
	return batch, nil
}

func Reconstruct(id int64, week WeekID, slot Slot, name string, recurring bool, pin string, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		week:      week,
		slot:      slot,
		name:      name,
		recurring: recurring,
		pin:       pin,
		createdAt: createdAt,
	}
}

// VisibleIn reports whether the booking belongs on the grid for week.
// Recurring bookings appear on every week's grid.
func (b *Booking) VisibleIn(week WeekID) bool {
	return b.recurring || b.week == week
}

// AuthorizePIN gates deletion: the stored PIN must equal the candidate
// byte-for-byte. An empty stored PIN only matches an empty candidate.
func (b *Booking) AuthorizePIN(candidate string) bool {
	return b.pin == candidate
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Week() WeekID         { return b.week }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) Recurring() bool      { return b.recurring }
func (b *Booking) PIN() string          { return b.pin }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
