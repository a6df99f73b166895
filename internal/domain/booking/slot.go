package booking

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWeekday   = errors.New("unknown weekday")
	ErrUnknownTimeLabel = errors.New("unknown time label")
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns the seven weekdays in grid order.
func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdays))
	copy(out, weekdays)
	return out
}

type TimeLabel string

// Half-hour starts from 07:00 through 18:30; the display window closes at 19:00.
const (
	firstHour = 7
	lastHour  = 18
)

var timeLabels = buildTimeLabels()

func buildTimeLabels() []TimeLabel {
	labels := make([]TimeLabel, 0, (lastHour-firstHour+1)*2)
	for h := firstHour; h <= lastHour; h++ {
		for _, m := range []int{0, 30} {
			labels = append(labels, TimeLabel(fmt.Sprintf("%02d:%02d", h, m)))
		}
	}
	return labels
}

// TimeLabels returns the 24 half-hour slot labels in grid order.
func TimeLabels() []TimeLabel {
	out := make([]TimeLabel, len(timeLabels))
	copy(out, timeLabels)
	return out
}

// Slot identifies one bookable cell in the weekly grid.
type Slot struct {
	weekday Weekday
	time    TimeLabel
}

func NewSlot(weekday Weekday, time TimeLabel) (Slot, error) {
	if !validWeekday(weekday) {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, weekday)
	}
	if !validTimeLabel(time) {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownTimeLabel, time)
	}
	return Slot{weekday: weekday, time: time}, nil
}

// ReconstructSlot rebuilds a slot from stored values without grid validation.
// The store never rejects out-of-grid rows; they simply render nowhere.
func ReconstructSlot(weekday Weekday, time TimeLabel) Slot {
	return Slot{weekday: weekday, time: time}
}

func (s Slot) Weekday() Weekday { return s.weekday }
func (s Slot) Time() TimeLabel  { return s.time }

func validWeekday(w Weekday) bool {
	for _, d := range weekdays {
		if d == w {
			return true
		}
	}
	return false
}

func validTimeLabel(t TimeLabel) bool {
	for _, l := range timeLabels {
		if l == t {
			return true
		}
	}
	return false
}
