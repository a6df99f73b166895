package booking

import (
	"fmt"
	"time"
)

// WeekID is an ISO 8601 week identifier of the form YYYY-Www.
// Callers always supply this shape but the store accepts any string.
type WeekID string

func (w WeekID) String() string { return string(w) }

// WeekIDOf returns the ISO week identifier for the week containing t.
func WeekIDOf(t time.Time) WeekID {
	year, week := t.ISOWeek()
	return WeekID(fmt.Sprintf("%d-W%02d", year, week))
}
