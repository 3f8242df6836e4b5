package entity

import (
	"math"
	"time"
)

const (
	// DateLayout is the wire format for delivery dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for delivery window bounds.
	TimeLayout = "15:04"
	// TimeLayoutSeconds additionally tolerates a seconds component on input.
	TimeLayoutSeconds = "15:04:05"
)

// DeliveryWindow is the scheduled slot of a delivery: a calendar date plus a
// start and end time of day. The start < end invariant is enforced by the
// payload validator, not by the type itself.
type DeliveryWindow struct {
	Date      string // DateLayout formatted calendar date.
	TimeStart string // TimeLayout formatted start of the window.
	TimeEnd   string // TimeLayout formatted end of the window.
}

// DateValue parses the window date.
func (w DeliveryWindow) DateValue() (time.Time, error) {
	return time.Parse(DateLayout, w.Date)
}

// Overlaps reports whether the window intersects [timeStart, timeEnd) on the
// same date. Bounds are half-open, so back-to-back windows such as
// [09:00, 12:00) and [12:00, 15:00) do not collide. Zero-padded TimeLayout
// strings order lexicographically, so plain string comparison is exact.
func (w DeliveryWindow) Overlaps(timeStart, timeEnd string) bool {
	return w.TimeStart < timeEnd && w.TimeEnd > timeStart
}

// AvailableMinutes returns the window length in whole minutes.
func (w DeliveryWindow) AvailableMinutes() int {
	start, err := time.Parse(TimeLayout, w.TimeStart)
	if err != nil {
		return 0
	}
	end, err := time.Parse(TimeLayout, w.TimeEnd)
	if err != nil {
		return 0
	}

	return int(math.Round(end.Sub(start).Seconds() / 60))
}
