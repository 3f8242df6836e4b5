// Package clock provides the system implementation of the domain Clock.
package clock

import (
	"time"

	"courier/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system time in the local zone.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() time.Time {
	now := time.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
