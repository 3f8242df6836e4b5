// Package service defines domain-level service contracts implemented by the
// infra layer.
package service

import "time"

// Clock supplies the current time. Scheduling rules compare delivery dates
// against "today", so the engine takes the clock as a dependency instead of
// calling time.Now directly.
type Clock interface {
	// Now returns the current instant
	Now() time.Time

	// Today returns the current date truncated to midnight
	Today() time.Time
}
