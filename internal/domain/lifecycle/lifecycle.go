// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks that touch external resources.
const DefaultTimeout = 30 * time.Second
