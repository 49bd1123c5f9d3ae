// Package matrix drives the 5x5 status LED matrix.
//
// Two drivers exist: a GPIO row/column scanner for the real panel and a
// console renderer used when the pins are unavailable. Both block for the
// full requested duration on Show; the panel is dark after Show returns
// only once Clear is called.
package matrix

import (
	"time"

	"github.com/coreman2200/boardcheck/internal/pattern"
)

// Driver is the minimal surface the bring-up sequence needs.
type Driver interface {
	// Show renders p for the full duration d, blocking the caller.
	Show(p pattern.Pattern, d time.Duration)
	// Clear parks the panel dark.
	Clear()
	// Close releases the pins.
	Close() error
}
