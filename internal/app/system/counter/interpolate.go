// Package counter animates a displayed integer from 0 up to a target value
// over a fixed wall-clock duration.
//
// A Counter never owns a goroutine or a timer. It asks an injected Scheduler
// for the next frame and reads time from an injected Clock, so the same code
// runs on the production FrameLoop and on a manual scheduler in tests.
//
// Preconditions: targets are non-negative and durations are finite. Inputs
// outside those ranges are not checked.
package counter

import (
	"math"
	"time"
)

// DefaultDuration is the animation length used when none is given.
const DefaultDuration = 1200 * time.Millisecond

// Interpolate returns the value to display after elapsed time into a run of
// the given duration, along with the progress fraction in [0, 1].
//
// The value is floor(progress * target) while progress < 1 and exactly target
// once progress reaches 1. A zero target is always settled.
func Interpolate(target int, duration, elapsed time.Duration) (int, float64) {
	if target == 0 {
		return 0, 1
	}

	progress := float64(elapsed) / float64(duration)
	if progress >= 1 {
		return target, 1
	}
	if progress < 0 {
		progress = 0
	}

	value := int(math.Floor(progress * float64(target)))
	// Float rounding on large targets can land on target before progress is 1.
	if value >= target {
		value = target - 1
	}
	return value, progress
}
