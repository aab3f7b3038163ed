package anim

import "time"

// EaseOutCubic maps normalized time t in [0,1] to 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Progress is elapsed/duration capped at 1. A non-positive duration is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(duration)
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate is the displayed value t of the way through a session.
func Interpolate(start, target, t float64) float64 {
	if t >= 1 {
		return target
	}
	return start + (target-start)*EaseOutCubic(t)
}
