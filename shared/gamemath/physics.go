// Package gamemath holds the pure arithmetic behind movement, patrols and
// timing so it can be tested without a window.
package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// BoostVelocity returns the vertical speed after touching a jump booster.
// Speeds use screen coordinates, so negative is up. The upward speed becomes
// boost minus the current upward speed, capped at limit.
func BoostVelocity(speedY, boost, limit float64) float64 {
	up := -speedY
	return -math.Min(boost-up, limit)
}

// ClampAxis keeps a camera centre inside [min, max] for a view of the given
// size. When the view is larger than the range the centre of the range wins.
func ClampAxis(center, view, min, max float64) float64 {
	if max-min <= view {
		return (min + max) / 2
	}
	half := view / 2
	if center < min+half {
		return min + half
	}
	if center > max-half {
		return max - half
	}
	return center
}

// FitAspect returns the largest width x height with the given aspect ratio
// that fits inside w x h.
func FitAspect(w, h, aspect float64) (float64, float64) {
	if w/h > aspect {
		return h * aspect, h
	}
	return w, w / aspect
}
