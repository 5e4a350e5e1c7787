package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// RefFrame is the frame length per-frame rates are tuned against.
	RefFrame = 1.0 / 60.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// AngleDelta returns the signed shortest rotation from a to b, in [-π, π].
func AngleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// LerpAngle interpolates from a toward b along the short arc.
func LerpAngle(a, b, t float64) float64 {
	return a + AngleDelta(a, b)*t
}

// Ease converts a decay base into the blend factor for a step of dt seconds.
// Splitting dt across several calls yields the same total blend.
func Ease(decay, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(decay, dt)
}

// PerFrame converts a blend rate tuned for one RefFrame into the factor for dt.
func PerFrame(rate, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-Clamp01(rate), dt/RefFrame)
}
