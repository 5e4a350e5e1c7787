package creature

import "github.com/milk9111/skelecursor/common"

// Gesture is a one-shot trigger that snaps to 1 and decays linearly to 0,
// with a lagging copy for secondary motion.
type Gesture struct {
	decay  float64
	rate   float64
	value  float64
	smooth float64
}

// gestureEpsilon absorbs the rounding left after decaying for exactly 1/decay seconds.
const gestureEpsilon = 1e-9

func NewGesture(decayPerSecond, smoothRate float64) *Gesture {
	return &Gesture{decay: decayPerSecond, rate: smoothRate}
}

func (g *Gesture) Trigger() {
	g.value = 1
}

// Update decays the raw value by decay*dt and eases the smoothed value
// toward it. Both stay in [0,1].
func (g *Gesture) Update(dt float64) {
	g.value = common.Clamp01(g.value - g.decay*dt)
	if g.value < gestureEpsilon {
		g.value = 0
	}
	g.smooth = common.Clamp01(common.Lerp(g.smooth, g.value, common.PerFrame(g.rate, dt)))
}

func (g *Gesture) Value() float64 {
	return g.value
}

func (g *Gesture) Smoothed() float64 {
	return g.smooth
}

func (g *Gesture) Configure(decayPerSecond, smoothRate float64) {
	g.decay = decayPerSecond
	g.rate = smoothRate
}
