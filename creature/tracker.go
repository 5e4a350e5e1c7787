package creature

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
)

// Wander yields the idle drift for an accumulated phase. Implementations
// must stay bounded.
type Wander interface {
	Offset(phase float64) cp.Vector
}

// SineWander sums two sinusoids with non-commensurate frequencies, so the
// drift never settles into a short visible loop.
type SineWander struct {
	AmpX, AmpY   float64
	FreqX, FreqY float64
}

func (s SineWander) Offset(phase float64) cp.Vector {
	return cp.Vector{
		X: math.Cos(phase*s.FreqX) * s.AmpX,
		Y: math.Sin(phase*s.FreqY) * s.AmpY,
	}
}

// Tracker smooths a raw target into a followed position independently of
// frame rate, and drifts on its own while input is idle.
type Tracker struct {
	decay     float64
	idleDecay float64
	rate      float64
	wander    Wander

	pos    cp.Vector
	seeded bool
	phase  float64
	idle   float64
}

// NewTracker starts at start. A nil wander disables idle drift.
func NewTracker(decay, idleDecay, wanderRate float64, wander Wander, start cp.Vector) *Tracker {
	return &Tracker{
		decay:     decay,
		idleDecay: idleDecay,
		rate:      wanderRate,
		wander:    wander,
		pos:       start,
		seeded:    true,
	}
}

// NewFollowTracker builds the cursor tracker described by cfg.
func NewFollowTracker(cfg FollowConfig, start cp.Vector) *Tracker {
	return NewTracker(cfg.Decay, cfg.IdleDecay, cfg.WanderRate, cfg.Sine(), start)
}

// Advance moves the smoothed position toward raw by 1-decay^dt and returns
// it with the current idle offset added.
func (t *Tracker) Advance(raw cp.Vector, active bool, dt float64) cp.Vector {
	if !t.seeded {
		t.pos = raw
		t.seeded = true
	}
	t.pos = t.pos.Lerp(raw, common.Ease(t.decay, dt))

	target := 1.0
	if active {
		target = 0
	}
	t.idle = common.Clamp01(common.Lerp(t.idle, target, common.Ease(t.idleDecay, dt)))
	t.phase += dt * t.rate

	return t.pos.Add(t.Offset())
}

// Offset is the idle drift currently applied on top of the smoothed position.
func (t *Tracker) Offset() cp.Vector {
	if t.wander == nil || t.idle == 0 {
		return cp.Vector{}
	}
	return t.wander.Offset(t.phase).Mult(t.idle)
}

// Position returns the smoothed position without idle drift.
func (t *Tracker) Position() cp.Vector {
	return t.pos
}

// Idle returns the idle blend weight in [0,1].
func (t *Tracker) Idle() float64 {
	return t.idle
}

// Phase returns the wander phase accumulator.
func (t *Tracker) Phase() float64 {
	return t.phase
}

// SetWander swaps the idle drift source. Nil disables it.
func (t *Tracker) SetWander(w Wander) {
	t.wander = w
}

// Configure updates the smoothing constants without moving the tracker.
func (t *Tracker) Configure(decay, idleDecay, wanderRate float64) {
	t.decay = decay
	t.idleDecay = idleDecay
	t.rate = wanderRate
}

// Unseed makes the next Advance jump straight to its raw target.
func (t *Tracker) Unseed() {
	t.seeded = false
}
