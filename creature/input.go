package creature

import (
	"time"

	"github.com/jakecoffman/cp"
)

// InputSnapshot is the input state seen by one tick.
type InputSnapshot struct {
	Target cp.Vector
	Active bool
	Chomp  bool
	Trails bool
	Glow   bool
}

// Input collects pointer and key events between ticks. Event handlers only
// write here; the frame loop reads it once per tick through Snapshot, so
// the simulation sees one consistent state per frame.
type Input struct {
	target cp.Vector
	active bool
	chomp  bool
	trails bool
	glow   bool
}

// NewInput starts inactive at start with both render flags on.
func NewInput(start cp.Vector) *Input {
	return &Input{target: start, trails: true, glow: true}
}

// MoveTo records a pointer position and marks input active.
func (in *Input) MoveTo(x, y float64) {
	in.target = cp.Vector{X: x, Y: y}
	in.active = true
}

// Leave marks the pointer as gone. The last target is kept.
func (in *Input) Leave() {
	in.active = false
}

// Press queues a chomp for the next tick.
func (in *Input) Press() {
	in.chomp = true
}

func (in *Input) ToggleTrails() {
	in.trails = !in.trails
}

func (in *Input) ToggleGlow() {
	in.glow = !in.glow
}

// Snapshot returns the current state and clears one-shot triggers.
func (in *Input) Snapshot() InputSnapshot {
	s := InputSnapshot{
		Target: in.target,
		Active: in.active,
		Chomp:  in.chomp,
		Trails: in.trails,
		Glow:   in.glow,
	}
	in.chomp = false
	return s
}

// FrameClock turns wall-clock ticks into clamped frame deltas.
type FrameClock struct {
	max  float64
	last time.Time
}

// NewFrameClock clamps deltas to limit seconds; limit <= 0 uses MaxFrameDelta.
func NewFrameClock(limit float64) *FrameClock {
	if limit <= 0 {
		limit = MaxFrameDelta
	}
	return &FrameClock{max: limit}
}

// Tick returns the seconds since the previous Tick, clamped to [0, max].
// The first call returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt, c.max)
}

// ClampDelta bounds dt to [0, limit].
func ClampDelta(dt, limit float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}
