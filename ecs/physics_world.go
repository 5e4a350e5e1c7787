package ecs

import (
	"github.com/jakecoffman/cp"
)

// MoteMargin is how far a mote may drift outside the viewport before it
// wraps to the opposite edge.
const MoteMargin = 20.0

// Mote is one ambient dust particle. Only its body is simulated; radius and
// alpha are for drawing.
type Mote struct {
	Body   *cp.Body
	Radius float64
	Alpha  float64
}

// Position returns the mote's current position.
func (m *Mote) Position() cp.Vector {
	if m == nil || m.Body == nil {
		return cp.Vector{}
	}
	return m.Body.Position()
}

// PhysicsWorld owns the Chipmunk space the dust motes drift in. There is no
// gravity and nothing collides, so every body keeps its velocity.
type PhysicsWorld struct {
	space  *cp.Space
	motes  []*Mote
	width  float64
	height float64
}

// NewPhysicsWorld creates an empty space wrapping at the given bounds.
func NewPhysicsWorld(width, height float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:  space,
		width:  width,
		height: height,
	}
}

// Resize changes the wrap bounds.
func (pw *PhysicsWorld) Resize(width, height float64) {
	if pw == nil {
		return
	}
	pw.width = width
	pw.height = height
}

// Bounds returns the wrap bounds.
func (pw *PhysicsWorld) Bounds() (float64, float64) {
	if pw == nil {
		return 0, 0
	}
	return pw.width, pw.height
}

// AddMote adds a free-drifting body with velocity vel in px/s.
func (pw *PhysicsWorld) AddMote(pos, vel cp.Vector, radius, alpha float64) *Mote {
	if pw == nil || pw.space == nil {
		return nil
	}
	const mass = 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius+1, cp.Vector{}))
	body.SetPosition(pos)
	body.SetVelocity(vel.X, vel.Y)
	pw.space.AddBody(body)

	m := &Mote{Body: body, Radius: radius, Alpha: alpha}
	pw.motes = append(pw.motes, m)
	return m
}

// Motes returns the live motes.
func (pw *PhysicsWorld) Motes() []*Mote {
	if pw == nil {
		return nil
	}
	return pw.motes
}

// Clear removes every mote from the space.
func (pw *PhysicsWorld) Clear() {
	if pw == nil {
		return
	}
	for _, m := range pw.motes {
		pw.space.RemoveBody(m.Body)
	}
	pw.motes = nil
}

// Step advances the space by dt seconds and wraps motes that left the
// bounds by more than MoteMargin.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
	for _, m := range pw.motes {
		pos := m.Body.Position()
		if wrapped, ok := wrapPoint(pos, pw.width, pw.height); ok {
			m.Body.SetPosition(wrapped)
		}
	}
}

func wrapPoint(p cp.Vector, width, height float64) (cp.Vector, bool) {
	out := p
	if out.X < -MoteMargin {
		out.X = width + MoteMargin
	} else if out.X > width+MoteMargin {
		out.X = -MoteMargin
	}
	if out.Y < -MoteMargin {
		out.Y = height + MoteMargin
	} else if out.Y > height+MoteMargin {
		out.Y = -MoteMargin
	}
	return out, out != p
}
