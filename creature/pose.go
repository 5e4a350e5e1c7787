package creature

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
)

// Side says which flank a limb hangs from.
type Side int

const (
	SideLeft  Side = 1
	SideRight Side = -1
)

// LimbPose is one resolved two-segment leg.
type LimbPose struct {
	Node  int
	Side  Side
	Upper float64 // swing of the upper segment, radians
	Lower float64 // swing of the lower segment relative to the upper
	Root  cp.Vector
	Elbow cp.Vector
	Foot  cp.Vector
}

// PoseFrame is what the pose deriver hands to a renderer each tick.
type PoseFrame struct {
	Facing    float64
	Jaw       float64
	GaitPhase float64
	Limbs     []LimbPose
}

// Pose derives orientation, jaw opening and gait from a resolved chain.
type Pose struct {
	cfg    PoseConfig
	facing float64
	gait   float64
	limbs  []LimbPose
}

func NewPose(cfg PoseConfig, facing float64) *Pose {
	return &Pose{cfg: cfg, facing: facing}
}

func (p *Pose) Facing() float64 {
	return p.facing
}

func (p *Pose) GaitPhase() float64 {
	return p.gait
}

func (p *Pose) Configure(cfg PoseConfig) {
	p.cfg = cfg
}

// Derive updates facing and gait from points. gesture may be nil. The
// returned Limbs slice is reused by the next call.
func (p *Pose) Derive(points []cp.Vector, gesture *Gesture, dt float64) PoseFrame {
	p.facing = SmoothFacing(p.facing, points, common.PerFrame(p.cfg.TurnRate, dt))
	p.gait += dt * p.cfg.GaitRate

	jaw := 0.0
	if gesture != nil {
		gesture.Update(dt)
		jaw = gesture.Smoothed()
	}

	p.limbs = p.limbs[:0]
	for _, l := range p.cfg.Limbs {
		if l.Node < 0 || l.Node >= len(points) {
			continue
		}
		p.limbs = append(p.limbs, p.limb(points, l, SideLeft), p.limb(points, l, SideRight))
	}

	return PoseFrame{
		Facing:    p.facing,
		Jaw:       jaw,
		GaitPhase: p.gait,
		Limbs:     p.limbs,
	}
}

// SmoothFacing blends prev toward the neck-to-head direction along the
// short arc. Fewer than two points leave prev untouched.
func SmoothFacing(prev float64, points []cp.Vector, t float64) float64 {
	if len(points) < 2 {
		return prev
	}
	d := points[0].Sub(points[1])
	if d.X == 0 && d.Y == 0 {
		return prev
	}
	return LerpFacing(prev, math.Atan2(d.Y, d.X), t)
}

// LerpFacing keeps the result in (-π, π].
func LerpFacing(prev, target, t float64) float64 {
	a := common.LerpAngle(prev, target, t)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// SwingPhase is the gait angle of the upper segment for a limb on node at side.
func (p *Pose) SwingPhase(node int, side Side) float64 {
	phase := p.gait*p.cfg.SwingFreq + float64(node)*p.cfg.PhaseSpacing
	if side == SideRight {
		phase += math.Pi
	}
	return phase
}

func (p *Pose) limb(points []cp.Vector, l LimbConfig, side Side) LimbPose {
	root := points[l.Node]
	var body cp.Vector
	if l.Node+1 < len(points) {
		body = points[l.Node+1].Sub(root)
	} else if l.Node > 0 {
		body = root.Sub(points[l.Node-1])
	}
	dir := math.Atan2(body.Y, body.X)
	out := dir + float64(side)*math.Pi/2

	phase := p.SwingPhase(l.Node, side)
	upper := math.Sin(phase) * p.cfg.Swing
	lower := math.Sin(phase-p.cfg.LowerLag) * p.cfg.Swing

	ua := out + upper
	elbow := root.Add(cp.ForAngle(ua).Mult(l.Length * p.cfg.UpperRatio))
	foot := elbow.Add(cp.ForAngle(ua + lower).Mult(l.Length * p.cfg.LowerRatio))

	return LimbPose{
		Node:  l.Node,
		Side:  side,
		Upper: upper,
		Lower: lower,
		Root:  root,
		Elbow: elbow,
		Foot:  foot,
	}
}
