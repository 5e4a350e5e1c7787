// Package creature is the headless core of the cursor creature: target
// tracking, the verlet spine and the pose derived from it. Nothing here
// draws; renderers consume Frame.
//
// All operations assume finite inputs. NaN or infinite coordinates are a
// caller contract violation and propagate through the chain unchecked.
package creature

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Frame is the read-only result of one tick.
type Frame struct {
	Points []cp.Vector
	Anchor cp.Vector
	Cursor cp.Vector
	Offset cp.Vector
	Idle   float64
	Pose   PoseFrame
	Trails bool
	Glow   bool
}

// Sim owns one creature's whole simulation state. It is driven by a single
// frame loop and is not safe for concurrent use.
type Sim struct {
	cfg     Config
	follow  *Tracker
	pin     *Tracker
	chain   *Chain
	gesture *Gesture
	pose    *Pose
}

// New builds a creature resting at start.
func New(cfg Config, start cp.Vector) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creature %q: %w", cfg.Name, err)
	}
	return &Sim{
		cfg:     cfg,
		follow:  NewFollowTracker(cfg.Follow, start),
		pin:     NewTracker(cfg.Follow.PinDecay, cfg.Follow.IdleDecay, 0, nil, start),
		chain:   NewChain(cfg.Chain, start),
		gesture: NewGesture(cfg.Pose.GestureDecay, cfg.Pose.JawRate),
		pose:    NewPose(cfg.Pose, 0),
	}, nil
}

func (s *Sim) Config() Config {
	return s.cfg
}

func (s *Sim) Chain() *Chain {
	return s.chain
}

func (s *Sim) Gesture() *Gesture {
	return s.gesture
}

// Wander returns the follow tracker's idle drift.
func (s *Sim) Wander() Wander {
	return s.follow.wander
}

// SetWander replaces the idle drift of the follow tracker.
func (s *Sim) SetWander(w Wander) {
	s.follow.SetWander(w)
}

// Reconfigure applies new tuning in place. The creature keeps its position;
// a changed node count re-lays the chain behind the head.
func (s *Sim) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("creature %q: %w", cfg.Name, err)
	}
	f := cfg.Follow
	s.follow.Configure(f.Decay, f.IdleDecay, f.WanderRate)
	// Scripted wanders survive a retune; only the built-in sine follows the config.
	if _, builtin := s.follow.wander.(SineWander); builtin || s.follow.wander == nil {
		s.follow.SetWander(f.Sine())
	}
	s.pin.Configure(f.PinDecay, f.IdleDecay, 0)
	s.chain.Configure(cfg.Chain)
	s.gesture.Configure(cfg.Pose.GestureDecay, cfg.Pose.JawRate)
	s.pose.Configure(cfg.Pose)
	s.cfg = cfg
	return nil
}

// Tick advances the creature by dt seconds (clamped to MaxFrameDelta):
// trackers, then chain, then pose.
func (s *Sim) Tick(in InputSnapshot, dt float64) Frame {
	dt = ClampDelta(dt, MaxFrameDelta)

	if in.Chomp {
		s.gesture.Trigger()
	}

	s.follow.Advance(in.Target, in.Active, dt)
	cursor := s.follow.Position()
	offset := s.follow.Offset()
	pin := s.pin.Advance(cursor, true, dt)
	anchor := pin.Add(offset)

	points := s.chain.Step(anchor, dt)
	pose := s.pose.Derive(points, s.gesture, dt)

	return Frame{
		Points: points,
		Anchor: anchor,
		Cursor: cursor,
		Offset: offset,
		Idle:   s.follow.Idle(),
		Pose:   pose,
		Trails: in.Trails,
		Glow:   in.Glow,
	}
}
