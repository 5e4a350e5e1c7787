package creature

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("creature: invalid config")
	ErrTooFewNodes   = errors.New("creature: chain needs at least two nodes")
)

// MaxFrameDelta bounds a single tick. Longer pauses would overshoot the
// constraint correction and fling the chain apart.
const MaxFrameDelta = 0.033

// Kind selects how a render adapter draws the chain.
type Kind string

const (
	KindLizard Kind = "lizard"
	KindWorm   Kind = "worm"
)

// FollowConfig tunes the two cascaded trackers and the idle wander.
type FollowConfig struct {
	Decay       float64 `yaml:"decay" toml:"decay"`
	PinDecay    float64 `yaml:"pin_decay" toml:"pin_decay"`
	IdleDecay   float64 `yaml:"idle_decay" toml:"idle_decay"`
	WanderRate  float64 `yaml:"wander_rate" toml:"wander_rate"`
	WanderX     float64 `yaml:"wander_x" toml:"wander_x"`
	WanderY     float64 `yaml:"wander_y" toml:"wander_y"`
	WanderFreqX float64 `yaml:"wander_freq_x" toml:"wander_freq_x"`
	WanderFreqY float64 `yaml:"wander_freq_y" toml:"wander_freq_y"`
}

// Sine returns the built-in idle drift for these settings.
func (f FollowConfig) Sine() SineWander {
	return SineWander{AmpX: f.WanderX, AmpY: f.WanderY, FreqX: f.WanderFreqX, FreqY: f.WanderFreqY}
}

// ChainConfig tunes the verlet spine.
type ChainConfig struct {
	Nodes         int     `yaml:"nodes" toml:"nodes"`
	Rest          float64 `yaml:"rest" toml:"rest"`
	Damping       float64 `yaml:"damping" toml:"damping"`
	Stiffness     float64 `yaml:"stiffness" toml:"stiffness"`
	HeadStiffness float64 `yaml:"head_stiffness" toml:"head_stiffness"`
	TailStiffness float64 `yaml:"tail_stiffness" toml:"tail_stiffness"`
	AnchorBias    float64 `yaml:"anchor_bias" toml:"anchor_bias"`
	BackShare     float64 `yaml:"back_share" toml:"back_share"`
	Iterations    int     `yaml:"iterations" toml:"iterations"`
	MinDistance   float64 `yaml:"min_distance" toml:"min_distance"`
	Wiggle        float64 `yaml:"wiggle" toml:"wiggle"`
	WaveRate      float64 `yaml:"wave_rate" toml:"wave_rate"`
	WaveFreq      float64 `yaml:"wave_freq" toml:"wave_freq"`
	WaveSpacing   float64 `yaml:"wave_spacing" toml:"wave_spacing"`
	Jitter        float64 `yaml:"jitter" toml:"jitter"`
}

// LimbConfig attaches a pair of legs to a chain node.
type LimbConfig struct {
	Node   int     `yaml:"node" toml:"node"`
	Length float64 `yaml:"length" toml:"length"`
}

// PoseConfig tunes facing, jaw and gait.
type PoseConfig struct {
	TurnRate     float64      `yaml:"turn_rate" toml:"turn_rate"`
	JawRate      float64      `yaml:"jaw_rate" toml:"jaw_rate"`
	GestureDecay float64      `yaml:"gesture_decay" toml:"gesture_decay"`
	GaitRate     float64      `yaml:"gait_rate" toml:"gait_rate"`
	SwingFreq    float64      `yaml:"swing_freq" toml:"swing_freq"`
	Swing        float64      `yaml:"swing" toml:"swing"`
	PhaseSpacing float64      `yaml:"phase_spacing" toml:"phase_spacing"`
	LowerLag     float64      `yaml:"lower_lag" toml:"lower_lag"`
	UpperRatio   float64      `yaml:"upper_ratio" toml:"upper_ratio"`
	LowerRatio   float64      `yaml:"lower_ratio" toml:"lower_ratio"`
	Limbs        []LimbConfig `yaml:"limbs" toml:"limbs"`
}

// Config is the full parameter set of one creature.
type Config struct {
	Name   string       `yaml:"name" toml:"name"`
	Kind   Kind         `yaml:"kind" toml:"kind"`
	Follow FollowConfig `yaml:"follow" toml:"follow"`
	Chain  ChainConfig  `yaml:"chain" toml:"chain"`
	Pose   PoseConfig   `yaml:"pose" toml:"pose"`
}

// DefaultLizard returns the skeletal lizard tuning.
func DefaultLizard() Config {
	return Config{
		Name: "lizard",
		Kind: KindLizard,
		Follow: FollowConfig{
			Decay:       0.001,
			PinDecay:    0.022,
			IdleDecay:   0.05,
			WanderRate:  2.2,
			WanderX:     12,
			WanderY:     10,
			WanderFreqX: 0.9,
			WanderFreqY: 1.2,
		},
		Chain: ChainConfig{
			Nodes:         22,
			Rest:          10,
			Damping:       0.96,
			Stiffness:     0.88,
			HeadStiffness: 0.38,
			TailStiffness: 0.22,
			AnchorBias:    0.65,
			BackShare:     0.45,
			Iterations:    8,
			MinDistance:   1,
			Wiggle:        0.55,
			WaveRate:      2.2,
			WaveFreq:      3,
			WaveSpacing:   0.55,
			Jitter:        2,
		},
		Pose: PoseConfig{
			TurnRate:     0.18,
			JawRate:      0.35,
			GestureDecay: 3.2,
			GaitRate:     2.2,
			SwingFreq:    4,
			Swing:        0.2,
			PhaseSpacing: 0.55,
			LowerLag:     0.9,
			UpperRatio:   0.55,
			LowerRatio:   0.55,
			Limbs: []LimbConfig{
				{Node: 4, Length: 16},
				{Node: 6, Length: 14},
				{Node: 12, Length: 16},
				{Node: 14, Length: 14},
			},
		},
	}
}

// DefaultWorm returns the segmented worm tuning. It follows more lazily
// and settles faster than the lizard.
func DefaultWorm() Config {
	return Config{
		Name: "worm",
		Kind: KindWorm,
		Follow: FollowConfig{
			Decay:       0.01,
			PinDecay:    0.05,
			IdleDecay:   0.05,
			WanderRate:  1.6,
			WanderX:     18,
			WanderY:     14,
			WanderFreqX: 0.7,
			WanderFreqY: 1.3,
		},
		Chain: ChainConfig{
			Nodes:         18,
			Rest:          14,
			Damping:       0.95,
			Stiffness:     1,
			HeadStiffness: 0.42,
			TailStiffness: 0.28,
			AnchorBias:    0.5,
			BackShare:     0.45,
			Iterations:    6,
			MinDistance:   1,
			Wiggle:        0.3,
			WaveRate:      1.6,
			WaveFreq:      4,
			WaveSpacing:   0.7,
		},
		Pose: PoseConfig{
			TurnRate:     0.22,
			JawRate:      0.35,
			GestureDecay: 2.5,
			GaitRate:     3,
			SwingFreq:    5,
			Swing:        0.45,
			PhaseSpacing: 1.1,
			LowerLag:     1.2,
			UpperRatio:   0.6,
			LowerRatio:   0.5,
			Limbs: []LimbConfig{
				{Node: 2, Length: 12},
				{Node: 4, Length: 12},
				{Node: 6, Length: 11},
				{Node: 8, Length: 11},
				{Node: 10, Length: 10},
				{Node: 12, Length: 9},
			},
		},
	}
}

// Validate reports the first parameter that would make the simulation
// unstable or meaningless.
func (c Config) Validate() error {
	f, ch, p := c.Follow, c.Chain, c.Pose
	switch {
	case ch.Nodes < 2:
		return fmt.Errorf("%w: %d nodes", ErrTooFewNodes, ch.Nodes)
	case !inOpen01(f.Decay):
		return fmt.Errorf("%w: follow.decay %v not in (0,1)", ErrInvalidConfig, f.Decay)
	case !inOpen01(f.PinDecay):
		return fmt.Errorf("%w: follow.pin_decay %v not in (0,1)", ErrInvalidConfig, f.PinDecay)
	case !inOpen01(f.IdleDecay):
		return fmt.Errorf("%w: follow.idle_decay %v not in (0,1)", ErrInvalidConfig, f.IdleDecay)
	case ch.Rest <= 0:
		return fmt.Errorf("%w: chain.rest must be positive", ErrInvalidConfig)
	case ch.Damping < 0 || ch.Damping >= 1:
		return fmt.Errorf("%w: chain.damping %v not in [0,1)", ErrInvalidConfig, ch.Damping)
	case ch.Iterations < 1:
		return fmt.Errorf("%w: chain.iterations must be at least 1", ErrInvalidConfig)
	case ch.MinDistance <= 0:
		return fmt.Errorf("%w: chain.min_distance must be positive", ErrInvalidConfig)
	case ch.Stiffness < 0 || ch.HeadStiffness < 0 || ch.TailStiffness < 0:
		return fmt.Errorf("%w: negative stiffness", ErrInvalidConfig)
	case ch.HeadStiffness < ch.TailStiffness:
		return fmt.Errorf("%w: head_stiffness below tail_stiffness", ErrInvalidConfig)
	case ch.AnchorBias < 0 || ch.AnchorBias > 1:
		return fmt.Errorf("%w: chain.anchor_bias %v not in [0,1]", ErrInvalidConfig, ch.AnchorBias)
	case ch.BackShare < 0 || ch.BackShare > 1:
		return fmt.Errorf("%w: chain.back_share %v not in [0,1]", ErrInvalidConfig, ch.BackShare)
	case p.GestureDecay <= 0:
		return fmt.Errorf("%w: pose.gesture_decay must be positive", ErrInvalidConfig)
	}
	for _, l := range p.Limbs {
		if l.Node < 0 || l.Node >= ch.Nodes-1 {
			return fmt.Errorf("%w: limb on node %d outside chain of %d", ErrInvalidConfig, l.Node, ch.Nodes)
		}
	}
	return nil
}

func inOpen01(v float64) bool {
	return v > 0 && v < 1
}
