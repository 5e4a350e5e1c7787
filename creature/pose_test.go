package creature

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacingTakesShortArc(t *testing.T) {
	got := common.LerpAngle(3.0, -3.0, 0.5)
	assert.Greater(t, got, 3.0, "went the long way through zero")
	assert.InDelta(t, math.Pi, got, 1e-9)

	back := common.LerpAngle(-3.0, 3.0, 0.5)
	assert.Less(t, back, -3.0)
	assert.InDelta(t, -math.Pi, back, 1e-9)
}

func TestLerpFacingStaysInRange(t *testing.T) {
	a := 3.0
	for i := 0; i < 50; i++ {
		a = LerpFacing(a, -2.5, 0.18)
		require.LessOrEqual(t, a, math.Pi)
		require.Greater(t, a, -math.Pi)
	}
	assert.InDelta(t, -2.5, a, 1e-3)
}

func TestSmoothFacingFollowsNeckToHead(t *testing.T) {
	cases := []struct {
		name   string
		points []cp.Vector
		want   float64
	}{
		{"right", []cp.Vector{{X: 10}, {X: 0}}, 0},
		{"down", []cp.Vector{{Y: 10}, {Y: 0}}, math.Pi / 2},
		{"left", []cp.Vector{{X: -10}, {X: 0}}, math.Pi},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SmoothFacing(0.1, c.points, 1)
			assert.InDelta(t, 0, common.AngleDelta(got, c.want), 1e-9)
		})
	}

	assert.Equal(t, 0.7, SmoothFacing(0.7, []cp.Vector{{X: 1}}, 1))
	assert.Equal(t, 0.7, SmoothFacing(0.7, []cp.Vector{{X: 1}, {X: 1}}, 1))
}

func TestPoseLimbsAlternate(t *testing.T) {
	cfg := DefaultLizard()
	pose := NewPose(cfg.Pose, 0)
	ch := NewChain(cfg.Chain, cp.Vector{X: 200, Y: 200})

	frame := pose.Derive(ch.Points(), nil, 0.25)
	require.Len(t, frame.Limbs, 2*len(cfg.Pose.Limbs))
	assert.InDelta(t, 0.25*cfg.Pose.GaitRate, frame.GaitPhase, 1e-12)

	for i := 0; i < len(frame.Limbs); i += 2 {
		left, right := frame.Limbs[i], frame.Limbs[i+1]
		require.Equal(t, SideLeft, left.Side)
		require.Equal(t, SideRight, right.Side)
		require.Equal(t, left.Node, right.Node)

		// Opposite sides swing half a cycle apart.
		assert.InDelta(t, left.Upper, -right.Upper, 1e-9)
		assert.InDelta(t, math.Pi, pose.SwingPhase(right.Node, SideRight)-pose.SwingPhase(left.Node, SideLeft), 1e-9)

		// The lower segment lags the upper one.
		phase := pose.SwingPhase(left.Node, SideLeft)
		assert.InDelta(t, math.Sin(phase-cfg.Pose.LowerLag)*cfg.Pose.Swing, left.Lower, 1e-9)

		limb := cfg.Pose.Limbs[i/2]
		assert.InDelta(t, limb.Length*cfg.Pose.UpperRatio, left.Root.Distance(left.Elbow), 1e-9)
		assert.InDelta(t, limb.Length*cfg.Pose.LowerRatio, left.Elbow.Distance(left.Foot), 1e-9)
	}
}

func TestPoseJawFollowsGesture(t *testing.T) {
	cfg := DefaultLizard().Pose
	pose := NewPose(cfg, 0)
	g := NewGesture(cfg.GestureDecay, cfg.JawRate)
	pts := []cp.Vector{{X: 10}, {}}

	g.Trigger()
	first := pose.Derive(pts, g, 1.0/60)
	assert.Greater(t, first.Jaw, 0.0)
	assert.Less(t, first.Jaw, g.Value())

	peak := first.Jaw
	for i := 0; i < 5; i++ {
		f := pose.Derive(pts, g, 1.0/60)
		if f.Jaw > peak {
			peak = f.Jaw
		}
	}
	assert.Greater(t, peak, first.Jaw)

	for i := 0; i < 240; i++ {
		pose.Derive(pts, g, 1.0/60)
	}
	assert.InDelta(t, 0, g.Smoothed(), 1e-3)
}
