package creature

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentLengths(points []cp.Vector) []float64 {
	out := make([]float64, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		out = append(out, points[i].Distance(points[i+1]))
	}
	return out
}

func requireFinite(t *testing.T, points []cp.Vector) {
	t.Helper()
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("node %d is not finite: %v", i, p)
		}
	}
}

func TestNewChainColinearBehindAnchor(t *testing.T) {
	cfg := DefaultWorm().Chain
	anchor := cp.Vector{X: 400, Y: 300}
	c := NewChain(cfg, anchor)

	require.Equal(t, cfg.Nodes, c.Len())
	for i, p := range c.Points() {
		assert.InDelta(t, anchor.X-float64(i)*cfg.Rest, p.X, 1e-9)
		assert.InDelta(t, anchor.Y, p.Y, 1e-9)
	}
}

func TestChainAnchorPinned(t *testing.T) {
	anchors := []cp.Vector{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: -37.5, Y: 812.25}, {X: 3, Y: 3}}

	for _, nodes := range []int{2, 3, 18, 22, 40} {
		for _, base := range []Config{DefaultLizard(), DefaultWorm()} {
			cfg := base.Chain
			cfg.Nodes = nodes
			c := NewChain(cfg, cp.Vector{})
			for frame := 0; frame < 40; frame++ {
				a := anchors[frame%len(anchors)]
				pts := c.Step(a, 1.0/60)
				if pts[0] != a {
					t.Fatalf("%s n=%d frame %d: head %v, want %v", base.Name, nodes, frame, pts[0], a)
				}
			}
		}
	}
}

func TestChainConvergesFromCollapsed(t *testing.T) {
	still := DefaultLizard()
	still.Chain.Wiggle = 0

	cases := []struct {
		name string
		cfg  ChainConfig
	}{
		{"worm", DefaultWorm().Chain},
		{"lizard", DefaultLizard().Chain},
		{"lizard_without_wiggle", still.Chain},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anchor := cp.Vector{X: 200, Y: 150}
			ch := NewChain(c.cfg, anchor)
			for i := 0; i < ch.Len(); i++ {
				ch.SetPoint(i, anchor)
			}

			for frame := 0; frame < 200; frame++ {
				ch.Step(anchor, 1.0/60)
			}

			requireFinite(t, ch.Points())
			for i, d := range segmentLengths(ch.Points()) {
				assert.InDelta(t, c.cfg.Rest, d, c.cfg.Rest*0.05, "segment %d", i)
			}
		})
	}
}

func TestChainCoincidentNodesStayFinite(t *testing.T) {
	cases := []struct {
		name  string
		nodes int
		pairs [][2]int
	}{
		{"two_nodes_on_head", 2, [][2]int{{0, 1}}},
		{"mid_chain", 10, [][2]int{{4, 5}}},
		{"tail", 10, [][2]int{{8, 9}}},
		{"several", 12, [][2]int{{0, 1}, {3, 4}, {10, 11}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultLizard().Chain
			cfg.Nodes = c.nodes
			anchor := cp.Vector{X: 50, Y: 50}
			ch := NewChain(cfg, anchor)
			for _, pair := range c.pairs {
				ch.SetPoint(pair[1], ch.Points()[pair[0]])
			}

			pts := ch.Step(anchor, 1.0/60)
			requireFinite(t, pts)
			for _, pair := range c.pairs {
				assert.Greater(t, pts[pair[0]].Distance(pts[pair[1]]), 0.0)
			}
		})
	}
}

func TestChainFollowsAnchorJump(t *testing.T) {
	for _, base := range []Config{DefaultWorm(), DefaultLizard()} {
		t.Run(base.Name, func(t *testing.T) {
			cfg := base.Chain
			ch := NewChain(cfg, cp.Vector{})
			target := cp.Vector{X: 100}

			for i := 0; i < 3; i++ {
				ch.Step(target, 0.016)
			}
			pts := ch.Points()
			assert.Less(t, pts[0].Distance(pts[1]), 2*cfg.Rest)

			for i := 3; i < 100; i++ {
				ch.Step(target, 0.016)
			}
			requireFinite(t, ch.Points())
			for i, d := range segmentLengths(ch.Points()) {
				assert.InDelta(t, cfg.Rest, d, cfg.Rest*0.1, "segment %d", i)
			}
		})
	}
}

// The wiggle must not pump energy into the body: a resting lizard keeps its
// segments near rest length however long it wiggles.
func TestChainWiggleDoesNotAccumulate(t *testing.T) {
	cfg := DefaultLizard().Chain
	anchor := cp.Vector{X: 300, Y: 200}
	ch := NewChain(cfg, anchor)

	for frame := 0; frame < 600; frame++ {
		pts := ch.Step(anchor, 1.0/60)
		if frame < 150 {
			continue
		}
		for i, d := range segmentLengths(pts) {
			if math.Abs(d-cfg.Rest) > cfg.Rest*0.05 {
				t.Fatalf("frame %d segment %d: length %.3f", frame, i, d)
			}
		}
	}
}

func TestChainConfigureResizes(t *testing.T) {
	cfg := DefaultWorm().Chain
	ch := NewChain(cfg, cp.Vector{X: 10, Y: 10})
	ch.Step(cp.Vector{X: 30, Y: 10}, 1.0/60)

	cfg.Nodes = 6
	ch.Configure(cfg)
	require.Equal(t, 6, ch.Len())
	assert.Equal(t, cp.Vector{X: 30, Y: 10}, ch.Points()[0])

	pts := ch.Step(cp.Vector{X: 30, Y: 10}, 1.0/60)
	requireFinite(t, pts)
}
