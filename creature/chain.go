package creature

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
)

// Chain is a verlet point chain. Node 0 is pinned to the anchor; the rest
// carry their velocity implicitly as the gap between cur and prev.
type Chain struct {
	cfg   ChainConfig
	cur   []cp.Vector
	prev  []cp.Vector
	phase float64
}

// NewChain lays the nodes out colinear behind anchor along -x.
func NewChain(cfg ChainConfig, anchor cp.Vector) *Chain {
	n := cfg.Nodes
	if n < 2 {
		n = 2
	}
	c := &Chain{
		cfg:  cfg,
		cur:  make([]cp.Vector, n),
		prev: make([]cp.Vector, n),
	}
	c.Reset(anchor)
	return c
}

// Reset re-lays the chain behind anchor and zeroes every node's velocity.
func (c *Chain) Reset(anchor cp.Vector) {
	for i := range c.cur {
		p := cp.Vector{
			X: anchor.X - float64(i)*c.cfg.Rest,
			Y: anchor.Y + math.Sin(float64(i)*0.4)*c.cfg.Jitter,
		}
		if i == 0 {
			p = anchor
		}
		c.cur[i] = p
		c.prev[i] = p
	}
}

// Len returns the node count.
func (c *Chain) Len() int {
	return len(c.cur)
}

// Points returns the resolved positions. The slice is owned by the chain
// and overwritten by the next Step.
func (c *Chain) Points() []cp.Vector {
	return c.cur
}

// SetPoint places node i at p with zero velocity.
func (c *Chain) SetPoint(i int, p cp.Vector) {
	if i < 0 || i >= len(c.cur) {
		return
	}
	c.cur[i] = p
	c.prev[i] = p
}

// Configure swaps the tuning. A different node count rebuilds the chain
// behind its current head.
func (c *Chain) Configure(cfg ChainConfig) {
	head := c.cur[0]
	c.cfg = cfg
	if cfg.Nodes != len(c.cur) && cfg.Nodes >= 2 {
		c.cur = make([]cp.Vector, cfg.Nodes)
		c.prev = make([]cp.Vector, cfg.Nodes)
		c.Reset(head)
	}
}

// Step pins node 0 to anchor, integrates the body and relaxes the distance
// constraints. Distances approach Rest but are never forced onto it.
func (c *Chain) Step(anchor cp.Vector, dt float64) []cp.Vector {
	cfg := c.cfg
	n := len(c.cur)

	c.phase += dt * cfg.WaveRate
	c.cur[0] = anchor
	c.prev[0] = anchor

	wave := cfg.Wiggle * dt / common.RefFrame
	for i := 1; i < n; i++ {
		v := c.cur[i].Sub(c.prev[i]).Mult(cfg.Damping)
		c.prev[i] = c.cur[i]

		if wave != 0 {
			normal := cp.Vector{Y: 1}
			if seg := c.cur[i].Sub(c.cur[i-1]); seg.Length() > 0 {
				normal = seg.Mult(1 / seg.Length()).Perp()
			}
			// The wiggle shifts the node without feeding its velocity.
			shift := normal.Mult(math.Sin(c.phase*cfg.WaveFreq+float64(i)*cfg.WaveSpacing) * wave)
			c.prev[i] = c.prev[i].Add(shift)
			v = v.Add(shift)
		}
		c.cur[i] = c.cur[i].Add(v)
	}

	last := float64(n - 1)
	for iter := 0; iter < cfg.Iterations; iter++ {
		c.cur[0] = anchor
		for i := 0; i < n-1; i++ {
			delta := c.cur[i+1].Sub(c.cur[i])
			d := delta.Length()
			if d == 0 {
				d = cfg.MinDistance
				delta = c.fallbackDir(i).Mult(d)
			}

			diff := (d - cfg.Rest) / d
			t := float64(i) / last
			w := 1 - t
			k := common.Lerp(cfg.HeadStiffness, cfg.TailStiffness, t) * cfg.Stiffness
			corr := delta.Mult(diff * k * (1 - w*cfg.AnchorBias))

			c.cur[i+1] = c.cur[i+1].Sub(corr)
			if i != 0 {
				c.cur[i] = c.cur[i].Add(corr.Mult(cfg.BackShare))
			}
		}
	}
	return c.cur
}

// fallbackDir points away from the head for a collapsed pair at (i, i+1).
func (c *Chain) fallbackDir(i int) cp.Vector {
	if i > 0 {
		dir := c.cur[i].Sub(c.cur[i-1])
		if l := dir.Length(); l > 0 {
			return dir.Mult(1 / l)
		}
	}
	return cp.Vector{X: -1}
}
