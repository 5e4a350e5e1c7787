package system

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"golang.org/x/image/colornames"
)

// DustSystem keeps the ambient motes in the physics world in sync with the
// Dust component, steps them and draws them. A viewport resize respreads
// the motes over the new area.
type DustSystem struct {
	rng *rand.Rand
}

func NewDustSystem(seed int64) *DustSystem {
	return &DustSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *DustSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	width, height := float64(common.BaseWidth), float64(common.BaseHeight)
	if _, vp, ok := ecs.First(w, component.ViewportComponent.Kind()); ok {
		width, height = vp.Width, vp.Height
	}
	resized := false
	if bw, bh := pw.Bounds(); bw != width || bh != height {
		pw.Resize(width, height)
		resized = true
	}

	want := 0
	if _, d, ok := ecs.First(w, component.DustComponent.Kind()); ok {
		want = d.Count
	}
	if resized || len(pw.Motes()) != want {
		pw.Clear()
		for i := 0; i < want; i++ {
			s.spawn(pw, width, height)
		}
	}

	pw.Step(w.Delta())
}

// spawn places one mote. Drift is given in px per 60 Hz frame and
// converted to px/s.
func (s *DustSystem) spawn(pw *ecs.PhysicsWorld, width, height float64) {
	pos := cp.Vector{X: s.rng.Float64() * width, Y: s.rng.Float64() * height}
	vel := cp.Vector{
		X: (s.rng.Float64() - 0.5) * 0.1 / common.RefFrame,
		Y: (s.rng.Float64() - 0.5) * 0.08 / common.RefFrame,
	}
	pw.AddMote(pos, vel, s.rng.Float64()*1.2+0.2, s.rng.Float64()*0.18+0.05)
}

func (s *DustSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	var base color.Color = colornames.Aliceblue
	if _, d, ok := ecs.First(w, component.DustComponent.Kind()); ok && d.Color != nil {
		base = d.Color
	}
	for _, m := range pw.Motes() {
		p := m.Position()
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(m.Radius), withAlpha(base, m.Alpha), true)
	}
}
