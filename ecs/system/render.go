package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/common"
	"github.com/milk9111/skelecursor/creature"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/prefabs"
	"golang.org/x/image/colornames"
)

// skullLength is the snout length the skull outline is drawn at before
// scaling to the spec's head length.
const skullLength = 26.0

// Palette is a resolved set of draw colors.
type Palette struct {
	Bone       color.Color
	BoneShadow color.Color
	Eye        color.Color
	Aura       color.Color
	Background color.Color
	Dust       color.Color
}

// ResolvePalette fills unset spec colors with fixed defaults.
func ResolvePalette(spec *prefabs.CreatureSpec) Palette {
	var p prefabs.PaletteSpec
	if spec != nil {
		p = spec.Render.Palette
	}
	return Palette{
		Bone:       prefabs.ColorOr(p.Bone, colornames.Aliceblue),
		BoneShadow: prefabs.ColorOr(p.BoneShadow, withAlpha(colornames.Aliceblue, 0.25)),
		Eye:        prefabs.ColorOr(p.Eye, colornames.Lightcoral),
		Aura:       prefabs.ColorOr(p.Aura, colornames.Lightskyblue),
		Background: prefabs.ColorOr(p.Background, color.NRGBA{R: 7, G: 9, B: 17, A: 255}),
		Dust:       prefabs.ColorOr(p.Dust, colornames.Aliceblue),
	}
}

// BackgroundColor is the clear color of the first creature's palette.
func BackgroundColor(w *ecs.World) color.Color {
	_, c, ok := ecs.First(w, component.CreatureComponent.Kind())
	if !ok {
		return ResolvePalette(nil).Background
	}
	return ResolvePalette(c.Spec).Background
}

// CreatureRenderSystem draws each creature's trail, aura and body from its
// last Frame.
type CreatureRenderSystem struct{}

func NewCreatureRenderSystem() *CreatureRenderSystem {
	return &CreatureRenderSystem{}
}

func (r *CreatureRenderSystem) Update(w *ecs.World) {}

func (r *CreatureRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.CreatureComponent.Kind(), func(e ecs.Entity, c *component.Creature) {
		f := &c.Frame
		if len(f.Points) < 2 {
			return
		}
		pal := ResolvePalette(c.Spec)
		head := f.Points[0]

		if f.Glow {
			drawAura(screen, head, 58, pal.Aura, 0.28)
		}
		if tr, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok && f.Trails {
			drawTrail(screen, tr.Points, pal.Aura)
		}

		headLen := skullLength
		if c.Spec != nil && c.Spec.Render.HeadLength > 0 {
			headLen = c.Spec.Render.HeadLength
		}

		kind := creature.KindLizard
		if c.Sim != nil {
			kind = c.Sim.Config().Kind
		}
		switch kind {
		case creature.KindWorm:
			drawWorm(screen, f, pal, headLen)
		default:
			drawSpine(screen, f.Points, pal)
			drawRibs(screen, f.Points, pal.Bone)
			for _, l := range f.Pose.Limbs {
				drawLimb(screen, l, pal.Bone)
			}
			drawSkull(screen, f, pal, headLen/skullLength)
		}
	})
}

func drawAura(screen *ebiten.Image, at cp.Vector, radius float64, clr color.Color, alpha float64) {
	const rings = 8
	for i := rings; i >= 1; i-- {
		r := radius * float64(i) / rings
		vector.FillCircle(screen, float32(at.X), float32(at.Y), float32(r), withAlpha(clr, alpha/rings), true)
	}
}

func drawTrail(screen *ebiten.Image, pts []cp.Vector, clr color.Color) {
	if len(pts) <= 2 {
		return
	}
	c := withAlpha(clr, 0.20)
	for i := 1; i < len(pts); i++ {
		strokeLine(screen, pts[i-1], pts[i], 2, c)
	}
}

func drawSpine(screen *ebiten.Image, pts []cp.Vector, pal Palette) {
	for i := 1; i < len(pts); i++ {
		strokeLine(screen, pts[i-1], pts[i], 7, pal.BoneShadow)
	}
	for i := 1; i < len(pts); i++ {
		strokeLine(screen, pts[i-1], pts[i], 2.4, pal.Bone)
	}
	last := float64(len(pts) - 1)
	for i, p := range pts {
		r := 3.1
		if i == 0 {
			r = 4.2
		}
		alpha := 0.55 - float64(i)/last*0.25
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(r), withAlpha(pal.Bone, alpha), true)
	}
}

// drawRibs draws cross ribs on nodes 2..7, longest near the head.
func drawRibs(screen *ebiten.Image, pts []cp.Vector, clr color.Color) {
	c := withAlpha(clr, 0.65)
	for i := 2; i < 8 && i+1 < len(pts); i++ {
		p, next := pts[i], pts[i+1]
		ang := math.Atan2(next.Y-p.Y, next.X-p.X) + math.Pi/2
		half := cp.ForAngle(ang).Mult(10 + float64(8-i)*1.8)
		strokeLine(screen, p.Sub(half), p.Add(half), 1.8, c)
	}
}

func drawLimb(screen *ebiten.Image, l creature.LimbPose, clr color.Color) {
	outer := withAlpha(clr, 0.25)
	inner := withAlpha(clr, 0.82)
	strokeLine(screen, l.Root, l.Elbow, 6, outer)
	strokeLine(screen, l.Elbow, l.Foot, 6, outer)
	strokeLine(screen, l.Root, l.Elbow, 2.1, inner)
	strokeLine(screen, l.Elbow, l.Foot, 2.1, inner)

	joint := withAlpha(clr, 0.9)
	vector.FillCircle(screen, float32(l.Elbow.X), float32(l.Elbow.Y), 2.2, joint, true)
	vector.FillCircle(screen, float32(l.Foot.X), float32(l.Foot.Y), 2.0, joint, true)
}

// local maps skull-space points to the screen: origin at the head node,
// x along the facing.
type local struct {
	origin cp.Vector
	rot    cp.Vector
	scale  float64
}

func (l local) at(x, y float64) cp.Vector {
	return l.origin.Add(l.rot.Rotate(cp.Vector{X: x, Y: y}.Mult(l.scale)))
}

func (l local) poly(screen *ebiten.Image, width float32, clr color.Color, pts ...cp.Vector) {
	for i := range pts {
		a := l.at(pts[i].X, pts[i].Y)
		b := l.at(pts[(i+1)%len(pts)].X, pts[(i+1)%len(pts)].Y)
		strokeLine(screen, a, b, width, clr)
	}
}

func drawSkull(screen *ebiten.Image, f *creature.Frame, pal Palette, scale float64) {
	head, neck := f.Points[0], f.Points[1]
	sk := local{origin: head, rot: cp.ForAngle(f.Pose.Facing), scale: scale}

	if f.Glow {
		drawAura(screen, sk.at(6, 0), 36*scale, pal.Aura, 0.35)
	}

	// cranium
	fill := withAlpha(pal.Bone, 0.10)
	stroke := withAlpha(pal.Bone, 0.92)
	c := sk.at(6, 0)
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(9*scale), fill, true)
	const steps = 24
	cranium := make([]cp.Vector, steps)
	for i := range cranium {
		a := float64(i) / steps * 2 * math.Pi
		cranium[i] = cp.Vector{X: 6 + math.Cos(a)*12, Y: math.Sin(a) * 9}
	}
	sk.poly(screen, 2.2, stroke, cranium...)

	// snout
	sk.poly(screen, 2.2, stroke, cp.Vector{X: 12, Y: -5}, cp.Vector{X: 26, Y: -2}, cp.Vector{X: 26, Y: 2}, cp.Vector{X: 12, Y: 5})

	// jaw hinges at (14, 2) and swings open with the gesture
	jaw := local{origin: sk.at(14, 2), rot: sk.rot.Rotate(cp.ForAngle(f.Pose.Jaw * 0.75)), scale: scale}
	jaw.poly(screen, 2.0, withAlpha(pal.Bone, 0.88), cp.Vector{}, cp.Vector{X: 14, Y: 4}, cp.Vector{X: 14, Y: 8}, cp.Vector{Y: 6})

	teeth := withAlpha(pal.Bone, 0.55)
	for i := 0; i < 5; i++ {
		tx := 14 + float64(i)*2.2
		strokeLine(screen, sk.at(tx, -1.5), sk.at(tx+0.7, 1.0), 1, teeth)
	}

	eye := sk.at(6, -2.2)
	if f.Glow {
		vector.FillCircle(screen, float32(eye.X), float32(eye.Y), float32(5*scale), withAlpha(pal.Eye, 0.25), true)
	}
	vector.FillCircle(screen, float32(eye.X), float32(eye.Y), float32(2.2*scale), pal.Eye, true)

	strokeLine(screen, neck, head, 2, withAlpha(pal.Bone, 0.6))
}

// drawWorm draws shrinking segment discs, the leg pairs and a pincer head.
func drawWorm(screen *ebiten.Image, f *creature.Frame, pal Palette, headLen float64) {
	pts := f.Points
	for _, l := range f.Pose.Limbs {
		strokeLine(screen, l.Root, l.Elbow, 2, withAlpha(pal.Bone, 0.6))
		strokeLine(screen, l.Elbow, l.Foot, 1.5, withAlpha(pal.Bone, 0.8))
	}

	last := float64(len(pts) - 1)
	for i := len(pts) - 1; i >= 0; i-- {
		t := float64(i) / last
		r := 7 - 4*t
		p := pts[i]
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(r), pal.Background, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r), 1.6, withAlpha(pal.Bone, 0.9-0.5*t), true)
	}

	head := pts[0]
	dir := cp.ForAngle(f.Pose.Facing)
	side := dir.Perp()
	open := f.Pose.Jaw * 0.6
	for _, s := range []float64{1, -1} {
		base := head.Add(dir.Mult(headLen * 0.4)).Add(side.Mult(s * 3))
		tip := base.Add(dir.Rotate(cp.ForAngle(s * (open - 0.25))).Mult(headLen * 0.6))
		strokeLine(screen, base, tip, 2, pal.Bone)

		eye := head.Add(dir.Mult(2)).Add(side.Mult(s * 3.2))
		vector.FillCircle(screen, float32(eye.X), float32(eye.Y), 1.6, pal.Eye, true)
	}
}

func strokeLine(screen *ebiten.Image, a, b cp.Vector, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// withAlpha scales clr's alpha by a in [0, 1].
func withAlpha(clr color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * common.Clamp01(a)))
	return n
}
