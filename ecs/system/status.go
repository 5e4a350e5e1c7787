package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const statusTTL = 2.5

// StatusSystem turns reload, tuning and status events into a short-lived
// message line, plus an optional debug line.
type StatusSystem struct {
	face ebtext.Face
}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (s *StatusSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, st, ok := ecs.First(w, component.StatusComponent.Kind())
	if !ok {
		return
	}

	if st.TTL > 0 {
		st.TTL -= w.Delta()
		if st.TTL <= 0 {
			st.TTL = 0
			st.Text = ""
		}
	}

	for _, evt := range w.Events().Of(ecs.EventSpecReloaded) {
		st.Text, st.TTL = fmt.Sprintf("reloaded %v", evt.Data), statusTTL
	}
	for _, evt := range w.Events().Of(ecs.EventTuningChanged) {
		st.Text, st.TTL = fmt.Sprint(evt.Data), statusTTL
	}
	for _, evt := range w.Events().Of(ecs.EventStatus) {
		st.Text, st.TTL = fmt.Sprint(evt.Data), statusTTL
	}

	if st.Debug {
		st.DebugText = debugLine(w)
	}
}

func debugLine(w *ecs.World) string {
	line := fmt.Sprintf("fps %.0f  tps %.0f  dt %.4f", ebiten.ActualFPS(), ebiten.ActualTPS(), w.Delta())
	ecs.ForEach(w, component.CreatureComponent.Kind(), func(_ ecs.Entity, c *component.Creature) {
		name := ""
		if c.Spec != nil {
			name = c.Spec.Name
		}
		line += fmt.Sprintf("  %s nodes %d idle %.2f jaw %.2f", name, len(c.Frame.Points), c.Frame.Idle, c.Frame.Pose.Jaw)
	})
	return line
}

func (s *StatusSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	_, st, ok := ecs.First(w, component.StatusComponent.Kind())
	if !ok {
		return
	}
	y := 12.0
	if st.Debug && st.DebugText != "" {
		s.drawLine(screen, st.DebugText, y, 1)
		y += 16
	}
	if st.Text != "" {
		alpha := 1.0
		if st.TTL < 0.5 {
			alpha = st.TTL / 0.5
		}
		s.drawLine(screen, st.Text, y, alpha)
	}
}

func (s *StatusSystem) drawLine(screen *ebiten.Image, line string, y, alpha float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(12, y)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xdc, G: 0xf5, B: 0xff, A: 0xff})
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(screen, line, s.face, op)
}
