package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
)

// InputSystem writes pointer and key events into every creature's input
// buffer. A cursor outside the viewport or an unfocused window counts as the
// pointer leaving.
type InputSystem struct {
	controls Controls
}

func NewInputSystem(controls Controls) *InputSystem {
	if controls == nil {
		controls = EbitenControls{}
	}
	return &InputSystem{controls: controls}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	x, y := i.controls.CursorPosition()
	inside := i.controls.Focused()
	if _, vp, ok := ecs.First(w, component.ViewportComponent.Kind()); ok && inside {
		inside = vp.Contains(x, y)
	}

	chomp := i.controls.MouseJustPressed() || i.controls.KeyJustPressed(ebiten.KeySpace)
	toggleTrails := i.controls.KeyJustPressed(ebiten.KeyT)
	toggleGlow := i.controls.KeyJustPressed(ebiten.KeyG)

	ecs.ForEach(w, component.CreatureComponent.Kind(), func(_ ecs.Entity, c *component.Creature) {
		if c.Input == nil {
			return
		}
		if inside {
			c.Input.MoveTo(x, y)
		} else {
			c.Input.Leave()
		}
		if chomp && inside {
			c.Input.Press()
		}
		if toggleTrails {
			c.Input.ToggleTrails()
		}
		if toggleGlow {
			c.Input.ToggleGlow()
		}
	})
}
