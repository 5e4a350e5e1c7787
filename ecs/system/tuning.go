package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skelecursor/common"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/prefabs"
	"golang.design/x/clipboard"
)

const (
	stiffnessStep = 0.05
	stiffnessMin  = 0.05
	stiffnessMax  = 2.0
)

// Clipboard receives exported tuning.
type Clipboard interface {
	Copy(data []byte) error
}

// SystemClipboard is the OS clipboard. It is initialised on first use.
type SystemClipboard struct {
	once sync.Once
	err  error
}

func (c *SystemClipboard) Copy(data []byte) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return fmt.Errorf("clipboard: %w", c.err)
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// TuningSystem handles live tuning keys: [ and ] nudge the chain stiffness,
// C copies the current spec as prefab YAML.
type TuningSystem struct {
	controls Controls
	clip     Clipboard
}

func NewTuningSystem(controls Controls, clip Clipboard) *TuningSystem {
	if controls == nil {
		controls = EbitenControls{}
	}
	return &TuningSystem{controls: controls, clip: clip}
}

func (s *TuningSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	delta := 0.0
	if s.controls.KeyJustPressed(ebiten.KeyBracketLeft) {
		delta -= stiffnessStep
	}
	if s.controls.KeyJustPressed(ebiten.KeyBracketRight) {
		delta += stiffnessStep
	}
	copyNow := s.controls.KeyJustPressed(ebiten.KeyC)
	if delta == 0 && !copyNow {
		return
	}

	ecs.ForEach(w, component.CreatureComponent.Kind(), func(_ ecs.Entity, c *component.Creature) {
		if c.Spec == nil || c.Sim == nil {
			return
		}
		if delta != 0 {
			s.nudgeStiffness(w, c, delta)
		}
		if copyNow {
			s.copySpec(w, c)
		}
	})
}

func (s *TuningSystem) nudgeStiffness(w *ecs.World, c *component.Creature, delta float64) {
	next := c.Spec.Clone()
	next.Chain.Stiffness = common.Clamp(next.Chain.Stiffness+delta, stiffnessMin, stiffnessMax)
	if err := c.Sim.Reconfigure(next.Config); err != nil {
		log.Printf("tuning: %v", err)
		return
	}
	c.Spec = next
	w.Events().Push(ecs.Event{
		Type: ecs.EventTuningChanged,
		Data: fmt.Sprintf("%s stiffness %.2f", next.Name, next.Chain.Stiffness),
	})
}

func (s *TuningSystem) copySpec(w *ecs.World, c *component.Creature) {
	if s.clip == nil {
		return
	}
	data, err := prefabs.MarshalSpec(c.Spec)
	if err == nil {
		err = s.clip.Copy(data)
	}
	if err != nil {
		log.Printf("tuning: copy %s: %v", c.Spec.Name, err)
		w.Events().Push(ecs.Event{Type: ecs.EventStatus, Data: "copy failed: " + err.Error()})
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventStatus, Data: fmt.Sprintf("copied %s tuning", c.Spec.Name)})
}
