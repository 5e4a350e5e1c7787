package system

import (
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
)

// CreatureSystem ticks every creature once per update and publishes chomps.
type CreatureSystem struct{}

func NewCreatureSystem() *CreatureSystem {
	return &CreatureSystem{}
}

func (s *CreatureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.CreatureComponent.Kind(), func(e ecs.Entity, c *component.Creature) {
		if c.Sim == nil || c.Input == nil {
			return
		}
		snap := c.Input.Snapshot()
		c.Frame = c.Sim.Tick(snap, dt)
		if snap.Chomp && len(c.Frame.Points) > 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventChomp, Data: c.Frame.Points[0]})
		}
	})
}
