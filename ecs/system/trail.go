package system

import (
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
)

// TrailSystem records recent head positions while trails are on and drops
// them when trails are switched off.
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CreatureComponent.Kind(), component.TrailComponent.Kind(), func(_ ecs.Entity, c *component.Creature, tr *component.Trail) {
		if c.Spec != nil {
			tr.Cap = c.Spec.Render.TrailLength
		}
		if !c.Frame.Trails || len(c.Frame.Points) == 0 {
			tr.Points = tr.Points[:0]
			return
		}
		tr.Push(c.Frame.Points[0])
	})
}
