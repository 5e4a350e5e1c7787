package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/prefabs"
)

// WanderScriptSystem attaches the wander script named by each creature's spec
// and recompiles it when the spec or the script changes.
type WanderScriptSystem struct {
	loaded map[ecs.Entity]string
}

func NewWanderScriptSystem() *WanderScriptSystem {
	return &WanderScriptSystem{loaded: map[ecs.Entity]string{}}
}

func (s *WanderScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	stale := map[string]bool{}
	for _, evt := range w.Events().Of(ecs.EventScriptChanged) {
		if name, ok := evt.Data.(string); ok {
			stale[name] = true
		}
	}
	respec := len(w.Events().Of(ecs.EventSpecReloaded)) > 0

	ecs.ForEach(w, component.CreatureComponent.Kind(), func(e ecs.Entity, c *component.Creature) {
		if c.Sim == nil || c.Spec == nil {
			return
		}
		want := strings.TrimSpace(c.Spec.WanderScript)
		have, seen := s.loaded[e]
		if seen && have == want && !stale[filepath.Base(want)] && !respec {
			return
		}
		s.loaded[e] = want

		fallback := c.Spec.Follow.Sine()
		if want == "" {
			if seen && have != "" {
				c.Sim.SetWander(fallback)
			}
			return
		}

		sw, err := prefabs.LoadWander(want, c.Spec.Follow)
		if err != nil {
			log.Printf("wander: %v", err)
			c.Sim.SetWander(fallback)
			return
		}
		c.Sim.SetWander(sw)
	})
}
