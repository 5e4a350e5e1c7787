package system

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/prefabs"
)

// ChangeSource hands over prefab edits and watch errors collected since the
// last call.
type ChangeSource interface {
	Drain() []prefabs.Change
	DrainErrors() []error
}

// HotReloadSystem re-applies creature specs and tuning files when they change
// on disk. Changes are only applied between ticks.
type HotReloadSystem struct {
	source ChangeSource
}

func NewHotReloadSystem(source ChangeSource) *HotReloadSystem {
	return &HotReloadSystem{source: source}
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	for _, err := range s.source.DrainErrors() {
		log.Printf("hotreload: watch: %v", err)
		w.Events().Push(ecs.Event{Type: ecs.EventStatus, Data: "watch error: " + err.Error()})
	}

	for _, change := range s.source.Drain() {
		switch change.Kind {
		case prefabs.ChangeScript:
			w.Events().Push(ecs.Event{Type: ecs.EventScriptChanged, Data: change.Name})
		case prefabs.ChangeSpec, prefabs.ChangeTuning:
			ecs.ForEach(w, component.CreatureComponent.Kind(), func(_ ecs.Entity, c *component.Creature) {
				if !affects(c, change) {
					return
				}
				if err := Reload(c); err != nil {
					log.Printf("hotreload: %v", err)
					w.Events().Push(ecs.Event{Type: ecs.EventStatus, Data: err.Error()})
					return
				}
				w.Events().Push(ecs.Event{Type: ecs.EventSpecReloaded, Data: c.Spec.Name})
			})
		}
	}
}

// affects reports whether change touches c's prefab or its override file.
// The override matches by name whatever its format.
func affects(c *component.Creature, change prefabs.Change) bool {
	if c.Spec == nil {
		return false
	}
	if c.Override != "" && filepath.Base(c.Override) == change.Name {
		return true
	}
	return change.Kind == prefabs.ChangeSpec && prefabs.CreatureFile(c.Spec.Name) == change.Name
}

// Reload rebuilds a creature's spec from its prefab and override file and
// applies it to the running simulation. On error nothing changes.
func Reload(c *component.Creature) error {
	if c == nil || c.Spec == nil || c.Sim == nil {
		return fmt.Errorf("reload: creature not initialised")
	}
	spec, err := prefabs.LoadCreatureSpec(c.Spec.Name)
	if err != nil {
		return err
	}
	if c.Override != "" {
		if err := prefabs.ApplyOverride(spec, c.Override); err != nil {
			return err
		}
	}
	if err := c.Sim.Reconfigure(spec.Config); err != nil {
		return err
	}
	c.Spec = spec
	return nil
}
