package ecs

import "github.com/milk9111/skelecursor/ecs/component"

// World owns entities, components, systems and the frame's events.
type World struct {
	entities  entityStore
	scheduler *Scheduler
	events    EventQueue
	stores    map[component.ComponentID]*SparseSet

	delta float64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		scheduler: NewScheduler(),
		stores:    make(map[component.ComponentID]*SparseSet),
	}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops e and all its components.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

func Entities(w *World) []Entity {
	return w.entities.entities()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once with dt seconds of simulated time.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.delta = dt
	w.scheduler.Update(w)
	w.events.flush()
}

// Delta is the frame time of the update in progress.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
