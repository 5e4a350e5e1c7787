package component

import (
	"github.com/milk9111/skelecursor/creature"
	"github.com/milk9111/skelecursor/prefabs"
)

// Creature is one simulated skeleton and what it is driven by.
type Creature struct {
	Sim   *creature.Sim
	Spec  *prefabs.CreatureSpec
	Input *creature.Input

	// Override is an optional tuning file applied on top of Spec.
	Override string

	// Frame is the most recent simulation output.
	Frame creature.Frame
}

var CreatureComponent = NewComponent[Creature]()
