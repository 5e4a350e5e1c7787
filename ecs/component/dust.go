package component

import "image/color"

// Dust is the ambient mote field drawn behind a creature. The motes
// themselves live in the physics world.
type Dust struct {
	Count int
	Color color.Color
}

var DustComponent = NewComponent[Dust]()
