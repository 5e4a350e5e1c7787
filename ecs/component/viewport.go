package component

// Viewport is the logical screen the creatures live in.
type Viewport struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}

var ViewportComponent = NewComponent[Viewport]()
