package component

import "github.com/jakecoffman/cp"

// Trail keeps recent head positions, oldest first.
type Trail struct {
	Points []cp.Vector
	Cap    int
}

// Push appends p and drops the oldest points past Cap.
func (t *Trail) Push(p cp.Vector) {
	if t.Cap <= 0 {
		t.Points = t.Points[:0]
		return
	}
	t.Points = append(t.Points, p)
	if over := len(t.Points) - t.Cap; over > 0 {
		t.Points = append(t.Points[:0], t.Points[over:]...)
	}
}

var TrailComponent = NewComponent[Trail]()
