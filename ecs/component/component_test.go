package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestComponentKindsAreDistinct(t *testing.T) {
	a := NewComponent[int]()
	b := NewComponent[int]()

	assert.True(t, a.Kind().Valid())
	assert.NotEqual(t, a.Kind().ID(), b.Kind().ID())
	assert.False(t, ComponentKind[int]{}.Valid())
	assert.Contains(t, CreatureComponent.Kind().String(), "component.Creature#")
}

func TestTrailPushKeepsNewest(t *testing.T) {
	tr := Trail{Cap: 3}
	for i := 0; i < 5; i++ {
		tr.Push(cp.Vector{X: float64(i)})
	}
	assert.Equal(t, []cp.Vector{{X: 2}, {X: 3}, {X: 4}}, tr.Points)

	tr.Cap = 0
	tr.Push(cp.Vector{X: 9})
	assert.Empty(t, tr.Points)
}

func TestViewportContains(t *testing.T) {
	v := Viewport{Width: 100, Height: 50}
	assert.True(t, v.Contains(0, 0))
	assert.True(t, v.Contains(99.5, 49))
	assert.False(t, v.Contains(100, 10))
	assert.False(t, v.Contains(-1, 10))
}
