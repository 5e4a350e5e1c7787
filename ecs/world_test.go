package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false twice")
				}
			}
		})
	}
}

func TestRecycledEntityIsNotStale(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, h.Kind(), intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	assert.Equal(t, old.id(), fresh.id())
	assert.NotEqual(t, old, fresh)
	assert.False(t, Has(w, fresh, h.Kind()))
	assert.False(t, IsAlive(w, old))
	assert.ErrorIs(t, Add(w, old, h.Kind(), intPtr(2)), component.ErrEntityNotAlive)
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	assert.ErrorIs(t, Add[int](w, e1, h1.Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, e1, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
}

func TestForEachAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	require.NoError(t, Add(w, e1, ka, intPtr(1)))
	require.NoError(t, Add(w, e3, ka, intPtr(3)))
	require.NoError(t, Add(w, e2, kb, stringPtr("b")))
	require.NoError(t, Add(w, e3, kb, stringPtr("c")))

	var ents []Entity
	ForEach(w, ka, func(e Entity, v *int) {
		*v *= 10
		ents = append(ents, e)
	})
	assert.ElementsMatch(t, []Entity{e1, e3}, ents)

	v, _ := Get(w, e3, ka)
	assert.Equal(t, 30, *v)

	var both []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, s *string) { both = append(both, e) })
	assert.Equal(t, []Entity{e3}, both)

	e, first, ok := First(w, kb)
	require.True(t, ok)
	assert.Equal(t, e2, e)
	assert.Equal(t, "b", *first)

	_, _, ok = First(w, component.NewComponentKind[float64]())
	assert.False(t, ok)
}

type recordSystem struct {
	seen []float64
	push string
	got  *[]int
}

func (s *recordSystem) Update(w *World) {
	s.seen = append(s.seen, w.Delta())
	if s.push != "" {
		w.Events().Push(Event{Type: s.push})
	}
	if s.got != nil {
		*s.got = append(*s.got, len(w.Events().Of(EventChomp)))
	}
}

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var counts []int
	producer := &recordSystem{push: EventChomp}
	consumer := &recordSystem{got: &counts}
	w.AddSystem(producer)
	w.AddSystem(consumer)

	w.Update(0.016)
	w.Update(0.02)

	assert.Equal(t, []float64{0.016, 0.02}, producer.seen)
	assert.Equal(t, []int{1, 1}, counts)
	assert.Empty(t, w.Events().Drain())
}

func TestPhysicsWorldWrapsMotes(t *testing.T) {
	pw := NewPhysicsWorld(100, 50)
	right := pw.AddMote(cp.Vector{X: 119, Y: 10}, cp.Vector{X: 120}, 1, 0.1)
	up := pw.AddMote(cp.Vector{X: 50, Y: -19}, cp.Vector{Y: -120}, 1, 0.1)
	still := pw.AddMote(cp.Vector{X: 30, Y: 30}, cp.Vector{X: 6}, 1, 0.1)

	pw.Step(0.1)

	assert.InDelta(t, -MoteMargin, right.Position().X, 1e-9)
	assert.InDelta(t, 10, right.Position().Y, 1e-9)
	assert.InDelta(t, 50+MoteMargin, up.Position().Y, 1e-9)
	assert.InDelta(t, 30.6, still.Position().X, 1e-6)

	pw.Step(0)
	assert.InDelta(t, 30.6, still.Position().X, 1e-6)

	pw.Clear()
	assert.Empty(t, pw.Motes())
}

func TestSchedulerSkipsNil(t *testing.T) {
	s := NewScheduler(nil, &recordSystem{})
	s.Add(nil)
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Systems(), 1)
}
