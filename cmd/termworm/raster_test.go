package main

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/creature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellMapping(t *testing.T) {
	x, y := toCell(toWorld(12, 7))
	assert.Equal(t, 12, x)
	assert.Equal(t, 7, y)
}

func TestRasterizeDropsOffscreenAndDrawsHeadLast(t *testing.T) {
	f := creature.Frame{
		Points: []cp.Vector{toWorld(3, 3), toWorld(2, 3), toWorld(-1, 3), toWorld(50, 3)},
		Trails: true,
	}
	cells := Rasterize(f, []cp.Vector{toWorld(4, 4), toWorld(99, 99)}, 10, 10)

	require.NotEmpty(t, cells)
	last := cells[len(cells)-1]
	assert.Equal(t, Cell{X: 3, Y: 3, Rune: '@', Style: styleHead}, last)
	assert.Equal(t, '·', cells[0].Rune)
	for _, c := range cells {
		assert.True(t, c.X >= 0 && c.X < 10 && c.Y >= 0 && c.Y < 10, "%+v", c)
	}
	assert.Len(t, cells, 3)
}

func TestRasterizeOpenJaw(t *testing.T) {
	f := creature.Frame{Points: []cp.Vector{toWorld(1, 1), toWorld(0, 1)}}
	f.Pose.Jaw = 0.8
	cells := Rasterize(f, nil, 5, 5)
	assert.Equal(t, 'O', cells[len(cells)-1].Rune)
}

func TestLegRune(t *testing.T) {
	cases := []struct {
		d    cp.Vector
		want rune
	}{
		{cp.Vector{X: 10}, '-'},
		{cp.Vector{Y: 10}, '|'},
		{cp.Vector{X: 8, Y: 16}, '\\'},
		{cp.Vector{X: -8, Y: 16}, '/'},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, legRune(c.d), "%v", c.d)
	}
}

func TestChompStreamerLength(t *testing.T) {
	s, err := chompStreamer()
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(30*time.Millisecond)+sampleRate.N(50*time.Millisecond), total)
}
