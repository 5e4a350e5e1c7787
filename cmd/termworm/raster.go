package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/creature"
)

// Terminal cells are roughly twice as tall as wide; the simulation runs in
// pseudo-pixels of this size per cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// Cell is one glyph to put on screen.
type Cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

// toCell maps a simulation point to a terminal cell.
func toCell(p cp.Vector) (int, int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

// toWorld maps a terminal cell to the simulation point at its centre.
func toWorld(x, y int) cp.Vector {
	return cp.Vector{X: (float64(x) + 0.5) * cellWidth, Y: (float64(y) + 0.5) * cellHeight}
}

var (
	styleTrail = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 110, 128))
	styleLeg   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 170, 190))
	styleHead  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 120, 120)).Bold(true)
)

// Rasterize turns a frame into cells, back to front: trail, legs, body,
// head. Cells outside cols x rows are dropped; later cells win.
func Rasterize(f creature.Frame, trail []cp.Vector, cols, rows int) []Cell {
	var out []Cell
	put := func(p cp.Vector, r rune, st tcell.Style) {
		x, y := toCell(p)
		if p.X < 0 || p.Y < 0 || x >= cols || y >= rows {
			return
		}
		out = append(out, Cell{X: x, Y: y, Rune: r, Style: st})
	}

	if f.Trails {
		for _, p := range trail {
			put(p, '·', styleTrail)
		}
	}

	for _, l := range f.Pose.Limbs {
		put(l.Elbow, legRune(l.Elbow.Sub(l.Root)), styleLeg)
		put(l.Foot, '.', styleLeg)
	}

	n := len(f.Points)
	for i := n - 1; i >= 1; i-- {
		put(f.Points[i], bodyRune(i, n), bodyStyle(i, n, f.Glow))
	}
	if n > 0 {
		head := '@'
		if f.Pose.Jaw > 0.3 {
			head = 'O'
		}
		put(f.Points[0], head, styleHead)
	}
	return out
}

func bodyRune(i, n int) rune {
	switch t := float64(i) / float64(n-1); {
	case t < 0.35:
		return 'O'
	case t < 0.75:
		return 'o'
	default:
		return '°'
	}
}

func bodyStyle(i, n int, glow bool) tcell.Style {
	t := float64(i) / float64(n-1)
	v := int32(235 - 120*t)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v+10, 255))
	if glow && i < 3 {
		st = st.Bold(true)
	}
	return st
}

// legRune picks a line glyph for a leg segment direction, with y pointing
// down.
func legRune(d cp.Vector) rune {
	ax, ay := d.X/cellWidth, d.Y/cellHeight
	switch {
	case abs(ax) > 2*abs(ay):
		return '-'
	case abs(ay) > 2*abs(ax):
		return '|'
	case (ax > 0) == (ay > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
