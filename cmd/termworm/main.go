// Command termworm runs a creature in the terminal, following the mouse.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skelecursor/creature"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/prefabs"
)

type app struct {
	screen tcell.Screen
	sim    *creature.Sim
	spec   *prefabs.CreatureSpec
	input  *creature.Input
	clock  *creature.FrameClock
	trail  component.Trail
	sound  *chompSound

	cols, rows int
	held       bool
}

func newApp(spec *prefabs.CreatureSpec, screen tcell.Screen, sound *chompSound) (*app, error) {
	cols, rows := screen.Size()
	start := toWorld(cols/2, rows/2)
	sim, err := creature.New(spec.Config, start)
	if err != nil {
		return nil, err
	}
	if spec.WanderScript != "" {
		if sw, err := prefabs.LoadWander(spec.WanderScript, spec.Follow); err != nil {
			log.Printf("termworm: %v", err)
		} else {
			sim.SetWander(sw)
		}
	}
	return &app{
		screen: screen,
		sim:    sim,
		spec:   spec,
		input:  creature.NewInput(start),
		clock:  creature.NewFrameClock(creature.MaxFrameDelta),
		trail:  component.Trail{Cap: spec.Render.TrailLength},
		sound:  sound,
		cols:   cols,
		rows:   rows,
	}, nil
}

// handle applies one terminal event. It returns false when the app should quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 't':
				a.input.ToggleTrails()
			case 'g':
				a.input.ToggleGlow()
			case ' ':
				a.input.Press()
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := toWorld(x, y)
		a.input.MoveTo(p.X, p.Y)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.held {
			a.input.Press()
		}
		a.held = down
	case *tcell.EventFocus:
		if !ev.Focused {
			a.input.Leave()
		}
	case *tcell.EventResize:
		a.cols, a.rows = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *app) tick(now time.Time) {
	snap := a.input.Snapshot()
	f := a.sim.Tick(snap, a.clock.Tick(now))
	if snap.Chomp {
		a.sound.Play()
	}
	if f.Trails {
		a.trail.Push(f.Points[0])
	} else {
		a.trail.Points = a.trail.Points[:0]
	}

	a.screen.Clear()
	for _, c := range Rasterize(f, a.trail.Points, a.cols, a.rows) {
		a.screen.SetContent(c.X, c.Y, c.Rune, nil, c.Style)
	}
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.tick(now)
		}
	}
}

func main() {
	creatureName := flag.String("creature", "worm", "creature prefab (basename, .yaml optional)")
	configPath := flag.String("config", "", "tuning file (.toml or .yaml) applied on top of the prefab")
	mute := flag.Bool("mute", false, "disable the chomp sound")
	flag.Parse()

	spec, err := prefabs.LoadCreatureSpec(*creatureName)
	if err != nil {
		log.Fatal(err)
	}
	if *configPath != "" {
		if err := prefabs.ApplyOverride(spec, *configPath); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	var sound *chompSound
	if !*mute {
		sound, err = newChompSound()
		if err != nil {
			// Non-fatal, the worm runs silent.
			log.Printf("termworm: audio: %v", err)
		}
	}

	a, err := newApp(spec, screen, sound)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	a.run()

	sound.Close()
	screen.Fini()
}
