package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skelecursor/assets"
	"github.com/milk9111/skelecursor/common"
	"github.com/milk9111/skelecursor/creature"
	"github.com/milk9111/skelecursor/ecs"
	"github.com/milk9111/skelecursor/ecs/component"
	"github.com/milk9111/skelecursor/ecs/system"
	"github.com/milk9111/skelecursor/prefabs"
)

type GameOptions struct {
	Creature string
	Config   string
	Debug    bool
	Mute     bool
	Seed     int64
	Changes  system.ChangeSource
}

type Game struct {
	world   *ecs.World
	clock   *creature.FrameClock
	pauseUI *ebitenui.UI

	paused bool
	quit   bool
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadCreatureSpec(opts.Creature)
	if err != nil {
		return nil, err
	}
	if opts.Config != "" {
		if err := prefabs.ApplyOverride(spec, opts.Config); err != nil {
			return nil, err
		}
	}

	start := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	sim, err := creature.New(spec.Config, start)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld(common.BaseWidth, common.BaseHeight))

	body := ecs.CreateEntity(world)
	creatureComp := &component.Creature{
		Sim:      sim,
		Spec:     spec,
		Input:    creature.NewInput(start),
		Override: opts.Config,
	}
	if err := ecs.Add(world, body, component.CreatureComponent.Kind(), creatureComp); err != nil {
		return nil, fmt.Errorf("game: add creature: %w", err)
	}
	if err := ecs.Add(world, body, component.TrailComponent.Kind(), &component.Trail{Cap: spec.Render.TrailLength}); err != nil {
		return nil, fmt.Errorf("game: add trail: %w", err)
	}

	scene := ecs.CreateEntity(world)
	pal := system.ResolvePalette(spec)
	if err := ecs.Add(world, scene, component.ViewportComponent.Kind(), &component.Viewport{Width: common.BaseWidth, Height: common.BaseHeight}); err != nil {
		return nil, fmt.Errorf("game: add viewport: %w", err)
	}
	if err := ecs.Add(world, scene, component.DustComponent.Kind(), &component.Dust{Count: spec.Render.DustCount, Color: pal.Dust}); err != nil {
		return nil, fmt.Errorf("game: add dust: %w", err)
	}
	if err := ecs.Add(world, scene, component.StatusComponent.Kind(), &component.Status{Debug: opts.Debug}); err != nil {
		return nil, fmt.Errorf("game: add status: %w", err)
	}

	controls := system.EbitenControls{}
	var chomp system.Sound
	if !opts.Mute {
		chomp = assets.ChompPlayer()
	}

	world.AddSystem(system.NewInputSystem(controls))
	if opts.Changes != nil {
		world.AddSystem(system.NewHotReloadSystem(opts.Changes))
	}
	world.AddSystem(system.NewTuningSystem(controls, &system.SystemClipboard{}))
	world.AddSystem(system.NewWanderScriptSystem())
	world.AddSystem(system.NewCreatureSystem())
	world.AddSystem(system.NewTrailSystem())
	world.AddSystem(system.NewAudioSystem(chomp))
	world.AddSystem(system.NewDustSystem(opts.Seed))
	world.AddSystem(system.NewCreatureRenderSystem())
	world.AddSystem(system.NewStatusSystem())

	g := &Game{
		world: world,
		clock: creature.NewFrameClock(creature.MaxFrameDelta),
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	dt := g.clock.Tick(time.Now())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(system.BackgroundColor(g.world))
	g.world.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func (g *Game) eachInput(fn func(in *creature.Input)) {
	ecs.ForEach(g.world, component.CreatureComponent.Kind(), func(_ ecs.Entity, c *component.Creature) {
		if c.Input != nil {
			fn(c.Input)
		}
	})
}

func (g *Game) toggleTrails() {
	g.eachInput((*creature.Input).ToggleTrails)
}

func (g *Game) toggleGlow() {
	g.eachInput((*creature.Input).ToggleGlow)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
