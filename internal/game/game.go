package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/editor"
	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/sim"
	"github.com/samdwyer/fortress/internal/telemetry"
	"github.com/samdwyer/fortress/internal/ui"
)

// Welcome is the first line in the message log.
const Welcome = "Hello and welcome, fortress maker!"

// Game holds the entire game state.
type Game struct {
	cfg      Config
	log      *logrus.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	messages *ui.MessageLog

	world   *sim.World
	loop    *sim.Scheduler
	mode    editor.Mode
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, log *logrus.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, log, screen), nil
}

func newGame(cfg Config, log *logrus.Logger, screen *ui.Screen) *Game {
	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		messages: ui.NewMessageLog(),
		running:  true,
	}
}

// init builds the world and the scheduler. Renders triggered by the
// scheduler use ctx for the edge rebuild.
func (g *Game) init(ctx context.Context) error {
	initCtx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load species: %w", err)
	}
	rng, seed := g.cfg.newRand()
	w, err := sim.NewWorld(initCtx, g.cfg.Tuning, catalog, rng, g.log)
	if err != nil {
		return fmt.Errorf("create world: %w", err)
	}
	g.world = w

	interval := g.cfg.Tuning.TickInterval(g.cfg.Debug)
	g.loop = sim.NewScheduler(interval, func() { g.render(ctx) }, g.log, w.Systems()...)
	g.mode = editor.MoveMode(cursorStart(w))
	g.messages.Add(Welcome)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("sim.agents", w.Agents.Len()),
		attribute.Int("sim.resources", len(w.Map.Resources())),
		attribute.Int64("sim.tick_interval_ms", interval.Milliseconds()),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     seed,
		"interval": interval,
		"debug":    g.cfg.Debug,
	}).Info("game initialized")
	return nil
}

// cursorStart puts the cursor on agent-1, or the map centre when there are
// no agents.
func cursorStart(w *sim.World) grid.Point {
	if w.Agents.Len() > 0 {
		return w.Agents.At(0).Location
	}
	b := w.Map.Bounds()
	return grid.Pt((b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()
	if err := g.init(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(g.screen, events, done)

	g.render(ctx)
	g.loop.Start()
	defer g.loop.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ctx, ev)
		case <-g.loop.C():
			g.loop.Tick(ctx)
		}
	}
	g.log.WithField("tick", g.loop.TickID()).Info("player quit")
	return nil
}

// pollEvents forwards terminal events until the screen is closed.
func pollEvents(screen *ui.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.render(ctx)
	case *tcell.EventFocus:
		g.setFocus(ctx, ev.Focused)
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	act, key := translateKey(ev)
	switch act {
	case actionQuit:
		g.running = false
	case actionPause:
		g.togglePause(ctx)
	case actionEdit:
		g.edit(ctx, key)
	}
}

func (g *Game) togglePause(ctx context.Context) {
	paused := !g.loop.UserPaused()
	g.loop.SetUserPaused(paused)
	if paused {
		g.messages.Add("Paused.")
	} else {
		g.messages.Add("Resumed.")
	}
	g.render(ctx)
}

func (g *Game) setFocus(ctx context.Context, focused bool) {
	g.loop.SetSystemPaused(!focused)
	g.log.WithField("focused", focused).Debug("focus changed")
	g.render(ctx)
}

func (g *Game) edit(ctx context.Context, key editor.Key) {
	res := editor.HandleKey(ctx, g.world.Map, g.mode, key)
	if !res.Handled {
		return
	}
	before := g.mode.Kind
	g.mode = res.Mode
	if res.Message != "" {
		g.messages.Add(res.Message)
	}
	if res.Committed > 0 {
		g.log.WithFields(logrus.Fields{
			"mode":   before.String(),
			"tiles":  res.Committed,
			"cursor": res.Mode.Cursor.String(),
			"rooms":  g.world.Map.RoomCount(),
		}).Info("map edited")
	}
	if res.Redraw {
		g.render(ctx)
	}
}

// render draws the current state. Walls are rebuilt first if a room edit
// left them stale.
func (g *Game) render(ctx context.Context) {
	g.world.Map.RebuildIfStale(ctx)
	g.renderer.Render(ui.Frame{
		World:    g.world,
		Mode:     g.mode,
		Tick:     g.loop.TickID(),
		State:    stateOf(g.loop).String(),
		Messages: g.messages,
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
