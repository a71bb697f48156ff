package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelabyss/internal/battle"
	"github.com/samdwyer/pixelabyss/internal/entity"
	"github.com/samdwyer/pixelabyss/internal/gamedata"
	"github.com/samdwyer/pixelabyss/internal/store"
	"github.com/samdwyer/pixelabyss/internal/telemetry"
	"github.com/samdwyer/pixelabyss/internal/ui"
	"github.com/samdwyer/pixelabyss/internal/world"
)

// enemySpawn is where the overworld enemy waits.
var enemySpawn = world.TileCoord{X: 5, Y: 3}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer

	world    world.BiomeSource
	explorer *world.Explorer
	player   *entity.Player
	enemies  *gamedata.EnemyRegistry
	session  *store.Session
	battle   *battle.Battle

	state   State
	running bool
	notice  string
	log     logr.Logger

	stopTicks chan struct{}
	lastTick  time.Time
}

// New creates a game drawing to the terminal and saving to st.
func New(ctx context.Context, cfg Config, st store.Store) (*Game, error) {
	g, err := newGame(ctx, cfg, st)
	if err != nil {
		return nil, err
	}

	styles, err := gamedata.LoadBiomeStyles()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, styles)
	return g, nil
}

// newGame sets up everything except the terminal.
func newGame(ctx context.Context, cfg Config, st store.Store) (*Game, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	cards, err := gamedata.LoadCardRegistry()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		enemies: enemies,
		session: store.NewSession(st),
		state:   StateExplore,
		running: true,
		log:     telemetry.Logger("game"),
	}

	w := world.New(cfg.Seed)
	g.world = w
	if cfg.CacheLimit > 0 {
		g.world = world.NewCachedWorld(w, cfg.CacheLimit)
	}

	player, err := g.session.LoadPlayer(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		player = entity.NewPlayer(0, 0, cards.StarterDeck())
	case err != nil:
		return nil, fmt.Errorf("load save: %w", err)
	default:
		g.log.Info("save loaded", "x", player.X, "y", player.Y, "level", player.Level)
	}
	g.player = player

	g.explorer = world.NewExplorer(world.TileCoord{X: player.X, Y: player.Y})
	g.explorer.PlaceEnemy(enemySpawn, world.DefaultEnemyKind)

	if err := g.returnToMap(ctx); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("world.seed", cfg.Seed),
		attribute.Int("player.x", player.X),
		attribute.Int("player.y", player.Y),
		attribute.Int("player.level", player.Level),
	)
	return g, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.render()
		g.handleEvent(ctx, g.screen.PollEvent())
	}
	return g.save(ctx)
}

func (g *Game) render() {
	if g.state == StateBattle && g.battle != nil {
		g.renderer.RenderBattle(g.battle)
		return
	}

	sw, sh := g.screen.Size()
	width := min(g.cfg.View.Width, sw/2)
	height := min(g.cfg.View.Height, sh-ui.HUDLines)
	vp := world.CenteredOn(g.explorer.Player, max(width, 1), max(height, 1))

	var markers []ui.Marker
	if at, kind, ok := g.explorer.Enemy(); ok {
		m := ui.Marker{At: at, Glyph: '?', Color: tcell.ColorRed}
		if def := g.enemies.GetByID(kind); def != nil {
			m.Glyph = def.GlyphRune()
			m.Color = def.TCellColor()
		}
		markers = append(markers, m)
	}
	markers = append(markers, ui.Marker{At: g.explorer.Player, Glyph: g.player.Symbol, Color: tcell.ColorYellow})

	g.renderer.RenderExplore(g.world, vp, markers, ui.HUD{
		Player: g.player,
		Biome:  g.world.BiomeAt(g.explorer.Player.X, g.explorer.Player.Y),
		Notice: g.notice,
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		g.tick(ev.When())
	}
}

// handleKey processes keyboard input for the current state.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		g.running = false
		return
	}
	switch g.state {
	case StateBattle:
		g.handleBattleKey(ctx, key, r)
	default:
		g.handleExploreKey(ctx, key, r)
	}
}

func (g *Game) handleExploreKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape:
		g.running = false
	case tcell.KeyUp:
		g.move(ctx, 0, -1)
	case tcell.KeyDown:
		g.move(ctx, 0, 1)
	case tcell.KeyLeft:
		g.move(ctx, -1, 0)
	case tcell.KeyRight:
		g.move(ctx, 1, 0)
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			g.move(ctx, 0, -1)
		case 's', 'S':
			g.move(ctx, 0, 1)
		case 'a', 'A':
			g.move(ctx, -1, 0)
		case 'd', 'D':
			g.move(ctx, 1, 0)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// move steps the player and opens a battle when it walks into the enemy.
func (g *Game) move(ctx context.Context, dx, dy int) {
	enc, hit := g.explorer.Move(dx, dy)
	g.player.SetPosition(g.explorer.Player.X, g.explorer.Player.Y)
	g.notice = ""
	if hit {
		g.startBattle(ctx, enc)
	}
}

// tick feeds wall time to the battle typewriter.
func (g *Game) tick(now time.Time) {
	if g.battle == nil {
		return
	}
	if !g.lastTick.IsZero() {
		g.battle.Tick(now.Sub(g.lastTick))
	}
	g.lastTick = now
}

// startTicker wakes the event loop while a battle message is being typed.
func (g *Game) startTicker() {
	g.lastTick = time.Now()
	if g.screen == nil {
		return
	}
	stop := make(chan struct{})
	g.stopTicks = stop
	go func() {
		t := time.NewTicker(battle.Step)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				g.screen.Interrupt()
			}
		}
	}()
}

func (g *Game) stopTicker() {
	if g.stopTicks != nil {
		close(g.stopTicks)
		g.stopTicks = nil
	}
	g.lastTick = time.Time{}
}

// returnToMap consumes the after-battle flag left by a finished battle.
func (g *Game) returnToMap(ctx context.Context) error {
	back, err := g.session.TakeAfterBattle(ctx)
	if err != nil {
		return fmt.Errorf("read after-battle flag: %w", err)
	}
	if back {
		g.notice = "Back on the map."
	}
	return nil
}

func (g *Game) save(ctx context.Context) error {
	if err := g.session.SavePlayer(ctx, g.player); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// Close stops background work and restores the terminal.
func (g *Game) Close() {
	g.stopTicker()
	if g.screen != nil {
		g.screen.Close()
	}
}
