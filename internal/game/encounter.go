package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelabyss/internal/battle"
	"github.com/samdwyer/pixelabyss/internal/entity"
	"github.com/samdwyer/pixelabyss/internal/telemetry"
	"github.com/samdwyer/pixelabyss/internal/world"
)

// startBattle opens the battle screen for an encounter.
func (g *Game) startBattle(ctx context.Context, enc world.Encounter) {
	_, span := telemetry.Tracer("battle").Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("enemy.kind", enc.Kind),
		attribute.Int("tile.x", enc.At.X),
		attribute.Int("tile.y", enc.At.Y),
		attribute.Int("player.level", g.player.Level),
	)
	span.End()

	var enemy *entity.Enemy
	if def := g.enemies.GetByID(enc.Kind); def != nil {
		enemy = entity.NewEnemyFromDef(def, enc.At.X, enc.At.Y)
	} else {
		enemy = entity.NewEnemy(enc.Kind, enc.At.X, enc.At.Y)
	}

	g.battle = battle.New(g.player, enemy)
	g.battle.OnAdvance = func() {
		g.log.V(2).Info("battle advance", "phase", g.battle.Phase.String())
	}
	g.state = StateBattle
	g.log.V(1).Info("encounter", "kind", enc.Kind, "x", enc.At.X, "y", enc.At.Y)
	g.startTicker()
}

// handleBattleKey routes input to the battle: a attacks, f or Esc flees,
// space or Enter continues.
func (g *Game) handleBattleKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape:
		g.battle.Flee()
	case tcell.KeyEnter:
		g.battle.Advance()
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			g.battle.Attack()
		case 'f', 'F':
			g.battle.Flee()
		case ' ':
			g.battle.Advance()
		}
	}
	if g.battle.Done() {
		g.endBattle(ctx)
	}
}

// endBattle closes the battle screen, persists the player and returns to the map.
func (g *Game) endBattle(ctx context.Context) {
	b := g.battle
	ctx, span := telemetry.Tracer("battle").Start(ctx, "battle.end")
	defer span.End()
	span.SetAttributes(
		attribute.String("outcome", b.Outcome()),
		attribute.Int("turns_taken", b.Turns),
		attribute.Int("player.xp", g.player.XP),
		attribute.Int("player.pixels", g.player.Pixels),
	)

	if b.Won() {
		g.explorer.ClearEnemy()
	}
	g.battle = nil
	g.state = StateExplore
	g.stopTicker()

	if err := g.session.MarkAfterBattle(ctx); err != nil {
		span.RecordError(err)
		g.log.Error(err, "mark after battle")
	}
	if err := g.save(ctx); err != nil {
		span.RecordError(err)
		g.log.Error(err, "save after battle")
	}
	if err := g.returnToMap(ctx); err != nil {
		span.RecordError(err)
		g.log.Error(err, "return to map")
	}
	g.log.Info("battle over", "outcome", b.Outcome(), "turns", b.Turns)
}
