package entity

import (
	"testing"

	"github.com/samdwyer/pixelabyss/internal/gamedata"
)

func TestPlayerGrantXP(t *testing.T) {
	p := NewPlayer(0, 0, nil)

	if gained := p.GrantXP(9); gained != 0 {
		t.Errorf("GrantXP(9) gained %d levels, want 0", gained)
	}
	if gained := p.GrantXP(1); gained != 1 {
		t.Errorf("GrantXP(1) gained %d levels, want 1", gained)
	}
	if p.Level != 2 || p.XP != 0 {
		t.Errorf("after level up: level %d xp %d, want 2 and 0", p.Level, p.XP)
	}
	if p.HP != p.HPMax || p.HPMax != 12 {
		t.Errorf("level up should raise and refill HP: %d/%d", p.HP, p.HPMax)
	}

	// 20 for level 2 plus 30 for level 3.
	if gained := p.GrantXP(50); gained != 2 {
		t.Errorf("GrantXP(50) gained %d levels, want 2", gained)
	}
	if p.GrantXP(-5) != 0 || p.Level != 4 {
		t.Errorf("negative XP should be ignored, level %d", p.Level)
	}
}

func TestPlayerPixelsAndArt(t *testing.T) {
	p := NewPlayer(2, 2, []string{"c_strike"})
	p.GrantPixels(3)
	p.GrantPixels(-10)
	if p.Pixels != 3 {
		t.Errorf("Pixels = %d, want 3", p.Pixels)
	}

	p.AddArt("a")
	p.AddArt("a")
	p.AddArt("b")
	if len(p.ArtIDs) != 2 {
		t.Errorf("ArtIDs = %v, want two unique entries", p.ArtIDs)
	}
}

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(2, 2, nil)
	p.Move(-3, 1)
	if x, y := p.Position(); x != -1 || y != 3 {
		t.Errorf("Position() = (%d,%d), want (-1,3)", x, y)
	}
}

func TestEnemyFromDef(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "slime", Name: "Slime", Glyph: "s", Color: "#EF4444", HP: 1, XP: 5, Pixels: 3}
	e := NewEnemyFromDef(def, 5, 3)

	if e.Kind != "slime" || e.Symbol != 's' || !e.IsAlive() {
		t.Errorf("NewEnemyFromDef = %+v", e)
	}
	if got := e.TakeDamage(10); got != 1 {
		t.Errorf("TakeDamage(10) = %d, want 1", got)
	}
	if e.IsAlive() {
		t.Error("enemy should be dead")
	}
	if xp, px := e.Rewards(); xp != 5 || px != 3 {
		t.Errorf("Rewards() = (%d,%d), want (5,3)", xp, px)
	}
}

func TestEnemyWithoutDef(t *testing.T) {
	e := NewEnemy("bat", 0, 0)
	if e.TakeDamage(0) != 0 || e.HP != 1 {
		t.Error("zero damage should not change HP")
	}
	if xp, px := e.Rewards(); xp != 1 || px != 1 {
		t.Errorf("Rewards() = (%d,%d), want (1,1)", xp, px)
	}
}
