package battle

import (
	"testing"
	"time"

	"github.com/samdwyer/pixelabyss/internal/entity"
	"github.com/samdwyer/pixelabyss/internal/gamedata"
)

func newSlimeBattle() *Battle {
	def := &gamedata.EnemyDef{ID: "slime", Name: "Slime", Glyph: "s", Color: "#EF4444", HP: 1, XP: 5, Pixels: 3}
	return New(entity.NewPlayer(5, 3, nil), entity.NewEnemyFromDef(def, 5, 3))
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIntro, "intro"},
		{PhaseVictory, "victory"},
		{PhaseRewards, "rewards"},
		{PhaseClosed, "closed"},
		{PhaseFled, "fled"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestBattleFullFlow(t *testing.T) {
	b := newSlimeBattle()
	blips := 0
	b.OnAdvance = func() { blips++ }

	if b.Phase != PhaseIntro || b.Typing() {
		t.Fatalf("new battle: phase %v typing %v", b.Phase, b.Typing())
	}

	// Intro -> attack -> victory message starts typing.
	b.Advance()
	if b.Phase != PhaseVictory {
		t.Fatalf("after first advance phase = %v, want victory", b.Phase)
	}
	if !b.Won() || !b.Typing() || b.Text() != "" {
		t.Fatalf("victory should be typing from empty: won %v typing %v text %q", b.Won(), b.Typing(), b.Text())
	}

	// Advancing while typing completes the message without changing phase.
	b.Advance()
	if b.Phase != PhaseVictory || b.Typing() {
		t.Fatalf("advance while typing: phase %v typing %v", b.Phase, b.Typing())
	}
	if b.Text() != "Victory! You defeated the Slime." {
		t.Errorf("victory text = %q", b.Text())
	}

	b.Advance()
	if b.Phase != PhaseRewards {
		t.Fatalf("phase = %v, want rewards", b.Phase)
	}
	b.Tick(time.Hour)
	if b.Text() != "You gained experience and items." {
		t.Errorf("rewards text = %q", b.Text())
	}

	b.Advance()
	if !b.Done() || b.Phase != PhaseClosed {
		t.Fatalf("battle should be closed, phase %v", b.Phase)
	}
	if b.Player.Pixels != 3 || b.Player.XP != 5 {
		t.Errorf("rewards not granted: pixels %d xp %d", b.Player.Pixels, b.Player.XP)
	}
	if blips != 3 {
		t.Errorf("OnAdvance called %d times, want 3 (not while completing text)", blips)
	}
	if b.Outcome() != "victory" {
		t.Errorf("Outcome() = %q, want victory", b.Outcome())
	}

	// Further input is ignored and rewards are not granted twice.
	b.Advance()
	if b.Player.Pixels != 3 {
		t.Errorf("rewards granted twice: pixels %d", b.Player.Pixels)
	}
}

func TestBattleFlee(t *testing.T) {
	b := newSlimeBattle()
	if !b.Flee() {
		t.Fatal("Flee from intro should be allowed")
	}
	if !b.Done() || b.Won() || b.Outcome() != "flee" {
		t.Errorf("after flee: done %v won %v outcome %q", b.Done(), b.Won(), b.Outcome())
	}
	if b.Attack() != 0 {
		t.Error("Attack after flee should do nothing")
	}
}

func TestBattleCannotFleeAfterVictory(t *testing.T) {
	b := newSlimeBattle()
	b.Attack()
	if b.Flee() {
		t.Error("Flee after the enemy is defeated should not be allowed")
	}
}

func TestBattleToughEnemyNeedsSeveralAttacks(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "golem", Name: "Golem", HP: 3}
	b := New(entity.NewPlayer(0, 0, nil), entity.NewEnemyFromDef(def, 0, 0))

	b.Attack()
	b.Attack()
	if b.Phase != PhaseIntro {
		t.Fatalf("golem should survive two level 1 attacks, phase %v", b.Phase)
	}
	b.Attack()
	if b.Phase != PhaseVictory || b.Turns != 3 {
		t.Errorf("phase %v turns %d, want victory after 3", b.Phase, b.Turns)
	}
}

func TestTypewriterTiming(t *testing.T) {
	tw := NewTypewriter("abcdef")

	if tw.Tick(Step - time.Nanosecond) {
		t.Error("no character should appear before one step")
	}
	if !tw.Tick(time.Nanosecond) || tw.Visible() != 1 {
		t.Errorf("after exactly one step visible = %d, want 1", tw.Visible())
	}
	tw.Tick(2 * Step)
	if tw.Text() != "abc" {
		t.Errorf("Text() = %q, want abc", tw.Text())
	}
	tw.Tick(time.Minute)
	if !tw.Done() || tw.Text() != "abcdef" {
		t.Errorf("Text() = %q done %v", tw.Text(), tw.Done())
	}
}

func TestTypewriterGraphemes(t *testing.T) {
	// "¡Olé!" has 5 graphemes even though é may be two code points.
	tw := NewTypewriter("¡Olé!")
	if tw.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tw.Len())
	}
	tw.Tick(4 * Step)
	if tw.Text() != "¡Olé" {
		t.Errorf("Text() = %q, want accent kept with its letter", tw.Text())
	}
}

func TestStep(t *testing.T) {
	if Step < minStep {
		t.Errorf("Step = %v, below %v", Step, minStep)
	}
	if Step != time.Second/CharsPerSecond {
		t.Errorf("Step = %v, want %v", Step, time.Second/CharsPerSecond)
	}
}
