// Package battle runs the encounter screen opened when the player walks into an enemy.
package battle

import (
	"fmt"
	"time"

	"github.com/samdwyer/pixelabyss/internal/entity"
)

// Phase is the current step of a battle.
type Phase int

const (
	// PhaseIntro shows the enemy and waits for attack or flee.
	PhaseIntro Phase = iota
	// PhaseVictory shows the victory message.
	PhaseVictory
	// PhaseRewards shows the rewards message.
	PhaseRewards
	// PhaseClosed means the battle screen was dismissed after winning.
	PhaseClosed
	// PhaseFled means the player ran away from the intro.
	PhaseFled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseVictory:
		return "victory"
	case PhaseRewards:
		return "rewards"
	case PhaseClosed:
		return "closed"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Battle holds all state for one encounter.
type Battle struct {
	Phase  Phase
	Enemy  *entity.Enemy
	Player *entity.Player
	Turns  int

	messages []string
	typer    *Typewriter
	rewarded bool

	// OnAdvance is called every time the player advances a message, e.g. to
	// play a blip. It may be nil.
	OnAdvance func()
}

// New creates a battle between player and enemy.
func New(player *entity.Player, enemy *entity.Enemy) *Battle {
	return &Battle{
		Phase:  PhaseIntro,
		Enemy:  enemy,
		Player: player,
		messages: []string{
			fmt.Sprintf("Victory! You defeated the %s.", enemy.Name),
			"You gained experience and items.",
		},
		typer: NewTypewriter(""),
	}
}

// Attack strikes the enemy for the player's level in damage. When the enemy
// falls the battle moves to the victory message.
func (b *Battle) Attack() int {
	if b.Phase != PhaseIntro {
		return 0
	}
	b.Turns++
	dealt := b.Enemy.TakeDamage(max(b.Player.Level, 1))
	if !b.Enemy.IsAlive() {
		b.Phase = PhaseVictory
		b.startTyping(0)
	}
	return dealt
}

// Flee leaves the battle from the intro. It reports whether fleeing was allowed.
func (b *Battle) Flee() bool {
	if b.Phase != PhaseIntro {
		return false
	}
	b.Phase = PhaseFled
	return true
}

// Advance is the single "continue" input. A message still being typed is
// completed first; otherwise the battle moves to its next phase.
func (b *Battle) Advance() {
	if b.Done() {
		return
	}
	if b.Typing() {
		b.typer.Complete()
		return
	}

	if b.OnAdvance != nil {
		b.OnAdvance()
	}

	switch b.Phase {
	case PhaseIntro:
		b.Attack()
	case PhaseVictory:
		b.Phase = PhaseRewards
		b.startTyping(1)
	case PhaseRewards:
		b.Phase = PhaseClosed
		b.grantRewards()
	}
}

// Tick advances the typewriter by elapsed time.
func (b *Battle) Tick(elapsed time.Duration) bool {
	return b.typer.Tick(elapsed)
}

// Typing reports whether a message is still being revealed.
func (b *Battle) Typing() bool {
	return !b.typer.Done()
}

// Text returns the visible part of the current message.
func (b *Battle) Text() string {
	return b.typer.Text()
}

// Done reports whether the battle screen should close.
func (b *Battle) Done() bool {
	return b.Phase == PhaseClosed || b.Phase == PhaseFled
}

// Won reports whether the enemy was defeated.
func (b *Battle) Won() bool {
	return !b.Enemy.IsAlive()
}

// Outcome summarizes how the battle ended for logs and telemetry.
func (b *Battle) Outcome() string {
	switch {
	case b.Phase == PhaseFled:
		return "flee"
	case b.Won():
		return "victory"
	default:
		return "ongoing"
	}
}

func (b *Battle) startTyping(index int) {
	b.typer = NewTypewriter(b.messages[index])
}

func (b *Battle) grantRewards() {
	if b.rewarded {
		return
	}
	b.rewarded = true
	xp, pixels := b.Enemy.Rewards()
	b.Player.GrantXP(xp)
	b.Player.GrantPixels(pixels)
}
