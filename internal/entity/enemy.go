package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelabyss/internal/gamedata"
)

// Enemy represents a hostile creature met in the overworld.
type Enemy struct {
	Def    *gamedata.EnemyDef // Reference to the enemy definition (nil when unknown)
	Kind   string             // Encounter kind (e.g., "slime")
	Name   string             // Display name
	Symbol rune               // Display symbol
	X, Y   int                // Tile position
	HP     int                // Current hit points
	MaxHP  int                // Maximum hit points
}

// NewEnemy creates an enemy of an unknown kind with a single hit point.
func NewEnemy(kind string, x, y int) *Enemy {
	return &Enemy{
		Kind:   kind,
		Name:   kind,
		Symbol: '?',
		X:      x,
		Y:      y,
		HP:     1,
		MaxHP:  1,
	}
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef, x, y int) *Enemy {
	hp := max(def.HP, 1)
	return &Enemy{
		Def:    def,
		Kind:   def.ID,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		X:      x,
		Y:      y,
		HP:     hp,
		MaxHP:  hp,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorRed
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, e.HP)
	e.HP -= actual
	return actual
}

// Rewards returns the XP and pixels granted for defeating this enemy.
func (e *Enemy) Rewards() (xp, pixels int) {
	if e.Def == nil {
		return 1, 1
	}
	return e.Def.XP, e.Def.Pixels
}
