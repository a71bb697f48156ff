// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the overworld, where the player walks the biome map.
	StateExplore State = iota
	// StateBattle is the encounter screen opened by walking into the enemy.
	StateBattle
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateBattle:
		return "battle"
	default:
		return "unknown"
	}
}
