package world

// DefaultEnemyKind is the creature that roams the overworld.
const DefaultEnemyKind = "slime"

// Encounter describes a collision between the player and the enemy.
type Encounter struct {
	Kind string
	At   TileCoord
}

// Explorer is the mutable scene state of the overworld: where the player
// stands and where the enemy waits. It is updated by discrete input events and
// never touches the world generator.
type Explorer struct {
	Player TileCoord

	enemy        TileCoord
	enemyKind    string
	hasEnemy     bool
	wasColliding bool
}

// NewExplorer places the player at start with the default enemy at (5, 3).
func NewExplorer(start TileCoord) *Explorer {
	return &Explorer{
		Player:    start,
		enemy:     TileCoord{5, 3},
		enemyKind: DefaultEnemyKind,
		hasEnemy:  true,
	}
}

// Enemy returns the enemy position and kind. ok is false once it is cleared.
func (e *Explorer) Enemy() (at TileCoord, kind string, ok bool) {
	return e.enemy, e.enemyKind, e.hasEnemy
}

// PlaceEnemy puts an enemy of kind on tile at.
func (e *Explorer) PlaceEnemy(at TileCoord, kind string) {
	e.enemy = at
	e.enemyKind = kind
	e.hasEnemy = true
	e.wasColliding = e.colliding()
}

// ClearEnemy removes the enemy, e.g. after it is defeated.
func (e *Explorer) ClearEnemy() {
	e.hasEnemy = false
	e.wasColliding = false
}

// Move shifts the player by (dx, dy) and reports an encounter if the move
// brings the player onto the enemy.
func (e *Explorer) Move(dx, dy int) (Encounter, bool) {
	e.Player.X += dx
	e.Player.Y += dy
	return e.Check()
}

// Check evaluates the encounter trigger at the current position. It fires
// only on the transition into collision; standing still on the enemy or
// moving away and back re-arms it.
func (e *Explorer) Check() (Encounter, bool) {
	colliding := e.colliding()
	if colliding && !e.wasColliding {
		e.wasColliding = true
		return Encounter{Kind: e.enemyKind, At: e.enemy}, true
	}
	if !colliding {
		e.wasColliding = false
	}
	return Encounter{}, false
}

func (e *Explorer) colliding() bool {
	return e.hasEnemy && e.Player == e.enemy
}
