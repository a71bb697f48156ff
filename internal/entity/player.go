// Package entity provides the player and the creatures of the overworld.
package entity

// xpPerLevel is the experience needed per current level to level up.
const xpPerLevel = 10

// Player is the explorer's persistent character.
type Player struct {
	X      int      `json:"x"`
	Y      int      `json:"y"`
	HP     int      `json:"hp"`
	HPMax  int      `json:"hpMax"`
	Level  int      `json:"level"`
	XP     int      `json:"xp"`
	Pixels int      `json:"pixels"`
	Deck   []string `json:"deck"`
	ArtIDs []string `json:"artIds"`
	Symbol rune     `json:"-"`
}

// NewPlayer creates a level 1 player at the given position.
func NewPlayer(x, y int, deck []string) *Player {
	return &Player{
		X:      x,
		Y:      y,
		HP:     10,
		HPMax:  10,
		Level:  1,
		Deck:   deck,
		ArtIDs: []string{},
		Symbol: '@',
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// SetPosition places the player at (x, y).
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// GrantPixels adds n pixels of paint currency. Negative grants are ignored.
func (p *Player) GrantPixels(n int) {
	if n > 0 {
		p.Pixels += n
	}
}

// GrantXP adds experience and returns how many levels were gained.
func (p *Player) GrantXP(n int) int {
	if n <= 0 {
		return 0
	}
	p.XP += n
	gained := 0
	for p.XP >= p.Level*xpPerLevel {
		p.XP -= p.Level * xpPerLevel
		p.Level++
		p.HPMax += 2
		gained++
	}
	if gained > 0 {
		p.HP = p.HPMax
	}
	return gained
}

// AddArt records a saved drawing.
func (p *Player) AddArt(id string) {
	for _, existing := range p.ArtIDs {
		if existing == id {
			return
		}
	}
	p.ArtIDs = append(p.ArtIDs, id)
}

// Restore heals to full, as at the start of a run.
func (p *Player) Restore() {
	p.HP = p.HPMax
}
