package gamedata

import (
	"errors"
)

// EnemyRegistry holds loaded enemy definitions.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}


// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// CardRegistry
// =============================================================================

// CardRegistry holds loaded card definitions and the starter deck.
type CardRegistry struct {
	cards       map[string]*CardDef
	all         []CardDef
	starterDeck []string
}

// NewCardRegistry creates a registry from loaded card definitions.
func NewCardRegistry(file CardsFile) *CardRegistry {
	registry := &CardRegistry{
		cards:       make(map[string]*CardDef),
		all:         file.Cards,
		starterDeck: file.StarterDeck,
	}
	for i := range file.Cards {
		registry.cards[file.Cards[i].ID] = &file.Cards[i]
	}
	return registry
}

// LoadCardRegistry loads and creates a registry from the embedded cards.json.
func LoadCardRegistry() (*CardRegistry, error) {
	file, err := LoadCards()
	if err != nil {
		return nil, err
	}
	if len(file.Cards) == 0 {
		return nil, errors.New("no cards loaded from cards.json")
	}
	return NewCardRegistry(file), nil
}

// GetByID returns the card definition with the given ID, or nil if not found.
func (r *CardRegistry) GetByID(id string) *CardDef {
	return r.cards[id]
}

// StarterDeck returns a copy of the deck new players begin with.
func (r *CardRegistry) StarterDeck() []string {
	deck := make([]string, len(r.starterDeck))
	copy(deck, r.starterDeck)
	return deck
}

// Count returns the number of cards in the registry.
func (r *CardRegistry) Count() int {
	return len(r.all)
}
