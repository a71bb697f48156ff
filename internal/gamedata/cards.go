package gamedata

// CardEffect is what playing a card does.
type CardEffect string

const (
	EffectAttack CardEffect = "atk"
	EffectDefend CardEffect = "def"
	EffectHeal   CardEffect = "heal"
)

// CardDef defines a deck card loaded from JSON.
type CardDef struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Cost   int        `json:"cost"`
	Effect CardEffect `json:"effect"`
}

// CardsFile represents the structure of cards.json.
type CardsFile struct {
	Cards       []CardDef `json:"cards"`
	StarterDeck []string  `json:"starterDeck"`
}

// LoadCards loads card definitions from the embedded cards.json file.
func LoadCards() (CardsFile, error) {
	return Load[CardsFile]("cards.json")
}
