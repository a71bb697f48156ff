// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS holds the enemy, card, biome and palette definitions.
//
//go:embed *.json
var dataFS embed.FS
