package world

import (
	"sync"

	"github.com/samdwyer/pixelabyss/internal/noise"
)

// Classification constants. Changing any of these changes every world.
const (
	elevationScale = 0.08
	moistureScale  = 0.12
	moistureOffset = 999

	waterBelow   = 0.36
	shoreBelow   = 0.42
	prairieBelow = 0.62
	rockBelow    = 0.80
	forestFrom   = 0.5
)

// World is the procedurally generated overworld for one seed.
// It holds no tile data; every query is recomputed from the noise field.
type World struct {
	field noise.Field
}

// New creates a world for the given seed.
func New(seed int64) *World {
	return &World{field: noise.NewField(seed)}
}

// Seed returns the world seed.
func (w *World) Seed() int64 {
	return w.field.Seed
}

// BiomeAt classifies the tile at (tx, ty).
func (w *World) BiomeAt(tx, ty int) Biome {
	h, m := w.Sample(tx, ty)
	return classify(h, m)
}

// Sample returns the elevation and moisture values used to classify (tx, ty).
// Moisture is read far from the elevation sample so the two axes decorrelate.
func (w *World) Sample(tx, ty int) (h, m float64) {
	h = w.field.Sample(float64(tx), float64(ty), elevationScale)
	m = w.field.Sample(float64(tx+moistureOffset), float64(ty-moistureOffset), moistureScale)
	return h, m
}

func classify(h, m float64) Biome {
	switch {
	case h < waterBelow:
		return BiomeWater
	case h < shoreBelow:
		return BiomeShore
	case h < prairieBelow:
		if m < forestFrom {
			return BiomePrairie
		}
		return BiomeForest
	case h < rockBelow:
		return BiomeRock
	default:
		return BiomeSnow
	}
}

// TileCoord is an integer tile position.
type TileCoord struct{ X, Y int }

// CachedWorld memoizes BiomeAt. It is safe for concurrent use and returns
// exactly what the underlying World would.
type CachedWorld struct {
	*World

	mu     sync.RWMutex
	biomes map[TileCoord]Biome
	limit  int
}

// NewCachedWorld wraps a world with a cache holding at most limit tiles.
// When the cache is full it is cleared rather than evicted piecemeal.
func NewCachedWorld(w *World, limit int) *CachedWorld {
	if limit <= 0 {
		limit = 4096
	}
	return &CachedWorld{
		World:  w,
		biomes: make(map[TileCoord]Biome, 256),
		limit:  limit,
	}
}

// BiomeAt classifies the tile at (tx, ty), consulting the cache first.
func (c *CachedWorld) BiomeAt(tx, ty int) Biome {
	key := TileCoord{tx, ty}

	c.mu.RLock()
	b, ok := c.biomes[key]
	c.mu.RUnlock()
	if ok {
		return b
	}

	b = c.World.BiomeAt(tx, ty)

	c.mu.Lock()
	if len(c.biomes) >= c.limit {
		clear(c.biomes)
	}
	c.biomes[key] = b
	c.mu.Unlock()
	return b
}

// Len returns the number of cached tiles.
func (c *CachedWorld) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.biomes)
}

// BiomeSource is anything that can classify tiles.
type BiomeSource interface {
	BiomeAt(tx, ty int) Biome
}

var (
	_ BiomeSource = (*World)(nil)
	_ BiomeSource = (*CachedWorld)(nil)
)
