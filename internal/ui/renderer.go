package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/pixelabyss/internal/battle"
	"github.com/samdwyer/pixelabyss/internal/entity"
	"github.com/samdwyer/pixelabyss/internal/gamedata"
	"github.com/samdwyer/pixelabyss/internal/world"
)

// HUDLines is the number of rows drawn below the map.
const HUDLines = 3

// cellWidth is the number of terminal columns per tile, which keeps tiles
// roughly square.
const cellWidth = 2

// Marker is something drawn on top of a tile.
type Marker struct {
	At    world.TileCoord
	Glyph rune
	Color tcell.Color
}

// HUD is the status shown under the map.
type HUD struct {
	Player *entity.Player
	Biome  world.Biome
	Notice string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles map[world.Biome]gamedata.BiomeStyle
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles map[world.Biome]gamedata.BiomeStyle) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// RenderExplore draws the visible tiles, the markers on top and the HUD.
func (r *Renderer) RenderExplore(src world.BiomeSource, vp world.Viewport, markers []Marker, hud HUD) {
	r.screen.Clear()

	vp.Each(func(lx, ly int, c world.TileCoord) {
		style, glyph := r.tileStyle(src.BiomeAt(c.X, c.Y))
		r.screen.SetContent(lx*cellWidth, ly, glyph, style)
		r.screen.SetContent(lx*cellWidth+1, ly, ' ', style)
	})

	for _, m := range markers {
		lx, ly, ok := vp.Local(m.At)
		if !ok {
			continue
		}
		bg, _ := r.tileStyle(src.BiomeAt(m.At.X, m.At.Y))
		r.screen.SetContent(lx*cellWidth, ly, m.Glyph, bg.Foreground(m.Color).Bold(true))
	}

	p := hud.Player
	status := fmt.Sprintf("(%d, %d) %s  HP %d/%d  Lv %d  XP %d  Pixels %d",
		p.X, p.Y, r.biomeName(hud.Biome), p.HP, p.HPMax, p.Level, p.XP, p.Pixels)
	r.drawText(0, vp.Height, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, vp.Height+1, "WASD/arrows move  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	if hud.Notice != "" {
		r.drawText(0, vp.Height+2, hud.Notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	r.screen.Show()
}

// RenderBattle draws the encounter panel for b.
func (r *Renderer) RenderBattle(b *battle.Battle) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hint := tcell.StyleDefault.Foreground(tcell.ColorGray)

	x, y := 2, 1
	r.drawText(x, y, "Encounter!", title)
	r.drawText(x, y+1, fmt.Sprintf("Tile (%d, %d): a %s appears.", b.Enemy.X, b.Enemy.Y, b.Enemy.Name), body)
	r.screen.SetContent(x, y+3, b.Enemy.Symbol, tcell.StyleDefault.Foreground(b.Enemy.Color()).Bold(true))
	r.drawText(x+2, y+3, fmt.Sprintf("Enemy HP %d/%d", b.Enemy.HP, b.Enemy.MaxHP), body)

	switch b.Phase {
	case battle.PhaseIntro:
		r.drawText(x, y+5, "[a] attack  [f] flee", hint)
	default:
		r.drawText(x, y+5, b.Text(), body)
		if !b.Typing() {
			r.drawText(x, y+7, "[space] continue", hint)
		}
	}

	r.screen.Show()
}

func (r *Renderer) tileStyle(b world.Biome) (tcell.Style, rune) {
	s, ok := r.styles[b]
	if !ok {
		return tcell.StyleDefault, ' '
	}
	return tcell.StyleDefault.Background(s.Color).Foreground(tcell.ColorBlack), s.Glyph
}

func (r *Renderer) biomeName(b world.Biome) string {
	if s, ok := r.styles[b]; ok && s.Name != "" {
		return s.Name
	}
	return b.String()
}

// drawText writes msg starting at (x, y), one grapheme cluster per cell run.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	g := uniseg.NewGraphemes(msg)
	for g.Next() {
		r.screen.SetCluster(x, y, g.Runes(), style)
		x += max(g.Width(), 1)
	}
}
