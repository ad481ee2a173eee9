package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// Draw renders the status bar and the visible part of the level (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	screen.Fill(colorBackground)
	if e.level == nil {
		e.drawColoredText(screen, gotext.Get("NO_LEVEL"), textPadding, textPadding, colorSubtle)
		return
	}

	e.drawTiles(screen)
	e.drawEntities(screen)
	e.drawStatusBar(screen)
}

// cellRect returns the screen rectangle of grid cell x, y
func (e *EbitenRenderer) cellRect(x, y int) (sx, sy, size float32) {
	_, h := e.canvas.Size()
	size = float32(e.tileSize)
	sx = float32(x-e.scroll) * size
	sy = float32(statusBarHeight) + float32(h-1-y)*size
	return sx, sy, size
}

// worldToScreen converts a world position (y up, one unit per cell) to screen pixels
func (e *EbitenRenderer) worldToScreen(p world.Position) (sx, sy float32) {
	_, h := e.canvas.Size()
	size := float32(e.tileSize)
	sx = (float32(p.X) - float32(e.scroll)) * size
	sy = float32(statusBarHeight) + (float32(h)-float32(p.Y))*size
	return sx, sy
}

func (e *EbitenRenderer) drawTiles(screen *ebiten.Image) {
	w, h := e.canvas.Size()
	cols := e.windowWidth/e.tileSize + 1
	for x := e.scroll; x < w && x < e.scroll+cols; x++ {
		for y := 0; y < h; y++ {
			sx, sy, size := e.cellRect(x, y)
			vector.DrawFilledRect(screen, sx, sy, size, size, tileColor(e.canvas.Tile(x, y)), false)
		}
	}
}

func tileColor(t world.Tile) color.Color {
	switch t {
	case world.TileTop:
		return colorTop
	case world.TileGround:
		return colorGround
	default:
		return colorSky
	}
}

func entityColor(k entities.Kind) color.Color {
	switch k {
	case entities.KindPlayer:
		return colorPlayer
	case entities.KindHazard:
		return colorHazard
	default:
		return colorEnemy
	}
}

// drawEntities draws each entity's icon in the cell it occupies and marks its exact anchor
func (e *EbitenRenderer) drawEntities(screen *ebiten.Image) {
	w, h := e.canvas.Size()
	cols := e.windowWidth/e.tileSize + 1
	for x := e.scroll; x < w && x < e.scroll+cols; x++ {
		for y := 0; y < h; y++ {
			kind, ok := e.canvas.EntityAt(x, y)
			if !ok {
				continue
			}
			sx, sy, size := e.cellRect(x, y)
			vector.DrawFilledRect(screen, sx+1, sy+1, size-2, size-2, colorPanel, false)
			e.drawCenteredText(screen, kind.Icon(), sx, sy, size, entityColor(kind))
		}
	}

	for _, req := range e.canvas.Spawned() {
		ax, ay := e.worldToScreen(req.Position)
		vector.DrawFilledRect(screen, ax-anchorSize/2, ay-anchorSize/2, anchorSize, anchorSize, colorAnchor, false)
	}
}

// drawStatusBar draws the seed line and the key help line
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image) {
	lvl := e.level
	w, h := e.canvas.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), statusBarHeight, colorPanel, false)

	line := fmt.Sprintf("%s: %d (%s %q)  %s: %dx%d  %s: %s  %s x%d  %s x%d",
		gotext.Get("SEED_LABEL"), lvl.Seed, gotext.Get(lvl.Origin.String()), lvl.Input,
		gotext.Get("SIZE_LABEL"), w, h,
		gotext.Get("GENERATOR_LABEL"), lvl.Generator,
		gotext.Get("Hazard"), entities.CountKind(lvl.Placements, entities.KindHazard),
		gotext.Get("Enemy"), entities.CountKind(lvl.Placements, entities.KindEnemy),
	)
	e.drawColoredText(screen, line, textPadding, textPadding-2, colorText)

	if e.status != "" {
		e.drawColoredText(screen, e.status, textPadding, textPadding-2+lineHeight, colorText)
		return
	}
	help := parseMarkup("ACTION{REGENERATE}  ACTION{DUMP}  ACTION{QUIT}  ←/→ GT{SCROLL}  +/- GT{ZOOM}")
	e.drawSegments(screen, help, textPadding, textPadding-2+lineHeight)
}

// drawCenteredText draws str centered in the square at sx, sy
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, sx, sy, size float32, col color.Color) {
	face := e.getUIFace()
	tw, th := text.Measure(str, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(sx)+(float64(size)-tw)/2, float64(sy)+(float64(size)-th)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}
