package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	engineinput "platformgen/pkg/engine/input"
)

// keyCodes maps window keys to the raw codes understood by the input package
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyR:          "KeyR",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyArrowLeft:  "KeyLeft",
	ebiten.KeyArrowRight: "KeyRight",
	ebiten.KeyEscape:     "KeyEscape",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logf("preview window opened (%dx%d)", w, h)
	}

	e.handleZoom()

	switch action := e.checkInput(); action {
	case engineinput.ActionQuit:
		return ebiten.Termination
	case engineinput.ActionRegenerate:
		if e.regenerate != nil {
			e.RenderLevel(e.regenerate())
		}
	case engineinput.ActionScrollLeft:
		e.scrollBy(-scrollStep)
	case engineinput.ActionScrollRight:
		e.scrollBy(scrollStep)
	case engineinput.ActionDump:
		e.dumpLevel()
	}

	return nil
}

// checkInput returns the action for the first bound key pressed this frame
func (e *EbitenRenderer) checkInput() engineinput.Action {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
		if action := engineinput.MapToAction(raw); action != engineinput.ActionNone {
			return action
		}
	}
	return engineinput.ActionNone
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.zoom(tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.zoom(-tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.zoom(defaultTileSize - e.tileSize)
	}
}

func (e *EbitenRenderer) zoom(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setTileSize(e.tileSize + delta)
	e.fitWindow()
	e.clampScroll()
}

func (e *EbitenRenderer) setTileSize(size int) {
	switch {
	case size < minTileSize:
		size = minTileSize
	case size > maxTileSize:
		size = maxTileSize
	}
	e.tileSize = size
}

func (e *EbitenRenderer) scrollBy(columns int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scroll += columns
	e.clampScroll()
}

// clampScroll keeps the view inside the level; callers hold mu
func (e *EbitenRenderer) clampScroll() {
	w, _ := e.canvas.Size()
	maxScroll := w - e.windowWidth/e.tileSize
	if e.scroll > maxScroll {
		e.scroll = maxScroll
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

func (e *EbitenRenderer) dumpLevel() {
	e.mu.RLock()
	lvl := e.level
	e.mu.RUnlock()
	if e.dump == nil || lvl == nil {
		return
	}

	path, err := e.dump(lvl)
	if err != nil {
		e.logf("dump failed: %v", err)
		e.ShowMessage(gotext.Get("DUMP_FAILED"))
		return
	}
	e.ShowMessage(gotext.Get("DUMP_WRITTEN", path))
}

// Layout tracks the window size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.clampScroll()
	}
	return outsideWidth, outsideHeight
}
