package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newUIFace returns the bitmap face used for the status bar and entity glyphs
func newUIFace() *text.GoXFace {
	return text.NewGoXFace(basicfont.Face7x13)
}

// getUIFace returns the UI face, creating it on first use
func (e *EbitenRenderer) getUIFace() *text.GoXFace {
	if e.uiFace == nil {
		e.uiFace = newUIFace()
	}
	return e.uiFace
}
