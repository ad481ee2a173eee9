package ebiten

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"platformgen/pkg/game/level"
	"platformgen/pkg/game/renderer"
)

// EbitenRenderer shows one level at a time in a window and regenerates it on request
type EbitenRenderer struct {
	mu     sync.RWMutex
	canvas *renderer.Canvas
	level  *level.Level
	scroll int // leftmost visible column
	status string

	windowWidth  int
	windowHeight int
	tileSize     int

	regenerate func() *level.Level
	dump       func(*level.Level) (string, error)
	logger     *log.Logger

	windowOpenedLogged bool

	uiFace *text.GoXFace
}

var (
	_ renderer.Renderer = (*EbitenRenderer)(nil)
	_ ebiten.Game       = (*EbitenRenderer)(nil)
)

// New creates a new Ebiten renderer. tileSize is clamped to the supported zoom range.
func New(tileSize int, logger *log.Logger) *EbitenRenderer {
	e := &EbitenRenderer{
		canvas:       renderer.NewCanvas(1, 1),
		windowWidth:  1024,
		windowHeight: 320,
		tileSize:     defaultTileSize,
		logger:       logger,
	}
	e.setTileSize(tileSize)
	return e
}

// OnRegenerate sets the function called when the user asks for a new level
func (e *EbitenRenderer) OnRegenerate(fn func() *level.Level) {
	e.regenerate = fn
}

// OnDump sets the function called when the user asks for a debug dump.
// It returns the path written.
func (e *EbitenRenderer) OnDump(fn func(*level.Level) (string, error)) {
	e.dump = fn
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	e.uiFace = newUIFace()
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
}

// Clear does nothing; Ebiten redraws the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderLevel replaces the level shown in the window
func (e *EbitenRenderer) RenderLevel(lvl *level.Level) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.level = lvl
	e.canvas.Load(lvl)
	e.scroll = 0
	e.status = ""
	e.fitWindow()
}

// StyleText returns text unchanged; colors are chosen when drawing
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// FormatText formats a message and resolves its markup to plain text
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return plainText(parseMarkup(msg, args...))
}

// ShowMessage shows msg in the status bar until the level changes
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.mu.Lock()
	e.status = msg
	e.mu.Unlock()
}

// GetViewportSize returns how many cells fit in the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return (e.windowHeight - statusBarHeight) / e.tileSize, e.windowWidth / e.tileSize
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// fitWindow resizes the window to hold the whole level height
func (e *EbitenRenderer) fitWindow() {
	_, h := e.canvas.Size()
	want := statusBarHeight + h*e.tileSize
	if want != e.windowHeight {
		e.windowHeight = want
		ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	}
}

func (e *EbitenRenderer) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
