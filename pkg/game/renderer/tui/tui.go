// Package tui prints generated levels to the terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"platformgen/pkg/engine/terminal"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
	"platformgen/pkg/game/level"
	"platformgen/pkg/game/renderer"
)

// Icon constants for terrain
const (
	IconSky    = " "
	IconGround = "▓"
	IconTop    = "█"
	IconEdge   = "│"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows    = 4
	ViewportMinCols    = 16
	ViewportSideMargin = 2 // border column on each side of the map
	// Lines needed outside viewport:
	// - Title + seed line + blank (3)
	// - Column ruler (1)
	// - Legend + actions + prompt (4)
	ViewportTopMargin = 8
	// scrollStep is how many columns one scroll action moves the view
	scrollStep = 8
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	canvas *renderer.Canvas
	level  *level.Level
	scroll int // leftmost visible column

	colorTitle       color.Style
	colorSeed        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorSky         color.Style
	colorGround      color.Style
	colorTop         color.Style
	colorPlayer      color.Style
	colorHazard      color.Style
	colorEnemy       color.Style

	regexpStringFunctions *regexp.Regexp
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to out
func NewWithWriter(out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		out:    out,
		canvas: renderer.NewCanvas(1, 1),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSeed = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorSky = color.Style{color.BgBlack}
	t.colorGround = color.Style{color.FgYellow}            // Earth
	t.colorTop = color.Style{color.FgGreen}                // Grass
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorHazard = color.Style{color.FgRed, color.OpBold} // Spikes
	t.colorEnemy = color.Style{color.FgCyan, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.-]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSeed:
		return t.colorSeed.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSky:
		return t.colorSky.Sprint(text)
	case renderer.StyleGround:
		return t.colorGround.Sprint(text)
	case renderer.StyleTop:
		return t.colorTop.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleHazard:
		return t.colorHazard.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "SEED":
			val = t.colorSeed.Sprint(operand)
		case "ACTION":
			label := dynamicGet(operand)
			if label == "" {
				break
			}
			val = t.colorActionShort.Sprint(label[0:1]) + t.colorAction.Sprint(label[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - (ViewportSideMargin * 2)
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	return rows, cols
}

// Scroll moves the view by steps scroll steps; negative values move left
func (t *TUIRenderer) Scroll(steps int) {
	t.scroll += steps * scrollStep
	t.clampScroll()
}

// RenderLevel emits lvl into the renderer's canvas and prints it
func (t *TUIRenderer) RenderLevel(lvl *level.Level) {
	if t.level != lvl {
		t.level = lvl
		t.scroll = 0
	}
	t.canvas.Load(lvl)
	t.clampScroll()

	t.printHeader()
	_, cols := t.GetViewportSize()
	for _, line := range t.mapLines(cols) {
		fmt.Fprintln(t.out, line)
	}
	t.printLegend()
	t.printPossibleActions()
}

func (t *TUIRenderer) clampScroll() {
	w, _ := t.canvas.Size()
	_, cols := t.GetViewportSize()
	maxScroll := w - cols
	if t.scroll > maxScroll {
		t.scroll = maxScroll
	}
	if t.scroll < 0 {
		t.scroll = 0
	}
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printHeader() {
	lvl := t.level
	w, h := t.canvas.Size()
	fmt.Fprintln(t.out, t.colorTitle.Sprint(dynamicGet("LEVEL_PREVIEW")))
	t.printString("GT{SEED_LABEL}: SEED{%d} ", lvl.Seed)
	fmt.Fprint(t.out, t.colorSubtle.Sprintf("(%s %q)", dynamicGet(lvl.Origin.String()), lvl.Input))
	t.printString("  GT{SIZE_LABEL}: %dx%d  GT{GENERATOR_LABEL}: %s\n\n", w, h, lvl.Generator)
}

// mapLines renders the visible part of the canvas, top row first, inside a
// border. Columns left of the view are marked with '<' and right with '>'.
func (t *TUIRenderer) mapLines(cols int) []string {
	w, h := t.canvas.Size()
	end := t.scroll + cols
	if end > w {
		end = w
	}

	left, right := IconEdge, IconEdge
	if t.scroll > 0 {
		left = "<"
	}
	if end < w {
		right = ">"
	}

	lines := make([]string, 0, h)
	for y := h - 1; y >= 0; y-- {
		var b strings.Builder
		b.WriteString(t.colorSubtle.Sprint(left))
		for x := t.scroll; x < end; x++ {
			b.WriteString(t.renderCell(x, y))
		}
		b.WriteString(t.colorSubtle.Sprint(right))
		lines = append(lines, b.String())
	}
	return lines
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(x, y int) string {
	if kind, ok := t.canvas.EntityAt(x, y); ok {
		return t.entityStyle(kind).Sprint(kind.Icon())
	}

	switch t.canvas.Tile(x, y) {
	case world.TileTop:
		return t.colorTop.Sprint(IconTop)
	case world.TileGround:
		return t.colorGround.Sprint(IconGround)
	default:
		return t.colorSky.Sprint(IconSky)
	}
}

func (t *TUIRenderer) entityStyle(kind entities.Kind) color.Style {
	switch kind {
	case entities.KindPlayer:
		return t.colorPlayer
	case entities.KindHazard:
		return t.colorHazard
	default:
		return t.colorEnemy
	}
}

// printLegend prints the icon legend with placement counts
func (t *TUIRenderer) printLegend() {
	fmt.Fprintln(t.out)
	parts := []string{}
	for _, kind := range entities.AllKinds() {
		n := entities.CountKind(t.canvas.Spawned(), kind)
		parts = append(parts, fmt.Sprintf("%s %s x%d", t.entityStyle(kind).Sprint(kind.Icon()), dynamicGet(kind.String()), n))
	}
	parts = append(parts, t.colorTop.Sprint(IconTop)+" "+dynamicGet("TILE_TOP"))
	parts = append(parts, t.colorGround.Sprint(IconGround)+" "+dynamicGet("TILE_GROUND"))
	fmt.Fprintln(t.out, strings.Join(parts, t.colorSubtle.Sprint("  ")))
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printString("ACTION{REGENERATE}  ACTION{DUMP}  ACTION{QUIT}  %s GT{SCROLL}\n", t.colorActionShort.Sprint("←/→"))
}
