package ebiten

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var markupPattern = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.-]+)}`)

// textSegment represents a segment of text with a specific role
type textSegment struct {
	text   string
	action bool
}

// drawColoredText draws text with a specific color using the UI face
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getUIFace(), op)
}

// drawSegments draws segments left to right, highlighting actions
func (e *EbitenRenderer) drawSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getUIFace()
	cx := float64(x)
	for _, s := range segments {
		col := colorSubtle
		if s.action {
			col = colorAction
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, float64(y))
		op.ColorScale.ScaleWithColor(col)
		text.Draw(screen, s.text, face, op)
		cx += text.Advance(s.text, face)
	}
}

// parseMarkup formats msg and splits it on markup (GT{}, SEED{}, ACTION{}) into segments.
// GT{} and ACTION{} operands are translation keys.
func parseMarkup(msg string, args ...any) []textSegment {
	formatted := fmt.Sprintf(msg, args...)

	var segments []textSegment
	last := 0
	for _, loc := range markupPattern.FindAllStringSubmatchIndex(formatted, -1) {
		if loc[0] > last {
			segments = append(segments, textSegment{text: formatted[last:loc[0]]})
		}
		function := formatted[loc[2]:loc[3]]
		operand := formatted[loc[4]:loc[5]]

		switch function {
		case "GT":
			segments = append(segments, textSegment{text: dynamicGet(operand)})
		case "ACTION":
			segments = append(segments, textSegment{text: dynamicGet(operand), action: true})
		case "SEED":
			segments = append(segments, textSegment{text: operand})
		default:
			segments = append(segments, textSegment{text: formatted[loc[0]:loc[1]]})
		}
		last = loc[1]
	}
	if last < len(formatted) {
		segments = append(segments, textSegment{text: formatted[last:]})
	}
	return segments
}

// plainText joins segments without styling
func plainText(segments []textSegment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}
