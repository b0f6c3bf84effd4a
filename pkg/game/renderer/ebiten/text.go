package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// parseMarkup parses a message string with markup (ACTION{}, SUBTLE{}, DENIED{}, GT{}) and returns colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	matches := markupRegex.FindAllStringSubmatchIndex(msg, -1)

	for _, match := range matches {
		// Add text before the markup
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ACTION":
			segColor = colorAction
		case "SUBTLE":
			segColor = colorSubtle
		case "DENIED":
			segColor = colorDenied
		case "GT":
			content = dynamicGet(content)
			segColor = colorText
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	// Add remaining text after last markup
	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}

	// If no markup found, return the whole message as a single segment
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}

	return segments
}

// plainText joins the segment texts without colors
func plainText(segments []textSegment) string {
	s := ""
	for _, seg := range segments {
		s += seg.text
	}
	return s
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int, face *text.GoTextFace, alpha float64) {
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(applyAlpha(seg.color, alpha))

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}
