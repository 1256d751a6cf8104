package tcellhost

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// statusLineIdle is the color drawn when no chord is pending.
var statusLineIdle = colorful.Color{R: 0.6, G: 0.6, B: 0.6}

// statusLinePending is the color drawn for a fully-held chord: each
// additional stroke nudges the status line further toward this color, so a
// longer pending sequence reads as visually "more committed."
var statusLinePending = colorful.Color{R: 0.95, G: 0.75, B: 0.15}

// pendingColor blends from idle toward pending in proportion to the
// accumulated sequence length, saturating at 4 strokes.
func pendingColor(depth int) tcell.Color {
	if depth <= 0 {
		return toTcellColor(statusLineIdle)
	}
	const saturateAt = 4
	t := float64(depth) / saturateAt
	if t > 1 {
		t = 1
	}
	return toTcellColor(statusLineIdle.BlendLuv(statusLinePending, t))
}

func toTcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawStatusLine renders the current pending sequence, if any, on the
// bottom row of the screen, colored by how deep into a chord the user is.
func drawStatusLine(screen tcell.Screen, pending []string) {
	width, height := screen.Size()
	if height == 0 {
		return
	}
	row := height - 1

	style := tcell.StyleDefault.Foreground(pendingColor(len(pending)))

	text := ""
	if len(pending) > 0 {
		text = strings.Join(pending, " ")
	}

	for x := 0; x < width; x++ {
		var r rune = ' '
		if x < len(text) {
			r = rune(text[x])
		}
		screen.SetContent(x, row, r, nil, style)
	}
}
