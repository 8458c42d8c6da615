package widgets

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontSize is the font size of labels, buttons and text fields that
// were given none.
const DefaultFontSize = 17

var face font.Face = basicfont.Face7x13

// faceHeight is the line height of face at its native size.
const faceHeight = 13

// paragraph describes text to measure.
type paragraph struct {
	text     string
	fontSize float64
	// maxWidth wraps lines; 0 means a single unbounded line per newline.
	maxWidth float64
	// maxLines truncates; 0 means unlimited.
	maxLines int
}

// measure returns the size of the text laid out with greedy word wrapping.
// Empty text measures one line tall and zero wide.
func (p paragraph) measure() (width, height float64) {
	size := p.fontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	scale := size / faceHeight

	lines := p.lines(scale)
	if p.maxLines > 0 && len(lines) > p.maxLines {
		lines = lines[:p.maxLines]
	}
	for _, l := range lines {
		width = math.Max(width, advance(l)*scale)
	}
	return width, float64(len(lines)) * size
}

func (p paragraph) lines(scale float64) []string {
	var out []string
	for _, hard := range strings.Split(p.text, "\n") {
		if p.maxWidth <= 0 {
			out = append(out, hard)
			continue
		}
		line := ""
		for _, word := range strings.Fields(hard) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && advance(candidate)*scale > p.maxWidth {
				out = append(out, line)
				candidate = word
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}

func advance(s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}
