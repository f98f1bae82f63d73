// Package draw renders the game into a terminal: a scaled half-block canvas,
// a chunked ANSI writer and the Scene that mirrors entities onto the canvas.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal palette entry. ColorNone is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
)

// ColorReset restores the default terminal attributes.
const ColorReset = "\033[0m"

var fgCodes = [...]int{
	ColorNone:         39,
	ColorWhite:        97,
	ColorGray:         90,
	ColorRed:          31,
	ColorGreen:        32,
	ColorYellow:       33,
	ColorBlue:         34,
	ColorMagenta:      35,
	ColorCyan:         36,
	ColorBrightRed:    91,
	ColorBrightYellow: 93,
	ColorBrightCyan:   96,
}

func (c Color) fg() int {
	if int(c) < len(fgCodes) {
		return fgCodes[c]
	}
	return 39
}

// bg is the background variant of the foreground code.
func (c Color) bg() int {
	return c.fg() + 10
}

// SGR returns the escape sequence that sets c as the foreground colour.
func (c Color) SGR() string {
	return "\033[" + strconv.Itoa(c.fg()) + "m"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
