package draw

import "unicode/utf8"

// Text is a simple drawable text object.
// Coordinates are 1-based terminal positions inside the canvas area.
type Text struct {
	X     int
	Y     int
	Value string
}

// Centered builds a Text whose middle sits on column centerX.
func Centered(centerX, y int, value string) Text {
	return Text{X: centerX - utf8.RuneCountInString(value)/2, Y: y, Value: value}
}

// Draw writes the text and marks the covered cells so the canvas repaints
// them once the text goes away.
func (t Text) Draw(cw *ChunkWriter, c *Canvas) {
	if t.Value == "" {
		return
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)
	cw.WriteAt(x, y, t.Value)
	if c != nil {
		c.MarkTextDirty(x, y, utf8.RuneCountInString(t.Value))
	}
}

// DrawLines draws a block of lines centred on centerX starting at row y.
func DrawLines(cw *ChunkWriter, c *Canvas, centerX, y int, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	for i, line := range lines {
		Text{X: centerX - width/2, Y: y + i, Value: line}.Draw(cw, c)
	}
}
