package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// stale marks a cell whose on-screen content is unknown.
const stale = 0xFFFF

// Canvas rasterises logical-space shapes onto terminal cells. Each cell
// holds two vertically stacked pixels drawn with half-block glyphs, and
// Render sends only the cells that changed since the previous frame.
type Canvas struct {
	cols, rows int     // render area in terminal cells
	pixelRows  int     // rows * 2
	pixels     []Color // row-major, cols wide
	shown      []uint16

	logicalW, logicalH float64
	sx, sy             float64 // pixels per logical unit

	// 0-based cells skipped to centre the render area.
	offsetCol, offsetRow int

	renderBuf []byte
	edgeBuf   []Point
	crossBuf  []float64
	pointBuf  []Point
}

// NewScaledCanvas returns a canvas of termWidth x termHeight cells that
// accepts coordinates in a logicalWidth x logicalHeight space.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalW: logicalWidth, logicalH: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize changes the cell grid. The logical space is unchanged; any change
// of size forgets what is on screen.
func (c *Canvas) Resize(termWidth, termHeight int) {
	cols, rows := max(termWidth, 0), max(termHeight, 0)
	if c.pixels == nil || cols != c.cols || rows != c.rows {
		c.cols, c.rows, c.pixelRows = cols, rows, rows*2
		c.pixels = make([]Color, c.pixelRows*cols)
		c.shown = make([]uint16, rows*cols)
		c.ForceRedraw()
	}
	c.sx = float64(c.cols) / c.logicalW
	c.sy = float64(c.pixelRows) / c.logicalH
}

// SetOffset moves the render area so it starts at terminal cell
// (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	if col == c.offsetCol && row == c.offsetRow {
		return
	}
	c.offsetCol, c.offsetRow = col, row
	c.ForceRedraw()
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = stale
	}
}

// MarkTextDirty records that n cells starting at the 1-based (col, row) were
// overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	if row < 0 || row >= c.rows {
		return
	}
	for x := max(col-1, 0); x < col-1+n && x < c.cols; x++ {
		c.shown[row*c.cols+x] = stale
	}
}

// Clear blanks every pixel; the screen keeps its content until Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, col Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.pixelRows {
		return
	}
	c.pixels[y*c.cols+x] = col
}

// toPixel maps a logical position to the nearest pixel.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.sx)), int(math.Round(y * c.sy))
}

// SetFloat colours the pixel nearest the logical point (x, y).
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, col)
}

// FillRect fills a logical rectangle given by its top-left corner. Every
// rectangle covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x1, y1 := c.toPixel(x, y)
	x2, y2 := c.toPixel(x+w, y+h)
	x2, y2 = max(x2, x1+1), max(y2, y1+1)
	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// DrawLine rasterises the logical segment p1-p2 (Bresenham).
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x, y := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx, dy := abs(x2-x), -abs(y2-y)
	stepX, stepY := 1, 1
	if x > x2 {
		stepX = -1
	}
	if y > y2 {
		stepY = -1
	}

	e := dx + dy
	for {
		c.setPixel(x, y, col)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += stepX
		}
		if e2 <= dx {
			e += dx
			y += stepY
		}
	}
}

// DrawPolygon outlines the closed polygon through points, filling it first
// when filled is set. Fewer than three points draw nothing.
func (c *Canvas) DrawPolygon(points []Point, filled bool, col Color) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, col)
	}
	prev := points[n-1]
	for _, p := range points {
		c.DrawLine(prev, p, col)
		prev = p
	}
}

// fillPolygon fills with an even-odd scanline pass through pixel centres.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	c.edgeBuf = c.edgeBuf[:0]
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		q := Point{X: p.X * c.sx, Y: p.Y * c.sy}
		c.edgeBuf = append(c.edgeBuf, q)
		top, bottom = math.Min(top, q.Y), math.Max(bottom, q.Y)
	}
	edges := c.edgeBuf

	first := max(int(math.Floor(top)), 0)
	last := min(int(math.Ceil(bottom)), c.pixelRows-1)
	for y := first; y <= last; y++ {
		scan := float64(y) + 0.5
		xs := c.crossBuf[:0]
		prev := edges[len(edges)-1]
		for _, p := range edges {
			if (prev.Y <= scan) != (p.Y <= scan) {
				t := (scan - prev.Y) / (p.Y - prev.Y)
				xs = append(xs, prev.X+t*(p.X-prev.X))
			}
			prev = p
		}
		c.crossBuf = xs
		slices.Sort(xs)

		for k := 0; k+1 < len(xs); k += 2 {
			for x := int(math.Ceil(xs[k])); x <= int(math.Floor(xs[k+1])); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Render outputs the changed cells to the writer using half-block characters.
// A cell whose two sub-pixels differ in colour paints the top one as
// foreground and the bottom one as background.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf = c.renderBuf[:0]

	for row := range c.rows {
		upper := c.pixels[row*2*c.cols:]
		lower := upper[c.cols:]
		shown := c.shown[row*c.cols:]
		for col := range c.cols {
			top, bottom := upper[col], lower[col]
			if key := uint16(top)<<8 | uint16(bottom); shown[col] != key {
				shown[col] = key
				c.writeCell(row, col, top, bottom)
			}
		}
	}
	if len(c.renderBuf) > 0 {
		c.renderBuf = append(c.renderBuf, ColorReset...)
	}
	_ = writeChunks(w, c.renderBuf)
}

func (c *Canvas) writeCell(row, col int, top, bottom Color) {
	c.renderBuf = appendCursor(c.renderBuf, row+1+c.offsetRow, col+1+c.offsetCol)
	c.renderBuf = append(c.renderBuf, "\033[0"...)

	var ch rune
	switch {
	case top == ColorNone && bottom == ColorNone:
		c.renderBuf = append(c.renderBuf, "m "...)
		return
	case top == bottom:
		c.writeSGR(top.fg())
		ch = BlockFull
	case bottom == ColorNone:
		c.writeSGR(top.fg())
		ch = BlockUpperHalf
	case top == ColorNone:
		c.writeSGR(bottom.fg())
		ch = BlockLowerHalf
	default:
		c.writeSGR(top.fg())
		c.writeSGR(bottom.bg())
		ch = BlockUpperHalf
	}
	c.renderBuf = append(c.renderBuf, 'm')
	c.renderBuf = utf8.AppendRune(c.renderBuf, ch)
}

func (c *Canvas) writeSGR(code int) {
	c.renderBuf = append(c.renderBuf, ';')
	c.renderBuf = strconv.AppendInt(c.renderBuf, int64(code), 10)
}

// RenderBorder frames the canvas when the terminal is larger than the
// render area: rules above and below when there is a row offset, bars at
// the sides when there is a column offset, corners when both.
func (c *Canvas) RenderBorder(w io.Writer) {
	rows, cols := c.offsetRow >= 1, c.offsetCol >= 1
	if !rows && !cols {
		return
	}

	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	rule := strings.Repeat("─", c.cols)

	var b []byte
	switch {
	case rows && cols:
		b = append(appendCursor(b, top, left), "┌"+rule+"┐"...)
		b = append(appendCursor(b, bottom, left), "└"+rule+"┘"...)
	case rows:
		b = append(appendCursor(b, top, left+1), rule...)
		b = append(appendCursor(b, bottom, left+1), rule...)
	}
	if cols {
		for row := top + 1; row < bottom; row++ {
			b = append(appendCursor(b, row, left), "│"...)
			b = append(appendCursor(b, row, right), "│"...)
		}
	}
	_ = writeChunks(w, b)
}

// TerminalWidth and TerminalHeight report the render area in cells.
func (c *Canvas) TerminalWidth() int  { return c.cols }
func (c *Canvas) TerminalHeight() int { return c.rows }

// LogicalToTerminal maps a logical point to its 1-based (col, row) cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// TerminalToLogical maps a 1-based cell to the logical point at its centre.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	if c.sx == 0 || c.sy == 0 {
		return 0, 0
	}
	return (float64(col-1) + 0.5) / c.sx, (float64(row-1)*2 + 1) / c.sy
}

// BorrowPoints hands out a scratch slice of n points, valid until the next
// call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}
