package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Control sequences the hosts send around a session.
const (
	seqClear        = "\033[H\033[2J"
	seqHideCursor   = "\033[?25l"
	seqShowCursor   = "\033[?25h"
	seqMouseOn      = "\033[?1000h\033[?1002h\033[?1006h"
	seqMouseOff     = "\033[?1006l\033[?1002l\033[?1000l"
	chunkBufferSize = 8192
)

// maxChunkSize caps a single write so one frame goes out as several
// MTU-sized packets rather than one large burst.
const maxChunkSize = 1400

// appendCursor appends a CUP sequence for the 1-based row and column.
func appendCursor(b []byte, row, col int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// writeChunks writes data to w at most maxChunkSize bytes at a time.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ChunkWriter collects one frame of text output and sends it on Flush.
// Cursor positions are canvas-relative; the writer adds the centering offset.
type ChunkWriter struct {
	pending []byte
	out     *bufio.Writer
	offCol  int
	offRow  int
}

func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, chunkBufferSize),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset changes the centering offset, usually after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// MoveCursor queues a move to the 1-based canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.pending = appendCursor(cw.pending, row+cw.offRow, col+cw.offCol)
}

func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.pending = append(cw.pending, p...)
	return len(p), nil
}

func (cw *ChunkWriter) WriteString(s string) {
	cw.pending = append(cw.pending, s...)
}

// WriteAt queues s starting at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.WriteString(s)
}

// Len returns the number of queued bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.pending)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends everything queued since the last Flush.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.out, cw.pending)
	cw.pending = cw.pending[:0]
	if err != nil {
		return err
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the controlling terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampTermSize limits the render area to maxWidth x maxHeight and returns
// the offsets that centre it inside the terminal.
func ClampTermSize(termWidth, termHeight, maxWidth, maxHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxWidth)
	renderHeight = min(termHeight, maxHeight)
	return renderWidth, renderHeight, (termWidth - renderWidth) / 2, (termHeight - renderHeight) / 2
}

func ClearScreen(w io.Writer)  { io.WriteString(w, seqClear) }
func HideCursor(w io.Writer)   { io.WriteString(w, seqHideCursor) }
func ShowCursor(w io.Writer)   { io.WriteString(w, seqShowCursor) }
func EnableMouse(w io.Writer)  { io.WriteString(w, seqMouseOn) }
func DisableMouse(w io.Writer) { io.WriteString(w, seqMouseOff) }
