package draw

import (
	"fmt"
	"strings"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/object"
)

const barWidth = 20

// HUD keeps the vitals last reported by the world and draws them as a
// status line. It implements object.HUD.
type HUD struct {
	Score  int
	Health float64
	Charge float64
}

var _ object.HUD = (*HUD)(nil)

// Update implements object.HUD.
func (h *HUD) Update(score int, health, charge float64) {
	h.Score = score
	h.Health = health
	h.Charge = charge
}

// Draw writes the status line on the top row and the flags on the bottom
// row of the canvas area. Fields are fixed width so shrinking values leave
// no residue behind.
func (h *HUD) Draw(cw *ChunkWriter, c *Canvas, muted, paused bool) {
	width := c.TerminalWidth()
	height := c.TerminalHeight()

	Text{X: 2, Y: 1, Value: fmt.Sprintf("Score: %-8d", h.Score)}.Draw(cw, c)

	vitals := fmt.Sprintf("HP %s  CHG %s",
		Bar(h.Health, config.MaxHealth, barWidth),
		Bar(h.Charge, config.MaxCharge, barWidth))
	Text{X: width - barWidth*2 - 10, Y: 1, Value: vitals}.Draw(cw, c)

	flags := "     "
	if muted {
		flags = "MUTED"
	}
	Text{X: 2, Y: height, Value: flags}.Draw(cw, c)
	if paused {
		Centered(width/2, height/2, "PAUSED - press P to resume").Draw(cw, c)
	}
}

// Bar renders value/limit as a gauge of width cells. The last partial cell
// uses a shade character.
func Bar(value, limit float64, width int) string {
	if width <= 0 {
		return ""
	}
	frac := 0.0
	if limit > 0 {
		frac = min(1, max(0, value/limit))
	}

	cells := frac * float64(width)
	full := int(cells)

	var b strings.Builder
	b.WriteString(strings.Repeat(string(BlockFull), full))
	if full < width {
		b.WriteRune(ShadeLevel(cells - float64(full)))
		b.WriteString(strings.Repeat(" ", width-full-1))
	}
	return b.String()
}
