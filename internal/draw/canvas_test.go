package draw

import (
	"strings"
	"testing"
)

func render(c *Canvas) string {
	var b strings.Builder
	c.Render(&b)
	return b.String()
}

func TestCanvasHalfBlocks(t *testing.T) {
	tests := []struct {
		name   string
		pixels [][2]int
		colors []Color
		want   string
	}{
		{"upper", [][2]int{{2, 2}}, []Color{ColorRed}, "\033[2;3H\033[0;31m▀"},
		{"lower", [][2]int{{2, 3}}, []Color{ColorRed}, "\033[2;3H\033[0;31m▄"},
		{"full", [][2]int{{2, 2}, {2, 3}}, []Color{ColorGreen, ColorGreen}, "\033[2;3H\033[0;32m█"},
		{"two colours", [][2]int{{2, 2}, {2, 3}}, []Color{ColorRed, ColorBlue}, "\033[2;3H\033[0;31;44m▀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewScaledCanvas(10, 5, 10, 10)
			for i, p := range tt.pixels {
				c.SetFloat(float64(p[0]), float64(p[1]), tt.colors[i])
			}
			if out := render(c); !strings.Contains(out, tt.want) {
				t.Errorf("Render() missing %q", tt.want)
			}
		})
	}
}

func TestCanvasRenderOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	first := render(c)
	if got := strings.Count(first, "H"); got != 50 {
		t.Errorf("first render wrote %d cells, want 50", got)
	}
	if out := render(c); out != "" {
		t.Errorf("unchanged render = %q, want empty", out)
	}

	c.SetFloat(4, 4, ColorWhite)
	out := render(c)
	if strings.Count(out, "H") != 1 || !strings.Contains(out, "\033[3;5H") {
		t.Errorf("render after one pixel = %q", out)
	}

	c.Clear()
	out = render(c)
	if !strings.Contains(out, "\033[3;5H\033[0m ") {
		t.Errorf("cleared pixel not erased: %q", out)
	}
}

func TestCanvasForceRedraw(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	render(c)

	c.MarkTextDirty(2, 1, 2)
	if got := strings.Count(render(c), "H"); got != 2 {
		t.Errorf("after MarkTextDirty wrote %d cells, want 2", got)
	}

	c.ForceRedraw()
	if got := strings.Count(render(c), "H"); got != 8 {
		t.Errorf("after ForceRedraw wrote %d cells, want 8", got)
	}

	c.SetOffset(1, 1)
	out := render(c)
	if !strings.Contains(out, "\033[2;2H") {
		t.Errorf("offset not applied: %q", out)
	}
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(64, 24, 640, 480)
	c.SetFloat(100, 100, ColorCyan)
	if got := c.pixels[10*64+10]; got != ColorCyan {
		t.Errorf("pixel (10,10) = %v, want cyan", got)
	}

	col, row := c.LogicalToTerminal(100, 100)
	if col != 11 || row != 6 {
		t.Errorf("LogicalToTerminal = (%d,%d), want (11,6)", col, row)
	}

	x, y := c.TerminalToLogical(11, 6)
	if x != 105 || y != 110 {
		t.Errorf("TerminalToLogical = (%v,%v), want (105,110)", x, y)
	}
}

func TestFillRectCoversAtLeastOnePixel(t *testing.T) {
	c := NewScaledCanvas(64, 24, 640, 480)
	c.FillRect(200, 200, 1, 1, ColorYellow)

	n := 0
	for _, p := range c.pixels {
		if p != ColorNone {
			n++
		}
	}
	if n != 1 {
		t.Errorf("FillRect set %d pixels, want 1", n)
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	pts := []Point{{2, 2}, {10, 2}, {10, 10}, {2, 10}}
	c.DrawPolygon(pts, true, ColorRed)

	if got := c.pixels[6*20+6]; got != ColorRed {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := c.pixels[15*20+15]; got != ColorNone {
		t.Errorf("outside pixel = %v, want none", got)
	}
}

func TestResizeKeepsLogicalSize(t *testing.T) {
	c := NewScaledCanvas(64, 24, 640, 480)
	c.Resize(32, 12)
	if c.TerminalWidth() != 32 || c.TerminalHeight() != 12 {
		t.Fatalf("size = %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	c.SetFloat(320, 240, ColorWhite)
	if got := c.pixels[12*32+16]; got != ColorWhite {
		t.Errorf("centre pixel = %v, want white", got)
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 2)
	var b strings.Builder
	c.RenderBorder(&b)
	out := b.String()
	for _, want := range []string{"\033[2;2H┌────┐", "\033[5;2H└────┘", "\033[3;2H│", "\033[3;7H│"} {
		if !strings.Contains(out, want) {
			t.Errorf("border missing %q", want)
		}
	}
}
