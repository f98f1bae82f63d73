package draw

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBar(t *testing.T) {
	tests := []struct {
		value, limit float64
		width        int
		want         string
	}{
		{0, 100, 4, "    "},
		{100, 100, 4, "████"},
		{50, 100, 4, "██  "},
		{60, 100, 4, "██░ "},
		{150, 100, 4, "████"},
		{-5, 100, 4, "    "},
		{10, 0, 3, "   "},
		{10, 100, 0, ""},
	}
	for _, tt := range tests {
		got := Bar(tt.value, tt.limit, tt.width)
		if got != tt.want {
			t.Errorf("Bar(%v, %v, %d) = %q, want %q", tt.value, tt.limit, tt.width, got, tt.want)
		}
		if utf8.RuneCountInString(got) != tt.width {
			t.Errorf("Bar(%v) width = %d", tt.value, utf8.RuneCountInString(got))
		}
	}
}

func TestHUDDraw(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	c := NewScaledCanvas(80, 24, 640, 480)

	h := &HUD{}
	h.Update(1234, 50, 1000)
	h.Draw(cw, c, true, true)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	for _, want := range []string{"Score: 1234", "MUTED", "PAUSED", "HP ██████████"} {
		if !strings.Contains(s, want) {
			t.Errorf("HUD output missing %q", want)
		}
	}
}

func TestCenteredText(t *testing.T) {
	txt := Centered(40, 5, "abcd")
	if txt.X != 38 || txt.Y != 5 {
		t.Errorf("Centered = %+v", txt)
	}

	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	Text{X: -3, Y: 0, Value: "x"}.Draw(cw, nil)
	cw.Flush()
	if out.String() != "\033[1;1Hx" {
		t.Errorf("clamped text = %q", out.String())
	}
}
