package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if out.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[3;4Hhi" {
		t.Errorf("output = %q", got)
	}
	if cw.Len() != 0 {
		t.Error("buffer not reset after Flush")
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != payload {
		t.Errorf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{200, 24, 160, 24, 20, 0},
		{200, 100, 160, 60, 20, 20},
		{161, 61, 160, 60, 0, 0},
	}
	for _, tt := range tests {
		rw, rh, oc, or := ClampTermSize(tt.w, tt.h, 160, 60)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Errorf("ClampTermSize(%d,%d) = %d,%d,%d,%d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}

func TestMouseSequences(t *testing.T) {
	var out bytes.Buffer
	EnableMouse(&out)
	if !strings.Contains(out.String(), "?1006h") {
		t.Errorf("EnableMouse = %q", out.String())
	}
	out.Reset()
	DisableMouse(&out)
	if !strings.Contains(out.String(), "?1000l") {
		t.Errorf("DisableMouse = %q", out.String())
	}
}
