package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(Input) bool
	}{
		{"quit", "q", func(in Input) bool { return in.Quit }},
		{"ctrl-c quits", "\x03", func(in Input) bool { return in.Quit }},
		{"pause", "p", func(in Input) bool { return in.Pause }},
		{"mute", "M", func(in Input) bool { return in.Mute }},
		{"space fires and starts", " ", func(in Input) bool { return in.Space && in.Fire }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"wasd", "wa", func(in Input) bool { return in.Up && in.Left && !in.Right }},
		{"arrows", "\x1b[B\x1b[C", func(in Input) bool { return in.Down && in.Right && !in.Left }},
		{"special", "x", func(in Input) bool { return in.Special && !in.Fire }},
		{"arrow is not mute", "\x1b[A", func(in Input) bool { return in.Up && !in.Mute }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{}
			in := s.parse([]byte(tt.bytes), time.Now())
			if !tt.check(in) {
				t.Errorf("parse(%q) = %+v", tt.bytes, in)
			}
			if !in.Active() {
				t.Error("Active() = false with bytes pressed")
			}
		})
	}
}

func TestKeyHold(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("a"), now)

	if in := s.parse(nil, now.Add(keyHoldDuration/2)); !in.Left {
		t.Error("key released before hold duration")
	}
	in := s.parse(nil, now.Add(keyHoldDuration*2))
	if in.Left {
		t.Error("key still held after hold duration")
	}
	if in.Active() {
		t.Error("Active() with no bytes")
	}
}

func TestOneShotsDoNotPersist(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("qp"), now)
	if in := s.parse(nil, now); in.Quit || in.Pause {
		t.Errorf("one-shot commands repeated: %+v", in)
	}
}

func TestMouseReports(t *testing.T) {
	s := &Stream{}
	now := time.Now()

	in := s.parse([]byte("\x1b[<0;10;5M"), now)
	if !in.Mouse || in.MouseCol != 10 || in.MouseRow != 5 {
		t.Fatalf("press = %+v", in)
	}
	if !in.MouseLeft || in.MouseClicks != 1 {
		t.Errorf("left press not registered: %+v", in)
	}
	if in.Mute {
		t.Error("report terminator parsed as a key")
	}

	in = s.parse([]byte("\x1b[<32;12;6M"), now)
	if !in.MouseLeft || in.MouseCol != 12 || in.MouseClicks != 0 {
		t.Errorf("drag = %+v", in)
	}

	in = s.parse(nil, now)
	if in.Mouse || !in.MouseLeft {
		t.Errorf("button state lost between reads: %+v", in)
	}

	in = s.parse([]byte("\x1b[<0;12;6m\x1b[<2;3;4M"), now)
	if in.MouseLeft || !in.MouseRight || in.MouseClicks != 1 {
		t.Errorf("release and right press = %+v", in)
	}

	in = s.parse([]byte("\x1b[<64;1;1M"), now)
	if !in.MouseRight || in.MouseClicks != 0 {
		t.Errorf("wheel changed buttons: %+v", in)
	}
}

func TestSplitMouseReport(t *testing.T) {
	s := &Stream{}
	now := time.Now()

	in := s.parse([]byte("w\x1b[<0;7"), now)
	if in.Mouse {
		t.Fatal("partial report applied")
	}
	if !in.Up {
		t.Error("key before partial report lost")
	}
	if string(s.pending) != "\x1b[<0;7" {
		t.Fatalf("pending = %q", s.pending)
	}

	buf := append(s.pending, []byte(";9M")...)
	s.pending = nil
	in = s.parse(buf, now)
	if !in.Mouse || in.MouseCol != 7 || in.MouseRow != 9 || !in.MouseLeft {
		t.Errorf("joined report = %+v", in)
	}
}

func TestMalformedMouseReportIsDropped(t *testing.T) {
	s := &Stream{}
	in := s.parse([]byte("\x1b[<0;x;1Mq"), time.Now())
	if in.Mouse {
		t.Error("malformed report applied")
	}
	if !in.Quit {
		t.Error("byte after malformed report lost")
	}
}

func TestReadInputFromReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("p")))

	deadline := time.Now().Add(2 * time.Second)
	var sawPause bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawPause = sawPause || in.Pause
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !sawPause {
		t.Error("pause key never read")
	}
	if !ReadInput(s).Closed {
		t.Error("stream not closed after EOF")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("a\x1b[<2;1;1M"), now)
	ResetKeyInput(s)
	if in := s.parse(nil, now); in.Left || in.MouseRight {
		t.Errorf("state survived reset: %+v", in)
	}
}
