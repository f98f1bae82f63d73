// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesised on the fly; there are no sound files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/tiro/internal/object"
)

const sampleRate = beep.SampleRate(44100)

// Sounds implements object.Sounds. Until Init succeeds every Play is a
// silent no-op, so a machine without an audio device still runs the game.
// It is safe for concurrent use.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

var _ object.Sounds = (*Sounds)(nil)

// New creates a silent Sounds. volume is a linear master gain in (0, 1].
func New(volume float64, logger *log.Logger) *Sounds {
	if logger == nil {
		logger = log.Default()
	}
	return &Sounds{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. On failure the error is returned and Sounds
// stays silent.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	s.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// Play starts cue on top of whatever is already playing.
func (s *Sounds) Play(cue object.Cue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	streamer := Effect(cue, sampleRate, s.volume)
	if streamer == nil {
		return fmt.Errorf("unknown sound cue %q", cue)
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close stops all sounds and releases the speaker.
func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
