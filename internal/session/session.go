// Package session runs one terminal game: it owns a world, ticks it at a
// fixed rate, feeds it keyboard and mouse input and renders it with
// half-block graphics. The local and SSH hosts both drive a Session.
package session

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/draw"
	"github.com/tomz197/tiro/internal/input"
	"github.com/tomz197/tiro/internal/loop"
	"github.com/tomz197/tiro/internal/object"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Tuning       config.Tuning
	Sounds       object.Sounds // nil means silent
	Logger       *log.Logger
	Seed         int64 // 0 picks a time-based seed
	Username     string

	// Shutdown, when closed, shows the shutdown notice and ends the
	// session after config.ShutdownDisplaySeconds.
	Shutdown <-chan struct{}
}

// Session handles rendering and input for a single terminal.
type Session struct {
	world   *loop.World
	scene   *draw.Scene
	hud     *draw.HUD
	canvas  *draw.Canvas
	cw      *draw.ChunkWriter
	writer  io.Writer
	stream  *input.Stream
	pointer *input.Pointer
	logger  *log.Logger

	username     string
	termSizeFunc draw.TermSizeFunc
	shutdown     <-chan struct{}
	closingAt    time.Time // zero until the shutdown notice is up

	running    bool
	inactive   bool
	lastInput  time.Time
	frames     uint64
	prevPhase  loop.Phase
	wasIdle    bool
	wasClosing bool
	firstFrame bool
}

// New creates a session reading keys from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	scene := draw.NewScene(rand.New(rand.NewSource(seed + 1)))
	hud := &draw.HUD{}
	world := loop.NewWorld(loop.Options{
		Tuning:  opts.Tuning,
		Rng:     rng,
		Visuals: scene,
		Sounds:  opts.Sounds,
		Shaker:  scene,
		HUD:     hud,
		Logger:  logger,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ScreenWidth, config.ScreenHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Session{
		world:        world,
		scene:        scene,
		hud:          hud,
		canvas:       canvas,
		cw:           draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		stream:       input.StartStream(r),
		pointer:      newPointer(),
		logger:       logger,
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		shutdown:     opts.Shutdown,
		running:      true,
		lastInput:    time.Now(),
		firstFrame:   true,
	}
}

func newPointer() *input.Pointer {
	return input.NewPointer(config.ScreenWidth/2, config.ScreenHeight-config.PlayerSpawnYFromBase,
		config.ScreenWidth, config.ScreenHeight)
}

// Run starts the session loop. It blocks until the player quits, the input
// closes, the player idles out or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	draw.EnableMouse(s.writer)
	defer draw.ShowCursor(s.writer)
	defer draw.DisableMouse(s.writer)
	draw.ClearScreen(s.writer)

	for s.running && ctx.Err() == nil {
		frameStart := time.Now()

		if err := s.step(ctx); err != nil {
			return err
		}
		if err := s.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// step reads input and advances the world by one tick.
func (s *Session) step(ctx context.Context) error {
	return s.handle(ctx, input.ReadInput(s.stream))
}

func (s *Session) handle(ctx context.Context, in input.Input) error {
	s.frames++

	if in.Active() {
		s.lastInput = time.Now()
		s.inactive = false
	} else if idle := time.Since(s.lastInput).Seconds(); idle > config.InactivityDisconnectUser {
		s.logger.Info("disconnecting idle player", "user", s.username, "idle", int(idle))
		s.running = false
	} else if idle > config.InactivityWarnUser {
		s.inactive = true
	}

	if in.Quit || in.Closed {
		s.running = false
		return nil
	}

	s.updateScreen()

	if s.closing() {
		if time.Now().After(s.closingAt) {
			s.running = false
		}
		return nil
	}

	if in.Mute {
		s.world.ToggleMute()
	}

	switch s.world.Phase() {
	case loop.PhaseLoading:
		if in.Space || in.Enter || in.MouseClicks > 0 {
			input.ResetKeyInput(s.stream)
			return s.world.Start(ctx)
		}
		return nil
	case loop.PhaseGameOver:
		if in.Space || in.Enter || in.MouseClicks > 0 {
			input.ResetKeyInput(s.stream)
			s.pointer = newPointer()
			return s.world.Restart(ctx)
		}
		return nil
	}

	if in.Pause {
		s.world.TogglePause()
	}
	s.world.SetInput(s.pointer.Apply(in, s.toLogical))
	s.world.Tick()
	return nil
}

// closing reports whether the shutdown notice is up, raising it the first
// time the shutdown channel is seen closed.
func (s *Session) closing() bool {
	if !s.closingAt.IsZero() {
		return true
	}
	select {
	case <-s.shutdown:
		s.closingAt = time.Now().Add(config.ShutdownDisplaySeconds * time.Second)
		s.logger.Info("showing shutdown notice", "user", s.username)
		return true
	default:
		return false
	}
}

// toLogical maps an absolute terminal cell to logical screen coordinates.
func (s *Session) toLogical(col, row int) (float64, float64) {
	return s.canvas.TerminalToLogical(col-s.canvas.OffsetCol(), row-s.canvas.OffsetRow())
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.cw.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
}

// Phase returns the phase of the session's world.
func (s *Session) Phase() loop.Phase {
	return s.world.Phase()
}
