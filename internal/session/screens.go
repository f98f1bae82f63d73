package session

import (
	"fmt"
	"time"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/draw"
	"github.com/tomz197/tiro/internal/loop"
)

// blinkFrames is the half period of blinking prompts.
const blinkFrames = 36

var titleArt = []string{
	` _____ ___ ___  ___  `,
	`|_   _|_ _| _ \/ _ \ `,
	`  | |  | ||   / (_) |`,
	`  |_| |___|_|_\\___/ `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On phase or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	phase := s.world.Phase()
	closing := !s.closingAt.IsZero()
	if s.firstFrame || phase != s.prevPhase || s.inactive != s.wasIdle || closing != s.wasClosing {
		s.cw.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.prevPhase = phase
		s.wasIdle = s.inactive
		s.wasClosing = closing
		s.firstFrame = false
	}

	s.canvas.Clear()
	if phase != loop.PhaseLoading {
		s.scene.Draw(s.canvas)
	}
	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw)

	s.drawUI(phase)

	return s.cw.Flush()
}

func (s *Session) drawUI(phase loop.Phase) {
	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2

	if !s.closingAt.IsZero() {
		s.drawShutdownScreen(centerX, centerY)
		return
	}
	if s.inactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch phase {
	case loop.PhaseLoading:
		s.drawStartScreen(centerX, centerY)
	case loop.PhaseGameOver:
		s.drawGameOverScreen(centerX, centerY)
	default:
		state := s.world.State()
		s.hud.Draw(s.cw, s.canvas, state.Muted, phase == loop.PhasePaused)
	}
}

func (s *Session) blink() bool {
	return s.frames/blinkFrames%2 == 0
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	left := int(config.InactivityDisconnectUser - time.Since(s.lastInput).Seconds())
	draw.Centered(centerX, centerY-2, "INACTIVITY WARNING").Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY, fmt.Sprintf("You will be disconnected in %3d seconds.", max(left, 0))).Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY+2, "Press any key to continue").Draw(s.cw, s.canvas)
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	top := centerY - 8
	draw.DrawLines(s.cw, s.canvas, centerX, top, titleArt)

	y := top + len(titleArt) + 1
	if s.username != "" {
		draw.Centered(centerX, y, "Welcome, "+s.username).Draw(s.cw, s.canvas)
	}

	controls := []string{
		"Mouse / WASD / arrows . . Steer",
		"Left click / Z / SPACE  .  Fire",
		"Right click / X  . . .  Special",
		"P . . . . . . . . . . . . Pause",
		"M . . . . . . . . . . . .  Mute",
		"Q . . . . . . . . . . . .  Quit",
	}
	draw.Centered(centerX, y+2, "Controls").Draw(s.cw, s.canvas)
	draw.DrawLines(s.cw, s.canvas, centerX, y+3, controls)

	if s.blink() {
		draw.Centered(centerX, y+len(controls)+4, ">>  Press SPACE or click to Start  <<").Draw(s.cw, s.canvas)
	}
}

// drawGameOverScreen draws the final score and restart prompt.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	top := centerY - 5
	draw.DrawLines(s.cw, s.canvas, centerX, top, gameOverArt)

	state := s.world.State()
	y := top + len(gameOverArt) + 1
	draw.Centered(centerX, y, fmt.Sprintf("Score: %d", state.Score)).Draw(s.cw, s.canvas)

	if s.blink() {
		draw.Centered(centerX, y+2, ">>  Press SPACE or click to Restart  <<").Draw(s.cw, s.canvas)
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	remaining := int(time.Until(s.closingAt).Seconds()) + 1
	draw.Centered(centerX, centerY-3, "SERVER SHUTTING DOWN").Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY-1, "The server is restarting for maintenance.").Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY, "Please reconnect in a moment.").Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", max(remaining, 0))).Draw(s.cw, s.canvas)
	draw.Centered(centerX, centerY+4, "Press Q to disconnect now").Draw(s.cw, s.canvas)
}
