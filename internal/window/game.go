// Package window hosts the game in a desktop window. Ebiten's fixed 60 TPS
// update drives the world tick, the mouse steers the ship and entities are
// drawn as coloured rectangles.
package window

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/draw"
	"github.com/tomz197/tiro/internal/loop"
	"github.com/tomz197/tiro/internal/object"
)

var background = color.RGBA{8, 8, 20, 255}

// Options configures a Game.
type Options struct {
	Tuning config.Tuning
	Sounds object.Sounds
	Logger *log.Logger
	Seed   int64
}

// controls is one frame of window input.
type controls struct {
	cursorX, cursorY float64
	fire, special    bool
	start            bool // click, space or enter just pressed
	pause, mute      bool
	quit             bool
}

// Game implements ebiten.Game.
type Game struct {
	world   *loop.World
	visuals *Visuals
	hud     *draw.HUD
	logger  *log.Logger
	ctx     context.Context
}

// New creates a game on the start screen.
func New(ctx context.Context, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	visuals := NewVisuals(rand.New(rand.NewSource(seed + 1)))
	hud := &draw.HUD{}
	world := loop.NewWorld(loop.Options{
		Tuning:  opts.Tuning,
		Rng:     rand.New(rand.NewSource(seed)),
		Visuals: visuals,
		Sounds:  opts.Sounds,
		Shaker:  visuals,
		HUD:     hud,
		Logger:  logger,
	})
	return &Game{world: world, visuals: visuals, hud: hud, logger: logger, ctx: ctx}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.apply(readControls())
}

func readControls() controls {
	cx, cy := ebiten.CursorPosition()
	return controls{
		cursorX: float64(cx),
		cursorY: float64(cy),
		fire:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		special: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeyX),
		start: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		mute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// apply advances the game by one frame of input.
func (g *Game) apply(c controls) error {
	if c.quit {
		return ebiten.Termination
	}
	if c.mute {
		g.world.ToggleMute()
	}

	switch g.world.Phase() {
	case loop.PhaseLoading:
		if c.start {
			return g.world.Start(g.ctx)
		}
		return nil
	case loop.PhaseGameOver:
		if c.start {
			return g.world.Restart(g.ctx)
		}
		return nil
	}

	if c.pause {
		g.world.TogglePause()
	}
	g.world.SetInput(object.Input{
		CursorX: c.cursorX,
		CursorY: c.cursorY,
		Left:    c.fire,
		Right:   c.special,
	})
	g.world.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.visuals.Draw(screen)

	for i, line := range g.overlay() {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}
	if p := g.world.Phase(); p != loop.PhaseLoading && p != loop.PhaseGameOver {
		drawGauge(screen, 48, 28, g.hud.Health/config.MaxHealth, palette[object.KindPlayer])
		drawGauge(screen, 48, 44, g.hud.Charge/config.MaxCharge, palette[object.KindNuclear])
	}
}

const gaugeWidth, gaugeHeight = 120, 8

// drawGauge draws a horizontal bar filled to frac.
func drawGauge(screen *ebiten.Image, x, y, frac float64, fill color.RGBA) {
	frac = min(max(frac, 0), 1)
	vector.StrokeRect(screen, float32(x), float32(y), gaugeWidth, gaugeHeight, 1, color.RGBA{90, 90, 110, 255}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(gaugeWidth*frac), gaugeHeight, fill, false)
}

// overlay returns the text lines shown over the playfield.
func (g *Game) overlay() []string {
	state := g.world.State()
	switch g.world.Phase() {
	case loop.PhaseLoading:
		return []string{
			"TIRO",
			"Mouse steers, left click fires, right click fires the special.",
			"P pauses, M mutes, Q quits.",
			"Click to start.",
		}
	case loop.PhaseGameOver:
		return []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", state.Score),
			"Click to restart.",
		}
	}

	lines := []string{
		fmt.Sprintf("Score: %d", g.hud.Score),
		"HP",
		"CHG",
	}
	if state.Muted {
		lines = append(lines, "MUTED")
	}
	if g.world.Phase() == loop.PhasePaused {
		lines = append(lines, "PAUSED - press P to resume")
	}
	return lines
}

// Layout implements ebiten.Game. The playfield is always the logical screen.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
