package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/tiro/internal/audio"
	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiro",
	})

	tuning, err := config.LoadTuningFromEnv()
	if err != nil {
		logger.Fatal("bad tuning", "err", err)
	}

	sounds := audio.New(0.6, logger)
	if config.GetEnv("TIRO_AUDIO", "on") != "off" {
		_ = sounds.Init()
	}
	defer sounds.Close()

	game := window.New(context.Background(), window.Options{
		Tuning: tuning,
		Sounds: sounds,
		Logger: logger,
	})

	ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
	ebiten.SetWindowTitle("Tiro")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		sounds.Close()
		os.Exit(1)
	}
}
