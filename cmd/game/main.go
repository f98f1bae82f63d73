package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/tiro/internal/audio"
	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/session"
)

func main() {
	logger, closeLog, err := newLogger(config.GetEnv("TIRO_LOG", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tuning, err := config.LoadTuningFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sounds := audio.New(0.6, logger)
	if config.GetEnv("TIRO_AUDIO", "on") != "off" {
		// Silent when there is no audio device.
		_ = sounds.Init()
	}
	defer sounds.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(bufio.NewReader(os.Stdin), os.Stdout, session.Options{
		Tuning: tuning,
		Sounds: sounds,
		Logger: logger,
	})
	if err := s.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the game, so logs never go to stdout.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiro",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
