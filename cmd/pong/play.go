package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	ptcell "github.com/vovakirdan/tui-pong/internal/platform/term"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSeed    int64
	flagBackend string
)

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "tcell", "Terminal backend: tcell or tea")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagBackend != "tcell" && flagBackend != "tea" {
		return fmt.Errorf("unknown backend %q (want tcell or tea)", flagBackend)
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed

	opts := []pong.Option{pong.WithLogger(logger)}
	if rc.Seed != 0 {
		opts = append(opts, pong.WithSeed(rc.Seed))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage - the game still works
	} else {
		defer store.Close()
		opts = append(opts, pong.WithRecorder(tui.StoreRecorder(store, uuid.NewString())))
	}

	if flagBackend == "tea" {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW, rc.ScreenH = w, h
		}
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		return tui.Run(pong.New(screen, cfg, opts...), screen)
	}
	return playTcell(cfg, opts)
}

// playTcell runs the game on the native terminal backend. The display is
// opened before any game state exists.
func playTcell(cfg config.PongConfig, opts []pong.Option) error {
	display, err := ptcell.Open()
	if err != nil {
		return err
	}
	defer display.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = pong.Run(ctx, display, pong.New(display, cfg, opts...))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
