package pong

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Run drives a game on a Display until the player quits or ctx is done.
// Waiting phases block on a keypress; active play steps at a fixed rate
// derived from the game's pacing, consuming at most one key per tick.
func Run(ctx context.Context, d core.Display, g *Game) error {
	g.Start()
	d.Flush()

	sched := core.NewFixedStep(time.Now())
	for {
		switch g.Phase() {
		case PhaseQuit:
			return nil

		case PhaseActive:
			if err := ctx.Err(); err != nil {
				return err
			}
			interval := g.TickInterval()
			if wait := sched.Until(time.Now(), interval); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}

			due := sched.Advance(time.Now(), interval)
			for i := 0; i < due && g.Phase() == PhaseActive; i++ {
				g.Step(d.PollKey())
			}
			if due > 0 {
				d.Flush()
			}

		default:
			key, err := d.WaitKey(ctx)
			if err != nil {
				return err
			}
			g.Step(key)
			d.Flush()
			sched.Reset(time.Now())
		}
	}
}
