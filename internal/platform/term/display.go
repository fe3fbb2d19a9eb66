// Package term is the native terminal backend, drawing cells directly
// through tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrClosed is returned by WaitKey once the screen has been shut down.
var ErrClosed = errors.New("term: screen closed")

var styles = map[core.Color]tcell.Style{
	core.ColorBackground: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	core.ColorLine:       tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite),
	core.ColorBall:       tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorYellow),
	core.ColorText:       tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true),
}

// Display implements core.Display on a tcell screen.
//
// Keys land in a single-slot buffer where a newer key replaces an
// unconsumed older one, so the game reacts to the latest press rather
// than a backlog. Resizes are tracked separately and always win.
type Display struct {
	screen tcell.Screen

	keys    chan core.Key
	wake    chan struct{}
	done    chan struct{}
	resized  atomic.Bool
	needSync atomic.Bool

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Open initializes the controlling terminal.
func Open() (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return NewDisplay(s)
}

// NewDisplay initializes s and starts reading its events.
func NewDisplay(s tcell.Screen) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.HideCursor()
	s.SetStyle(styles[core.ColorBackground])
	s.Clear()

	d := &Display{
		screen: s,
		keys:   make(chan core.Key, 1),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	d.wg.Add(1)
	go d.readEvents()
	return d, nil
}

// Close restores the terminal. It is safe to call more than once.
func (d *Display) Close() {
	d.closeOnce.Do(func() {
		d.screen.Fini()
		d.wg.Wait()
	})
}

func (d *Display) readEvents() {
	defer d.wg.Done()
	defer close(d.done)
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			d.resized.Store(true)
			d.notify()
		case *tcell.EventKey:
			d.push(translateKey(ev))
		}
	}
}

// push stores k, replacing any key the game has not consumed yet.
func (d *Display) push(k core.Key) {
	for {
		select {
		case d.keys <- k:
			return
		default:
		}
		select {
		case <-d.keys:
		default:
		}
	}
}

func (d *Display) notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// SetCell paints one cell.
func (d *Display) SetCell(row, col int, c core.Color) {
	d.screen.SetContent(col, row, ' ', nil, styles[c])
}

// SetText writes text left to right from (row, col).
func (d *Display) SetText(row, col int, text string, c core.Color) {
	st := styles[c]
	for i, r := range []rune(text) {
		d.screen.SetContent(col+i, row, r, nil, st)
	}
}

// Size reports the terminal dimensions.
func (d *Display) Size() (int, int) {
	return d.screen.Size()
}

func (d *Display) takeResize() bool {
	if d.resized.Swap(false) {
		d.needSync.Store(true)
		return true
	}
	return false
}

// PollKey returns the pending key without blocking.
func (d *Display) PollKey() core.Key {
	if d.takeResize() {
		return core.KeyResize
	}
	select {
	case k := <-d.keys:
		return k
	default:
		return core.KeyNone
	}
}

// WaitKey blocks for the next key or resize.
func (d *Display) WaitKey(ctx context.Context) (core.Key, error) {
	for {
		if d.takeResize() {
			return core.KeyResize, nil
		}
		select {
		case k := <-d.keys:
			return k, nil
		case <-d.wake:
		case <-d.done:
			return core.KeyNone, ErrClosed
		case <-ctx.Done():
			return core.KeyNone, ctx.Err()
		}
	}
}

// Flush presents the frame. After a resize the whole terminal is redrawn.
func (d *Display) Flush() {
	if d.needSync.Swap(false) {
		d.screen.Sync()
		return
	}
	d.screen.Show()
}

var _ core.Display = (*Display)(nil)
