package curvy

import (
	"context"
	"fmt"
	"time"

	"github.com/esimov/curvy/canvas"
	"github.com/gdamore/tcell/v2"
)

// frameInterval paces the terminal animation at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

// RunTerminal plays the animation on a tcell screen with braille dots.
// The screen has to be initialized; it is not finalized on return.
// It returns when ctx is done or on Esc, q or Ctrl-C.
func RunTerminal(ctx context.Context, screen tcell.Screen, a *Animator) error {
	surface := canvas.NewTerminal(screen, 1)
	resize := func() {
		surface.Resize()
		w, h := surface.Size()
		a.Plot.Viewport = a.Plot.Resize(w, h)
	}
	resize()

	status := a.Status
	a.Status = func(msg string) {
		surface.SetStatus(fmt.Sprintf("%s  (q to quit)", msg))
		status.Report(msg)
	}
	defer func() { a.Status = status }()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var (
		st    State
		start = time.Now()
	)
	Logger().Info("terminal animation started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					Logger().Info("terminal animation stopped", "revealed", st.Revealed)
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				resize()
			}
		case <-ticker.C:
			next, err := a.Frame(surface, st, time.Since(start))
			if err != nil {
				Logger().Error("terminal frame failed", "err", err)
			}
			st = next
			surface.Flush()
			screen.Show()
		}
	}
}
