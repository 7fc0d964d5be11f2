package curvy

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// titleEvery is the number of revealed samples between two window title updates.
const titleEvery = 25

// Gui plays the reveal animation in a Gio window.
// Every FrameEvent draws one frame and requests the next one, so the display
// refresh paces the animation until the window is closed. Esc closes it.
type Gui struct {
	cfg struct {
		window struct {
			w     float64
			h     float64
			title string
		}
		background color.Color
	}
	anim  *Animator
	state State
	start time.Time
}

// NewGUI creates the window host for the animation.
func NewGUI(a *Animator, w, h int) *Gui {
	gui := &Gui{anim: a}
	gui.cfg.window.w, gui.cfg.window.h = fitScreen(float64(w), float64(h))
	gui.cfg.window.title = "curvy"
	gui.cfg.background = color.White
	return gui
}

// SetTitle changes the window title prefix.
func (g *Gui) SetTitle(title string) {
	g.cfg.window.title = title
}

// SetBackground changes the color the window is cleared with.
func (g *Gui) SetBackground(c color.Color) {
	g.cfg.background = c
}

// Run opens the window and processes its events until it is closed.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Dp(float32(g.cfg.window.w)),
		unit.Dp(float32(g.cfg.window.h)),
	))
	Logger().Info("preview window opened", "width", g.cfg.window.w, "height", g.cfg.window.h)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			prev := g.state.Revealed
			g.draw(gtx, e.Now)
			e.Frame(gtx.Ops)

			total := g.anim.Plot.Len()
			if g.state.Revealed != prev && (g.state.Revealed%titleEvery == 0 || g.state.Done(total)) {
				w.Option(app.Title(fmt.Sprintf("%s %d/%d", g.cfg.window.title, g.state.Revealed, total)))
			}
			w.Invalidate()
		case key.Event:
			if closeKey(e) {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			Logger().Info("preview window closed")
			return e.Err
		}
	}
	return nil
}

// closeKey reports whether the key event asks to close the window.
func closeKey(e key.Event) bool {
	return e.Name == key.NameEscape && e.State == key.Press
}

// draw renders one frame, matching the viewport to the current window size.
func (g *Gui) draw(gtx layout.Context, now time.Time) {
	if g.start.IsZero() {
		g.start = now
	}
	size := gtx.Constraints.Max
	if size.X < 1 || size.Y < 1 {
		return
	}
	p := g.anim.Plot
	if p.Width != size.X || p.Height != size.Y {
		p.Viewport = p.Resize(size.X, size.Y)
	}

	s := newGioSurface(gtx.Ops, image.Pt(size.X, size.Y), g.cfg.background)
	st, err := g.anim.Frame(s, g.state, now.Sub(g.start))
	if err != nil {
		Logger().Error("preview frame failed", "err", err)
	}
	g.state = st
}
