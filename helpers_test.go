package curvy

import (
	"fmt"
	"image/color"
)

// recorder is a Surface keeping a log of every call and of every stroked path.
type recorder struct {
	w, h    int
	calls   []string
	current Path
	strokes []Path
	styles  []LineStyle
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recorder) SetStroke(c color.Color, width float64) {
	r.calls = append(r.calls, "style")
	r.styles = append(r.styles, LineStyle{Color: c, Width: width})
}

func (r *recorder) BeginPath() {
	r.calls = append(r.calls, "begin")
	r.current = nil
}

func (r *recorder) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("move %.2f %.2f", x, y))
	r.current = append(r.current, Instruction{Op: MoveTo, X: x, Y: y})
}

func (r *recorder) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %.2f %.2f", x, y))
	r.current = append(r.current, Instruction{Op: LineTo, X: x, Y: y})
}

func (r *recorder) Stroke() error {
	r.calls = append(r.calls, "stroke")
	r.strokes = append(r.strokes, r.current)
	r.current = nil
	return nil
}

// panicSurface fails in the middle of a redraw.
type panicSurface struct {
	*recorder
}

func (panicSurface) Stroke() error {
	panic("surface lost")
}
