package curvy

import "image/color"

// Surface is a 2D pixel addressable drawing target.
// Path segments are accumulated between BeginPath and Stroke,
// and painted together by a single Stroke call.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (width, height int)
	// Clear erases the whole surface.
	Clear()
	// SetStroke sets the color and line width used by the next Stroke.
	SetStroke(c color.Color, width float64)
	// BeginPath discards any accumulated path segments.
	BeginPath()
	// MoveTo starts a new subpath at (x, y) without drawing.
	MoveTo(x, y float64)
	// LineTo adds a line from the pen position to (x, y) without drawing.
	LineTo(x, y float64)
	// Stroke paints the accumulated path.
	Stroke() error
}

// LineStyle describes how a path is stroked.
type LineStyle struct {
	Color color.Color
	Width float64
}

// StatusFunc receives human readable status messages. A nil StatusFunc is valid.
type StatusFunc func(msg string)

// Report sends msg to the status sink, if there is one.
func (fn StatusFunc) Report(msg string) {
	if fn != nil {
		fn(msg)
	}
}
