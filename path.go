package curvy

import "fmt"

// Op is a pen operation.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "move"
	case LineTo:
		return "line"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Instruction is a single pen operation in pixel space.
type Instruction struct {
	Op   Op
	X, Y float64
}

// Path is an ordered list of pen operations forming one or more polylines.
type Path []Instruction

// Subpaths returns the number of polylines in the path.
func (p Path) Subpaths() int {
	var n int
	for _, in := range p {
		if in.Op == MoveTo {
			n++
		}
	}
	return n
}

// Stroke replays the path on the surface and paints it in a single operation.
func (p Path) Stroke(s Surface, style LineStyle) error {
	s.SetStroke(style.Color, style.Width)
	s.BeginPath()
	for _, in := range p {
		switch in.Op {
		case MoveTo:
			s.MoveTo(in.X, in.Y)
		case LineTo:
			s.LineTo(in.X, in.Y)
		}
	}
	return s.Stroke()
}

// Tracer turns a sequence of samples into a clipped Path.
//
// It keeps track of whether the pen is currently inside the visible range.
// A valid sample following an invalid one starts a new subpath, at the
// boundary crossing when one exists. An invalid sample following a valid
// one ends the current subpath, at the boundary crossing when one exists.
// Runs of invalid samples draw nothing.
type Tracer struct {
	vp     Viewport
	path   Path
	prev   Point
	count  int
	inside bool
}

// NewTracer creates a Tracer mapping samples through vp.
func NewTracer(vp Viewport) *Tracer {
	return &Tracer{vp: vp}
}

// Add consumes the next sample.
func (t *Tracer) Add(curr Point) {
	valid := t.vp.Visible(curr.Y)

	switch {
	case !t.inside && valid:
		t.inside = true
		if t.count > 0 && !t.vp.Visible(t.prev.Y) {
			if hit, ok := Crossing(t.prev, curr, t.vp.Range); ok {
				t.emit(MoveTo, hit)
				t.emit(LineTo, curr)
				break
			}
		}
		t.emit(MoveTo, curr)
	case t.inside && valid:
		t.emit(LineTo, curr)
	case t.inside && !valid:
		t.inside = false
		if hit, ok := Crossing(t.prev, curr, t.vp.Range); ok {
			t.emit(LineTo, hit)
		}
	}
	t.prev = curr
	t.count++
}

// Extend consumes samples in order.
func (t *Tracer) Extend(samples []Point) {
	for _, p := range samples {
		t.Add(p)
	}
}

// Len returns the number of samples consumed so far.
func (t *Tracer) Len() int {
	return t.count
}

// Path returns the instructions emitted so far.
// The returned slice must not be modified.
func (t *Tracer) Path() Path {
	return t.path
}

// Reset clears the tracer state so it can trace a new sequence.
func (t *Tracer) Reset() {
	t.path = nil
	t.prev = Point{}
	t.count = 0
	t.inside = false
}

func (t *Tracer) emit(op Op, p Point) {
	x, y := t.vp.Map(p)
	t.path = append(t.path, Instruction{Op: op, X: x, Y: y})
}

// Trace builds the path of the first count samples from scratch.
// A count larger than the number of samples traces all of them,
// a count of zero or less yields an empty path.
func Trace(samples []Point, count int, vp Viewport) Path {
	if count <= 0 {
		return nil
	}
	if count > len(samples) {
		count = len(samples)
	}
	t := NewTracer(vp)
	t.Extend(samples[:count])
	return t.path
}
