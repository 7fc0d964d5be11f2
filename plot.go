package curvy

import (
	"image/color"

	"github.com/pkg/errors"
)

var (
	// DefaultAxisStyle is used for the x and y axis lines.
	DefaultAxisStyle = LineStyle{Color: color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, Width: 1}
	// DefaultReferenceStyle is used for the static reference curve.
	DefaultReferenceStyle = LineStyle{Color: color.NRGBA{R: 0xdd, G: 0x77, B: 0x00, A: 0xff}, Width: 1}
	// DefaultCurveStyle is used for the animated curve.
	DefaultCurveStyle = LineStyle{Color: color.NRGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0xff}, Width: 2}
)

// Plot is the scene redrawn on every frame: optional axes, an optional
// static reference curve, and the progressively revealed sampled curve.
type Plot struct {
	Viewport
	Samples   []Point
	Reference []Point
	Axes      bool

	AxisStyle      LineStyle
	ReferenceStyle LineStyle
	CurveStyle     LineStyle
}

// NewPlot samples f over the domain and returns a Plot with the default styles and axes.
func NewPlot(f Func, domain, rng Interval, samples, width, height int) (*Plot, error) {
	vp, err := NewViewport(domain, rng, width, height)
	if err != nil {
		return nil, err
	}
	pts, err := Sample(f, domain, samples)
	if err != nil {
		return nil, err
	}
	return &Plot{
		Viewport:       vp,
		Samples:        pts,
		Axes:           true,
		AxisStyle:      DefaultAxisStyle,
		ReferenceStyle: DefaultReferenceStyle,
		CurveStyle:     DefaultCurveStyle,
	}, nil
}

// SetReference samples f with n points and uses it as the static reference curve.
func (p *Plot) SetReference(f Func, n int) error {
	pts, err := Sample(f, p.Domain, n)
	if err != nil {
		return errors.Wrap(err, "could not sample the reference curve")
	}
	p.Reference = pts
	return nil
}

// Len returns the number of samples of the animated curve.
func (p *Plot) Len() int {
	return len(p.Samples)
}

// Render clears the surface and draws the whole scene,
// revealing the first revealed samples of the curve.
func (p *Plot) Render(s Surface, revealed int) error {
	if s == nil {
		return errors.New("no drawing surface")
	}
	s.Clear()

	if p.Axes {
		if err := p.axes().Stroke(s, p.AxisStyle); err != nil {
			return errors.Wrap(err, "could not draw the axes")
		}
	}
	if len(p.Reference) > 0 {
		ref := Trace(p.Reference, len(p.Reference), p.Viewport)
		if err := ref.Stroke(s, p.ReferenceStyle); err != nil {
			return errors.Wrap(err, "could not draw the reference curve")
		}
	}
	if err := Trace(p.Samples, revealed, p.Viewport).Stroke(s, p.CurveStyle); err != nil {
		return errors.Wrap(err, "could not draw the curve")
	}
	return nil
}

// axes returns the lines y = 0 and x = 0, each only when it lies inside the visible window.
func (p *Plot) axes() Path {
	var path Path
	if p.Range.Contains(0) {
		y := p.PixelY(0)
		path = append(path,
			Instruction{Op: MoveTo, X: p.PixelX(p.Domain.Min), Y: y},
			Instruction{Op: LineTo, X: p.PixelX(p.Domain.Max), Y: y},
		)
	}
	if p.Domain.Contains(0) {
		x := p.PixelX(0)
		path = append(path,
			Instruction{Op: MoveTo, X: x, Y: p.PixelY(p.Range.Min)},
			Instruction{Op: LineTo, X: x, Y: p.PixelY(p.Range.Max)},
		)
	}
	return path
}
