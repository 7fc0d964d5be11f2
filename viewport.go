package curvy

import (
	"github.com/pkg/errors"
)

// Viewport maps domain/range coordinates onto a canvas of fixed pixel dimensions.
// The vertical axis is inverted: larger y values land on smaller pixel rows.
type Viewport struct {
	Domain Interval
	Range  Interval
	Width  int
	Height int
}

// NewViewport creates a Viewport and checks its invariants.
func NewViewport(domain, rng Interval, width, height int) (Viewport, error) {
	vp := Viewport{
		Domain: domain,
		Range:  rng,
		Width:  width,
		Height: height,
	}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// Validate reports whether the viewport bounds and canvas extent are usable.
func (vp Viewport) Validate() error {
	if err := vp.Domain.Validate(); err != nil {
		return errors.Wrap(err, "invalid domain")
	}
	if err := vp.Range.Validate(); err != nil {
		return errors.Wrap(err, "invalid range")
	}
	if vp.Width < 1 || vp.Height < 1 {
		return errors.Errorf("canvas size should be at least 1x1, got %dx%d", vp.Width, vp.Height)
	}
	return nil
}

// Resize returns a copy of the viewport with a new canvas extent.
func (vp Viewport) Resize(width, height int) Viewport {
	vp.Width, vp.Height = width, height
	return vp
}

// PixelX converts a domain value to a horizontal pixel coordinate.
func (vp Viewport) PixelX(x float64) float64 {
	return (x - vp.Domain.Min) / vp.Domain.Span() * float64(vp.Width)
}

// PixelY converts a range value to a vertical pixel coordinate.
func (vp Viewport) PixelY(y float64) float64 {
	return (vp.Range.Max - y) / vp.Range.Span() * float64(vp.Height)
}

// Map converts a point to pixel coordinates.
func (vp Viewport) Map(p Point) (float64, float64) {
	return vp.PixelX(p.X), vp.PixelY(p.Y)
}

// Visible reports whether y can be plotted directly.
func (vp Viewport) Visible(y float64) bool {
	return vp.Range.Contains(y)
}
