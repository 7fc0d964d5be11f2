// Package canvas provides drawing surfaces for the curve plotter:
// an anti-aliased raster image and a braille-dot terminal grid.
package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Raster is an in-memory, anti-aliased image surface.
type Raster struct {
	dc *gg.Context
	bg gg.RGBA
}

// NewRaster creates a width x height raster. Clear fills it with bg;
// a nil bg clears to transparent.
func NewRaster(width, height int, bg color.Color) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	r := &Raster{dc: dc, bg: gg.Transparent}
	if bg != nil {
		r.bg = gg.FromColor(bg)
	}
	return r
}

// Size returns the raster dimensions in pixels.
func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Clear fills the raster with the background color.
func (r *Raster) Clear() {
	r.dc.ClearWithColor(r.bg)
}

// SetStroke sets the stroke color and line width.
func (r *Raster) SetStroke(c color.Color, width float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
}

// BeginPath discards the current path.
func (r *Raster) BeginPath() {
	r.dc.ClearPath()
}

// MoveTo starts a new subpath.
func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

// LineTo extends the current subpath.
func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

// Stroke paints the current path.
func (r *Raster) Stroke() error {
	return r.dc.Stroke()
}

// Image returns a snapshot of the raster.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
