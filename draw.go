package curvy

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// gioSurface records drawing calls as Gio operations for the current frame.
type gioSurface struct {
	ops   *op.Ops
	size  image.Point
	bg    color.NRGBA
	color color.NRGBA
	width float32
	path  clip.Path
	open  bool
}

var _ Surface = (*gioSurface)(nil)

func newGioSurface(ops *op.Ops, size image.Point, bg color.Color) *gioSurface {
	return &gioSurface{
		ops:   ops,
		size:  size,
		bg:    toNRGBAColor(bg),
		color: toNRGBAColor(color.Black),
		width: 1,
	}
}

func (g *gioSurface) Size() (int, int) {
	return g.size.X, g.size.Y
}

func (g *gioSurface) Clear() {
	paint.Fill(g.ops, g.bg)
}

func (g *gioSurface) SetStroke(c color.Color, width float64) {
	g.color = toNRGBAColor(c)
	g.width = float32(width)
}

func (g *gioSurface) BeginPath() {
	g.path = clip.Path{}
	g.path.Begin(g.ops)
	g.open = true
}

func (g *gioSurface) MoveTo(x, y float64) {
	g.path.MoveTo(f32.Pt(float32(x), float32(y)))
}

func (g *gioSurface) LineTo(x, y float64) {
	g.path.LineTo(f32.Pt(float32(x), float32(y)))
}

// Stroke closes the path recording and paints it with the current color.
func (g *gioSurface) Stroke() error {
	if !g.open {
		return nil
	}
	g.open = false

	stack := clip.Stroke{Path: g.path.End(), Width: g.width}.Op().Push(g.ops)
	paint.ColorOp{Color: g.color}.Add(g.ops)
	paint.PaintOp{}.Add(g.ops)
	stack.Pop()
	return nil
}

// toNRGBAColor converts any color to non-premultiplied color.NRGBA.
// A nil color is transparent.
func toNRGBAColor(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
