package canvas

import (
	"image/color"
	"math"

	"github.com/esimov/curvy/utils"
	"github.com/gdamore/tcell/v2"
)

// brailleBase is the code point of the empty braille pattern.
const brailleBase = 0x2800

// brailleDots maps a dot position inside a 2x4 cell to its pattern bit.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	dots  uint8
	color tcell.Color
}

type segment struct {
	x0, y0, x1, y1 float64
}

// Terminal is a surface drawing on a tcell screen with braille characters.
// Every character cell holds a 2x4 grid of dots, so a pixel of the surface
// is one dot. Line width is ignored: lines are always one dot thick.
//
// Drawing only updates an off-screen cell buffer; Flush copies it to the screen.
type Terminal struct {
	screen  tcell.Screen
	reserve int
	cols    int
	rows    int
	cells   []cell

	color tcell.Color
	segs  []segment
	penX  float64
	penY  float64
	pen   bool
}

// NewTerminal creates a braille surface covering the screen,
// leaving the last reserve rows free for status text.
func NewTerminal(screen tcell.Screen, reserve int) *Terminal {
	t := &Terminal{
		screen:  screen,
		reserve: reserve,
		color:   tcell.ColorDefault,
	}
	t.Resize()
	return t
}

// Resize adjusts the cell buffer to the current screen size.
func (t *Terminal) Resize() {
	cols, rows := t.screen.Size()
	rows -= t.reserve
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t.cols, t.rows = cols, rows
	t.cells = make([]cell, cols*rows)
}

// Size returns the number of dots horizontally and vertically.
func (t *Terminal) Size() (int, int) {
	return t.cols * 2, t.rows * 4
}

// Clear empties the cell buffer.
func (t *Terminal) Clear() {
	for i := range t.cells {
		t.cells[i] = cell{}
	}
}

// SetStroke sets the dot color. The width is ignored.
func (t *Terminal) SetStroke(c color.Color, _ float64) {
	t.color = tcell.FromImageColor(c)
}

// BeginPath discards the accumulated segments.
func (t *Terminal) BeginPath() {
	t.segs = t.segs[:0]
	t.pen = false
}

// MoveTo moves the pen without drawing.
func (t *Terminal) MoveTo(x, y float64) {
	t.penX, t.penY, t.pen = x, y, true
}

// LineTo records a segment from the pen to (x, y).
// Without a pen position it behaves like MoveTo.
func (t *Terminal) LineTo(x, y float64) {
	if t.pen {
		t.segs = append(t.segs, segment{t.penX, t.penY, x, y})
	}
	t.penX, t.penY, t.pen = x, y, true
}

// Stroke rasterizes the accumulated segments into the cell buffer.
func (t *Terminal) Stroke() error {
	for _, s := range t.segs {
		x0, y0 := t.dot(s.x0, s.y0)
		x1, y1 := t.dot(s.x1, s.y1)
		bresenham(x0, y0, x1, y1, t.set)
	}
	t.segs = t.segs[:0]
	return nil
}

// Flush writes the cell buffer to the screen. It does not call Show.
func (t *Terminal) Flush() {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			c := t.cells[row*t.cols+col]
			if c.dots == 0 {
				t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(c.color)
			t.screen.SetContent(col, row, rune(brailleBase+int(c.dots)), nil, style)
		}
	}
}

// SetStatus writes msg on the first reserved row.
func (t *Terminal) SetStatus(msg string) {
	if t.reserve < 1 {
		return
	}
	row := t.rows
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	col := 0
	for _, r := range msg {
		if col >= t.cols {
			break
		}
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < t.cols; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}

// Dots reports which dots of the cell at (col, row) are set.
func (t *Terminal) Dots(col, row int) uint8 {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return 0
	}
	return t.cells[row*t.cols+col].dots
}

// dot converts a surface coordinate to a dot index. Points lying exactly
// on the right or bottom edge belong to the last dot.
func (t *Terminal) dot(x, y float64) (int, int) {
	w, h := t.Size()
	xi, yi := int(math.Floor(x)), int(math.Floor(y))
	if xi == w {
		xi = w - 1
	}
	if yi == h {
		yi = h - 1
	}
	return xi, yi
}

func (t *Terminal) set(x, y int) {
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c := &t.cells[(y/4)*t.cols+x/2]
	c.dots |= brailleDots[y%4][x%2]
	c.color = t.color
}

// bresenham calls plot for every dot of the line between (x0, y0) and (x1, y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := utils.Abs(x1-x0), -utils.Abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
