package curvy

import (
	"image/color"
	"math"
	"os"

	"gioui.org/app"
)

const (
	MaxScreenX = 1366
	MaxScreenY = 768
)

// Preview opens a window playing the animation on the bg background.
// It has to be called from the main goroutine and never returns:
// the process exits when the window is closed.
func Preview(a *Animator, width, height int, bg color.Color) {
	gui := NewGUI(a, width, height)
	if bg != nil {
		gui.SetBackground(bg)
	}
	go func() {
		if err := gui.Run(); err != nil {
			Logger().Error("preview window", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// fitScreen shrinks the window size, keeping its aspect ratio,
// when it does not fit into the predefined maximum screen size.
func fitScreen(width, height float64) (float64, float64) {
	if width > MaxScreenX || height > MaxScreenY {
		widthRatio := MaxScreenX / width
		heightRatio := MaxScreenY / height
		ratio := math.Min(widthRatio, heightRatio)

		width *= ratio
		height *= ratio
	}
	return width, height
}
