/*
Package curvy plots a sampled real function onto a pixel canvas and animates
the reveal of the curve, one sample segment per frame.

Samples whose value is not finite or falls outside the visible vertical range
are never drawn directly. When the curve leaves or re-enters the visible range
the segment is cut at the range boundary, so the drawn polylines end exactly
on the top or bottom edge of the canvas.

The package provides a command line interface, supporting various flags for
exporting the animation as images or playing it in a window or a terminal.
To check the supported commands type:

	$ curvy --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"math"

		"github.com/esimov/curvy"
		"github.com/esimov/curvy/canvas"
	)

	func main() {
		plot, err := curvy.NewPlot(math.Sin,
			curvy.Interval{Min: -6, Max: 6},
			curvy.Interval{Min: -2, Max: 2},
			500, 800, 600,
		)
		if err != nil {
			log.Fatal(err)
		}

		r := canvas.NewRaster(plot.Width, plot.Height, nil)
		if err := plot.Render(r, plot.Len()); err != nil {
			log.Fatal(err)
		}
	}
*/
package curvy
