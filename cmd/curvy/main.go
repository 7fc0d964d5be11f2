package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/curvy"
	"github.com/esimov/curvy/curves"
	"github.com/esimov/curvy/utils"
	"github.com/gdamore/tcell/v2"
)

const helpBanner = `
┌─┐┬ ┬┬─┐┬  ┬┬ ┬
│  │ │├┬┘└┐┌┘└┬┘
└─┘└─┘┴└─ └┘  ┴

Animated function plotter.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", pipeName, "Destination: image file, .gif animation, frame directory or - for stdout")
	function    = flag.String("func", "fourier", fmt.Sprintf("Function to plot %v", curves.Names()))
	reference   = flag.String("ref", "identity", "Static reference function, empty for none")
	samples     = flag.Int("samples", 1000, "Number of samples")
	xMin        = flag.Float64("xmin", -6, "Domain lower bound")
	xMax        = flag.Float64("xmax", 6, "Domain upper bound")
	yMin        = flag.Float64("ymin", -10, "Range lower bound")
	yMax        = flag.Float64("ymax", 10, "Range upper bound")
	width       = flag.Int("width", 800, "Canvas width")
	height      = flag.Int("height", 600, "Canvas height")
	noAxes      = flag.Bool("noaxes", false, "Hide the axes")
	curveColor  = flag.String("color", "#6cf", "Curve color")
	background  = flag.String("bg", "#fff", "Background color")
	every       = flag.Int("every", 10, "Export one frame out of every n")
	delay       = flag.Int("delay", 2, "GIF frame delay in 1/100s")
	scale       = flag.Float64("scale", 1, "Scale factor of the exported frames")
	stamp       = flag.Bool("status", false, "Print the reveal progress on the exported frames")
	preview     = flag.Bool("preview", false, "Play the animation in a window")
	terminal    = flag.Bool("term", false, "Play the animation in the terminal")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of frames rendered concurrently")
	debug       = flag.Bool("debug", false, "Log debug information to stderr")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	curvy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	plot, err := newPlot()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid plot configuration: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	anim := curvy.NewAnimator(plot)

	bg, err := utils.HexToRGBA(*background)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid background color: %v", utils.ErrorMessage), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *preview:
		curvy.Preview(anim, *width, *height, bg)
	case *terminal:
		if err := runTerminal(ctx, anim); err != nil {
			log.Fatalf(utils.DecorateText("Terminal animation failed: %v", utils.ErrorMessage), err)
		}
	default:
		export(ctx, plot, bg)
	}
}

// newPlot builds the plot described by the command line flags.
func newPlot() (*curvy.Plot, error) {
	fn, err := curves.Lookup(*function)
	if err != nil {
		return nil, err
	}
	domain := curvy.Interval{Min: *xMin, Max: *xMax}
	rng := curvy.Interval{Min: *yMin, Max: *yMax}

	plot, err := curvy.NewPlot(fn, domain, rng, *samples, *width, *height)
	if err != nil {
		return nil, err
	}
	plot.Axes = !*noAxes

	if *reference != "" {
		ref, err := curves.Lookup(*reference)
		if err != nil {
			return nil, err
		}
		if err := plot.SetReference(ref, *samples); err != nil {
			return nil, err
		}
	}

	col, err := utils.HexToRGBA(*curveColor)
	if err != nil {
		return nil, err
	}
	plot.CurveStyle.Color = col
	return plot, nil
}

// export renders the animation into the destination file or directory.
func export(ctx context.Context, plot *curvy.Plot, bg color.Color) {
	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CURVY", utils.StatusMessage),
		utils.DecorateText("⇢ rendering the plot...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, true)

	exp := &curvy.Exporter{
		Plot:       plot,
		Background: bg,
		Scale:      *scale,
		Every:      *every,
		Delay:      *delay,
		Stamp:      *stamp,
		Spinner:    spinner,
		Status: func(msg string) {
			spinner.SetMessage(fmt.Sprintf("%s %s", spinnerText, utils.DecorateText(msg, utils.DefaultMessage)))
		},
	}

	// Restore the cursor visibility when the process is interrupted.
	go func() {
		<-ctx.Done()
		spinner.RestoreCursor()
	}()

	now := time.Now()
	err := exp.Execute(ctx, &curvy.Ops{
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
	printStatus(*destination, err)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// runTerminal plays the animation on the terminal until the user quits.
func runTerminal(ctx context.Context, anim *curvy.Animator) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	err = curvy.RunTerminal(ctx, screen, anim)
	if err == context.Canceled {
		return nil
	}
	return err
}

// printStatus displays the relevant information about the rendering process.
func printStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError rendering the plot: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	if fname == pipeName {
		return
	}
	kind := "image"
	if filepath.Ext(fname) == "" {
		kind = "frame sequence"
	} else if strings.EqualFold(filepath.Ext(fname), ".gif") {
		kind = "animation"
	}
	fmt.Fprintf(os.Stderr, "\nThe %s has been saved as: %s %s\n",
		kind,
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		utils.DefaultColor,
	)
}
