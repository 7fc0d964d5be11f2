package curvy

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/esimov/curvy/canvas"
	"github.com/esimov/curvy/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// imageExtensions lists the destinations receiving only the final frame.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Ops describes where the exported animation is written.
type Ops struct {
	Dst, PipeName string
	Workers       int
}

// Exporter renders the reveal animation of a Plot into image files.
//
// Every frame is an independent full redraw, so frames are rendered
// concurrently, each worker on its own raster.
type Exporter struct {
	Plot *Plot
	// Background fills every frame. Nil means transparent.
	Background color.Color
	// Scale resizes the rendered frames. Zero or one keeps the canvas size.
	Scale float64
	// Every keeps one frame out of Every. The last frame is always kept.
	Every int
	// Delay is the GIF frame delay in hundredths of a second.
	Delay int
	// Stamp draws the reveal progress on each frame.
	Stamp   bool
	Status  StatusFunc
	Spinner *utils.Spinner
}

// frame is a rendered frame, identified by its position in the sequence.
type frame struct {
	index int
	img   *image.NRGBA
	err   error
}

// Frames returns the reveal counts of the exported frames, in playback order.
func (e *Exporter) Frames() []int {
	every := utils.Max(e.Every, 1)
	total := e.Plot.Len()

	var (
		st     State
		counts []int
	)
	for !st.Done(total) {
		st = st.Advance(st.Last, total)
		if st.Revealed%every == 0 || st.Done(total) {
			counts = append(counts, st.Revealed)
		}
	}
	return counts
}

// RenderFrame draws the scene revealing the given number of samples
// and returns a copy of the resulting image.
func (e *Exporter) RenderFrame(r *canvas.Raster, revealed int) (*image.NRGBA, error) {
	if err := e.Plot.Render(r, revealed); err != nil {
		return nil, err
	}
	img := toNRGBA(r.Image(), e.Scale)
	if e.Stamp {
		stampStatus(img, fmt.Sprintf("%d/%d", revealed, e.Plot.Len()))
	}
	return img, nil
}

// WriteImage renders the completely revealed curve to w.
func (e *Exporter) WriteImage(w io.Writer, ext string) error {
	r := canvas.NewRaster(e.Plot.Width, e.Plot.Height, e.Background)
	defer r.Close()

	img, err := e.RenderFrame(r, e.Plot.Len())
	if err != nil {
		return err
	}
	return encodeImg(w, ext, img)
}

// WriteFrames renders every frame into dir, one file per frame.
func (e *Exporter) WriteFrames(ctx context.Context, dir, ext string, workers int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "unable to create the destination directory")
	}
	counts := e.Frames()

	return e.render(ctx, counts, workers, func(f frame) error {
		name := filepath.Join(dir, utils.FrameName("frame_", f.index+1, len(counts), ext))
		out, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "unable to create the frame file")
		}
		if err := encodeImg(out, ext, f.img); err != nil {
			out.Close()
			return errors.Wrapf(err, "unable to encode %s", name)
		}
		return out.Close()
	})
}

// WriteGIF renders every frame and encodes them as an animated GIF.
func (e *Exporter) WriteGIF(ctx context.Context, w io.Writer, workers int) error {
	counts := e.Frames()
	frames := make([]*image.NRGBA, len(counts))

	err := e.render(ctx, counts, workers, func(f frame) error {
		frames[f.index] = f.img
		return nil
	})
	if err != nil {
		return err
	}
	return encodeGIF(w, frames, e.Delay)
}

// render fans the reveal counts out to a pool of workers and hands
// every rendered frame to sink, on the calling goroutine.
func (e *Exporter) render(ctx context.Context, counts []int, workers int, sink func(frame) error) error {
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}
	workers = utils.Max(utils.Min(workers, len(counts)), 1)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan frame)

	go func() {
		defer close(jobs)
		for i := range counts {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			e.consumer(ctx, counts, jobs, results)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		wg.Wait()
	}()

	var (
		err  error
		done int
	)
	for res := range results {
		if err != nil {
			continue
		}
		if res.err != nil {
			err = res.err
			cancel()
			continue
		}
		if err = sink(res); err != nil {
			cancel()
			continue
		}
		done++
		e.Status.Report(fmt.Sprintf("rendered %d/%d frames", done, len(counts)))
		Logger().Debug("frame exported", "index", res.index, "revealed", counts[res.index])
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

// consumer renders the frames received on the jobs channel until it is closed.
func (e *Exporter) consumer(ctx context.Context, counts []int, jobs <-chan int, results chan<- frame) {
	r := canvas.NewRaster(e.Plot.Width, e.Plot.Height, e.Background)
	defer r.Close()

	for i := range jobs {
		img, err := e.RenderFrame(r, counts[i])

		select {
		case <-ctx.Done():
			return
		case results <- frame{index: i, img: img, err: err}:
		}
	}
}

// Execute exports the animation to the destination described by op.
//
// The destination decides the output: the pipe name writes the final frame
// to stdout as PNG, a .gif file gets the whole animation, another image
// extension gets the final frame, and a path without extension is treated
// as a directory receiving one PNG per frame.
func (e *Exporter) Execute(ctx context.Context, op *Ops) (err error) {
	if e.Spinner != nil {
		e.Spinner.Start()
		defer func() {
			e.Spinner.StopMsg = e.stopMessage(err)
			e.Spinner.Stop()
		}()
	}

	if op.Dst == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return e.WriteImage(os.Stdout, ".png")
	}

	ext := strings.ToLower(filepath.Ext(op.Dst))
	switch ext {
	case "":
		return e.WriteFrames(ctx, op.Dst, ".png", op.Workers)
	case ".gif":
		return e.writeFile(op.Dst, func(w io.Writer) error {
			return e.WriteGIF(ctx, w, op.Workers)
		})
	}
	if !utils.Contains(imageExtensions, ext) {
		return errors.Errorf("%v file type not supported", ext)
	}
	return e.writeFile(op.Dst, func(w io.Writer) error {
		return e.WriteImage(w, ext)
	})
}

// writeFile creates the destination file and removes it again if encoding fails.
func (e *Exporter) writeFile(dst string, encode func(io.Writer) error) error {
	f, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}

func (e *Exporter) stopMessage(err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s %s\n",
			utils.DecorateText("⚡ CURVY", utils.StatusMessage),
			utils.DecorateText("rendering failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	}
	return fmt.Sprintf("%s %s %s\n",
		utils.DecorateText("⚡ CURVY", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the plot has been rendered successfully ✔", utils.SuccessMessage),
	)
}
