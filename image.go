package curvy

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/curvy/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stampColor is the color of the status text drawn on exported frames.
var stampColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}

// encodeImg encodes an image to w in the format matching the file extension.
// An empty extension defaults to PNG.
func encodeImg(w io.Writer, ext string, img image.Image) error {
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = ".png"
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return errors.Wrapf(err, "unsupported image format %q", ext)
	}

	switch format {
	case imaging.BMP:
		return bmp.Encode(w, img)
	case imaging.JPEG:
		return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
	case imaging.PNG:
		return imaging.Encode(w, img, format)
	default:
		return errors.Errorf("unsupported image format %q", ext)
	}
}

// encodeGIF assembles the frames into an endlessly looping animated GIF.
// delay is the time each frame is shown, in hundredths of a second.
func encodeGIF(w io.Writer, frames []*image.NRGBA, delay int) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, frame := range frames {
		b := frame.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		draw.Draw(pal, b, frame, b.Min, draw.Src)
		anim.Image[i] = pal
		anim.Delay[i] = delay
	}
	return gif.EncodeAll(w, anim)
}

// toNRGBA converts a rendered frame to *image.NRGBA,
// rescaling it when scale is a positive factor other than 1.
func toNRGBA(img image.Image, scale float64) *image.NRGBA {
	if scale > 0 && scale != 1 {
		w := utils.Max(int(float64(img.Bounds().Dx())*scale), 1)
		return imaging.Resize(img, w, 0, imaging.Lanczos)
	}
	return imaging.Clone(img)
}

// stampStatus writes msg in the top left corner of the image.
func stampStatus(img *image.NRGBA, msg string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(stampColor),
		Face: face,
		Dot:  fixed.P(img.Bounds().Min.X+4, img.Bounds().Min.Y+face.Ascent+4),
	}
	d.DrawString(msg)
}
