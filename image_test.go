package curvy

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/esimov/curvy/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"
)

func TestImage_EncodeFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))

	testCases := []struct {
		ext    string
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{"", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".png", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".PNG", func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{".jpg", func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
		{".jpeg", func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
		{".bmp", func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, encodeImg(&buf, tc.ext, img))

			dec, err := tc.decode(&buf)
			assert.NoError(t, err)
			assert.Equal(t, img.Bounds().Size(), dec.Bounds().Size())
		})
	}
}

func TestImage_EncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := encodeImg(&buf, ".webp", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestImage_EncodeGIF(t *testing.T) {
	assert := assert.New(t)

	frames := []*image.NRGBA{
		makeNRGBAImage(image.Rect(0, 0, 16, 16), palette.Plan9),
		makeNRGBAImage(image.Rect(0, 0, 16, 16), palette.Plan9[16:]),
	}

	var buf bytes.Buffer
	assert.NoError(encodeGIF(&buf, frames, 7))

	anim, err := gif.DecodeAll(&buf)
	assert.NoError(err)
	assert.Len(anim.Image, 2)
	assert.Equal([]int{7, 7}, anim.Delay)

	assert.Error(encodeGIF(&buf, nil, 7))
}

func TestImage_ImgToNRGBA(t *testing.T) {
	rect := image.Rect(-1, -1, 15, 15)
	colors := palette.Plan9
	testCases := []struct {
		name string
		img  image.Image
	}{
		{
			name: "NRGBA",
			img:  makeNRGBAImage(rect, colors),
		},
		{
			name: "YCbCr-444",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio444),
		},
		{
			name: "YCbCr-420",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio420),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := toNRGBA(tc.img, 1)
			r := tc.img.Bounds()
			assert.Equal(t, r.Size(), got.Bounds().Size())

			for y := r.Min.Y; y < r.Max.Y; y++ {
				gotRow := readRow(got, got.Bounds().Min.Y+y-r.Min.Y)
				wantRow := readRow(tc.img, y)
				if !compareBytes(gotRow, wantRow, 1) {
					t.Errorf("row %d: got %v want %v", y, gotRow, wantRow)
				}
			}
		})
	}
}

func TestImage_ScaleFrame(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 50))

	assert.Equal(t, image.Pt(50, 25), toNRGBA(img, 0.5).Bounds().Size())
	assert.Equal(t, image.Pt(100, 50), toNRGBA(img, 0).Bounds().Size())
	assert.Equal(t, 1, toNRGBA(img, 0.001).Bounds().Dx())
}

func TestImage_StampStatus(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 80, 20))
	stampStatus(img, "42/100")

	var inked int
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)
}

func makeYCbCrImage(rect image.Rectangle, colors []color.Color, sr image.YCbCrSubsampleRatio) *image.YCbCr {
	img := image.NewYCbCr(rect, sr)
	j := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			iy := img.YOffset(x, y)
			ic := img.COffset(x, y)
			c := color.NRGBAModel.Convert(colors[j%len(colors)]).(color.NRGBA)
			img.Y[iy], img.Cb[ic], img.Cr[ic] = color.RGBToYCbCr(c.R, c.G, c.B)
			j++
		}
	}
	return img
}

func makeNRGBAImage(rect image.Rectangle, colors []color.Color) *image.NRGBA {
	img := image.NewNRGBA(rect)
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := color.NRGBAModel.Convert(colors[i%len(colors)]).(color.NRGBA)
			c.A = uint8(i % 256)
			img.SetNRGBA(x, y, c)
			i++
		}
	}
	return img
}

func readRow(img image.Image, y int) []uint8 {
	row := make([]byte, img.Bounds().Dx()*4)
	i := 0
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
		i += 4
	}
	return row
}

func compareBytes(a, b []uint8, delta int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if utils.Abs(int(a[i])-int(b[i])) > delta {
			return false
		}
	}
	return true
}
