package utils

import (
	"bytes"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2.5, Max(2.5, -1))
	assert.Equal("b", Max("a", "b"))
	assert.Equal(3, Abs(-3))
	assert.Equal(0.5, Abs(0.5))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{".png", ".jpg"}, ".jpg"))
	assert.False(t, Contains([]string{".png", ".jpg"}, ".gif"))
	assert.False(t, Contains(nil, 1))
}

func TestUtils_HexToRGBA(t *testing.T) {
	testCases := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#6cf", color.NRGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0xff}},
		{"6cf8", color.NRGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0x88}},
		{"#d77000", color.NRGBA{R: 0xd7, G: 0x70, B: 0x00, A: 0xff}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}
	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			c, err := HexToRGBA(tc.hex)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}

	for _, hex := range []string{"", "#12", "#12345", "#ggg", "#1234567890"} {
		_, err := HexToRGBA(hex)
		assert.Error(t, err, hex)
	}
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
	assert.Equal("1d 0h 0m 0.00s", FormatTime(24*time.Hour))
}

func TestUtils_FrameName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("frame_7.png", FrameName("frame_", 7, 9, ".png"))
	assert.Equal("frame_007.png", FrameName("frame_", 7, 100, ".png"))
	assert.Equal("frame_100.png", FrameName("frame_", 100, 100, ".png"))
}

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestUtils_Spinner(t *testing.T) {
	assert := assert.New(t)

	out := &syncBuffer{}
	s := NewSpinner("plotting", time.Millisecond, false)
	s.SetWriter(out)
	s.StopMsg = "finished\n"

	s.Start()
	s.Start()
	assert.Eventually(func() bool {
		return strings.Contains(out.String(), "plotting")
	}, time.Second, time.Millisecond)

	s.SetMessage("encoding")
	assert.Eventually(func() bool {
		return strings.Contains(out.String(), "encoding")
	}, time.Second, time.Millisecond)

	s.Stop()
	s.Stop()
	assert.True(strings.HasSuffix(out.String(), "finished\n"))
	assert.Equal(1, strings.Count(out.String(), "finished"))
}
