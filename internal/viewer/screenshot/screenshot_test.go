package screenshot

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows is a 1x2 frame: bottom row red, top row blue, as OpenGL returns it.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 0, 255, 255,
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
}

func TestFromGLPixelsFlips(t *testing.T) {
	img, err := FromGLPixels(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("FromGLPixels failed: %v", err)
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFromGLPixelsSizeMismatch(t *testing.T) {
	if _, err := FromGLPixels(twoRows, 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := FromGLPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("", "shot", "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("New error = %v, want ErrUnknownFormat", err)
	}

	c, err := New("", "shot", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.now = fixedClock
	if got := c.Filename(); got != "shot_2024-03-09_14-05-06.png" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestSavePixels(t *testing.T) {
	tests := []struct {
		format string
		decode func(f *os.File) (image.Image, error)
	}{
		{"png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"BMP", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			c, err := New(dir, "surface", tt.format)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			c.now = fixedClock

			name, err := c.SavePixels(twoRows, 1, 2)
			if err != nil {
				t.Fatalf("SavePixels failed: %v", err)
			}
			if !strings.HasSuffix(name, "."+strings.ToLower(tt.format)) {
				t.Errorf("file name %q has wrong extension", name)
			}

			f, err := os.Open(name)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := img.At(0, 0).RGBA()
			if r != 0 || g != 0 || b != 0xffff {
				t.Errorf("top pixel = (%d, %d, %d), want blue", r, g, b)
			}
		})
	}
}
