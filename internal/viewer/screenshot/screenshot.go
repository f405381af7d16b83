// Package screenshot saves rendered frames to image files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for formats other than png and bmp.
var ErrUnknownFormat = errors.New("unknown screenshot format")

// Capture writes frames into a directory with timestamped names.
type Capture struct {
	dir    string
	prefix string
	format string

	now func() time.Time
}

// New creates a capture handler. An empty format means png.
func New(dir, prefix, format string) (*Capture, error) {
	format = strings.ToLower(format)
	switch format {
	case "":
		format = "png"
	case "png", "bmp":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Capture{
		dir:    dir,
		prefix: prefix,
		format: format,
		now:    time.Now,
	}, nil
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", c.prefix, c.now().Format("2006-01-02_15-04-05"), c.format)
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// SavePixels writes RGBA pixels read back from OpenGL.
// Rows are flipped since OpenGL has its origin at the bottom left.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromGLPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save writes img and returns the file name.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}

	return filename, nil
}

func (c *Capture) encode(w io.Writer, img image.Image) error {
	if c.format == "bmp" {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// FromGLPixels converts bottom-up RGBA rows into an image.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := range height {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return img, nil
}
