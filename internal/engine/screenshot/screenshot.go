// Package screenshot saves framebuffer contents as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes numbered, timestamped screenshots into a directory.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// New creates a capture handler. An empty outputDir means the working directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next screenshot would be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// FromGLPixels converts RGBA rows read with glReadPixels into an image.
// OpenGL has its origin at the bottom-left, so rows are flipped. The
// framebuffer is opaque after compositing, so alpha is forced to 255.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		dst := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		copy(dst, src)
		for x := 3; x < rowSize; x += 4 {
			dst[x] = 255
		}
	}
	return img, nil
}

// Save encodes img as PNG and returns the written path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}
