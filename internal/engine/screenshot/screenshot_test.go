package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromGLPixelsFlips(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order).
	pixels := []byte{
		255, 0, 0, 10,
		0, 0, 255, 20,
	}
	img, err := FromGLPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromGLPixels() error = %v", err)
	}

	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.A != 255 {
		t.Errorf("top pixel = %v, want opaque blue", top)
	}
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.A != 255 {
		t.Errorf("bottom pixel = %v, want opaque red", bottom)
	}
}

func TestFromGLPixelsSizeMismatch(t *testing.T) {
	if _, err := FromGLPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short pixel data")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "shadowview")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	want := filepath.Join(dir, "shadowview_2024-03-01_12-30-00.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}

	img, err := FromGLPixels(make([]byte, 4*4*3), 4, 3)
	if err != nil {
		t.Fatalf("FromGLPixels() error = %v", err)
	}
	path, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != want {
		t.Errorf("Save() path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded size = %dx%d, want 4x3", b.Dx(), b.Dy())
	}
}
