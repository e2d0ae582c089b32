package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row red, top row blue, as glReadPixels returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRGBA(pixels, 1, 2)

	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel = r%d b%d, want blue", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel = r%d b%d, want red", r, b)
	}
}

func TestScreenshotsSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "hover")
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	name, err := s.Save(make([]byte, 2*3*4), 2, 3)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if want := filepath.Join(dir, "hover_2026-01-02_03-04-05.000.png"); name != want {
		t.Errorf("Save() = %q, want %q", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Errorf("image size = %dx%d, want 2x3", b.Dx(), b.Dy())
	}
}

func TestScreenshotsSaveSizeMismatch(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "hover")
	if _, err := s.Save(make([]byte, 7), 2, 2); err == nil {
		t.Error("Save() error = nil, want size mismatch")
	}
}
