package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/hostcanvas"
)

// flushSnapshots captures the surface for every queued label and writes each
// as a PNG file. Called from Present.
func (s *Surface) flushSnapshots() {
	if len(s.snapQueue) == 0 {
		return
	}
	defer func() { s.snapQueue = s.snapQueue[:0] }()

	if err := os.MkdirAll(s.snapshotDir, 0o755); err != nil {
		hostcanvas.Logger().Warn("snapshot: mkdir", "dir", s.snapshotDir, "err", err)
		return
	}

	b := s.bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	s.img.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.snapQueue {
		path := filepath.Join(s.snapshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			hostcanvas.Logger().Warn("snapshot failed", "err", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
