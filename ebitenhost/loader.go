package ebitenhost

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/phanxgames/hostcanvas"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

// ImageLoader decodes image files from FS into ebiten images. It accepts
// URLs by extension; a query string or fragment is ignored.
type ImageLoader struct {
	FS fs.FS
}

// Test reports whether url names a supported image file.
func (l *ImageLoader) Test(url string) bool {
	return imageExts[strings.ToLower(path.Ext(stripQuery(url)))]
}

// Load decodes url and uploads it as an *ebiten.Image.
func (l *ImageLoader) Load(ctx context.Context, url string) (any, error) {
	img, err := l.decode(ctx, url)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// decode reads and decodes url without touching the GPU.
func (l *ImageLoader) decode(ctx context.Context, url string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(stripQuery(url), "/")
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Unload releases an image returned by Load.
func (l *ImageLoader) Unload(res any) error {
	img, ok := res.(*ebiten.Image)
	if !ok {
		return fmt.Errorf("unload: unexpected resource %T", res)
	}
	img.Deallocate()
	return nil
}

func stripQuery(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}

var _ hostcanvas.Loader = (*ImageLoader)(nil)
