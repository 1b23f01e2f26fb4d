package ebitenhost

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/hostcanvas"
)

var errNoFrame = errors.New("ebitenhost: present outside of a frame")

// Surface is the native drawing surface handed to the engine. The engine
// draws into Image; Present copies it onto the screen of the frame being
// drawn.
type Surface struct {
	img    *ebiten.Image
	screen *ebiten.Image // set only while Host.Draw runs

	snapshotDir string
	snapQueue   []string

	presents int
}

func newSurface(w, h int, snapshotDir string) *Surface {
	return &Surface{img: ebiten.NewImage(w, h), snapshotDir: snapshotDir}
}

// Image returns the offscreen image the engine draws into. It is replaced
// when the window's physical size changes.
func (s *Surface) Image() *ebiten.Image { return s.img }

// DrawingBufferSize returns the physical pixel size of the surface.
func (s *Surface) DrawingBufferSize() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Present draws the surface onto the current frame's screen and captures any
// queued snapshots.
func (s *Surface) Present() error {
	if s.screen == nil {
		return errNoFrame
	}
	s.screen.DrawImage(s.img, nil)
	s.presents++
	s.flushSnapshots()
	return nil
}

// Presents returns how many frames were presented.
func (s *Surface) Presents() int { return s.presents }

// Snapshot queues a labeled capture taken at the next Present.
func (s *Surface) Snapshot(label string) {
	s.snapQueue = append(s.snapQueue, label)
}

// resize reallocates the image when the physical size changed. The old
// contents are dropped.
func (s *Surface) resize(w, h int) bool {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return false
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
	return true
}

func (s *Surface) beginFrame(screen *ebiten.Image) { s.screen = screen }
func (s *Surface) endFrame()                       { s.screen = nil }

func (s *Surface) bounds() image.Rectangle { return s.img.Bounds() }

var (
	_ hostcanvas.Surface     = (*Surface)(nil)
	_ hostcanvas.Snapshotter = (*Surface)(nil)
)
