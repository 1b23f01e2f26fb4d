package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenMetrics relates the logical window size Ebitengine passes to Layout
// to the physical size of the surface.
type screenMetrics struct {
	scale              float64 // physical pixels per logical unit
	logicalW, logicalH int
	physW, physH       int
}

// newScreenMetrics computes the physical size for a logical window size.
// Fractional physical sizes round up so the surface covers the window.
func newScreenMetrics(logicalW, logicalH int, scale float64) screenMetrics {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return screenMetrics{
		scale:    scale,
		logicalW: logicalW,
		logicalH: logicalH,
		physW:    int(math.Ceil(float64(logicalW) * scale)),
		physH:    int(math.Ceil(float64(logicalH) * scale)),
	}
}

// toLogical converts a physical screen position to host logical units.
func (m screenMetrics) toLogical(x, y int) (float64, float64) {
	return float64(x) / m.scale, float64(y) / m.scale
}

// deviceScale returns the device scale factor of the current monitor, 1 when
// no monitor is available.
func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}
