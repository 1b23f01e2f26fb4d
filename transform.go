package hostcanvas

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant near 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// CoordMapper converts host logical coordinates into the two spaces a
// PointerEvent carries:
//
//	client = (host - origin) * pixelRatio   bounding-rect (physical) space
//	global = client / pixelRatio            engine space, 1 host unit = 1 unit
//
// The client space matches Canvas.GetBoundingClientRect, so the engine's own
// canvas/rect scale stays 1.
type CoordMapper struct {
	toClient [6]float64
	toGlobal [6]float64 // client -> global
}

// NewCoordMapper builds a mapper for a canvas whose top-left sits at
// (originX, originY) in host logical units. A non-positive ratio is treated as 1.
func NewCoordMapper(pixelRatio, originX, originY float64) CoordMapper {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	scale := [6]float64{pixelRatio, 0, 0, pixelRatio, 0, 0}
	shift := [6]float64{1, 0, 0, 1, -originX, -originY}
	return CoordMapper{
		toClient: multiplyAffine(scale, shift),
		toGlobal: invertAffine(scale),
	}
}

// IdentityMapper maps every space onto the host's.
func IdentityMapper() CoordMapper {
	return CoordMapper{toClient: identityTransform, toGlobal: identityTransform}
}

// Client maps a host point into bounding-rect space.
func (m CoordMapper) Client(x, y float64) (float64, float64) {
	return transformPoint(m.toClient, x, y)
}

// Global maps a host point into engine space.
func (m CoordMapper) Global(x, y float64) (float64, float64) {
	cx, cy := m.Client(x, y)
	return transformPoint(m.toGlobal, cx, cy)
}

// Host maps a bounding-rect point back to host logical units.
func (m CoordMapper) Host(cx, cy float64) (float64, float64) {
	return transformPoint(invertAffine(m.toClient), cx, cy)
}

// Ratio returns the client units per host unit.
func (m CoordMapper) Ratio() float64 {
	return m.toClient[0]
}
