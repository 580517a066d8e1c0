package generic

import (
	"math"

	"github.com/cwbudde/algo-geom/internal/arch/registry"
)

// parallelEpsilon bounds the cross-product denominator below which two
// segments are treated as parallel (including collinear overlap) and
// reported as not intersecting.
const parallelEpsilon = 1e-10

// SegmentIntersect tests segment A (ax1,ay1)-(ax2,ay2) against segment B
// (bx1,by1)-(bx2,by2) by solving the parametric equations
//
//	P = A1 + t*(A2-A1)
//	Q = B1 + u*(B2-B1)
//
// with 2D cross products. The segments intersect iff t and u both lie in
// [0, 1]; the intersection point is evaluated on segment A.
func SegmentIntersect(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) registry.Intersection {
	dxA := ax2 - ax1
	dyA := ay2 - ay1
	dxB := bx2 - bx1
	dyB := by2 - by1

	// (A2-A1) x (B2-B1)
	den := dxA*dyB - dyA*dxB
	if math.Abs(den) < parallelEpsilon {
		return registry.Intersection{}
	}

	dxAB := bx1 - ax1
	dyAB := by1 - ay1

	t := (dxAB*dyB - dyAB*dxB) / den
	u := (dxAB*dyA - dyAB*dxA) / den

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return registry.Intersection{}
	}

	return registry.Intersection{
		Intersects: true,
		T:          t,
		U:          u,
		X:          ax1 + t*dxA,
		Y:          ay1 + t*dyA,
	}
}

// EdgeBatch evaluates len(out) consecutive candidate segments with the
// scalar test. Candidate i spans vertices (offset+i, offset+i+1).
func EdgeBatch(ax1, ay1, ax2, ay2 float64, xs, ys []float64, offset int, out []registry.Intersection) {
	for i := range out {
		out[i] = SegmentIntersect(ax1, ay1, ax2, ay2,
			xs[offset+i], ys[offset+i], xs[offset+i+1], ys[offset+i+1])
	}
}
