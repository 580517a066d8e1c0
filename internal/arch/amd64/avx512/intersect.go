//go:build amd64 && !purego

package avx512

import (
	"math"

	"github.com/cwbudde/algo-geom/internal/arch/registry"
)

const parallelEpsilon = 1e-10

// edgeBatch tests one segment against eight consecutive candidate segments.
// Segment A is broadcast across all lanes; the candidates share overlapping
// vertex loads (candidate i spans vertices offset+i and offset+i+1, so the
// kernel reads nine consecutive coordinates). Parameters for every lane are
// computed first, then a per-lane validity mask decides which lanes emit a
// hit.
func edgeBatch(ax1, ay1, ax2, ay2 float64, xs, ys []float64, offset int, out []registry.Intersection) {
	if len(out) != lanes {
		panic("avx512: edge batch requires exactly 8 lanes")
	}

	dxA := ax2 - ax1
	dyA := ay2 - ay1

	var den, t, u [lanes]float64
	for j := 0; j < lanes; j++ {
		bx1 := xs[offset+j]
		by1 := ys[offset+j]
		dxB := xs[offset+j+1] - bx1
		dyB := ys[offset+j+1] - by1

		den[j] = dxA*dyB - dyA*dxB

		dxAB := bx1 - ax1
		dyAB := by1 - ay1
		t[j] = (dxAB*dyB - dyAB*dxB) / den[j]
		u[j] = (dxAB*dyA - dyAB*dxA) / den[j]
	}

	for j := 0; j < lanes; j++ {
		ok := math.Abs(den[j]) >= parallelEpsilon &&
			t[j] >= 0 && t[j] <= 1 && u[j] >= 0 && u[j] <= 1
		if !ok {
			out[j] = registry.Intersection{}
			continue
		}
		out[j] = registry.Intersection{
			Intersects: true,
			T:          t[j],
			U:          u[j],
			X:          ax1 + t[j]*dxA,
			Y:          ay1 + t[j]*dyA,
		}
	}
}
