package geom

import (
	"github.com/cwbudde/algo-geom/internal/arch/generic"
	"github.com/cwbudde/algo-geom/internal/arch/registry"
)

// Intersection describes the result of a segment intersection test.
// When Intersects is false the remaining fields are unspecified (zero by
// convention) and must not be interpreted.
type Intersection struct {
	Intersects bool
	T, U       float64
	X, Y       float64
}

// IntersectSegments tests segment A (ax1,ay1)-(ax2,ay2) against segment B
// (bx1,by1)-(bx2,by2). T and U are the intersection parameters along A and
// B, (X, Y) the intersection point evaluated on A.
//
// Segments whose direction cross product is below 1e-10 are treated as
// parallel and report no intersection; this deliberately includes
// collinear overlapping segments. Never fails.
func IntersectSegments(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) Intersection {
	return Intersection(generic.SegmentIntersect(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2))
}

// IntersectBatch tests segment A against consecutive candidate segments
// taken from b: candidate i spans vertices (offset+i, offset+i+1). The
// result has one entry per lane of the selected tier (TierScalar yields a
// single entry); lanes that fail the validity mask hold the zero result.
//
// Caller contract: the kernel always reads lanes+1 consecutive vertices
// starting at offset, regardless of lane outcome. A polyline with fewer
// than offset+lanes+1 vertices panics on the out-of-range load; the
// bounds are not pre-validated here.
func IntersectBatch(ax1, ay1, ax2, ay2 float64, b Polyline, offset int, tier Tier) ([]Intersection, error) {
	entry, err := selectEntry(tier)
	if err != nil {
		return nil, err
	}

	lane := make([]registry.Intersection, entry.Lanes)
	if entry.EdgeBatch != nil {
		entry.EdgeBatch(ax1, ay1, ax2, ay2, b.X, b.Y, offset, lane)
	} else {
		// Entries without an intersection kernel alias to the scalar test.
		generic.EdgeBatch(ax1, ay1, ax2, ay2, b.X, b.Y, offset, lane)
	}

	out := make([]Intersection, len(lane))
	for i, hit := range lane {
		out[i] = Intersection(hit)
	}
	return out, nil
}

// EdgeIntersection is one crossing found between two polygon edges.
type EdgeIntersection struct {
	Intersection

	// EdgeA and EdgeB index the edges (vertex i to i+1) of the respective
	// polygons.
	EdgeA, EdgeB int
}

// FindIntersections reports every crossing between the edges of a and b,
// in edge order. Edges of b are processed in full-width batches of the
// selected tier; candidates beyond the last full batch fall back to the
// scalar pair test.
func FindIntersections(a, b Polygon, tier Tier) ([]EdgeIntersection, error) {
	entry, err := selectEntry(tier)
	if err != nil {
		return nil, err
	}
	batch := entry.EdgeBatch
	width := entry.Lanes
	if batch == nil {
		batch = generic.EdgeBatch
		width = 1
	}

	na := a.Vertices.Len()
	nb := b.Vertices.Len()
	if na < 2 || nb < 2 {
		return nil, nil
	}

	var hits []EdgeIntersection
	lane := make([]registry.Intersection, width)

	for i := 0; i+1 < na; i++ {
		ax1, ay1 := a.Vertices.X[i], a.Vertices.Y[i]
		ax2, ay2 := a.Vertices.X[i+1], a.Vertices.Y[i+1]

		j := 0
		if width > 1 {
			for ; j+width+1 <= nb; j += width {
				batch(ax1, ay1, ax2, ay2, b.Vertices.X, b.Vertices.Y, j, lane)
				for k := range lane {
					if lane[k].Intersects {
						hits = append(hits, EdgeIntersection{
							Intersection: Intersection(lane[k]),
							EdgeA:        i,
							EdgeB:        j + k,
						})
					}
				}
			}
		}

		// Remainder edges use the scalar test.
		for ; j+1 < nb; j++ {
			hit := generic.SegmentIntersect(ax1, ay1, ax2, ay2,
				b.Vertices.X[j], b.Vertices.Y[j], b.Vertices.X[j+1], b.Vertices.Y[j+1])
			if hit.Intersects {
				hits = append(hits, EdgeIntersection{
					Intersection: Intersection(hit),
					EdgeA:        i,
					EdgeB:        j,
				})
			}
		}
	}

	return hits, nil
}
