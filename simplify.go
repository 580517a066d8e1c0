package geom

import (
	"fmt"

	"github.com/cwbudde/algo-geom/internal/arch/generic"
)

// Simplify reduces a polyline with the Douglas-Peucker algorithm: points
// whose perpendicular distance to the local chord stays within tolerance
// are dropped. The first and last point are always retained, the input is
// never mutated, and the output preserves input order.
//
// tier selects the kernel backend. TierAuto picks the widest supported
// variant; an explicit tier fails with ErrBackendUnavailable when it is
// not compiled in or not supported by the running CPU. All tiers produce
// the identical retained point set.
//
// A tolerance that is not strictly positive fails with
// ErrInvalidTolerance before any computation, for any input. Inputs of
// two or fewer points are returned unchanged (as a copy).
func Simplify(line Polyline, tolerance float64, tier Tier) (Polyline, error) {
	if tolerance <= 0 {
		return Polyline{}, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tolerance)
	}
	if line.Len() <= 2 {
		return line.Clone(), nil
	}

	entry, err := selectEntry(tier)
	if err != nil {
		return Polyline{}, err
	}
	scan := entry.ChordScan
	if scan == nil {
		// Entries without a simplification kernel alias to the scalar scan.
		scan = generic.ChordScan
	}

	n := line.Len()
	// Square once up front; the kernels never take a square root.
	tolSq := tolerance * tolerance

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	// Depth-first over an explicit range stack; adversarial inputs would
	// otherwise recurse O(n) deep.
	type span struct{ start, end int }
	stack := make([]span, 1, 64)
	stack[0] = span{0, n - 1}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.end <= s.start+1 {
			continue
		}

		maxDistSq, maxIdx := scan(line.X, line.Y, s.start, s.end)
		if maxDistSq > tolSq {
			keep[maxIdx] = true
			stack = append(stack, span{s.start, maxIdx}, span{maxIdx, s.end})
		}
	}

	out := NewPolyline(n)
	for i := 0; i < n; i++ {
		if keep[i] {
			out.Push(line.X[i], line.Y[i])
		}
	}
	return out, nil
}
