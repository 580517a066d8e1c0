package geom

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-geom/internal/testutil"
)

// classicLine is the textbook Douglas-Peucker example.
func classicLine() Polyline {
	return PolylineFromPoints([]Point{
		{0, 0}, {1, 0.1}, {2, -0.1}, {3, 5}, {4, 6},
		{5, 7}, {6, 8.1}, {7, 9}, {8, 9}, {9, 9},
	})
}

func TestSimplifyClassicLine(t *testing.T) {
	result, err := Simplify(classicLine(), 1.0, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	want := []Point{{0, 0}, {2, -0.1}, {3, 5}, {7, 9}, {9, 9}}
	if result.Len() != len(want) {
		t.Fatalf("retained %d points, want %d", result.Len(), len(want))
	}
	for i, p := range want {
		testutil.RequirePointsNearlyEqual(t, result.X[i], result.Y[i], p.X, p.Y, 1e-12)
	}
}

func TestSimplifyShortInputsUnchanged(t *testing.T) {
	inputs := []Polyline{
		{},
		PolylineFromPoints([]Point{{1, 2}}),
		PolylineFromPoints([]Point{{0, 0}, {10, 10}}),
	}

	for _, line := range inputs {
		result, err := Simplify(line, 1.0, TierAuto)
		if err != nil {
			t.Fatalf("Simplify(%d points): %v", line.Len(), err)
		}
		if result.Len() != line.Len() {
			t.Fatalf("length changed: got %d, want %d", result.Len(), line.Len())
		}
		testutil.RequireSliceNearlyEqual(t, result.X, line.X, 0)
		testutil.RequireSliceNearlyEqual(t, result.Y, line.Y, 0)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	line := classicLine()
	backup := line.Clone()

	if _, err := Simplify(line, 1.0, TierScalar); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, line.X, backup.X, 0)
	testutil.RequireSliceNearlyEqual(t, line.Y, backup.Y, 0)
}

func TestSimplifyPreservesEndpoints(t *testing.T) {
	xs, ys := testutil.NoisyLine(42, 500, 3.0)
	line := Polyline{X: xs, Y: ys}

	for _, tol := range []float64{0.1, 1, 5, 100} {
		result, err := Simplify(line, tol, TierScalar)
		if err != nil {
			t.Fatalf("tolerance %v: %v", tol, err)
		}
		if result.Len() < 2 {
			t.Fatalf("tolerance %v: retained %d points", tol, result.Len())
		}
		n := result.Len()
		testutil.RequirePointsNearlyEqual(t, result.X[0], result.Y[0], line.X[0], line.Y[0], 0)
		testutil.RequirePointsNearlyEqual(t, result.X[n-1], result.Y[n-1], line.X[line.Len()-1], line.Y[line.Len()-1], 0)
	}
}

func TestSimplifyInvalidTolerance(t *testing.T) {
	inputs := []Polyline{
		{},
		PolylineFromPoints([]Point{{1, 2}}),
		classicLine(),
	}

	for _, line := range inputs {
		for _, tol := range []float64{0, -1, -0.001} {
			_, err := Simplify(line, tol, TierAuto)
			if !errors.Is(err, ErrInvalidTolerance) {
				t.Fatalf("tolerance %v on %d points: got %v, want ErrInvalidTolerance", tol, line.Len(), err)
			}
		}
	}
}

func TestSimplifyCollinearReducesToEndpoints(t *testing.T) {
	xs, ys := testutil.Collinear(100, 0.5)
	line := Polyline{X: xs, Y: ys}

	result, err := Simplify(line, 1e-6, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if result.Len() != 2 {
		t.Fatalf("collinear input retained %d points, want 2", result.Len())
	}
	testutil.RequirePointsNearlyEqual(t, result.X[0], result.Y[0], 0, 0, 0)
	testutil.RequirePointsNearlyEqual(t, result.X[1], result.Y[1], 99, 49.5, 0)
}

func TestSimplifyZigzag(t *testing.T) {
	xs, ys := testutil.Zigzag(20, 0.5)
	line := Polyline{X: xs, Y: ys}

	// Tolerance above the zigzag amplitude flattens it to the endpoints.
	result, err := Simplify(line, 1.0, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if result.Len() != 2 {
		t.Fatalf("retained %d points, want 2", result.Len())
	}

	// Tolerance below the amplitude keeps every vertex.
	result, err = Simplify(line, 0.1, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if result.Len() != line.Len() {
		t.Fatalf("retained %d points, want %d", result.Len(), line.Len())
	}
}

func TestSimplifyMonotonicity(t *testing.T) {
	xs, ys := testutil.NoisyLine(7, 300, 2.0)
	line := Polyline{X: xs, Y: ys}

	prevLen := line.Len() + 1
	for _, tol := range []float64{0.01, 0.1, 0.5, 1, 2, 4, 8} {
		result, err := Simplify(line, tol, TierScalar)
		if err != nil {
			t.Fatalf("tolerance %v: %v", tol, err)
		}
		if result.Len() > prevLen {
			t.Fatalf("tolerance %v: %d points, more than %d at the smaller tolerance", tol, result.Len(), prevLen)
		}
		prevLen = result.Len()
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	xs, ys := testutil.NoisyLine(11, 200, 1.5)
	line := Polyline{X: xs, Y: ys}

	for _, tol := range []float64{0.3, 1, 3} {
		once, err := Simplify(line, tol, TierScalar)
		if err != nil {
			t.Fatalf("tolerance %v: %v", tol, err)
		}
		twice, err := Simplify(once, tol, TierScalar)
		if err != nil {
			t.Fatalf("tolerance %v (second pass): %v", tol, err)
		}
		testutil.RequireSliceNearlyEqual(t, twice.X, once.X, 0)
		testutil.RequireSliceNearlyEqual(t, twice.Y, once.Y, 0)
	}
}

func TestSimplifyDegenerateChord(t *testing.T) {
	// Closed loop: first and last point coincide, so the top-level chord is
	// degenerate and distances are measured to the start vertex.
	line := PolylineFromPoints([]Point{{0, 0}, {3, 4}, {0, 0}})

	result, err := Simplify(line, 1.0, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if result.Len() != 3 {
		t.Fatalf("retained %d points, want 3 (apex distance 5 exceeds tolerance)", result.Len())
	}

	result, err = Simplify(line, 6.0, TierScalar)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	// Squared distance 25 stays below 36; only the endpoints survive.
	if result.Len() != 2 {
		t.Fatalf("retained %d points, want 2", result.Len())
	}
}

func TestSimplifyUnknownTier(t *testing.T) {
	_, err := Simplify(classicLine(), 1.0, Tier(99))
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("got %v, want ErrBackendUnavailable", err)
	}
}
