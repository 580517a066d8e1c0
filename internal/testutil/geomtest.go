// Package testutil provides shared helpers for geometry tests:
// near-equality assertions and deterministic polyline generators.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequirePointsNearlyEqual fails t if the coordinate pairs differ by more
// than eps in either axis.
func RequirePointsNearlyEqual(t *testing.T, gotX, gotY, wantX, wantY, eps float64) {
	t.Helper()
	if math.Abs(gotX-wantX) > eps || math.Abs(gotY-wantY) > eps {
		t.Fatalf("point mismatch: got (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

// Zigzag generates n vertices alternating between y=0 and y=amplitude at
// unit x spacing.
func Zigzag(n int, amplitude float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i%2) * amplitude
	}
	return xs, ys
}

// Circle generates n vertices on a circle of the given radius centered at
// the origin, counter-clockwise, without a closing duplicate.
func Circle(n int, radius float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		angle := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = radius * math.Cos(angle)
		ys[i] = radius * math.Sin(angle)
	}
	return xs, ys
}

// NoisyLine generates n vertices along y=0 with reproducible pseudo-random
// vertical noise of the given amplitude.
func NoisyLine(seed int64, n int, amplitude float64) (xs, ys []float64) {
	rng := rand.New(rand.NewSource(seed))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return xs, ys
}

// Collinear generates n vertices evenly spaced on the line through (0,0)
// with the given slope.
func Collinear(n int, slope float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = slope * float64(i)
	}
	return xs, ys
}
