package geom

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/testutil"
)

func BenchmarkIntersectSegments(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IntersectSegments(0, 0, 10, 10, 0, 10, 10, 0)
	}
}

func benchmarkFindIntersections(b *testing.B, n int, tier Tier) {
	xa, ya := testutil.Circle(n, 10)
	xb, yb := testutil.Circle(n, 10)
	for i := range xb {
		xb[i] += 5
	}

	a := Polygon{Vertices: Polyline{X: xa, Y: ya}}
	c := Polygon{Vertices: Polyline{X: xb, Y: yb}}
	a.Close()
	c.Close()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := FindIntersections(a, c, tier); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindIntersections_Scalar_256(b *testing.B) { benchmarkFindIntersections(b, 256, TierScalar) }
func BenchmarkFindIntersections_Auto_256(b *testing.B)   { benchmarkFindIntersections(b, 256, TierAuto) }
