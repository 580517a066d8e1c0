//go:build amd64 && !purego

package avx2

const (
	degenerateEpsilon = 1e-10
	lanes             = 4
)

// chordScan is the 4-lane Douglas-Peucker distance scan selected for
// AVX2-capable CPUs. Structure mirrors the 8-lane variant: broadcast chord,
// chunked distance evaluation, lane-ordered max reduction, scalar remainder.
func chordScan(xs, ys []float64, start, end int) (float64, int) {
	x1, y1 := xs[start], ys[start]
	dx := xs[end] - x1
	dy := ys[end] - y1
	magSq := dx*dx + dy*dy

	maxDistSq := 0.0
	maxIdx := start
	i := start + 1

	if magSq < degenerateEpsilon {
		for ; i < end; i++ {
			dpx := xs[i] - x1
			dpy := ys[i] - y1
			if d := dpx*dpx + dpy*dpy; d > maxDistSq {
				maxDistSq = d
				maxIdx = i
			}
		}
		return maxDistSq, maxIdx
	}

	var dist [lanes]float64
	for ; i+lanes-1 < end; i += lanes {
		for j := 0; j < lanes; j++ {
			dpx := xs[i+j] - x1
			dpy := ys[i+j] - y1
			cross := dpx*dy - dpy*dx
			dist[j] = cross * cross / magSq
		}
		for j := 0; j < lanes; j++ {
			if dist[j] > maxDistSq {
				maxDistSq = dist[j]
				maxIdx = i + j
			}
		}
	}

	for ; i < end; i++ {
		dpx := xs[i] - x1
		dpy := ys[i] - y1
		cross := dpx*dy - dpy*dx
		if d := cross * cross / magSq; d > maxDistSq {
			maxDistSq = d
			maxIdx = i
		}
	}

	return maxDistSq, maxIdx
}
