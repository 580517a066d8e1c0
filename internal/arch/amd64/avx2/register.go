//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the 4-lane kernels, selected on AVX2-capable CPUs.
//
// Priority: 20 (preferred over generic, below avx512)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Lanes:     lanes,
		Priority:  20,

		ChordScan: chordScan,
		EdgeBatch: edgeBatch,
	})
}
