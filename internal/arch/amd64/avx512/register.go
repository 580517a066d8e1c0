//go:build amd64 && !purego

package avx512

import (
	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the 8-lane kernels, selected on AVX-512-capable CPUs.
//
// Priority: 30 (highest - widest variant in this build)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Lanes:     lanes,
		Priority:  30,

		ChordScan: chordScan,
		EdgeBatch: edgeBatch,
	})
}
