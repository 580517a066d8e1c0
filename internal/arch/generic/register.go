package generic

import (
	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (scalar) kernels with the geometry registry.
//
// The scalar kernels are the baseline fallback and the reference for all
// lane-widened variants.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Lanes:     1,
		Priority:  0,

		ChordScan: ChordScan,
		EdgeBatch: EdgeBatch,
	})
}
