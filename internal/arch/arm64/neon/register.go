//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the 2-lane kernels, selected on NEON-capable CPUs.
//
// Priority: 15 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Lanes:     lanes,
		Priority:  15,

		ChordScan: chordScan,
		EdgeBatch: edgeBatch,
	})
}
