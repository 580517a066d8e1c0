// Command geominfo prints the CPU SIMD capabilities detected at runtime
// and the geometry kernels registered for this build.
//
// Usage:
//
//	geominfo [flags]
//
// Examples:
//
//	geominfo
//	geominfo -caps
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom"
	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	capsOnly := flag.Bool("caps", false, "print only the capability record")
	flag.Parse()

	features := cpu.DetectFeatures()
	caps := geom.DetectCapabilities()

	fmt.Printf("arch: %s\n", runtime.GOARCH)
	fmt.Printf("capabilities: wide2=%t wide4=%t wide8=%t\n", caps.Wide2, caps.Wide4, caps.Wide8)
	if *capsOnly {
		return
	}

	fmt.Printf("features: sse2=%t avx=%t avx2=%t avx512=%t neon=%t\n",
		features.HasSSE2, features.HasAVX, features.HasAVX2, features.HasAVX512, features.HasNEON)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL\tLANES\tPRIORITY\tSIMPLIFY\tINTERSECT\tSUPPORTED")
	for _, entry := range registry.Global.ListEntries() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%t\t%t\t%t\n",
			entry.Name,
			entry.Lanes,
			entry.Priority,
			entry.ChordScan != nil,
			entry.EdgeBatch != nil,
			cpu.Supports(features, entry.SIMDLevel),
		)
	}
	w.Flush()
}
