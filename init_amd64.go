//go:build amd64 && !purego

package geom

// This file imports amd64-specific kernel packages to trigger their init()
// functions, which register kernels with the global registry.

import (
	// Generic kernels (scalar baseline)
	_ "github.com/cwbudde/algo-geom/internal/arch/generic"

	// AMD64 kernels
	_ "github.com/cwbudde/algo-geom/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-geom/internal/arch/amd64/avx512"
)
