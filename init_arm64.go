//go:build arm64 && !purego

package geom

// This file imports arm64-specific kernel packages to trigger their init()
// functions, which register kernels with the global registry.

import (
	// Generic kernels (scalar baseline)
	_ "github.com/cwbudde/algo-geom/internal/arch/generic"

	// ARM64 kernels
	_ "github.com/cwbudde/algo-geom/internal/arch/arm64/neon"
)
