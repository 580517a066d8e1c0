//go:build purego && (amd64 || arm64)

package geom

// Under the purego tag the arch-specific kernel packages are excluded from
// the build; only the scalar baseline is registered.

import (
	// Generic kernels (scalar baseline)
	_ "github.com/cwbudde/algo-geom/internal/arch/generic"
)
