//go:build !amd64 && !arm64

package geom

// This file imports the generic kernel package for architectures without
// dedicated variants.

import (
	// Generic kernels (scalar baseline)
	_ "github.com/cwbudde/algo-geom/internal/arch/generic"
)
