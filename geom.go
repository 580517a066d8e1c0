// Package geom provides CPU-capability-aware 2D geometry kernels:
// Douglas-Peucker polyline simplification and pairwise line-segment
// intersection testing.
//
// Both operations exist as a scalar baseline and as lane-widened variants
// (2, 4, or 8 points per chunk). Variants register themselves with an
// internal kernel registry at init time; dispatch picks the widest variant
// supported by the running CPU, or a specific one when a tier is requested
// explicitly. Every variant reproduces the decisions of the scalar
// baseline exactly (same retained point set, same per-lane intersection
// verdicts, earliest-index argmax tie-breaking).
package geom

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Tier selects a kernel backend by vector width.
type Tier int

const (
	// TierAuto selects the widest tier supported by the running CPU,
	// falling back to scalar when no vector kernels apply.
	TierAuto Tier = iota

	// TierScalar is the baseline implementation, always available.
	TierScalar

	// TierWide2 processes two lanes per chunk (NEON class).
	TierWide2

	// TierWide4 processes four lanes per chunk (AVX2 class).
	TierWide4

	// TierWide8 processes eight lanes per chunk (AVX-512 class).
	TierWide8
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierAuto:
		return "auto"
	case TierScalar:
		return "scalar"
	case TierWide2:
		return "wide2"
	case TierWide4:
		return "wide4"
	case TierWide8:
		return "wide8"
	default:
		return "unknown"
	}
}

// lanes returns the lane count of an explicit tier, 0 for TierAuto.
func (t Tier) lanes() int {
	switch t {
	case TierScalar:
		return 1
	case TierWide2:
		return 2
	case TierWide4:
		return 4
	case TierWide8:
		return 8
	default:
		return 0
	}
}

var (
	// ErrInvalidTolerance is returned when a simplification tolerance is
	// not strictly positive.
	ErrInvalidTolerance = errors.New("geom: tolerance must be positive")

	// ErrBackendUnavailable is returned when an explicitly requested tier
	// is not compiled into this build or not supported by the running CPU.
	// Explicit requests never downgrade silently.
	ErrBackendUnavailable = errors.New("geom: requested backend unavailable")
)

// Capabilities reports which vector tiers the running CPU supports.
// The record is derived from a one-time CPU probe and is stable for the
// lifetime of the process.
type Capabilities struct {
	Wide2 bool
	Wide4 bool
	Wide8 bool
}

// DetectCapabilities probes the CPU (once, cached) and reports the
// supported vector tiers. It never fails; an unsupported platform yields
// the zero record.
func DetectCapabilities() Capabilities {
	features := cpu.DetectFeatures()
	return Capabilities{
		Wide2: cpu.Supports(features, cpu.SIMDNEON),
		Wide4: cpu.Supports(features, cpu.SIMDAVX2),
		Wide8: cpu.Supports(features, cpu.SIMDAVX512),
	}
}

// selectEntry maps a requested tier and the detected CPU features to a
// registered kernel entry. Pure lookup, no side effects.
func selectEntry(tier Tier) (*registry.OpEntry, error) {
	features := cpu.DetectFeatures()

	if tier == TierAuto {
		if entry := registry.Global.Lookup(features); entry != nil {
			return entry, nil
		}
		return nil, fmt.Errorf("no kernels registered for %s: %w", tier, ErrBackendUnavailable)
	}

	entry := registry.Global.LookupLanes(tier.lanes())
	if entry == nil {
		return nil, fmt.Errorf("tier %s not compiled into this build: %w", tier, ErrBackendUnavailable)
	}
	if !cpu.Supports(features, entry.SIMDLevel) {
		return nil, fmt.Errorf("tier %s not supported by this CPU: %w", tier, ErrBackendUnavailable)
	}
	return entry, nil
}
