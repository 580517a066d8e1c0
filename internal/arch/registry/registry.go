// Package registry provides the kernel registry for geometry operations.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic, AVX2-class, AVX-512-class, NEON-class) to coexist. Each variant
// processes a fixed number of lanes per chunk; the widest variant supported
// by the current CPU is selected automatically at runtime.
//
// Architecture-specific implementations register themselves via init()
// functions, and the geom package uses the registry to select a kernel
// based on detected CPU features or an explicitly requested tier.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Intersection is one lane result of a segment intersection kernel.
// The zero value is the canonical "no intersection".
type Intersection struct {
	Intersects bool
	T, U       float64
	X, Y       float64
}

// ChordScanFn scans the interior points of the inclusive range [start, end]
// and returns the maximum squared perpendicular distance to the chord
// (start, end) together with the index of the first point achieving it.
// Ties keep the earliest index; start is returned when the range has no
// interior points.
type ChordScanFn func(xs, ys []float64, start, end int) (maxDistSq float64, maxIdx int)

// EdgeBatchFn tests one segment (ax1,ay1)-(ax2,ay2) against len(out)
// consecutive candidate segments, where candidate i spans vertices
// (offset+i, offset+i+1). The kernel reads len(out)+1 consecutive
// coordinates starting at offset regardless of lane outcome.
type EdgeBatchFn func(ax1, ay1, ax2, ay2 float64, xs, ys []float64, offset int, out []Intersection)

// OpEntry represents a registered kernel variant for geometry operations.
//
// Not all fields need to be populated; an entry may implement only one of
// the operations. The dispatcher falls back to the generic kernel for any
// operation an entry leaves nil.
type OpEntry struct {
	// Name is a human-readable identifier (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set this variant is keyed to.
	SIMDLevel cpu.SIMDLevel

	// Lanes is the number of points processed per chunk (1 for scalar).
	Lanes int

	// Priority determines selection order when multiple compatible variants
	// exist. Higher priority variants are preferred. Suggested priorities:
	//   - Generic: 0
	//   - NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// ChordScan is the Douglas-Peucker inner distance scan.
	ChordScan ChordScanFn

	// EdgeBatch is the batched segment intersection test.
	EdgeBatch EdgeBatchFn
}

// OpRegistry manages the registration and lookup of kernel variants.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority variant compatible with the
// current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the geom package.
var Global = &OpRegistry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in
// architecture-specific packages. It is safe to call concurrently, but all
// registrations should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if
// none is compatible (which should never happen if a generic fallback is
// registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupLanes finds the registered variant with the given lane count,
// or nil if no such variant was compiled into this build. Availability on
// the running CPU is the caller's concern.
func (r *OpRegistry) LookupLanes(lanes int) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Lanes == lanes {
			return &r.entries[i]
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-4 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for tooling and tests.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
