package geom

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierAuto, "auto"},
		{TierScalar, "scalar"},
		{TierWide2, "wide2"},
		{TierWide4, "wide4"},
		{TierWide8, "wide8"},
		{Tier(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
}

func TestGenericKernelAlwaysRegistered(t *testing.T) {
	entry := registry.Global.LookupLanes(1)
	if entry == nil {
		t.Fatal("no scalar kernel registered")
	}
	if entry.Name != "generic" {
		t.Fatalf("scalar kernel is %q, want generic", entry.Name)
	}
	if entry.ChordScan == nil || entry.EdgeBatch == nil {
		t.Fatal("generic kernel must implement both operations")
	}
}

func TestDetectCapabilitiesForcedGeneric(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	caps := DetectCapabilities()
	if caps.Wide2 || caps.Wide4 || caps.Wide8 {
		t.Fatalf("forced-generic CPU reported capabilities %+v", caps)
	}
}

func TestDetectCapabilitiesStable(t *testing.T) {
	first := DetectCapabilities()
	for i := 0; i < 10; i++ {
		if got := DetectCapabilities(); got != first {
			t.Fatalf("capability record changed between probes: %+v vs %+v", got, first)
		}
	}
}
