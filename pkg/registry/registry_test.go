package registry

import (
	"sort"
	"testing"

	"github.com/ml-infra-lab/quota-allocator/pkg/config"
)

func TestNewRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		instanceType string
		want         InstanceProfile
	}{
		{"ml.m5.4xlarge", InstanceProfile{InstanceType: "ml.m5.4xlarge", CPUCores: 16, MemoryGiB: 64}},
		{"ml.p4d.24xlarge", InstanceProfile{InstanceType: "ml.p4d.24xlarge", CPUCores: 96, MemoryGiB: 1152, GPUCount: 8}},
		{"ml.trn1.32xlarge", InstanceProfile{InstanceType: "ml.trn1.32xlarge", CPUCores: 128, MemoryGiB: 512, TrainiumCount: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.instanceType, func(t *testing.T) {
			got, exists := r.Lookup(tt.instanceType)
			if !exists {
				t.Fatalf("Lookup(%q) not found", tt.instanceType)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.instanceType, got, tt.want)
			}
		})
	}

	if _, exists := r.Lookup("ml.nosuch.2xlarge"); exists {
		t.Error("Lookup() found an unregistered instance type")
	}
}

func TestNewRegistryFromSpec(t *testing.T) {
	r := NewRegistryFromSpec(&config.InstanceProfileData{
		Profiles: []config.InstanceProfileSpec{
			{InstanceType: "custom.large", CPUCores: 4, MemoryGiB: 8},
		},
	})
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if _, exists := r.Lookup("ml.m5.4xlarge"); exists {
		t.Error("spec-built registry contains a built-in profile")
	}
}

func TestWithOverrides(t *testing.T) {
	base := NewRegistry()
	overridden := base.WithOverrides(&config.InstanceProfileData{
		Profiles: []config.InstanceProfileSpec{
			{InstanceType: "custom.large", CPUCores: 4, MemoryGiB: 8},
			{InstanceType: "ml.m5.4xlarge", CPUCores: 32, MemoryGiB: 128},
		},
	})

	if overridden.Len() != base.Len()+1 {
		t.Errorf("Len() = %d, want %d", overridden.Len(), base.Len()+1)
	}

	added, exists := overridden.Lookup("custom.large")
	if !exists || added.CPUCores != 4 {
		t.Errorf("Lookup(custom.large) = %+v, %v", added, exists)
	}

	shadowed, _ := overridden.Lookup("ml.m5.4xlarge")
	if shadowed.CPUCores != 32 {
		t.Errorf("override did not shadow the built-in profile: %+v", shadowed)
	}

	// the receiver stays untouched
	original, _ := base.Lookup("ml.m5.4xlarge")
	if original.CPUCores != 16 {
		t.Errorf("WithOverrides mutated the base registry: %+v", original)
	}
	if _, exists := base.Lookup("custom.large"); exists {
		t.Error("WithOverrides added a profile to the base registry")
	}
}

func TestInstanceTypesSorted(t *testing.T) {
	names := NewRegistry().InstanceTypes()
	if len(names) == 0 {
		t.Fatal("InstanceTypes() is empty")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("InstanceTypes() not sorted: %v", names)
	}
}
