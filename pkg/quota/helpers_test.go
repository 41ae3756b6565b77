package quota

import (
	"errors"
	"testing"

	corev1 "k8s.io/api/core/v1"

	"github.com/ml-infra-lab/quota-allocator/pkg/config"
	"github.com/ml-infra-lab/quota-allocator/pkg/partition"
	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

// newTestEngine builds an engine over a small synthetic capacity table and
// the built-in partition profiles.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	reg := registry.NewRegistryFromSpec(&config.InstanceProfileData{
		Profiles: []config.InstanceProfileSpec{
			{InstanceType: "ml.m5.4xlarge", CPUCores: 16, MemoryGiB: 64},
			{InstanceType: "ml.p4d.24xlarge", CPUCores: 96, MemoryGiB: 1152, GPUCount: 8},
			{InstanceType: "ml.trn1.32xlarge", CPUCores: 128, MemoryGiB: 512, TrainiumCount: 16},
		},
	})
	engine, err := NewEngine(reg, partition.NewProvider())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return engine
}

// stubDefaultsProvider fails every call, for exercising provider error paths.
type stubDefaultsProvider struct {
	err error
}

func (s *stubDefaultsProvider) Defaults(instanceType, partitionType string, partitionCount int) (float64, float64, error) {
	return 0, 0, s.err
}

func (s *stubDefaultsProvider) PartitionsPerAccelerator(instanceType, partitionType string) (int, error) {
	return 0, s.err
}

func assertResolved(t *testing.T, got, want map[corev1.ResourceName]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("resolved map has %d entries, want %d: %v", len(got), len(want), got)
	}
	for name, value := range want {
		if got[name] != value {
			t.Errorf("resolved[%s] = %q, want %q", name, got[name], value)
		}
	}
}

var errStub = errors.New("stub failure")
