// Package quota resolves partial hardware requests against instance capacity
// profiles into complete Kubernetes-style resource request and limit maps.
//
// The engine is purely functional: it performs no I/O, holds no mutable state
// beyond the immutable registry injected at construction, and every operation
// is safe for concurrent use.
package quota

import (
	corev1 "k8s.io/api/core/v1"
)

// ResourceSpec is the transient per-call input: a subset of quota fields plus
// an instance type. Nil pointer fields were not supplied by the caller.
type ResourceSpec struct {
	InstanceType string `json:"instanceType,omitempty"`

	VCPU         *float64 `json:"vcpu,omitempty"`
	MemoryInGiB  *float64 `json:"memoryInGiB,omitempty"`
	Accelerators *int     `json:"accelerators,omitempty"`

	VCPULimit         *float64 `json:"vcpuLimit,omitempty"`
	MemoryInGiBLimit  *float64 `json:"memoryInGiBLimit,omitempty"`
	AcceleratorsLimit *int     `json:"acceleratorsLimit,omitempty"`

	AcceleratorPartitionType  string `json:"acceleratorPartitionType,omitempty"`
	AcceleratorPartitionCount *int   `json:"acceleratorPartitionCount,omitempty"`
	AcceleratorPartitionLimit *int   `json:"acceleratorPartitionLimit,omitempty"`

	NodeCount *int `json:"nodeCount,omitempty"`
}

// ResolvedResourceRequest maps Kubernetes resource names to quantity strings,
// e.g. cpu -> "2.5", memory -> "16Gi", nvidia.com/gpu -> "4".
type ResolvedResourceRequest map[corev1.ResourceName]string

// ResolvedResourceLimit maps Kubernetes resource names to quantity strings.
// Only explicitly supplied limit fields ever appear.
type ResolvedResourceLimit map[corev1.ResourceName]string

// ValidationOutcome is the result of validating a ResourceSpec. Invalid input
// combinations are values, not errors, so callers can render the reason.
type ValidationOutcome struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Rule   string `json:"rule,omitempty"`
}

// PartitionDefaultsProvider supplies baseline CPU/memory values for an
// accelerator partition allocation when the caller gave neither, and the
// partition geometry used to derive whole-accelerator consumption. Supplied
// by a sibling package; failures must propagate as errors.
type PartitionDefaultsProvider interface {
	// Defaults returns the baseline (cpu cores, memory GiB) for the given
	// partition count. An unknown (instanceType, partitionType) combination
	// is an error, never a silent zero.
	Defaults(instanceType, partitionType string, partitionCount int) (cpu, memoryGiB float64, err error)

	// PartitionsPerAccelerator returns how many partitions of the given type
	// one physical accelerator yields on the instance type.
	PartitionsPerAccelerator(instanceType, partitionType string) (int, error)
}

// hasComputeQuota reports whether any explicit compute-quota field is set.
func (s *ResourceSpec) hasComputeQuota() bool {
	return s.VCPU != nil || s.MemoryInGiB != nil || s.Accelerators != nil
}

// hasPartition reports whether any accelerator-partition field is set.
func (s *ResourceSpec) hasPartition() bool {
	return s.AcceleratorPartitionType != "" ||
		s.AcceleratorPartitionCount != nil ||
		s.AcceleratorPartitionLimit != nil
}
