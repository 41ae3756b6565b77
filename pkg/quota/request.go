package quota

import (
	"math"

	corev1 "k8s.io/api/core/v1"

	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

// ResolveRequest resolves a complete resource-request map from a partial
// spec, dispatching on the derived allocation mode. Callers are expected to
// run Validate first; precondition violations surface as errors.
func (e *Engine) ResolveRequest(spec *ResourceSpec) (ResolvedResourceRequest, error) {
	profile, err := e.profile(spec.InstanceType)
	if err != nil {
		return nil, err
	}

	switch DeriveMode(spec) {
	case ModeNodeCount:
		return resolveWholeNode(profile, *spec.NodeCount), nil
	case ModeAcceleratorPartition:
		return e.resolvePartition(spec, profile)
	default:
		return resolveComputeQuota(spec, profile), nil
	}
}

// resolveWholeNode multiplies the full node capacity by the node count.
// Reservation is handled by the node scheduler in this mode, so no trimming
// is applied.
func resolveWholeNode(profile registry.InstanceProfile, nodeCount int) ResolvedResourceRequest {
	out := ResolvedResourceRequest{
		corev1.ResourceCPU:    formatCores(profile.CPUCores * float64(nodeCount)),
		corev1.ResourceMemory: formatGiB(profile.MemoryGiB * float64(nodeCount)),
	}
	if family, exists := ClassifyAccelerator(profile); exists {
		out[family.ResourceName] = formatCount(family.MaxCount * nodeCount)
	}
	return out
}

// resolveComputeQuota fills in the missing CPU/memory dimensions
// proportionally to whichever dimension the caller supplied, then trims to
// the instance's max-allocatable capacity.
func resolveComputeQuota(spec *ResourceSpec, profile registry.InstanceProfile) ResolvedResourceRequest {
	out := ResolvedResourceRequest{}
	if !spec.hasComputeQuota() {
		return out
	}

	family, hasFamily := ClassifyAccelerator(profile)
	hasAccelerator := spec.Accelerators != nil && *spec.Accelerators > 0 && hasFamily

	var cpu, memory float64
	switch {
	case spec.VCPU == nil && spec.Accelerators == nil:
		// memory-only: derive CPU proportionally
		memory = *spec.MemoryInGiB
		cpu = (memory / profile.MemoryGiB) * profile.CPUCores

	case hasAccelerator:
		// accelerator-driven: default CPU and memory from the accelerator share
		ratio := float64(*spec.Accelerators) / float64(family.MaxCount)
		cpu = ratio * profile.CPUCores
		if spec.VCPU != nil {
			cpu = *spec.VCPU
		}
		memory = ratio * profile.MemoryGiB
		if spec.MemoryInGiB != nil {
			memory = *spec.MemoryInGiB
		}
		out[family.ResourceName] = formatCount(*spec.Accelerators)

	default:
		// CPU-driven: derive memory proportionally
		if spec.VCPU != nil {
			cpu = *spec.VCPU
		}
		memory = (cpu / profile.CPUCores) * profile.MemoryGiB
		if spec.MemoryInGiB != nil {
			memory = *spec.MemoryInGiB
		}
	}

	cpu, memory = trim(cpu, memory, profile)
	out[corev1.ResourceCPU] = formatCores(cpu)
	out[corev1.ResourceMemory] = formatGiB(memory)
	return out
}

// trim clamps resolved CPU/memory to the instance's max-allocatable capacity.
// Trimming never errors; it silently clamps.
func trim(cpu, memoryGiB float64, profile registry.InstanceProfile) (float64, float64) {
	cpu = math.Min(cpu, MaxAllocatableCPU(profile.CPUCores))
	memoryGiB = math.Min(memoryGiB, MaxAllocatableMemoryGiB(profile.MemoryGiB))
	return cpu, memoryGiB
}
