package quota

import (
	"fmt"
	"math"

	corev1 "k8s.io/api/core/v1"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

// resolvePartition resolves a fractional-accelerator (MIG) allocation. Four
// mutually exclusive cases based on which of vCPU/memory were supplied; when
// neither is given, the baseline comes from the partition defaults provider.
//
// Derived values truncate rather than round. The truncation matches the
// established admission behavior; changing it could under- or over-allocate
// fractional-accelerator nodes.
func (e *Engine) resolvePartition(spec *ResourceSpec, profile registry.InstanceProfile) (ResolvedResourceRequest, error) {
	partitionCount := 0
	if spec.AcceleratorPartitionCount != nil {
		partitionCount = *spec.AcceleratorPartitionCount
	}

	var cpu, memory float64
	switch {
	case spec.VCPU != nil && spec.MemoryInGiB != nil:
		cpu = *spec.VCPU
		memory = *spec.MemoryInGiB

	case spec.VCPU != nil:
		cpu = *spec.VCPU
		memory = math.Floor((cpu / profile.CPUCores) * profile.MemoryGiB)

	case spec.MemoryInGiB != nil:
		memory = *spec.MemoryInGiB
		cpu = math.Floor((memory / profile.MemoryGiB) * profile.CPUCores)

	default:
		var err error
		cpu, memory, err = e.partitions.Defaults(spec.InstanceType, spec.AcceleratorPartitionType, partitionCount)
		if err != nil {
			return nil, fmt.Errorf("resolving partition defaults for %s/%s: %w",
				spec.InstanceType, spec.AcceleratorPartitionType, err)
		}
	}

	cpu, memory = trim(cpu, memory, profile)
	return ResolvedResourceRequest{
		corev1.ResourceCPU:    formatCores(cpu),
		corev1.ResourceMemory: formatGiB(memory),
		partitionResourceName(spec.AcceleratorPartitionType): formatCount(partitionCount),
	}, nil
}

// partitionResourceName maps a MIG profile name to its extended resource
// name, e.g. mig-1g.5gb -> nvidia.com/mig-1g.5gb.
func partitionResourceName(partitionType string) corev1.ResourceName {
	return corev1.ResourceName(constants.NvidiaResourceDomain + partitionType)
}
