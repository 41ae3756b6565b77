package quota

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
)

// ResolveLimit resolves a resource-limit map strictly from explicitly
// supplied limit fields. Unlike ResolveRequest there is no cross-dimension
// defaulting: a key appears only when the caller set the matching field.
func (e *Engine) ResolveLimit(spec *ResourceSpec) (ResolvedResourceLimit, error) {
	out := ResolvedResourceLimit{}

	if spec.VCPULimit != nil {
		out[corev1.ResourceCPU] = formatCores(*spec.VCPULimit)
	}
	if spec.MemoryInGiBLimit != nil {
		out[corev1.ResourceMemory] = formatGiB(*spec.MemoryInGiBLimit)
	}
	if spec.AcceleratorPartitionLimit != nil && spec.AcceleratorPartitionType != "" {
		out[partitionResourceName(spec.AcceleratorPartitionType)] = formatCount(*spec.AcceleratorPartitionLimit)
	}

	if spec.AcceleratorsLimit != nil {
		profile, err := e.profile(spec.InstanceType)
		if err != nil {
			return nil, err
		}
		if family, exists := ClassifyAccelerator(profile); exists {
			out[family.ResourceName] = formatCount(*spec.AcceleratorsLimit)
		} else {
			// no accelerator family on this instance: emit a zero under the
			// generic GPU key instead of omitting the requested limit
			out[constants.NvidiaGPUResource] = "0"
		}
	}

	return out, nil
}
