package quota

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

// AcceleratorFamily identifies the single schedulable accelerator resource an
// instance type exposes and its device count.
type AcceleratorFamily struct {
	ResourceName corev1.ResourceName
	MaxCount     int
}

// ClassifyAccelerator determines the accelerator family of a profile.
// Trainium is checked first by convention; in practice an instance exposes at
// most one family.
func ClassifyAccelerator(profile registry.InstanceProfile) (AcceleratorFamily, bool) {
	if profile.TrainiumCount > 0 {
		return AcceleratorFamily{
			ResourceName: constants.NeuronDeviceResource,
			MaxCount:     profile.TrainiumCount,
		}, true
	}
	if profile.GPUCount > 0 {
		return AcceleratorFamily{
			ResourceName: constants.NvidiaGPUResource,
			MaxCount:     profile.GPUCount,
		}, true
	}
	return AcceleratorFamily{}, false
}
