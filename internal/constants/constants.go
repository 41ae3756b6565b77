// Package constants provides centralized constant definitions for the quota allocator.
package constants

// Kubernetes extended resource names emitted by the resolvers.
const (
	// NvidiaGPUResource is the device-plugin resource name for whole NVIDIA GPUs.
	NvidiaGPUResource = "nvidia.com/gpu"

	// NeuronDeviceResource is the device-plugin resource name for AWS Trainium devices.
	NeuronDeviceResource = "aws.amazon.com/neurondevice"

	// NvidiaResourceDomain prefixes fractional (MIG) accelerator resource names,
	// e.g. nvidia.com/mig-1g.5gb.
	NvidiaResourceDomain = "nvidia.com/"

	// MigProfilePrefix is the required prefix of an accelerator partition type.
	MigProfilePrefix = "mig"
)

// REST server environment variables.
const (
	RestHostEnvName = "QUOTA_ALLOCATOR_HOST"
	RestPortEnvName = "QUOTA_ALLOCATOR_PORT"

	DefaultRestHost = "0.0.0.0"
	DefaultRestPort = "8080"
)
