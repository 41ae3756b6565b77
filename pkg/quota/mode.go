package quota

// AllocationMode discriminates the three ways a caller can describe a
// workload's resources. The mode is derived once from which fields are set
// and shared by the validator and the resolvers.
type AllocationMode int

const (
	// ModeComputeQuota requests explicit vCPU/memory/accelerator amounts.
	ModeComputeQuota AllocationMode = iota
	// ModeNodeCount requests whole nodes.
	ModeNodeCount
	// ModeAcceleratorPartition requests fractional (MIG) accelerator slices.
	ModeAcceleratorPartition
)

func (m AllocationMode) String() string {
	switch m {
	case ModeComputeQuota:
		return "ComputeQuota"
	case ModeNodeCount:
		return "NodeCount"
	case ModeAcceleratorPartition:
		return "AcceleratorPartition"
	default:
		return "Unknown"
	}
}

// DeriveMode determines the allocation mode of a spec. Partition fields take
// precedence, then node count; anything else is an explicit compute quota.
// Conflicting combinations still derive a mode; the validator rejects them.
func DeriveMode(spec *ResourceSpec) AllocationMode {
	if spec.hasPartition() {
		return ModeAcceleratorPartition
	}
	if spec.NodeCount != nil {
		return ModeNodeCount
	}
	return ModeComputeQuota
}
