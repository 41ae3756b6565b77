package partition

import "github.com/ml-infra-lab/quota-allocator/pkg/config"

// Built-in MIG profile table. PerAccelerator is the number of partitions one
// GPU yields for the profile; CPU/memory per unit are the baseline host
// resources granted per partition when the caller specifies neither.
var builtinPartitionProfiles = []config.PartitionProfileSpec{
	// ml.p4d.24xlarge: 8x A100 40GB, 96 vCPU, 1152 GiB
	{InstanceType: "ml.p4d.24xlarge", PartitionType: "mig-1g.5gb", PerAccelerator: 7, CPUPerUnit: 1.5, MemoryPerUnit: 18},
	{InstanceType: "ml.p4d.24xlarge", PartitionType: "mig-2g.10gb", PerAccelerator: 3, CPUPerUnit: 3.5, MemoryPerUnit: 42},
	{InstanceType: "ml.p4d.24xlarge", PartitionType: "mig-3g.20gb", PerAccelerator: 2, CPUPerUnit: 5.5, MemoryPerUnit: 66},
	{InstanceType: "ml.p4d.24xlarge", PartitionType: "mig-4g.20gb", PerAccelerator: 1, CPUPerUnit: 11, MemoryPerUnit: 132},
	{InstanceType: "ml.p4d.24xlarge", PartitionType: "mig-7g.40gb", PerAccelerator: 1, CPUPerUnit: 11.5, MemoryPerUnit: 140},

	// ml.p4de.24xlarge: 8x A100 80GB, 96 vCPU, 1152 GiB
	{InstanceType: "ml.p4de.24xlarge", PartitionType: "mig-1g.10gb", PerAccelerator: 7, CPUPerUnit: 1.5, MemoryPerUnit: 18},
	{InstanceType: "ml.p4de.24xlarge", PartitionType: "mig-2g.20gb", PerAccelerator: 3, CPUPerUnit: 3.5, MemoryPerUnit: 42},
	{InstanceType: "ml.p4de.24xlarge", PartitionType: "mig-3g.40gb", PerAccelerator: 2, CPUPerUnit: 5.5, MemoryPerUnit: 66},
	{InstanceType: "ml.p4de.24xlarge", PartitionType: "mig-4g.40gb", PerAccelerator: 1, CPUPerUnit: 11, MemoryPerUnit: 132},
	{InstanceType: "ml.p4de.24xlarge", PartitionType: "mig-7g.80gb", PerAccelerator: 1, CPUPerUnit: 11.5, MemoryPerUnit: 140},

	// ml.p5.48xlarge: 8x H100 80GB, 192 vCPU, 2048 GiB
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-1g.10gb", PerAccelerator: 7, CPUPerUnit: 3, MemoryPerUnit: 34},
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-1g.20gb", PerAccelerator: 4, CPUPerUnit: 5.5, MemoryPerUnit: 60},
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-2g.20gb", PerAccelerator: 3, CPUPerUnit: 7.5, MemoryPerUnit: 80},
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-3g.40gb", PerAccelerator: 2, CPUPerUnit: 11.5, MemoryPerUnit: 122},
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-4g.40gb", PerAccelerator: 1, CPUPerUnit: 23, MemoryPerUnit: 244},
	{InstanceType: "ml.p5.48xlarge", PartitionType: "mig-7g.80gb", PerAccelerator: 1, CPUPerUnit: 23.5, MemoryPerUnit: 250},
}
