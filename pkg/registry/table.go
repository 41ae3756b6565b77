package registry

// Built-in instance capacity table. CPU in cores, memory in GiB, accelerator
// counts in devices. An instance type exposes at most one accelerator family.
var builtinProfiles = []InstanceProfile{
	// general purpose
	{InstanceType: "ml.t3.medium", CPUCores: 2, MemoryGiB: 4},
	{InstanceType: "ml.t3.xlarge", CPUCores: 4, MemoryGiB: 16},
	{InstanceType: "ml.m5.xlarge", CPUCores: 4, MemoryGiB: 16},
	{InstanceType: "ml.m5.2xlarge", CPUCores: 8, MemoryGiB: 32},
	{InstanceType: "ml.m5.4xlarge", CPUCores: 16, MemoryGiB: 64},
	{InstanceType: "ml.m5.12xlarge", CPUCores: 48, MemoryGiB: 192},
	{InstanceType: "ml.m5.24xlarge", CPUCores: 96, MemoryGiB: 384},

	// compute optimized
	{InstanceType: "ml.c5.xlarge", CPUCores: 4, MemoryGiB: 8},
	{InstanceType: "ml.c5.2xlarge", CPUCores: 8, MemoryGiB: 16},
	{InstanceType: "ml.c5.4xlarge", CPUCores: 16, MemoryGiB: 32},
	{InstanceType: "ml.c5.12xlarge", CPUCores: 48, MemoryGiB: 96},
	{InstanceType: "ml.c5.24xlarge", CPUCores: 96, MemoryGiB: 192},

	// GPU instances
	{InstanceType: "ml.g4dn.xlarge", CPUCores: 4, MemoryGiB: 16, GPUCount: 1},
	{InstanceType: "ml.g4dn.12xlarge", CPUCores: 48, MemoryGiB: 192, GPUCount: 4},
	{InstanceType: "ml.g5.xlarge", CPUCores: 4, MemoryGiB: 16, GPUCount: 1},
	{InstanceType: "ml.g5.2xlarge", CPUCores: 8, MemoryGiB: 32, GPUCount: 1},
	{InstanceType: "ml.g5.8xlarge", CPUCores: 32, MemoryGiB: 128, GPUCount: 1},
	{InstanceType: "ml.g5.12xlarge", CPUCores: 48, MemoryGiB: 192, GPUCount: 4},
	{InstanceType: "ml.g5.48xlarge", CPUCores: 192, MemoryGiB: 768, GPUCount: 8},
	{InstanceType: "ml.g6.xlarge", CPUCores: 4, MemoryGiB: 16, GPUCount: 1},
	{InstanceType: "ml.g6.12xlarge", CPUCores: 48, MemoryGiB: 192, GPUCount: 4},
	{InstanceType: "ml.g6.48xlarge", CPUCores: 192, MemoryGiB: 768, GPUCount: 8},
	{InstanceType: "ml.p3.2xlarge", CPUCores: 8, MemoryGiB: 61, GPUCount: 1},
	{InstanceType: "ml.p3.8xlarge", CPUCores: 32, MemoryGiB: 244, GPUCount: 4},
	{InstanceType: "ml.p3.16xlarge", CPUCores: 64, MemoryGiB: 488, GPUCount: 8},
	{InstanceType: "ml.p4d.24xlarge", CPUCores: 96, MemoryGiB: 1152, GPUCount: 8},
	{InstanceType: "ml.p4de.24xlarge", CPUCores: 96, MemoryGiB: 1152, GPUCount: 8},
	{InstanceType: "ml.p5.48xlarge", CPUCores: 192, MemoryGiB: 2048, GPUCount: 8},
	{InstanceType: "ml.p5e.48xlarge", CPUCores: 192, MemoryGiB: 2048, GPUCount: 8},

	// Trainium instances
	{InstanceType: "ml.trn1.2xlarge", CPUCores: 8, MemoryGiB: 32, TrainiumCount: 1},
	{InstanceType: "ml.trn1.32xlarge", CPUCores: 128, MemoryGiB: 512, TrainiumCount: 16},
	{InstanceType: "ml.trn1n.32xlarge", CPUCores: 128, MemoryGiB: 512, TrainiumCount: 16},
	{InstanceType: "ml.trn2.48xlarge", CPUCores: 192, MemoryGiB: 2048, TrainiumCount: 16},
}
