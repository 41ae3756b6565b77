package config

// Data describing the hardware capacity of instance types, loadable from a
// JSON or YAML data file.
type InstanceProfileData struct {
	Profiles []InstanceProfileSpec `json:"instanceProfiles" yaml:"instanceProfiles"`
}

// Specification of the capacity of a single instance type
type InstanceProfileSpec struct {
	InstanceType  string  `json:"instanceType" yaml:"instanceType"`   // instance type name (e.g. ml.p4d.24xlarge)
	CPUCores      float64 `json:"cpuCores" yaml:"cpuCores"`           // number of vCPU cores
	MemoryGiB     float64 `json:"memoryGiB" yaml:"memoryGiB"`         // memory capacity (GiB)
	GPUCount      int     `json:"gpuCount" yaml:"gpuCount"`           // number of GPU devices
	TrainiumCount int     `json:"trainiumCount" yaml:"trainiumCount"` // number of Trainium devices
}

// Data describing accelerator partition (MIG) profiles per instance type,
// loadable from a JSON or YAML data file.
type PartitionProfileData struct {
	Profiles []PartitionProfileSpec `json:"partitionProfiles" yaml:"partitionProfiles"`
}

// Specification of a single MIG profile on an instance type
type PartitionProfileSpec struct {
	InstanceType   string  `json:"instanceType" yaml:"instanceType"`     // instance type name
	PartitionType  string  `json:"partitionType" yaml:"partitionType"`   // MIG profile name (e.g. mig-1g.5gb)
	PerAccelerator int     `json:"perAccelerator" yaml:"perAccelerator"` // partitions obtainable from one GPU
	CPUPerUnit     float64 `json:"cpuPerUnit" yaml:"cpuPerUnit"`         // baseline vCPU per partition unit
	MemoryPerUnit  float64 `json:"memoryPerUnit" yaml:"memoryPerUnit"`   // baseline memory (GiB) per partition unit
}
