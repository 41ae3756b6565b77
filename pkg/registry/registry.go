package registry

import (
	"sort"

	"github.com/ml-infra-lab/quota-allocator/pkg/config"
)

// InstanceProfile is the hardware capacity of one instance type. Profiles are
// values and never mutated after registry construction.
type InstanceProfile struct {
	InstanceType  string
	CPUCores      float64
	MemoryGiB     float64
	GPUCount      int
	TrainiumCount int
}

// Registry is an immutable lookup from instance type to capacity profile.
// Construct once at process start; all read methods are safe for concurrent
// use without locking.
type Registry struct {
	profiles map[string]InstanceProfile
}

// NewRegistry creates a registry holding the built-in instance capacity table.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]InstanceProfile, len(builtinProfiles))}
	for _, p := range builtinProfiles {
		r.profiles[p.InstanceType] = p
	}
	return r
}

// NewRegistryFromSpec creates a registry from externally supplied capacity
// data, bypassing the built-in table. Used to inject synthetic profiles in
// tests and to run against non-standard capacity data.
func NewRegistryFromSpec(data *config.InstanceProfileData) *Registry {
	r := &Registry{profiles: make(map[string]InstanceProfile, len(data.Profiles))}
	r.merge(data)
	return r
}

// WithOverrides returns a new registry with the built-in table extended, or
// shadowed, by the supplied capacity data. The receiver is not modified.
func (r *Registry) WithOverrides(data *config.InstanceProfileData) *Registry {
	merged := &Registry{profiles: make(map[string]InstanceProfile, len(r.profiles)+len(data.Profiles))}
	for k, v := range r.profiles {
		merged.profiles[k] = v
	}
	merged.merge(data)
	return merged
}

func (r *Registry) merge(data *config.InstanceProfileData) {
	for _, spec := range data.Profiles {
		r.profiles[spec.InstanceType] = InstanceProfile{
			InstanceType:  spec.InstanceType,
			CPUCores:      spec.CPUCores,
			MemoryGiB:     spec.MemoryGiB,
			GPUCount:      spec.GPUCount,
			TrainiumCount: spec.TrainiumCount,
		}
	}
}

// Lookup returns the capacity profile of an instance type.
func (r *Registry) Lookup(instanceType string) (InstanceProfile, bool) {
	p, exists := r.profiles[instanceType]
	return p, exists
}

// InstanceTypes returns all known instance type names in sorted order.
func (r *Registry) InstanceTypes() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered instance types.
func (r *Registry) Len() int {
	return len(r.profiles)
}
