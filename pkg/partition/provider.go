// Package partition supplies baseline CPU/memory defaults and geometry for
// fractional-accelerator (MIG) allocations, keyed by instance type and
// partition profile.
package partition

import (
	"fmt"

	"github.com/ml-infra-lab/quota-allocator/pkg/config"
)

// Profile describes one MIG profile on one instance type: how many partitions
// a single GPU yields and the baseline CPU/memory per partition unit.
type Profile struct {
	PerAccelerator int
	CPUPerUnit     float64
	MemoryPerUnit  float64
}

// Provider is an immutable lookup of partition profiles. Construct once; all
// methods are safe for concurrent use.
type Provider struct {
	// profiles[instanceType][partitionType]
	profiles map[string]map[string]Profile
}

// NewProvider creates a provider holding the built-in MIG profile table.
func NewProvider() *Provider {
	p := &Provider{profiles: make(map[string]map[string]Profile)}
	for _, spec := range builtinPartitionProfiles {
		p.add(spec)
	}
	return p
}

// NewProviderFromSpec creates a provider from externally supplied profile
// data, bypassing the built-in table.
func NewProviderFromSpec(data *config.PartitionProfileData) *Provider {
	p := &Provider{profiles: make(map[string]map[string]Profile)}
	for _, spec := range data.Profiles {
		p.add(spec)
	}
	return p
}

func (p *Provider) add(spec config.PartitionProfileSpec) {
	byType, exists := p.profiles[spec.InstanceType]
	if !exists {
		byType = make(map[string]Profile)
		p.profiles[spec.InstanceType] = byType
	}
	byType[spec.PartitionType] = Profile{
		PerAccelerator: spec.PerAccelerator,
		CPUPerUnit:     spec.CPUPerUnit,
		MemoryPerUnit:  spec.MemoryPerUnit,
	}
}

func (p *Provider) lookup(instanceType, partitionType string) (Profile, error) {
	byType, exists := p.profiles[instanceType]
	if !exists {
		return Profile{}, fmt.Errorf("no partition profiles for instance type %q", instanceType)
	}
	profile, exists := byType[partitionType]
	if !exists {
		return Profile{}, fmt.Errorf("partition type %q not supported on instance type %q", partitionType, instanceType)
	}
	return profile, nil
}

// Defaults returns the baseline (cpu, memory GiB) for an allocation of
// partitionCount units. Unresolvable combinations are errors, never zeros.
func (p *Provider) Defaults(instanceType, partitionType string, partitionCount int) (float64, float64, error) {
	profile, err := p.lookup(instanceType, partitionType)
	if err != nil {
		return 0, 0, err
	}
	n := float64(partitionCount)
	return profile.CPUPerUnit * n, profile.MemoryPerUnit * n, nil
}

// PartitionsPerAccelerator returns how many partitions of the given type one
// physical accelerator yields on the instance type.
func (p *Provider) PartitionsPerAccelerator(instanceType, partitionType string) (int, error) {
	profile, err := p.lookup(instanceType, partitionType)
	if err != nil {
		return 0, err
	}
	return profile.PerAccelerator, nil
}

// PartitionTypes returns the profile names supported on an instance type.
func (p *Provider) PartitionTypes(instanceType string) []string {
	byType := p.profiles[instanceType]
	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	return names
}
