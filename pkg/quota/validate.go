package quota

import (
	"fmt"
	"math"
	"strings"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
)

// Validation rule identifiers, reported in ValidationOutcome.Rule and used as
// metric labels.
const (
	RulePartition     = "partition"
	RuleInstanceType  = "instance-type"
	RuleUnknownType   = "unknown-instance-type"
	RuleNodeCount     = "node-count-conflict"
	RuleNoAccelerator = "no-accelerator"
	RuleLimitMismatch = "limit-mismatch"
	RuleNegativeValue = "negative-value"
)

func invalid(rule, format string, args ...any) ValidationOutcome {
	return ValidationOutcome{Valid: false, Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a spec for inconsistent or unsupported field combinations.
// Rules are evaluated in priority order; the first failing rule wins.
func (e *Engine) Validate(spec *ResourceSpec) ValidationOutcome {
	// 1. accelerator partition rules
	if spec.hasPartition() {
		if outcome := e.validatePartition(spec); !outcome.Valid {
			return outcome
		}
	}

	// 2. a compute quota needs an instance type to resolve against
	if spec.hasComputeQuota() && spec.InstanceType == "" {
		return invalid(RuleInstanceType, "a resource quota requires an instance type")
	}

	// 3. the instance type must be known to the capacity registry
	if spec.InstanceType != "" {
		if _, exists := e.registry.Lookup(spec.InstanceType); !exists {
			return invalid(RuleUnknownType, "unknown instance type %q", spec.InstanceType)
		}
	}

	// 4. node count and a compute quota are mutually exclusive
	if spec.hasComputeQuota() && spec.NodeCount != nil {
		return invalid(RuleNodeCount, "choose a node count or a resource quota, not both")
	}

	// 5 and 6. accelerator request/limit consistency
	if spec.InstanceType != "" && (spec.Accelerators != nil || spec.AcceleratorsLimit != nil) {
		profile, _ := e.registry.Lookup(spec.InstanceType)
		family, exists := ClassifyAccelerator(profile)
		if !exists {
			return invalid(RuleNoAccelerator, "instance type %q has no schedulable accelerators", spec.InstanceType)
		}
		if spec.Accelerators != nil && spec.AcceleratorsLimit != nil {
			if *spec.Accelerators != *spec.AcceleratorsLimit {
				return invalid(RuleLimitMismatch, "accelerators request (%d) and limit (%d) must be equal",
					*spec.Accelerators, *spec.AcceleratorsLimit)
			}
			if *spec.Accelerators > family.MaxCount {
				return invalid(RuleLimitMismatch, "accelerators (%d) exceed instance capacity (%d)",
					*spec.Accelerators, family.MaxCount)
			}
		}
	}

	// supplied amounts must be non-negative
	if outcome := validateNonNegative(spec); !outcome.Valid {
		return outcome
	}

	return ValidationOutcome{Valid: true}
}

// validatePartition applies the accelerator-partition rules: a recognized
// "mig" profile prefix, derived accelerator consumption within instance
// capacity, and no conflicting node count.
func (e *Engine) validatePartition(spec *ResourceSpec) ValidationOutcome {
	partitionType := spec.AcceleratorPartitionType
	if !strings.HasPrefix(partitionType, constants.MigProfilePrefix) {
		return invalid(RulePartition, "accelerator partition type must start with %q, got %q",
			constants.MigProfilePrefix, partitionType)
	}

	// derived whole-accelerator consumption must fit the instance; the check
	// runs only when both the instance and the profile geometry are known —
	// unknown combinations fail later, at resolution, via the provider
	if profile, exists := e.registry.Lookup(spec.InstanceType); exists {
		if family, hasFamily := ClassifyAccelerator(profile); hasFamily {
			if perAccelerator, err := e.partitions.PartitionsPerAccelerator(spec.InstanceType, partitionType); err == nil && perAccelerator > 0 {
				for _, count := range []*int{spec.AcceleratorPartitionCount, spec.AcceleratorPartitionLimit} {
					if count == nil {
						continue
					}
					derived := int(math.Ceil(float64(*count) / float64(perAccelerator)))
					if derived > family.MaxCount {
						return invalid(RulePartition,
							"%d %s partitions require %d accelerators, exceeding instance capacity (%d)",
							*count, partitionType, derived, family.MaxCount)
					}
				}
			}
		}
	}

	if spec.NodeCount != nil {
		return invalid(RulePartition, "choose a node count or an accelerator partition, not both")
	}

	return ValidationOutcome{Valid: true}
}

func validateNonNegative(spec *ResourceSpec) ValidationOutcome {
	checks := []struct {
		name  string
		value *float64
	}{
		{"vcpu", spec.VCPU},
		{"memoryInGiB", spec.MemoryInGiB},
		{"vcpuLimit", spec.VCPULimit},
		{"memoryInGiBLimit", spec.MemoryInGiBLimit},
	}
	for _, c := range checks {
		if c.value != nil && *c.value < 0 {
			return invalid(RuleNegativeValue, "%s must be non-negative, got %v", c.name, *c.value)
		}
	}
	counts := []struct {
		name  string
		value *int
	}{
		{"accelerators", spec.Accelerators},
		{"acceleratorsLimit", spec.AcceleratorsLimit},
		{"acceleratorPartitionCount", spec.AcceleratorPartitionCount},
		{"acceleratorPartitionLimit", spec.AcceleratorPartitionLimit},
		{"nodeCount", spec.NodeCount},
	}
	for _, c := range counts {
		if c.value != nil && *c.value < 0 {
			return invalid(RuleNegativeValue, "%s must be non-negative, got %d", c.name, *c.value)
		}
	}
	return ValidationOutcome{Valid: true}
}
