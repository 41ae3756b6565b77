package quota

import (
	"fmt"

	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

// Engine resolves and validates resource specs against an immutable instance
// capacity registry and a partition defaults provider.
type Engine struct {
	registry   *registry.Registry
	partitions PartitionDefaultsProvider
}

// NewEngine creates an engine. The registry must be fully constructed before
// the first call; the engine never mutates it.
func NewEngine(reg *registry.Registry, partitions PartitionDefaultsProvider) (*Engine, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if partitions == nil {
		return nil, fmt.Errorf("partition defaults provider cannot be nil")
	}
	return &Engine{
		registry:   reg,
		partitions: partitions,
	}, nil
}

// Registry returns the capacity registry backing this engine.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// profile looks up an instance type, failing with UnknownInstanceTypeError.
// There is no fallback profile.
func (e *Engine) profile(instanceType string) (registry.InstanceProfile, error) {
	p, exists := e.registry.Lookup(instanceType)
	if !exists {
		return registry.InstanceProfile{}, &UnknownInstanceTypeError{InstanceType: instanceType}
	}
	return p, nil
}
