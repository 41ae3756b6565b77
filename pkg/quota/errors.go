package quota

import "fmt"

// UnknownInstanceTypeError reports an instance type absent from the registry.
// Resolution never falls back to a default profile.
type UnknownInstanceTypeError struct {
	InstanceType string
}

func (e *UnknownInstanceTypeError) Error() string {
	return fmt.Sprintf("unknown instance type %q", e.InstanceType)
}

// MalformedQuantityError reports a quantity string that failed to parse at
// the serialization boundary. It indicates a resolver defect, not bad input.
type MalformedQuantityError struct {
	Resource string
	Value    string
	Err      error
}

func (e *MalformedQuantityError) Error() string {
	return fmt.Sprintf("malformed quantity %q for resource %s: %v", e.Value, e.Resource, e.Err)
}

func (e *MalformedQuantityError) Unwrap() error {
	return e.Err
}
