package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadInstanceProfileData reads instance capacity data from a JSON or YAML
// file. YAML is a superset of JSON, so a single decoder handles both.
func ReadInstanceProfileData(path string) (*InstanceProfileData, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance profile data %s: %w", path, err)
	}
	var d InstanceProfileData
	if err := yaml.Unmarshal(byteValue, &d); err != nil {
		return nil, fmt.Errorf("parsing instance profile data %s: %w", path, err)
	}
	return &d, nil
}

// ReadPartitionProfileData reads accelerator partition profile data from a
// JSON or YAML file.
func ReadPartitionProfileData(path string) (*PartitionProfileData, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading partition profile data %s: %w", path, err)
	}
	var d PartitionProfileData
	if err := yaml.Unmarshal(byteValue, &d); err != nil {
		return nil, fmt.Errorf("parsing partition profile data %s: %w", path, err)
	}
	return &d, nil
}
