package quota

import (
	"strings"
	"testing"

	"k8s.io/utils/ptr"
)

func TestValidate(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name       string
		spec       ResourceSpec
		wantValid  bool
		wantRule   string
		wantReason string
	}{
		{
			name:      "plain compute quota",
			spec:      ResourceSpec{InstanceType: "ml.m5.4xlarge", VCPU: ptr.To(4.0)},
			wantValid: true,
		},
		{
			name:      "whole nodes",
			spec:      ResourceSpec{InstanceType: "ml.p4d.24xlarge", NodeCount: ptr.To(2)},
			wantValid: true,
		},
		{
			name: "partition type without the mig prefix",
			spec: ResourceSpec{
				InstanceType:              "ml.p4d.24xlarge",
				AcceleratorPartitionType:  "half-gpu",
				AcceleratorPartitionCount: ptr.To(1),
			},
			wantRule: RulePartition,
		},
		{
			name: "partition count within derived capacity",
			spec: ResourceSpec{
				InstanceType:              "ml.p4d.24xlarge",
				AcceleratorPartitionType:  "mig-1g.5gb",
				AcceleratorPartitionCount: ptr.To(56),
			},
			wantValid: true,
		},
		{
			name: "partition count exceeding derived capacity",
			spec: ResourceSpec{
				InstanceType:              "ml.p4d.24xlarge",
				AcceleratorPartitionType:  "mig-7g.40gb",
				AcceleratorPartitionCount: ptr.To(9),
			},
			wantRule: RulePartition,
		},
		{
			name: "partition limit exceeding derived capacity",
			spec: ResourceSpec{
				InstanceType:              "ml.p4d.24xlarge",
				AcceleratorPartitionType:  "mig-3g.20gb",
				AcceleratorPartitionLimit: ptr.To(17),
			},
			wantRule: RulePartition,
		},
		{
			name: "partition conflicts with node count",
			spec: ResourceSpec{
				InstanceType:              "ml.p4d.24xlarge",
				AcceleratorPartitionType:  "mig-1g.5gb",
				AcceleratorPartitionCount: ptr.To(1),
				NodeCount:                 ptr.To(1),
			},
			wantRule: RulePartition,
		},
		{
			name:       "compute quota without an instance type",
			spec:       ResourceSpec{VCPU: ptr.To(4.0)},
			wantRule:   RuleInstanceType,
			wantReason: "instance type",
		},
		{
			name:     "unknown instance type",
			spec:     ResourceSpec{InstanceType: "ml.nosuch.2xlarge", VCPU: ptr.To(4.0)},
			wantRule: RuleUnknownType,
		},
		{
			name:     "node count conflicts with a compute quota",
			spec:     ResourceSpec{InstanceType: "ml.m5.4xlarge", VCPU: ptr.To(4.0), NodeCount: ptr.To(2)},
			wantRule: RuleNodeCount,
		},
		{
			name:     "accelerators on a cpu-only instance",
			spec:     ResourceSpec{InstanceType: "ml.m5.4xlarge", Accelerators: ptr.To(1)},
			wantRule: RuleNoAccelerator,
		},
		{
			name: "accelerator request and limit differ",
			spec: ResourceSpec{
				InstanceType:      "ml.p4d.24xlarge",
				Accelerators:      ptr.To(2),
				AcceleratorsLimit: ptr.To(4),
			},
			wantRule: RuleLimitMismatch,
		},
		{
			name: "accelerator request and limit exceed capacity",
			spec: ResourceSpec{
				InstanceType:      "ml.p4d.24xlarge",
				Accelerators:      ptr.To(9),
				AcceleratorsLimit: ptr.To(9),
			},
			wantRule: RuleLimitMismatch,
		},
		{
			name: "matching accelerator request and limit",
			spec: ResourceSpec{
				InstanceType:      "ml.trn1.32xlarge",
				Accelerators:      ptr.To(8),
				AcceleratorsLimit: ptr.To(8),
			},
			wantValid: true,
		},
		{
			name:     "negative vcpu",
			spec:     ResourceSpec{InstanceType: "ml.m5.4xlarge", VCPU: ptr.To(-1.0)},
			wantRule: RuleNegativeValue,
		},
		{
			name:     "negative node count",
			spec:     ResourceSpec{InstanceType: "ml.m5.4xlarge", NodeCount: ptr.To(-2)},
			wantRule: RuleNegativeValue,
		},
		{
			name:      "empty spec",
			spec:      ResourceSpec{},
			wantValid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := engine.Validate(&tt.spec)
			if outcome.Valid != tt.wantValid {
				t.Fatalf("Validate() valid = %v, want %v (reason %q)", outcome.Valid, tt.wantValid, outcome.Reason)
			}
			if !tt.wantValid {
				if outcome.Rule != tt.wantRule {
					t.Errorf("Validate() rule = %q, want %q", outcome.Rule, tt.wantRule)
				}
				if outcome.Reason == "" {
					t.Error("Validate() rejected without a reason")
				}
				if tt.wantReason != "" && !strings.Contains(outcome.Reason, tt.wantReason) {
					t.Errorf("Validate() reason %q does not mention %q", outcome.Reason, tt.wantReason)
				}
			}
		})
	}
}

// The first failing rule wins: an unknown instance type is reported even when
// the spec also combines a node count with a compute quota.
func TestValidateRulePrecedence(t *testing.T) {
	engine := newTestEngine(t)

	spec := ResourceSpec{
		InstanceType: "ml.nosuch.2xlarge",
		VCPU:         ptr.To(4.0),
		NodeCount:    ptr.To(2),
	}
	outcome := engine.Validate(&spec)
	if outcome.Valid {
		t.Fatal("Validate() accepted a conflicting spec with an unknown instance type")
	}
	if outcome.Rule != RuleUnknownType {
		t.Errorf("Validate() rule = %q, want %q", outcome.Rule, RuleUnknownType)
	}
}
