package quota

import (
	"testing"

	"github.com/ml-infra-lab/quota-allocator/internal/constants"
	"github.com/ml-infra-lab/quota-allocator/pkg/registry"
)

func TestClassifyAccelerator(t *testing.T) {
	tests := []struct {
		name       string
		profile    registry.InstanceProfile
		wantFamily AcceleratorFamily
		wantExists bool
	}{
		{
			name:    "gpu instance",
			profile: registry.InstanceProfile{InstanceType: "ml.p4d.24xlarge", GPUCount: 8},
			wantFamily: AcceleratorFamily{
				ResourceName: constants.NvidiaGPUResource,
				MaxCount:     8,
			},
			wantExists: true,
		},
		{
			name:    "trainium instance",
			profile: registry.InstanceProfile{InstanceType: "ml.trn1.32xlarge", TrainiumCount: 16},
			wantFamily: AcceleratorFamily{
				ResourceName: constants.NeuronDeviceResource,
				MaxCount:     16,
			},
			wantExists: true,
		},
		{
			name:    "trainium wins over gpu",
			profile: registry.InstanceProfile{InstanceType: "synthetic", GPUCount: 4, TrainiumCount: 2},
			wantFamily: AcceleratorFamily{
				ResourceName: constants.NeuronDeviceResource,
				MaxCount:     2,
			},
			wantExists: true,
		},
		{
			name:    "cpu-only instance",
			profile: registry.InstanceProfile{InstanceType: "ml.m5.4xlarge"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			family, exists := ClassifyAccelerator(tt.profile)
			if exists != tt.wantExists {
				t.Fatalf("ClassifyAccelerator() exists = %v, want %v", exists, tt.wantExists)
			}
			if family != tt.wantFamily {
				t.Errorf("ClassifyAccelerator() = %+v, want %+v", family, tt.wantFamily)
			}
		})
	}
}
