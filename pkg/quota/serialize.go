package quota

import (
	"strconv"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Quantity strings follow Kubernetes conventions: CPU as a bare decimal core
// count, memory as "<N>Gi", accelerators as an integer string. Values are
// kept numeric through the pipeline and formatted only here.

func formatCores(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatGiB(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "Gi"
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

func toResourceList(in map[corev1.ResourceName]string) (corev1.ResourceList, error) {
	out := make(corev1.ResourceList, len(in))
	for name, value := range in {
		q, err := resource.ParseQuantity(value)
		if err != nil {
			return nil, &MalformedQuantityError{Resource: string(name), Value: value, Err: err}
		}
		out[name] = q
	}
	return out, nil
}

// ToResourceList converts the request map to a corev1.ResourceList for use in
// pod and container specs. A parse failure indicates a resolver defect and is
// returned as a MalformedQuantityError.
func (r ResolvedResourceRequest) ToResourceList() (corev1.ResourceList, error) {
	return toResourceList(r)
}

// ToResourceList converts the limit map to a corev1.ResourceList.
func (l ResolvedResourceLimit) ToResourceList() (corev1.ResourceList, error) {
	return toResourceList(l)
}
