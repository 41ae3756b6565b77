package quota

import "math"

// System reservation curves: the CPU and memory withheld from workload
// scheduling on a node to leave headroom for system and orchestration
// processes. Both curves are continuous, piecewise-linear, and monotonically
// non-decreasing in capacity.

// memory reservation: static overhead plus tiered billing of capacity
const memoryStaticOverheadGiB = 0.5

var memoryTiers = []struct {
	sizeGiB float64
	rate    float64
}{
	{4, 0.30},
	{4, 0.25},
	{8, 0.20},
	{112, 0.17},
}

// rate applied to memory beyond the tiered 128 GiB
const memoryTailRate = 0.07

// cpu reservation: static overhead plus tiered per-core rates
const cpuStaticOverheadCores = 0.1

var cpuTiers = []struct {
	cores float64
	rate  float64
}{
	{1, 0.30},
	{1, 0.15},
	{2, 0.10},
}

// rate applied to cores beyond the fourth
const cpuTailRate = 0.06

// MemoryReservationGiB returns the memory withheld from scheduling on a node
// with the given memory capacity.
func MemoryReservationGiB(capacityGiB float64) float64 {
	reserved := memoryStaticOverheadGiB
	remaining := capacityGiB
	for _, tier := range memoryTiers {
		if remaining <= 0 {
			return reserved
		}
		billed := math.Min(remaining, tier.sizeGiB)
		reserved += billed * tier.rate
		remaining -= billed
	}
	if remaining > 0 {
		reserved += remaining * memoryTailRate
	}
	return reserved
}

// CPUReservationCores returns the CPU withheld from scheduling on a node with
// the given core count.
func CPUReservationCores(coreCount float64) float64 {
	reserved := cpuStaticOverheadCores
	remaining := coreCount
	for _, tier := range cpuTiers {
		if remaining <= 0 {
			return reserved
		}
		billed := math.Min(remaining, tier.cores)
		reserved += billed * tier.rate
		remaining -= billed
	}
	if remaining > 0 {
		reserved += remaining * cpuTailRate
	}
	return reserved
}

// MaxAllocatableCPU returns the CPU available to workloads on a node with the
// given core count.
func MaxAllocatableCPU(coreCount float64) float64 {
	return coreCount - CPUReservationCores(coreCount)
}

// MaxAllocatableMemoryGiB returns the memory available to workloads on a node
// with the given memory capacity.
func MaxAllocatableMemoryGiB(capacityGiB float64) float64 {
	return capacityGiB - MemoryReservationGiB(capacityGiB)
}
