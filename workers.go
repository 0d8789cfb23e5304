package md2xlsx

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one conversion worker.
	MinWorkers = 1

	// MaxWorkers caps parallel conversions; each worker holds a full
	// document and workbook in memory.
	MaxWorkers = 8
)

// ResolveWorkers determines the batch conversion worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
