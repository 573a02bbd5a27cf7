// Package drivers runs the classic algorithms against the structure models and
// records a trace event at every checkpoint through the run context.
//
// Every driver is synchronous and runs to completion. Array drivers always report
// the whole array as the snapshot; tree drivers re-flatten the whole tree at each
// checkpoint; stack and queue drivers report only the occupied slots.
package drivers

import (
	"fmt"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/primitives"
)

// Static complexity labels attached to each algorithm's events.
const (
	constant     = "O(1)"
	linear       = "O(n)"
	logarithmic  = "O(log n)"
	quadratic    = "O(n²)"
	linearithmic = "O(n log n)"
)

const (
	primary   = primitives.HighlightPrimary
	secondary = primitives.HighlightSecondary
	pivot     = primitives.HighlightPivot
	placed    = primitives.HighlightPlaced
)

// mark returns a width-sized highlight vector with (index, code) pairs applied in
// order. Indices outside the snapshot are ignored.
func mark(width int, pairs ...int) []int {
	hl := make([]int, width)
	for i := 0; i+1 < len(pairs); i += 2 {
		if idx := pairs[i]; idx >= 0 && idx < width {
			hl[idx] = pairs[i+1]
		}
	}
	return hl
}

// markRange sets hl[lo..hi] (inclusive) to code, clamped to the vector.
func markRange(hl []int, lo, hi, code int) {
	if lo < 0 {
		lo = 0
	}
	for i := lo; i <= hi && i < len(hl); i++ {
		hl[i] = code
	}
}

// LinearSearch scans arr left to right for target.
func LinearSearch(r *core.Run, arr []int, target int) (int, bool) {
	n := len(arr)
	for i, v := range arr {
		r.Emitf("LINEAR_SEARCH", arr, mark(n, i, primary), linear,
			"Checking element at index %d: %d", i, v)
		if v == target {
			r.Emitf("LINEAR_SEARCH_FOUND", arr, mark(n, i, secondary), linear,
				"Target %d found at index %d", target, i)
			return i, true
		}
	}
	r.Emitf("LINEAR_SEARCH_NOT_FOUND", arr, nil, linear, "Target %d not found", target)
	return -1, false
}

// BinarySearch halves the sorted arr until target is found or the interval is
// empty. Pointer slots 0, 1 and 2 carry low, high and mid.
func BinarySearch(r *core.Run, arr []int, target int) (int, bool) {
	n := len(arr)
	low, high := 0, n-1
	for low <= high {
		mid := low + (high-low)/2
		ptrs := primitives.PointersOf(low, high, mid)
		r.Emit("BINARY_SEARCH", arr, mark(n, mid, primary), ptrs,
			fmt.Sprintf("Checking middle element at index %d: %d", mid, arr[mid]), logarithmic)
		switch {
		case arr[mid] == target:
			r.Emit("BINARY_SEARCH_FOUND", arr, mark(n, mid, secondary), ptrs,
				fmt.Sprintf("Target %d found at index %d", target, mid), logarithmic)
			return mid, true
		case arr[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	r.Emitf("BINARY_SEARCH_NOT_FOUND", arr, nil, logarithmic, "Target %d not found", target)
	return -1, false
}
