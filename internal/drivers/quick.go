package drivers

import (
	"fmt"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/primitives"
)

// QuickSort sorts arr in place with Lomuto partitioning around the last element.
// Every event carries the whole array; the active sub-range is shown through
// highlights and pointer slots 0 and 1 (low, high).
func QuickSort(r *core.Run, arr []int) {
	quickSort(r, arr, 0, len(arr)-1)
	r.Emitf("QUICK_COMPLETE", arr, nil, linearithmic, "Quick sort completed")
}

func quickSort(r *core.Run, arr []int, low, high int) {
	if low < high {
		p := partition(r, arr, low, high)
		quickSort(r, arr, low, p-1)
		quickSort(r, arr, p+1, high)
	}
}

func partition(r *core.Run, arr []int, low, high int) int {
	n := len(arr)
	ptrs := primitives.PointersOf(low, high)
	emit := func(action string, hl []int, format string, args ...any) {
		r.Emit(action, arr, hl, ptrs, fmt.Sprintf(format, args...), linearithmic)
	}

	pv := arr[high]
	hl := make([]int, n)
	markRange(hl, low, high-1, primary)
	hl[high] = pivot
	emit("QUICK_PIVOT_SELECT", hl, "Partitioning indices %d-%d around pivot %d", low, high, pv)

	i := low - 1
	for j := low; j < high; j++ {
		hl := mark(n, high, pivot, j, primary)
		if i >= low {
			hl[i] = secondary
		}
		emit("QUICK_COMPARE", hl, "Comparing %d with pivot %d", arr[j], pv)
		if arr[j] < pv {
			i++
			// i == j would exchange an element with itself.
			if i != j {
				emit("QUICK_SWAP_BEFORE", mark(n, high, pivot, i, secondary, j, secondary),
					"Swapping arr[%d]=%d and arr[%d]=%d", i, arr[i], j, arr[j])
				arr[i], arr[j] = arr[j], arr[i]
				emit("QUICK_SWAP", mark(n, high, pivot, i, secondary, j, secondary),
					"Swapped %d and %d", arr[i], arr[j])
			}
		}
	}

	p := i + 1
	if p != high {
		arr[p], arr[high] = arr[high], arr[p]
	}
	emit("QUICK_PIVOT_PLACE", mark(n, p, placed), "Pivot %d placed at index %d", pv, p)
	return p
}
