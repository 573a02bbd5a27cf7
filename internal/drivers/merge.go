package drivers

import (
	"fmt"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/primitives"
)

// MergeSort sorts arr top-down. Merged values are written straight back into arr,
// so every snapshot is the full-length array in its true in-progress state.
// Pointer slots 0, 1 and 2 carry left, mid and right of the active merge.
func MergeSort(r *core.Run, arr []int) {
	mergeSort(r, arr, 0, len(arr)-1)
	r.Emitf("MERGE_COMPLETE", arr, nil, linearithmic, "Merge sort completed")
}

func halves(n, left, mid, right int) []int {
	hl := make([]int, n)
	markRange(hl, left, mid, primary)
	markRange(hl, mid+1, right, secondary)
	return hl
}

func mergeSort(r *core.Run, arr []int, left, right int) {
	if left >= right {
		return
	}
	n := len(arr)
	mid := left + (right-left)/2
	ptrs := primitives.PointersOf(left, mid, right)

	r.Emit("MERGE_DIVIDE", arr, halves(n, left, mid, right), ptrs,
		fmt.Sprintf("Dividing indices %d-%d into %d-%d and %d-%d", left, right, left, mid, mid+1, right), linearithmic)
	mergeSort(r, arr, left, mid)
	mergeSort(r, arr, mid+1, right)
	r.Emit("MERGE_READY", arr, halves(n, left, mid, right), ptrs,
		fmt.Sprintf("Halves %d-%d and %d-%d sorted, ready to merge", left, mid, mid+1, right), linearithmic)
	merge(r, arr, left, mid, right)
}

func merge(r *core.Run, arr []int, left, mid, right int) {
	n := len(arr)
	ptrs := primitives.PointersOf(left, mid, right)
	emit := func(action string, hl []int, format string, args ...any) {
		r.Emit(action, arr, hl, ptrs, fmt.Sprintf(format, args...), linearithmic)
	}

	lhs := append([]int(nil), arr[left:mid+1]...)
	rhs := append([]int(nil), arr[mid+1:right+1]...)
	i, j, k := 0, 0, left

	take := func(v int, side string) {
		arr[k] = v
		hl := make([]int, n)
		markRange(hl, left, k-1, placed)
		hl[k] = secondary
		emit("MERGE_TAKE", hl, "Took %d from the %s half into index %d", v, side, k)
		k++
	}

	for i < len(lhs) && j < len(rhs) {
		hl := make([]int, n)
		markRange(hl, left, k-1, placed)
		hl[k] = primary
		emit("MERGE_COMPARE", hl, "Comparing %d (left) with %d (right)", lhs[i], rhs[j])
		if lhs[i] <= rhs[j] {
			take(lhs[i], "left")
			i++
		} else {
			take(rhs[j], "right")
			j++
		}
	}
	for ; i < len(lhs); i++ {
		take(lhs[i], "left")
	}
	for ; j < len(rhs); j++ {
		take(rhs[j], "right")
	}

	hl := make([]int, n)
	markRange(hl, left, right, placed)
	emit("MERGE_SUBARRAY_DONE", hl, "Subarray %d-%d merged", left, right)
}
