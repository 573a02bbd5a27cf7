package drivers

import "github.com/comalice/algotrace/internal/core"

// BubbleSort sorts arr in place by repeatedly swapping adjacent inversions.
func BubbleSort(r *core.Run, arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.Emitf("BUBBLE_COMPARE", arr, mark(n, j, primary, j+1, primary), quadratic,
				"Comparing arr[%d]=%d and arr[%d]=%d", j, arr[j], j+1, arr[j+1])
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				r.Emitf("BUBBLE_SWAP", arr, mark(n, j, secondary, j+1, secondary), quadratic,
					"Swapped arr[%d] and arr[%d]", j, j+1)
			}
		}
	}
	r.Emitf("BUBBLE_COMPLETE", arr, nil, quadratic, "Bubble sort completed")
}

// SelectionSort sorts arr in place, moving the minimum of the unsorted suffix to
// the pass anchor.
func SelectionSort(r *core.Run, arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		r.Emitf("SELECTION_START", arr, mark(n, i, primary), quadratic,
			"Starting pass %d at index %d", i+1, i)
		for j := i + 1; j < n; j++ {
			r.Emitf("SELECTION_COMPARE", arr, mark(n, i, primary, minIdx, secondary, j, pivot), quadratic,
				"Comparing arr[%d]=%d with current minimum arr[%d]=%d", j, arr[j], minIdx, arr[minIdx])
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
			r.Emitf("SELECTION_SWAP", arr, mark(n, i, secondary, minIdx, secondary), quadratic,
				"Swapped minimum %d into index %d", arr[i], i)
		}
	}
	r.Emitf("SELECTION_COMPLETE", arr, nil, quadratic, "Selection sort completed")
}

// InsertionSort sorts arr in place, shifting larger elements right to make room
// for each key.
func InsertionSort(r *core.Run, arr []int) {
	n := len(arr)
	for i := 1; i < n; i++ {
		key := arr[i]
		j := i - 1
		r.Emitf("INSERTION_START", arr, mark(n, i, primary), quadratic, "Inserting element %d", key)
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			r.Emitf("INSERTION_SHIFT", arr, mark(n, j, primary, j+1, secondary), quadratic,
				"Shifted %d right to index %d", arr[j+1], j+1)
			j--
		}
		arr[j+1] = key
		r.Emitf("INSERTION_PLACE", arr, mark(n, j+1, placed), quadratic,
			"Placed %d at index %d", key, j+1)
	}
	r.Emitf("INSERTION_COMPLETE", arr, nil, quadratic, "Insertion sort completed")
}
