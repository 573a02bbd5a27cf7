package drivers

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/internal/structures"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrUnknownOperation is returned by Lookup for an unregistered operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidInput is returned when an operation's arguments are out of bounds.
	ErrInvalidInput = errors.New("invalid input")
)

// Demo seeds used when an operation that needs an existing structure is run
// without values.
var (
	demoList  = []int{10, 20, 30, 40}
	demoStack = []int{10, 20, 30}
	demoQueue = []int{10, 20, 30}
	demoTree  = []int{50, 30, 70, 20, 40, 60, 80}
)

// Input carries the already-parsed arguments of an operation.
type Input struct {
	Values []int
	Target int
	// Count is the number of removals for pop/dequeue; non-positive means one.
	Count int
}

func (in Input) count() int {
	if in.Count <= 0 {
		return 1
	}
	return in.Count
}

func (in Input) valuesOr(seed []int) []int {
	if len(in.Values) > 0 {
		return in.Values
	}
	return seed
}

// Operation is one runnable (structure, operation) pair.
type Operation struct {
	Structure primitives.StructureType
	Name      string
	Summary   string
	// UsesTarget reports whether Input.Target is consulted.
	UsesTarget bool
	run        func(r *core.Run, in Input) error
}

// Config returns the run-configuration descriptor of the operation.
func (o Operation) Config() primitives.RunConfig {
	return primitives.RunConfig{StructureType: o.Structure, Operation: o.Name}
}

// Run executes the operation, recording its trace into r.
func (o Operation) Run(r *core.Run, in Input) error {
	r.Log().WithFields(log.Fields{
		"structure": o.Structure,
		"operation": o.Name,
	}).Debug("running operation")
	return o.run(r, in)
}

var registry = []Operation{
	{Structure: primitives.Array, Name: "linear_search", Summary: "Linear search", UsesTarget: true,
		run: arrayOp(func(r *core.Run, arr []int, in Input) { LinearSearch(r, arr, in.Target) })},
	{Structure: primitives.Array, Name: "binary_search", Summary: "Binary search (array is sorted first)", UsesTarget: true,
		run: arrayOp(func(r *core.Run, arr []int, in Input) {
			slices.Sort(arr)
			r.Log().WithField("array", arr).Debug("array sorted for binary search")
			BinarySearch(r, arr, in.Target)
		})},
	{Structure: primitives.Array, Name: "bubble_sort", Summary: "Bubble sort",
		run: arrayOp(func(r *core.Run, arr []int, _ Input) { BubbleSort(r, arr) })},
	{Structure: primitives.Array, Name: "selection_sort", Summary: "Selection sort",
		run: arrayOp(func(r *core.Run, arr []int, _ Input) { SelectionSort(r, arr) })},
	{Structure: primitives.Array, Name: "insertion_sort", Summary: "Insertion sort",
		run: arrayOp(func(r *core.Run, arr []int, _ Input) { InsertionSort(r, arr) })},
	{Structure: primitives.Array, Name: "quick_sort", Summary: "Quick sort (last element pivot)",
		run: arrayOp(func(r *core.Run, arr []int, _ Input) { QuickSort(r, arr) })},
	{Structure: primitives.Array, Name: "merge_sort", Summary: "Merge sort",
		run: arrayOp(func(r *core.Run, arr []int, _ Input) { MergeSort(r, arr) })},

	{Structure: primitives.LinkedList, Name: "insert_beginning", Summary: "Insert each value at the head",
		run: listInsert(ListInsertFront)},
	{Structure: primitives.LinkedList, Name: "insert_end", Summary: "Insert each value at the tail",
		run: listInsert(ListInsertBack)},
	{Structure: primitives.LinkedList, Name: "insert_sequential", Summary: "Build a list element by element",
		run: listInsert(ListInsertSequential)},
	{Structure: primitives.LinkedList, Name: "insert_ordered", Summary: "Insert keeping ascending order",
		run: listInsert(ListInsertOrdered)},
	{Structure: primitives.LinkedList, Name: "search", Summary: "Search a list (demo list 10,20,30,40 by default)", UsesTarget: true,
		run: func(r *core.Run, in Input) error {
			vals := in.valuesOr(demoList)
			if err := checkSize(r, "list", vals); err != nil {
				return err
			}
			l := structures.NewList()
			for i := len(vals) - 1; i >= 0; i-- {
				ListInsertFront(r, l, vals[i])
			}
			ListSearch(r, l, in.Target)
			return nil
		}},
	{Structure: primitives.LinkedList, Name: "multiple_operations", Summary: "Mixed inserts followed by a search",
		run: func(r *core.Run, _ Input) error {
			l := structures.NewList()
			ListInsertFront(r, l, 10)
			ListInsertBack(r, l, 20)
			ListInsertSequential(r, l, 15)
			ListInsertFront(r, l, 5)
			ListInsertBack(r, l, 30)
			ListSearch(r, l, 20)
			return nil
		}},

	{Structure: primitives.Stack, Name: "push", Summary: "Push each value",
		run: func(r *core.Run, in Input) error {
			if len(in.Values) == 0 {
				return errors.Mark(errors.New("push needs at least one value"), ErrInvalidInput)
			}
			s := structures.NewStack(r.StackCapacity())
			for _, v := range in.Values {
				StackPush(r, s, v)
			}
			return nil
		}},
	{Structure: primitives.Stack, Name: "pop", Summary: "Push the values (10,20,30 by default), then pop count times",
		run: func(r *core.Run, in Input) error {
			s := structures.NewStack(r.StackCapacity())
			for _, v := range in.valuesOr(demoStack) {
				StackPush(r, s, v)
			}
			for i := 0; i < in.count() && s.Len() > 0; i++ {
				StackPop(r, s)
			}
			return nil
		}},
	{Structure: primitives.Stack, Name: "demo", Summary: "Interleaved pushes and pops",
		run: func(r *core.Run, _ Input) error {
			s := structures.NewStack(r.StackCapacity())
			StackPush(r, s, 5)
			StackPush(r, s, 10)
			StackPush(r, s, 15)
			StackPop(r, s)
			StackPush(r, s, 20)
			StackPop(r, s)
			StackPop(r, s)
			return nil
		}},

	{Structure: primitives.Queue, Name: "enqueue", Summary: "Enqueue each value",
		run: func(r *core.Run, in Input) error {
			if len(in.Values) == 0 {
				return errors.Mark(errors.New("enqueue needs at least one value"), ErrInvalidInput)
			}
			q := structures.NewQueue(r.QueueCapacity())
			for _, v := range in.Values {
				QueueEnqueue(r, q, v)
			}
			return nil
		}},
	{Structure: primitives.Queue, Name: "dequeue", Summary: "Enqueue the values (10,20,30 by default), then dequeue count times",
		run: func(r *core.Run, in Input) error {
			q := structures.NewQueue(r.QueueCapacity())
			for _, v := range in.valuesOr(demoQueue) {
				QueueEnqueue(r, q, v)
			}
			for i := 0; i < in.count() && !q.Empty(); i++ {
				QueueDequeue(r, q)
			}
			return nil
		}},
	{Structure: primitives.Queue, Name: "demo", Summary: "Interleaved enqueues and dequeues",
		run: func(r *core.Run, _ Input) error {
			q := structures.NewQueue(r.QueueCapacity())
			QueueEnqueue(r, q, 5)
			QueueEnqueue(r, q, 10)
			QueueEnqueue(r, q, 15)
			QueueDequeue(r, q)
			QueueEnqueue(r, q, 20)
			QueueDequeue(r, q)
			QueueEnqueue(r, q, 25)
			return nil
		}},

	{Structure: primitives.BinarySearchTree, Name: "insert", Summary: "Insert each value",
		run: func(r *core.Run, in Input) error {
			if err := checkSize(r, "tree", in.Values); err != nil {
				return err
			}
			seedTree(r, in.Values)
			return nil
		}},
	{Structure: primitives.BinarySearchTree, Name: "search", Summary: "Search a tree (demo tree by default)", UsesTarget: true,
		run: treeOp(func(r *core.Run, t *structures.Tree, in Input) { BSTSearch(r, t, in.Target) })},
	{Structure: primitives.BinarySearchTree, Name: "delete", Summary: "Delete from a tree (demo tree by default)", UsesTarget: true,
		run: treeOp(func(r *core.Run, t *structures.Tree, in Input) { BSTDelete(r, t, in.Target) })},
	{Structure: primitives.BinarySearchTree, Name: "traversal", Summary: "Inorder traversal (demo tree by default)",
		run: treeOp(func(r *core.Run, t *structures.Tree, _ Input) { BSTInorder(r, t) })},
	{Structure: primitives.BinarySearchTree, Name: "complete_demo", Summary: "Insert, search hit and miss, delete",
		run: func(r *core.Run, _ Input) error {
			t := seedTree(r, demoTree)
			BSTSearch(r, t, 40)
			BSTSearch(r, t, 100)
			BSTDelete(r, t, 30)
			return nil
		}},
}

// checkSize bounds caller-supplied values by MaxArraySize. Every checkpoint
// snapshots the whole structure, so the bound also caps the cost of a trace.
func checkSize(r *core.Run, what string, values []int) error {
	if n := len(values); n < 1 || n > r.MaxArraySize() {
		return errors.Mark(
			errors.Newf("%s size %d out of range [1, %d]", what, n, r.MaxArraySize()),
			ErrInvalidInput)
	}
	return nil
}

// treeOp seeds a tree from the values (the demo tree when none are given) and
// hands it to fn.
func treeOp(fn func(r *core.Run, t *structures.Tree, in Input)) func(*core.Run, Input) error {
	return func(r *core.Run, in Input) error {
		keys := in.valuesOr(demoTree)
		if err := checkSize(r, "tree", keys); err != nil {
			return err
		}
		fn(r, seedTree(r, keys), in)
		return nil
	}
}

func seedTree(r *core.Run, keys []int) *structures.Tree {
	t := structures.NewTree()
	for _, k := range keys {
		BSTInsert(r, t, k)
	}
	return t
}

// arrayOp validates the array bounds and hands a private copy to fn.
func arrayOp(fn func(r *core.Run, arr []int, in Input)) func(*core.Run, Input) error {
	return func(r *core.Run, in Input) error {
		if err := checkSize(r, "array", in.Values); err != nil {
			return err
		}
		fn(r, slices.Clone(in.Values), in)
		return nil
	}
}

func listInsert(fn func(*core.Run, *structures.List, int)) func(*core.Run, Input) error {
	return func(r *core.Run, in Input) error {
		if err := checkSize(r, "list", in.Values); err != nil {
			return err
		}
		l := structures.NewList()
		for _, v := range in.Values {
			fn(r, l, v)
		}
		return nil
	}
}

// Lookup returns the operation registered for (structure, name).
func Lookup(st primitives.StructureType, name string) (Operation, error) {
	for _, op := range registry {
		if op.Structure == st && op.Name == name {
			return op, nil
		}
	}
	return Operation{}, errors.Mark(
		errors.Newf("no operation %q for structure %q", name, st),
		ErrUnknownOperation)
}

// Operations returns every registered operation in menu order.
func Operations() []Operation {
	return slices.Clone(registry)
}
