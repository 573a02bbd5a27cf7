package primitives

import "github.com/cockroachdb/errors"

// StructureType names the data structure a run operates on. The string values are
// part of the exported config document; do not rename.
type StructureType string

const (
	Array            StructureType = "array"
	LinkedList       StructureType = "linked_list"
	Stack            StructureType = "stack"
	Queue            StructureType = "queue"
	BinarySearchTree StructureType = "binary_search_tree"
)

// StructureTypes lists every known structure in menu order.
var StructureTypes = []StructureType{Array, LinkedList, Stack, Queue, BinarySearchTree}

// ErrInvalidConfig is returned when a RunConfig does not describe a runnable operation.
var ErrInvalidConfig = errors.New("invalid run config")

// ParseStructureType maps a name to its StructureType.
func ParseStructureType(s string) (StructureType, error) {
	for _, st := range StructureTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", errors.Mark(errors.Newf("unknown structure type %q", s), ErrInvalidConfig)
}

// RunConfig describes which structure and operation produced a trace.
type RunConfig struct {
	StructureType StructureType `json:"structure_type" yaml:"structure_type"`
	Operation     string        `json:"operation" yaml:"operation"`
}

// Validate checks that the structure is known and an operation is named.
func (c RunConfig) Validate() error {
	if _, err := ParseStructureType(string(c.StructureType)); err != nil {
		return err
	}
	if c.Operation == "" {
		return errors.Mark(errors.New("operation is required"), ErrInvalidConfig)
	}
	return nil
}

// Is reports whether the config targets the given structure.
func (c RunConfig) Is(st StructureType) bool {
	return c.StructureType == st
}
