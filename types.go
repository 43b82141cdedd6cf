package ordered

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// CompareFunc reports the ordering between a and b: negative when a sorts
// before b, zero when they are equal and positive otherwise. Every ordering
// decision made by the containers in this module goes through it.
type CompareFunc[K any] func(a, b K) int

// Compare is the default CompareFunc for builtin ordered types.
func Compare[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

// Stats describes the shape observed by a successful validation pass.
type Stats struct {
	// Depth is the deepest level visited; a lone root is depth 0.
	Depth int
	// Nodes is the number of nodes visited.
	Nodes int
	// Keys is the number of keys stored across all visited nodes.
	Keys int
}

func (s Stats) String() string {
	return fmt.Sprintf("depth=%d nodes=%d keys=%d", s.Depth, s.Nodes, s.Keys)
}

// Invariant names reported through ValidationError.
const (
	InvariantOccupancy  = "occupancy"
	InvariantOrder      = "order"
	InvariantChildren   = "children"
	InvariantAlias      = "alias"
	InvariantBounds     = "bounds"
	InvariantLeafDepth  = "leaf-depth"
	InvariantMembership = "membership"
	InvariantLevel      = "level"
	InvariantForward    = "forward"
)

// ValidationError reports the first structural invariant a container was
// found to violate.
type ValidationError struct {
	Invariant string
	// Path locates the offending node. For trees it is the child index
	// sequence from the root, for skip lists the position on level 0.
	Path   string
	Depth  int
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s at %s (depth %d): %s", ErrInvariant, e.Invariant, e.Path, e.Depth, e.Detail)
}

// Unwrap lets errors.Is match ErrInvariant.
func (e *ValidationError) Unwrap() error {
	return ErrInvariant
}

// Errors
var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidDegree is the panic value, wrapped, when a tree is built with
	// a minimum degree below 2.
	ErrInvalidDegree = errors.New("invalid degree: must be >= 2")
	// ErrInvalidConfig is the panic value, wrapped, for an unusable
	// container configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrIndexOutOfRange is the panic value, wrapped, for a node access
	// outside its current key or child range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument is the panic value, wrapped, for contradictory or
	// missing arguments to an internal primitive.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvariant is matched by every ValidationError.
	ErrInvariant = errors.New("invariant violated")
)
