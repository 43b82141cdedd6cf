package btree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metailurini/ordered"
)

func TestValidateDetectsBrokenInvariants(t *testing.T) {
	leaf := func(keys ...int) shape { return shape{keys: keys} }

	tests := []struct {
		name      string
		tree      func() *Tree[int]
		expected  []int
		invariant string
		path      string
	}{
		{
			name:      "keys out of order",
			tree:      func() *Tree[int] { return buildTree(2, leaf(3, 1)) },
			invariant: ordered.InvariantOrder,
			path:      "root",
		},
		{
			name:      "duplicate keys in a node",
			tree:      func() *Tree[int] { return buildTree(2, leaf(1, 1)) },
			invariant: ordered.InvariantOrder,
			path:      "root",
		},
		{
			name:      "root too full",
			tree:      func() *Tree[int] { return buildTree(2, leaf(1, 2, 3, 4)) },
			invariant: ordered.InvariantOccupancy,
			path:      "root",
		},
		{
			name: "child underflow",
			tree: func() *Tree[int] {
				return buildTree(3, shape{keys: []int{5}, kids: []shape{leaf(1, 2), leaf(7)}})
			},
			invariant: ordered.InvariantOccupancy,
			path:      "root/1",
		},
		{
			name: "child overflow",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(1, 2, 3, 4), leaf(7)}})
			},
			invariant: ordered.InvariantOccupancy,
			path:      "root/0",
		},
		{
			name: "internal root without keys",
			tree: func() *Tree[int] {
				return buildTree(2, shape{kids: []shape{leaf(1)}})
			},
			invariant: ordered.InvariantOccupancy,
			path:      "root",
		},
		{
			name: "left subtree above separator",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(7), leaf(9)}})
			},
			invariant: ordered.InvariantBounds,
			path:      "root/0",
		},
		{
			name: "right subtree below separator",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(1), leaf(5)}})
			},
			invariant: ordered.InvariantBounds,
			path:      "root/1",
		},
		{
			name: "grandchild outside ancestor range",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{10}, kids: []shape{
					{keys: []int{5}, kids: []shape{leaf(1), leaf(12)}},
					{keys: []int{20}, kids: []shape{leaf(15), leaf(25)}},
				}})
			},
			invariant: ordered.InvariantBounds,
			path:      "root/0/1",
		},
		{
			name: "leaves at different depths",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{5, 10}, kids: []shape{
					leaf(1),
					{keys: []int{7}, kids: []shape{leaf(6), leaf(8)}},
					leaf(11),
				}})
			},
			invariant: ordered.InvariantLeafDepth,
			path:      "root/1/0",
		},
		{
			name: "missing child",
			tree: func() *Tree[int] {
				tr := buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(1), leaf(7)}})
				tr.root.children[1] = nil
				return tr
			},
			invariant: ordered.InvariantChildren,
			path:      "root/1",
		},
		{
			name: "child count mismatch",
			tree: func() *Tree[int] {
				tr := buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(1), leaf(7)}})
				tr.root.children = tr.root.children[:1]
				return tr
			},
			invariant: ordered.InvariantChildren,
			path:      "root",
		},
		{
			name: "shared child",
			tree: func() *Tree[int] {
				tr := buildTree(2, shape{keys: []int{5, 10}, kids: []shape{leaf(1), leaf(7), leaf(12)}})
				tr.root.children[2] = tr.root.children[0]
				return tr
			},
			invariant: ordered.InvariantAlias,
			path:      "root/2",
		},
		{
			name: "expected key missing",
			tree: func() *Tree[int] {
				return buildTree(2, shape{keys: []int{5}, kids: []shape{leaf(1), leaf(7)}})
			},
			expected:  []int{1, 5, 7, 42},
			invariant: ordered.InvariantMembership,
			path:      "root",
		},
		{
			name: "length drift",
			tree: func() *Tree[int] {
				tr := buildTree(2, leaf(1, 2))
				tr.length = 3
				return tr
			},
			invariant: ordered.InvariantMembership,
			path:      "root",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tree().Validate(tc.expected)
			require.Error(t, err)
			assert.ErrorIs(t, err, ordered.ErrInvariant)

			var verr *ordered.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.invariant, verr.Invariant)
			assert.Equal(t, tc.path, verr.Path)
			assert.NotEmpty(t, verr.Detail)
		})
	}
}

func TestValidateReportsStats(t *testing.T) {
	tr := buildTree(2, shape{keys: []int{10}, kids: []shape{
		{keys: []int{5}, kids: []shape{{keys: []int{1, 2}}, {keys: []int{7}}}},
		{keys: []int{20, 30}, kids: []shape{{keys: []int{15}}, {keys: []int{25}}, {keys: []int{35, 36, 37}}}},
	}})
	stats, err := tr.Validate([]int{1, 2, 5, 7, 10, 15, 20, 25, 30, 35, 36, 37})
	require.NoError(t, err)
	assert.Equal(t, ordered.Stats{Depth: 2, Nodes: 8, Keys: 12}, stats)
	assert.Equal(t, "depth=2 nodes=8 keys=12", stats.String())
}
