package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorWalksInOrder(t *testing.T) {
	s := listWithLevels(t, []int{30, 10, 20, 40}, []int{2, 1, 3, 1})
	it := s.Iterator()
	assert.False(t, it.Valid())
	assert.Equal(t, 0, it.Key())

	var got []int
	for it.Next() {
		require.True(t, it.Valid())
		got = append(got, it.Key())
	}
	assert.Equal(t, []int{10, 20, 30, 40}, got)
	assert.False(t, it.Valid())
	assert.False(t, it.Next())
}

func TestIteratorSeekGE(t *testing.T) {
	s := listWithLevels(t, []int{1, 3, 5, 7}, []int{1, 3, 1, 2})
	it := s.Iterator()

	require.True(t, it.SeekGE(4))
	assert.Equal(t, 5, it.Key())
	require.True(t, it.Next())
	assert.Equal(t, 7, it.Key())
	assert.False(t, it.Next())

	require.True(t, it.SeekGE(3))
	assert.Equal(t, 3, it.Key())

	require.True(t, it.SeekGE(-10))
	assert.Equal(t, 1, it.Key())

	assert.False(t, it.SeekGE(8))
	assert.False(t, it.Valid())
}

func TestIteratorOnEmptyAndNil(t *testing.T) {
	it := NewOrdered[int]().Iterator()
	assert.False(t, it.Next())
	assert.False(t, it.SeekGE(1))

	var nilIt *Iterator[int]
	assert.False(t, nilIt.Valid())
	assert.False(t, nilIt.Next())
	assert.False(t, nilIt.SeekGE(1))
	assert.Equal(t, 0, nilIt.Key())
}
