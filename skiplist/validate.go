package skiplist

import (
	"fmt"

	"github.com/metailurini/ordered"
)

// Validate checks the skip-list invariants and that each key of expected is
// stored. It never mutates the list. Stats.Depth reports the current level.
func (s *SkipList[K]) Validate(expected []K) (ordered.Stats, error) {
	stats := ordered.Stats{Depth: s.level}
	fail := func(invariant string, pos int, format string, args ...any) (ordered.Stats, error) {
		path := "head"
		if pos >= 0 {
			path = fmt.Sprintf("level0/%d", pos)
		}
		return stats, &ordered.ValidationError{
			Invariant: invariant,
			Path:      path,
			Depth:     s.level,
			Detail:    fmt.Sprintf(format, args...),
		}
	}

	if s.level < 1 || s.level > s.maxLevel {
		return fail(ordered.InvariantLevel, -1, "list level %d outside [1, %d]", s.level, s.maxLevel)
	}
	if s.head.level() != s.maxLevel {
		return fail(ordered.InvariantLevel, -1, "head has %d levels, want %d", s.head.level(), s.maxLevel)
	}
	for i := s.level; i < s.maxLevel; i++ {
		if s.head.forward[i] != nil {
			return fail(ordered.InvariantLevel, -1, "head links level %d above list level %d", i+1, s.level)
		}
	}
	if s.level > 1 && s.head.forward[s.level-1] == nil {
		return fail(ordered.InvariantLevel, -1, "top level %d is empty", s.level)
	}

	// last[i] is the most recent node seen on level i; the next node of
	// height above i found on level 0 must be exactly its forward[i].
	last := make([]*node[K], s.maxLevel)
	for i := range last {
		last[i] = s.head
	}
	if i := s.misorderedForward(s.head); i > 0 {
		return fail(ordered.InvariantForward, -1, "head level %d pointer lands before level %d pointer", i, i-1)
	}

	pos := 0
	for x := s.head.next(); x != nil; x = x.next() {
		stats.Nodes++
		stats.Keys++
		if x.level() < 1 || x.level() > s.level {
			return fail(ordered.InvariantLevel, pos, "node level %d, list level %d", x.level(), s.level)
		}
		for i := x.level() - 1; i >= 0; i-- {
			if next := x.forward[i]; next != nil && s.cmp(next.key, x.key) <= 0 {
				return fail(ordered.InvariantOrder, pos, "level %d successor %v not above %v", i, next.key, x.key)
			}
		}
		if i := s.misorderedForward(x); i > 0 {
			return fail(ordered.InvariantForward, pos, "level %d pointer lands before level %d pointer", i, i-1)
		}
		for i := 0; i < x.level(); i++ {
			if last[i].forward[i] != x {
				return fail(ordered.InvariantForward, pos, "level %d skips node %v", i, x.key)
			}
			last[i] = x
		}
		pos++
	}
	for i := 0; i < s.level; i++ {
		if last[i].forward[i] != nil {
			return fail(ordered.InvariantForward, pos, "level %d links past the last node", i)
		}
	}

	if stats.Keys != s.length {
		return fail(ordered.InvariantMembership, pos, "counted %d keys, list length %d", stats.Keys, s.length)
	}
	for _, k := range expected {
		if !s.Has(k) {
			return fail(ordered.InvariantMembership, pos, "expected key %v not found", k)
		}
	}
	return stats, nil
}

// misorderedForward returns the first level i > 0 whose pointer lands
// before the level i-1 pointer of x, or 0. A nil pointer stands for the end
// of the list.
func (s *SkipList[K]) misorderedForward(x *node[K]) int {
	for i := x.level() - 1; i > 0; i-- {
		hi, lo := x.forward[i], x.forward[i-1]
		if hi == nil {
			continue
		}
		if lo == nil || s.cmp(hi.key, lo.key) < 0 {
			return i
		}
	}
	return 0
}
