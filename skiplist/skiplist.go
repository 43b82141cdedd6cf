// Package skiplist implements Pugh's probabilistic skip list over unique
// keys. Each inserted node draws a level from a geometric distribution, and
// searches descend from the highest level in use to level 0.
//
// A SkipList is not safe for concurrent use.
package skiplist

import (
	"cmp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/ordered"
	"github.com/metailurini/ordered/rng"
)

// SkipList is an ordered set of unique keys.
type SkipList[K any] struct {
	cmp      ordered.CompareFunc[K]
	head     *node[K]
	level    int
	length   int
	maxLevel int
	p        float64
	source   rng.Source
	log      *logrus.Logger
	// update is scratch space for the per-level predecessors of a key.
	update []*node[K]
}

var _ ordered.Container[int] = (*SkipList[int])(nil)

// New creates an empty skip list. It panics when cmp is nil, the maximum
// level is below 1 or the promotion probability lies outside [0, 1].
func New[K any](cmp ordered.CompareFunc[K], opts ...func(*Config)) *SkipList[K] {
	config := NewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if cmp == nil {
		panic(errors.Wrap(ordered.ErrInvalidArgument, "skiplist: nil comparator"))
	}
	if config.maxLevel < 1 || config.p < 0 || config.p > 1 {
		panic(errors.Wrapf(ordered.ErrInvalidConfig, "skiplist: max level %d, probability %v", config.maxLevel, config.p))
	}
	if config.source == nil {
		config.source = rng.New()
	}
	if config.logger == nil {
		config.logger = discardLogger()
	}
	return &SkipList[K]{
		cmp:      cmp,
		head:     &node[K]{forward: make([]*node[K], config.maxLevel)},
		level:    1,
		maxLevel: config.maxLevel,
		p:        config.p,
		source:   config.source,
		log:      config.logger,
		update:   make([]*node[K], config.maxLevel),
	}
}

// NewOrdered creates an empty skip list over a builtin ordered key type.
func NewOrdered[K cmp.Ordered](opts ...func(*Config)) *SkipList[K] {
	return New[K](ordered.Compare[K], opts...)
}

// Len returns the number of keys in the list.
func (s *SkipList[K]) Len() int { return s.length }

// Level returns the highest level currently in use, at least 1.
func (s *SkipList[K]) Level() int { return s.level }

// MaxLevel returns the configured level cap.
func (s *SkipList[K]) MaxLevel() int { return s.maxLevel }

// Search returns the stored key equal to key.
func (s *SkipList[K]) Search(key K) (K, bool) {
	candidate := s.findPath(key, nil)
	if candidate == nil || s.cmp(candidate.key, key) != 0 {
		var zero K
		return zero, false
	}
	return candidate.key, true
}

// Has reports whether key is stored.
func (s *SkipList[K]) Has(key K) bool {
	_, ok := s.Search(key)
	return ok
}

// Insert adds key to the list. When the key is already stored the list is
// left untouched and an error wrapping ordered.ErrDuplicateKey is returned.
func (s *SkipList[K]) Insert(key K) error {
	update := s.update
	defer clear(update)

	candidate := s.findPath(key, update)
	if candidate != nil && s.cmp(candidate.key, key) == 0 {
		return errors.Wrapf(ordered.ErrDuplicateKey, "skiplist: insert %v", key)
	}

	lvl := s.randomLevel()
	if lvl > s.level {
		for i := s.level; i < lvl; i++ {
			update[i] = s.head
		}
		s.trace("insert", "raise level", lvl)
		s.level = lvl
	}

	n := newNode(key, lvl)
	for i := 0; i < lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	s.length++
	s.trace("insert", "link", lvl)
	return nil
}

// Remove deletes key and reports whether it was stored. Removing an absent
// key is a no-op.
func (s *SkipList[K]) Remove(key K) bool {
	update := s.update
	defer clear(update)

	candidate := s.findPath(key, update)
	if candidate == nil || s.cmp(candidate.key, key) != 0 {
		return false
	}

	for i := 0; i < s.level; i++ {
		if update[i].forward[i] != candidate {
			break
		}
		update[i].forward[i] = candidate.forward[i]
	}
	s.trace("remove", "unlink", candidate.level())
	clear(candidate.forward)

	for s.level > 1 && s.head.forward[s.level-1] == nil {
		s.level--
		s.trace("remove", "shrink level", s.level)
	}
	s.length--
	return true
}

// Clear removes every key.
func (s *SkipList[K]) Clear() {
	for x := s.head.next(); x != nil; {
		next := x.next()
		clear(x.forward)
		x = next
	}
	clear(s.head.forward)
	s.level = 1
	s.length = 0
}

// Keys returns every key in ascending order.
func (s *SkipList[K]) Keys() []K {
	keys := make([]K, 0, s.length)
	for x := s.head.next(); x != nil; x = x.next() {
		keys = append(keys, x.key)
	}
	return keys
}

// randomLevel draws a level in [1, maxLevel]: each further level is granted
// with probability p.
func (s *SkipList[K]) randomLevel() int {
	lvl := 1
	for float64(s.source.Intn(100))/100 < s.p && lvl < s.maxLevel {
		lvl++
	}
	return lvl
}

// trace emits a Debug entry naming the structural case just taken.
func (s *SkipList[K]) trace(op, branch string, level int) {
	if !s.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	s.log.WithFields(logrus.Fields{
		"op":    op,
		"case":  branch,
		"level": level,
	}).Debug("skiplist")
}
