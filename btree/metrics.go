package btree

import "sync/atomic"

// Metrics counts structural events since the tree was created. Counters may
// be read from another goroutine while the owning goroutine mutates the tree.
type Metrics struct {
	splits        atomic.Int64
	rootSplits    atomic.Int64
	merges        atomic.Int64
	rootCollapses atomic.Int64
	rotations     atomic.Int64
	substitutions atomic.Int64
	released      atomic.Int64
}

// Counters is a point-in-time copy of Metrics.
type Counters struct {
	// Splits counts every node split, root splits included.
	Splits int64
	// RootSplits counts the splits that added a level.
	RootSplits int64
	// Merges counts every child merge, root collapses included.
	Merges int64
	// RootCollapses counts the merges that removed a level.
	RootCollapses int64
	// Rotations counts keys borrowed from a sibling through the parent.
	Rotations int64
	// Substitutions counts internal keys replaced by their predecessor or
	// successor during removal.
	Substitutions int64
	// Released counts nodes handed back by merges and Clear.
	Released int64
}

func (m *Metrics) incSplit(root bool) {
	m.splits.Add(1)
	if root {
		m.rootSplits.Add(1)
	}
}

func (m *Metrics) incMerge(collapsed bool) {
	m.merges.Add(1)
	if collapsed {
		m.rootCollapses.Add(1)
	}
}

func (m *Metrics) incRotation() { m.rotations.Add(1) }

func (m *Metrics) incSubstitution() { m.substitutions.Add(1) }

func (m *Metrics) incReleased() { m.released.Add(1) }

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() Counters {
	return Counters{
		Splits:        m.splits.Load(),
		RootSplits:    m.rootSplits.Load(),
		Merges:        m.merges.Load(),
		RootCollapses: m.rootCollapses.Load(),
		Rotations:     m.rotations.Load(),
		Substitutions: m.substitutions.Load(),
		Released:      m.released.Load(),
	}
}
