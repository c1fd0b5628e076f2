// Package stats accumulates run-level counters across validated documents.
package stats

import "sync"

// Counts is a set of run counters. Validation calls return the counts they
// contribute and the caller folds them into an Aggregator.
type Counts struct {
	Total           int
	Succeeded       int
	Failed          int
	Malformed       int
	PartiallyPassed int
}

func (c Counts) Add(o Counts) Counts {
	return Counts{
		Total:           c.Total + o.Total,
		Succeeded:       c.Succeeded + o.Succeeded,
		Failed:          c.Failed + o.Failed,
		Malformed:       c.Malformed + o.Malformed,
		PartiallyPassed: c.PartiallyPassed + o.PartiallyPassed,
	}
}

func (c Counts) IsZero() bool {
	return c == Counts{}
}

// Aggregator owns the counters of one process run. Counters only grow.
// It is safe for concurrent use.
type Aggregator struct {
	mu     sync.Mutex
	counts Counts
}

func (a *Aggregator) Record(c Counts) {
	if c.Total < 0 || c.Succeeded < 0 || c.Failed < 0 || c.Malformed < 0 || c.PartiallyPassed < 0 {
		panic("stats: negative counter delta")
	}
	a.mu.Lock()
	a.counts = a.counts.Add(c)
	a.mu.Unlock()
}

func (a *Aggregator) Snapshot() Counts {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts
}
