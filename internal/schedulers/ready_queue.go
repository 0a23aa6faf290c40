package schedulers

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"

	"os-scheduler/internal/core"
)

// selectionKey ranks eligible processes. The minimum wins; ties fall back to
// input order.
type selectionKey func(*core.RunState) int

func byBurst(s *core.RunState) int     { return s.Burst }
func byRemaining(s *core.RunState) int { return s.Remaining }
func byPriority(s *core.RunState) int  { return s.Priority }

type readyEntry struct {
	state *core.RunState
	key   selectionKey
}

func (a *readyEntry) Cmp(b *readyEntry) int {
	if c := cmp.Compare(a.key(a.state), b.key(b.state)); c != 0 {
		return c
	}
	return cmp.Compare(a.state.Index, b.state.Index)
}

// readyQueue holds the arrived and unfinished processes of a run, ordered by
// a selection key. The head may have its key decreased in place (remaining
// time while it runs) without breaking the heap order.
type readyQueue struct {
	ready   heap.Heap[readyEntry, heap.Min]
	pending []*core.RunState // not yet arrived, by arrival
	key     selectionKey
}

func newReadyQueue(states []*core.RunState, key selectionKey) *readyQueue {
	return &readyQueue{
		pending: byArrival(states),
		key:     key,
	}
}

// admit moves every process that has arrived by clock into the ready set.
func (q *readyQueue) admit(clock int) {
	for len(q.pending) > 0 && q.pending[0].Arrival <= clock {
		heap.PushOrderable(&q.ready, readyEntry{state: q.pending[0], key: q.key})
		q.pending = q.pending[1:]
	}
}

func (q *readyQueue) peek() (*core.RunState, bool) {
	e, ok := heap.Peek(&q.ready)
	if !ok {
		return nil, false
	}
	return e.state, true
}

func (q *readyQueue) pop() {
	_, _ = heap.PopOrderable(&q.ready)
}

// byArrival returns a copy of states stably sorted by arrival time.
func byArrival(states []*core.RunState) []*core.RunState {
	sorted := slices.Clone(states)
	slices.SortStableFunc(sorted, func(a, b *core.RunState) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	return sorted
}
