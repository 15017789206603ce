// Package pqueue provides a generic min-priority queue with priority
// updates and removal by value, backed by a binary heap plus a
// value-to-slot index so UpdatePriority and Remove run in O(log n).
package pqueue

import "errors"

// ErrEmpty is returned by Dequeue on an empty queue. Dequeueing from an
// empty queue indicates a caller logic bug (for example a broken search
// loop invariant), so it is an explicit error rather than a sentinel value.
var ErrEmpty = errors.New("pqueue: dequeue on empty queue")

type entry[T comparable] struct {
	value    T
	priority float64
	seq      int // insertion sequence, breaks priority ties deterministically
	slot     int // current index in the heap slice
}

// Queue is a min-priority queue over comparable values. Each value may be
// enqueued at most once; re-enqueueing is a no-op and the first priority
// wins until UpdatePriority overwrites it.
type Queue[T comparable] struct {
	heap    []*entry[T]
	entries map[T]*entry[T]
	nextSeq int
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		entries: make(map[T]*entry[T]),
	}
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return len(q.heap)
}

// Has reports whether value is currently queued.
func (q *Queue[T]) Has(value T) bool {
	_, found := q.entries[value]
	return found
}

// Enqueue adds value with the given priority. If value is already queued
// the call is a no-op and false is returned: the first priority wins.
func (q *Queue[T]) Enqueue(value T, priority float64) bool {
	if q.Has(value) {
		return false
	}

	e := &entry[T]{
		value:    value,
		priority: priority,
		seq:      q.nextSeq,
		slot:     len(q.heap),
	}
	q.nextSeq++
	q.entries[value] = e
	q.heap = append(q.heap, e)
	q.up(e.slot)
	return true
}

// UpdatePriority overwrites the priority of an already-queued value and
// restores heap order. If value is absent the call is a no-op.
func (q *Queue[T]) UpdatePriority(value T, priority float64) bool {
	e, found := q.entries[value]
	if !found {
		return false
	}

	old := e.priority
	e.priority = priority
	if priority < old {
		q.up(e.slot)
	} else {
		q.down(e.slot)
	}
	return true
}

// Dequeue removes and returns the value with the numerically smallest
// priority. Ties are broken by insertion order.
func (q *Queue[T]) Dequeue() (T, error) {
	if len(q.heap) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	top := q.heap[0]
	q.removeAt(0)
	return top.value, nil
}

// Remove drops value from the queue regardless of its position.
// Returns false if value is not queued.
func (q *Queue[T]) Remove(value T) bool {
	e, found := q.entries[value]
	if !found {
		return false
	}
	q.removeAt(e.slot)
	return true
}

func (q *Queue[T]) removeAt(slot int) {
	e := q.heap[slot]
	last := len(q.heap) - 1

	q.swap(slot, last)
	q.heap[last] = nil
	q.heap = q.heap[:last]
	delete(q.entries, e.value)

	if slot < last {
		q.down(slot)
		q.up(slot)
	}
}

// less orders entries by priority, then insertion sequence.
func (q *Queue[T]) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (q *Queue[T]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].slot = i
	q.heap[j].slot = j
}

func (q *Queue[T]) up(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !q.less(slot, parent) {
			break
		}
		q.swap(slot, parent)
		slot = parent
	}
}

func (q *Queue[T]) down(slot int) {
	for {
		left := 2*slot + 1
		if left >= len(q.heap) {
			break
		}
		smallest := left
		if right := left + 1; right < len(q.heap) && q.less(right, left) {
			smallest = right
		}
		if !q.less(smallest, slot) {
			break
		}
		q.swap(slot, smallest)
		slot = smallest
	}
}
