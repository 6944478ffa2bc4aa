// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// Queue is an unbounded multi-producer single-consumer FIFO queue.
//
// The queue is a singly linked list whose first node is a sentinel. Its
// payload is never read; the oldest element lives in the node after it.
// Producers link a new node with a single CAS on the current tail's next
// pointer, then advance tail. The consumer moves head one node forward per
// dequeue and the node it leaves behind is retired.
//
//	head                tail
//	 |                   |
//	 S -> e1 -> e2 -> ... -> en -> nil
//
// Enqueue is lock-free in aggregate: a failed CAS always means some other
// producer succeeded. Dequeue and IsEmpty are wait-free and must only be
// called from one goroutine.
//
// Memory: one heap node (next pointer + T) per element, plus the sentinel.
type Queue[T any] struct {
	_       pad
	head    *node[T] // Consumer only
	_       pad
	tail    atomix.Pointer[node[T]] // Advisory; may lag behind the last node
	_       pad
	backoff BackoffPolicy
	alloc   Allocator
}

// node moves through three states: unlinked (owned by its producer),
// linked (reachable from head) and retired (behind head). next changes
// from nil to non-nil at most once.
type node[T any] struct {
	next  atomix.Pointer[node[T]]
	value T
}

// NewQueue creates an empty queue with default options.
//
// Use [Build] to select a backoff policy or install an [Allocator].
func NewQueue[T any]() *Queue[T] {
	q, _ := newQueue[T](BackoffSpin, heapAllocator{})
	return q
}

func newQueue[T any](backoff BackoffPolicy, alloc Allocator) (*Queue[T], error) {
	if err := alloc.Allocate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	sentinel := &node[T]{}
	q := &Queue[T]{
		head:    sentinel,
		backoff: backoff,
		alloc:   alloc,
	}
	q.tail.StoreRelease(sentinel)
	return q, nil
}

// Enqueue appends a copy of *elem to the queue (multiple producers safe).
//
// Enqueue never fails for lack of space. It returns an error wrapping
// ErrAllocFailed only when the configured Allocator refuses the node, in
// which case the queue is unchanged.
func (q *Queue[T]) Enqueue(elem *T) error {
	// Dereference tail before Allocate: after Destroy this panics with
	// the allocator untouched.
	tail := q.tail.LoadAcquire()
	next := tail.next.LoadAcquire()

	if err := q.alloc.Allocate(); err != nil {
		return fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	n := &node[T]{value: *elem}

	r := retrier{policy: q.backoff}
	for {
		// A non-nil next means tail is stale: another producer has
		// linked past it and has not yet advanced tail.
		if next == nil && tail.next.CompareAndSwapAcqRel(nil, n) {
			// Only the CAS winner on tail.next writes tail, so tail
			// only ever moves forward.
			q.tail.StoreRelease(n)
			return nil
		}
		r.wait()
		tail = q.tail.LoadAcquire()
		next = tail.next.LoadAcquire()
	}
}

// TryDequeue moves the oldest element into *dest (single consumer only).
// Returns false and leaves *dest untouched if the queue is empty.
func (q *Queue[T]) TryDequeue(dest *T) bool {
	head := q.head
	next := head.next.LoadAcquire()
	if next == nil {
		return false
	}

	*dest = next.value
	var zero T
	next.value = zero // next is the new sentinel
	q.head = next

	// head.next stays set. A producer holding a stale tail may still
	// inspect this node and must see it as already linked.
	q.alloc.Release()
	return true
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var elem T
	if !q.TryDequeue(&elem) {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// DequeueBatch dequeues up to len(dst) elements into dst in FIFO order and
// returns how many were written (single consumer only).
func (q *Queue[T]) DequeueBatch(dst []T) int {
	n := 0
	for n < len(dst) && q.TryDequeue(&dst[n]) {
		n++
	}
	return n
}

// Drain dequeues elements and passes each to fn until the queue is observed
// empty. Returns the number of elements delivered (single consumer only).
//
// Elements enqueued while Drain runs may or may not be delivered.
func (q *Queue[T]) Drain(fn func(T)) int {
	n := 0
	var elem T
	for q.TryDequeue(&elem) {
		fn(elem)
		n++
	}
	return n
}

// IsEmpty reports whether the queue held no elements at the moment of the
// check (single consumer only).
//
// The answer is a snapshot. A producer may complete an Enqueue right after
// IsEmpty returns true; use the result of Dequeue or TryDequeue when an
// exact answer matters.
func (q *Queue[T]) IsEmpty() bool {
	return q.head.next.LoadAcquire() == nil
}

// Destroy releases every node still in the queue, including the sentinel,
// to the Allocator and detaches the list.
//
// Destroy must not run concurrently with any other method, and the queue
// must not be used afterwards; doing so panics. Enqueue panics before it
// reaches the Allocator, so allocation counters stay balanced.
func (q *Queue[T]) Destroy() {
	for n := q.head; n != nil; n = n.next.LoadAcquire() {
		q.alloc.Release()
	}
	q.head = nil
	q.tail.StoreRelease(nil)
}
