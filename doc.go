// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpsc provides an unbounded lock-free multi-producer
// single-consumer FIFO queue.
//
// The queue is a linked list with a sentinel head node. Any number of
// goroutines may enqueue concurrently without locks; exactly one goroutine
// dequeues. Enqueue never reports a full queue and Dequeue never blocks.
//
// # Quick Start
//
//	q := mpsc.NewQueue[Event]()
//
//	// Any goroutine
//	ev := Event{ID: 1}
//	q.Enqueue(&ev)
//
//	// The consumer goroutine only
//	ev, err := q.Dequeue()
//	if mpsc.IsWouldBlock(err) {
//	    // Queue is empty - poll again later
//	}
//
// TryDequeue is the allocation-free form that reports emptiness as a bool
// and leaves its destination untouched when there is nothing to take:
//
//	var ev Event
//	for q.TryDequeue(&ev) {
//	    handle(ev)
//	}
//
// # Common Patterns
//
// Event Aggregation:
//
//	q := mpsc.NewQueue[Event]()
//
//	for s := range slices.Values(sensors) {
//	    go func() {
//	        for ev := range s.Events() {
//	            q.Enqueue(&ev)
//	        }
//	    }()
//	}
//
//	go func() { // Single consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        if q.Drain(aggregate) == 0 {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
// Actor Mailbox:
//
//	type Actor struct {
//	    inbox *mpsc.Queue[Message]
//	}
//
//	func (a *Actor) Send(m Message) { a.inbox.Enqueue(&m) }
//
//	func (a *Actor) run() {
//	    batch := make([]Message, 64)
//	    for {
//	        n := a.inbox.DequeueBatch(batch)
//	        for _, m := range batch[:n] {
//	            a.receive(m)
//	        }
//	    }
//	}
//
// # Configuration
//
// The Builder selects the producer backoff policy and an allocation hook:
//
//	allocs := &mpsc.CountingAllocator{}
//	q, err := mpsc.Build[Event](mpsc.New().
//	    Backoff(mpsc.BackoffYield).
//	    Allocator(allocs))
//
// Backoff only changes how producers spend the time between CAS attempts.
// It has no effect on correctness.
//
// # Ordering
//
// Elements enqueued by the same goroutine are dequeued in the order they
// were enqueued. Elements from different goroutines are ordered by which
// CAS on the tail succeeded first; no other cross-producer order is
// promised.
//
// # Error Handling
//
// Dequeue returns [ErrWouldBlock] on an empty queue. This error is sourced
// from [code.hybscloud.com/iox] and is a control flow signal, not a failure.
//
// Enqueue and Build return an error wrapping [ErrAllocFailed] only when an
// installed [Allocator] refuses a node.
//
// # Thread Safety
//
//   - Enqueue: any number of goroutines
//   - Dequeue, TryDequeue, DequeueBatch, Drain, IsEmpty: one consumer goroutine
//   - Destroy: no other method may run concurrently; the queue is unusable afterwards
//
// Calling consumer methods from more than one goroutine is undefined
// behavior. Supporting several consumers would need a different node
// reclamation scheme.
//
// # Memory
//
// Each element costs one heap node. Retired nodes are left to the garbage
// collector and never recycled: a producer that read a stale tail may still
// look at a node the consumer has already passed, and that node must keep
// its non-nil next pointer for the producer's CAS to fail safely.
//
// # Race Detection
//
// Node links are atomix pointers with explicit acquire-release ordering.
// Go's race detector does not observe those edges and reports the payload
// hand-off from producer to consumer as a race. Concurrent tests are
// skipped under -race; see [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// adaptive backoff, [code.hybscloud.com/atomix] for the tail and node links
// (acquire-release pointers) and allocation counters, and
// [code.hybscloud.com/spin] for CPU pause instructions.
package mpsc
