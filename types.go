// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs on the
// way in. The queue stores a copy of the pointed-to value, so the caller may
// reuse or modify the original as soon as Enqueue returns.
//
// Any number of goroutines may hold the same Producer.
type Producer[T any] interface {
	// Enqueue appends a copy of *elem to the tail of the queue.
	// It never reports a full queue. The only error is an allocation
	// failure, which wraps ErrAllocFailed.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The slot it occupied is cleared so the
// garbage collector can reclaim anything it referenced.
//
// A Consumer must be driven by exactly one goroutine for the lifetime of
// the queue. Concurrent Dequeue calls are undefined behavior and are not
// detected.
//
// Queue.IsEmpty belongs to the consumer side too. It reads the head node,
// which only the consumer writes, so producers must not call it; a
// producer learns nothing from it anyway, since the answer may be stale
// by the time it returns.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

var (
	_ Producer[int] = (*Queue[int])(nil)
	_ Consumer[int] = (*Queue[int])(nil)
)
