// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import "code.hybscloud.com/atomix"

// Allocator observes and may veto node allocations.
//
// Nodes themselves always come from the Go heap and are reclaimed by the
// garbage collector. An Allocator sees one Allocate call per node created
// (the sentinel at Build time, then one per Enqueue) and one Release call
// per node retired (one per successful dequeue, plus every remaining node
// at Destroy).
//
// Allocate is called concurrently by producers and must be safe for that.
// Release is called only from the consumer goroutine or from Destroy.
//
// Nodes are never handed back for reuse. A producer that loaded a stale
// tail may still touch a node after the consumer retired it, so recycling
// retired nodes would be unsafe.
type Allocator interface {
	// Allocate is called before a node is created. A non-nil error aborts
	// the operation; the caller receives it wrapped with ErrAllocFailed.
	Allocate() error

	// Release is called once for every node that leaves the queue.
	Release()
}

// CountingAllocator is an [Allocator] that counts allocations and releases.
//
// It never refuses an allocation. Use it to verify that every node the
// queue creates is eventually released:
//
//	a := &mpsc.CountingAllocator{}
//	q, _ := mpsc.Build[int](mpsc.NewBuilder().Allocator(a))
//	// ...
//	q.Destroy()
//	leaked := a.Live() // 0
type CountingAllocator struct {
	allocated atomix.Int64
	released  atomix.Int64
}

// Allocate records one allocation.
func (a *CountingAllocator) Allocate() error {
	a.allocated.Add(1)
	return nil
}

// Release records one release.
func (a *CountingAllocator) Release() {
	a.released.Add(1)
}

// Allocated returns the number of nodes allocated so far.
func (a *CountingAllocator) Allocated() int64 {
	return a.allocated.Load()
}

// Released returns the number of nodes released so far.
func (a *CountingAllocator) Released() int64 {
	return a.released.Load()
}

// Live returns the number of nodes allocated but not yet released.
// While the queue is alive this is the element count plus one sentinel.
func (a *CountingAllocator) Live() int64 {
	return a.allocated.Load() - a.released.Load()
}

// heapAllocator is the default Allocator. It never fails and keeps no state.
type heapAllocator struct{}

func (heapAllocator) Allocate() error { return nil }

func (heapAllocator) Release() {}
