// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

// Options configures queue creation.
type Options struct {
	// Retry behavior of producers that lose the tail race
	backoff BackoffPolicy

	// Allocation accounting (nil means heap, never fails)
	allocator Allocator
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Defaults: spin backoff, plain heap allocation
//	q, err := mpsc.Build[Event](mpsc.New())
//
//	// Yield to the scheduler on contention and track node allocations
//	allocs := &mpsc.CountingAllocator{}
//	q, err := mpsc.Build[Event](mpsc.New().Backoff(mpsc.BackoffYield).Allocator(allocs))
type Builder struct {
	opts Options
}

// New creates a queue builder with default options.
func New() *Builder {
	return &Builder{opts: Options{backoff: BackoffSpin}}
}

// Backoff sets the policy producers apply after a failed CAS on the tail.
// Panics if p is not one of the declared policies.
func (b *Builder) Backoff(p BackoffPolicy) *Builder {
	if !p.valid() {
		panic("mpsc: unknown backoff policy")
	}
	b.opts.backoff = p
	return b
}

// Allocator installs an allocation hook. See [Allocator].
// Panics if a is nil.
func (b *Builder) Allocator(a Allocator) *Builder {
	if a == nil {
		panic("mpsc: nil allocator")
	}
	b.opts.allocator = a
	return b
}

// Build creates an empty Queue[T] with the builder's options.
//
// The only error is a refused sentinel allocation, which wraps
// ErrAllocFailed. With the default allocator Build cannot fail.
func Build[T any](b *Builder) (*Queue[T], error) {
	alloc := b.opts.allocator
	if alloc == nil {
		alloc = heapAllocator{}
	}
	return newQueue[T](b.opts.backoff, alloc)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
