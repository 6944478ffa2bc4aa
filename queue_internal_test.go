// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import "testing"

// checkList walks from head and verifies that tail is reachable and is
// the last node. Only valid with no producer in flight.
func checkList[T any](t *testing.T, q *Queue[T]) (elems int) {
	t.Helper()
	tail := q.tail.LoadAcquire()
	n := q.head
	for n != tail {
		n = n.next.LoadAcquire()
		if n == nil {
			t.Fatal("tail not reachable from head")
		}
		elems++
	}
	if tail.next.LoadAcquire() != nil {
		t.Fatal("tail is not the last node at quiescence")
	}
	return elems
}

func TestNewQueueSentinel(t *testing.T) {
	q := NewQueue[int]()
	if q.head == nil || q.head != q.tail.LoadAcquire() {
		t.Fatal("new queue: head and tail must share the sentinel")
	}
	if q.head.next.LoadAcquire() != nil {
		t.Fatal("new queue: sentinel next must be nil")
	}
	if n := checkList(t, q); n != 0 {
		t.Fatalf("new queue: %d elements, want 0", n)
	}
}

func TestListShape(t *testing.T) {
	q := NewQueue[int]()
	for i := range 5 {
		v := i
		q.Enqueue(&v)
		if n := checkList(t, q); n != i+1 {
			t.Fatalf("after %d enqueues: %d elements", i+1, n)
		}
	}
	for i := range 5 {
		q.Dequeue()
		if n := checkList(t, q); n != 4-i {
			t.Fatalf("after %d dequeues: %d elements", i+1, n)
		}
	}
	if q.head != q.tail.LoadAcquire() {
		t.Fatal("drained queue: head and tail must meet")
	}
}

// TestDequeueClearsNewSentinel verifies the consumed payload slot does not
// keep its referent alive.
func TestDequeueClearsNewSentinel(t *testing.T) {
	q := NewQueue[*int]()
	x := 42
	p := &x
	q.Enqueue(&p)

	var got *int
	if !q.TryDequeue(&got) || got != p {
		t.Fatal("TryDequeue: wrong element")
	}
	if q.head.value != nil {
		t.Fatal("sentinel still references the dequeued element")
	}
}

// TestStaleTailCannotRelink simulates a producer that loaded tail, was
// preempted while the consumer retired that node, and then resumed. Its
// CAS must fail so the retry reloads the current tail.
func TestStaleTailCannotRelink(t *testing.T) {
	q := NewQueue[int]()
	a, b := 1, 2
	q.Enqueue(&a)
	stale := q.tail.LoadAcquire() // node holding a
	q.Enqueue(&b)

	q.Dequeue() // retires the sentinel, node a becomes sentinel
	q.Dequeue() // retires node a

	if stale == q.head {
		t.Fatal("stale node must be behind head")
	}
	if stale.next.LoadAcquire() == nil {
		t.Fatal("retired node lost its next pointer")
	}
	if stale.next.CompareAndSwapAcqRel(nil, &node[int]{value: 3}) {
		t.Fatal("CAS on a retired node succeeded")
	}

	c := 3
	if err := q.Enqueue(&c); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if v, err := q.Dequeue(); err != nil || v != 3 {
		t.Fatalf("Dequeue: got (%d, %v), want 3", v, err)
	}
}

func TestDestroyDetaches(t *testing.T) {
	q := NewQueue[int]()
	v := 1
	q.Enqueue(&v)
	q.Destroy()
	if q.head != nil || q.tail.LoadAcquire() != nil {
		t.Fatal("Destroy must detach head and tail")
	}
}

func TestBuildKeepsOptions(t *testing.T) {
	a := &CountingAllocator{}
	q, err := Build[int](New().Backoff(BackoffYield).Allocator(a))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.backoff != BackoffYield {
		t.Fatalf("backoff: got %v, want %v", q.backoff, BackoffYield)
	}
	if q.alloc != Allocator(a) {
		t.Fatal("allocator not installed")
	}
	if _, ok := NewQueue[int]().alloc.(heapAllocator); !ok {
		t.Fatal("NewQueue must use the heap allocator")
	}
}

func TestRetrierEveryPolicy(t *testing.T) {
	for p := BackoffSpin; p <= BackoffAdaptive; p++ {
		r := retrier{policy: p}
		for range 4 {
			r.wait()
		}
	}
}
