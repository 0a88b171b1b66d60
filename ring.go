// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Ring is a fixed-capacity blocking MPMC bounded queue.
//
// A single mutex serializes all cursor and slot mutations; two condition
// variables coordinate producers and consumers. Producers block while the
// buffer is full, consumers block while it is empty. Storage is a circular
// buffer of exactly the requested capacity with modulo index wrap-around.
//
// Ordering: strict FIFO between one producer and one consumer. With
// multiple producers or consumers the interleaving across goroutines is
// unspecified, but every enqueued item is delivered to exactly one
// consumer exactly once.
//
// Memory: n slots for capacity n, no per-slot overhead.
type Ring[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond // signaled after each dequeue
	notEmpty *sync.Cond // signaled after each enqueue

	buf   []T
	head  int // next slot to write
	tail  int // next slot to read
	count int // occupied slots; head == tail alone is ambiguous

	closed     bool        // guarded by mu
	closedHint atomix.Bool // mirror of closed for lock-free fast paths
}

// New creates a blocking bounded queue with exactly the given capacity.
// Returns ErrInvalidCapacity if capacity < 1.
//
// Capacity is not rounded: New[T](5) buffers at most 5 items. A capacity
// of 1 yields a rendezvous-like queue where every enqueue blocks until
// the sole slot has been dequeued.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	q := &Ring[T]{buf: make([]T, capacity)}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Enqueue adds an element to the queue, blocking while the queue is full.
// The element is copied into the queue's internal buffer.
// Returns ErrClosed if the queue is closed before a slot becomes free.
func (q *Ring[T]) Enqueue(elem *T) error {
	if q.closedHint.LoadAcquire() {
		return ErrClosed
	}

	q.mu.Lock()
	// Re-test the predicate after every wakeup: another producer may have
	// taken the freed slot first, and condition waits can wake spuriously.
	for q.count == len(q.buf) && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}

	q.buf[q.head] = *elem
	q.head = (q.head + 1) % len(q.buf)
	q.count++

	// One new item: exactly one waiting consumer may proceed.
	q.notEmpty.Signal()
	q.mu.Unlock()
	return nil
}

// TryEnqueue adds an element without blocking.
// Returns ErrWouldBlock if the queue is full, ErrClosed if closed.
func (q *Ring[T]) TryEnqueue(elem *T) error {
	if q.closedHint.LoadAcquire() {
		return ErrClosed
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if q.count == len(q.buf) {
		q.mu.Unlock()
		return ErrWouldBlock
	}

	q.buf[q.head] = *elem
	q.head = (q.head + 1) % len(q.buf)
	q.count++

	q.notEmpty.Signal()
	q.mu.Unlock()
	return nil
}

// Dequeue removes and returns an element, blocking while the queue is
// empty. After Close, remaining items are still delivered in order; once
// drained, Dequeue returns (zero-value, ErrClosed).
func (q *Ring[T]) Dequeue() (T, error) {
	q.mu.Lock()
	for q.count == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		q.mu.Unlock()
		var zero T
		return zero, ErrClosed
	}

	elem := q.buf[q.tail]
	var zero T
	q.buf[q.tail] = zero
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--

	// One freed slot: exactly one waiting producer may proceed.
	q.notFull.Signal()
	q.mu.Unlock()
	return elem, nil
}

// TryDequeue removes and returns an element without blocking.
// Returns (zero-value, ErrWouldBlock) if the queue is empty, or
// (zero-value, ErrClosed) if it is empty and closed.
func (q *Ring[T]) TryDequeue() (T, error) {
	q.mu.Lock()
	if q.count == 0 {
		closed := q.closed
		q.mu.Unlock()
		var zero T
		if closed {
			return zero, ErrClosed
		}
		return zero, ErrWouldBlock
	}

	elem := q.buf[q.tail]
	var zero T
	q.buf[q.tail] = zero
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--

	q.notFull.Signal()
	q.mu.Unlock()
	return elem, nil
}

// Close shuts the queue down. All goroutines blocked in Enqueue or
// Dequeue are woken: producers receive ErrClosed, consumers drain any
// remaining items and then receive ErrClosed.
//
// Close is idempotent and safe to call from any goroutine. It never
// returns a non-nil error; the signature satisfies io.Closer.
func (q *Ring[T]) Close() error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		q.closedHint.StoreRelease(true)
		q.notFull.Broadcast()
		q.notEmpty.Broadcast()
	}
	q.mu.Unlock()
	return nil
}

// IsClosed reports whether Close has been called.
func (q *Ring[T]) IsClosed() bool {
	return q.closedHint.LoadAcquire()
}

// Len returns the number of items currently buffered.
// The count is exact while computed but advisory once returned.
func (q *Ring[T]) Len() int {
	q.mu.Lock()
	n := q.count
	q.mu.Unlock()
	return n
}

// Cap returns the queue capacity.
func (q *Ring[T]) Cap() int {
	return len(q.buf)
}
