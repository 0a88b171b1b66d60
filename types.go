// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq

// Queue is the combined producer-consumer interface for a blocking
// bounded FIFO queue.
//
// Queue provides blocking Enqueue and Dequeue operations plus their
// non-blocking Try variants. Blocking operations suspend the calling
// goroutine until the queue has space (Enqueue) or data (Dequeue) or
// until the queue is closed. Try variants return ErrWouldBlock instead
// of suspending.
//
// Unlike lock-free queues, a blocking queue can report an exact length:
// every mutation is serialized by the queue's lock, so Len is precise at
// the instant it is computed. The value is advisory the moment it is
// returned — another goroutine may have changed it.
//
// Example:
//
//	q, err := blq.New[int](1024)
//	if err != nil {
//	    return err
//	}
//
//	// Enqueue (blocks while full)
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // ErrClosed: queue was shut down
//	}
//
//	// Dequeue (blocks while empty)
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the fixed capacity chosen at creation.
	Cap() int
	// Len returns the number of items currently buffered.
	Len() int
	// Close shuts the queue down and wakes all blocked goroutines.
	Close() error
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after the call returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue, blocking while the queue
	// is full. Returns nil on success, ErrClosed if the queue is or
	// becomes closed while waiting.
	//
	// Safe for any number of concurrent producers.
	Enqueue(elem *T) error

	// TryEnqueue adds an element without blocking.
	// Returns ErrWouldBlock if the queue is full, ErrClosed if closed.
	TryEnqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied from the queue's internal
// buffer). The vacated slot is cleared to allow garbage collection of
// referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element, blocking while the queue
	// is empty. After Close, remaining items are still delivered in
	// order; once drained, Dequeue returns (zero-value, ErrClosed).
	//
	// Safe for any number of concurrent consumers.
	Dequeue() (T, error)

	// TryDequeue removes and returns an element without blocking.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty, or
	// (zero-value, ErrClosed) if it is empty and closed.
	TryDequeue() (T, error)
}

var _ Queue[int] = (*Ring[int])(nil)
