// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package blq provides a blocking bounded FIFO queue.
//
// The queue is a fixed-capacity ring buffer protected by a mutex and a
// pair of condition variables. Any number of producer and consumer
// goroutines may operate on it concurrently: producers block while the
// queue is full, consumers block while it is empty. This is the classic
// producer-consumer structure — backpressure comes from blocking, not
// from dropping or from unbounded growth.
//
// # Quick Start
//
//	q, err := blq.New[Event](1024)
//	if err != nil {
//	    return err
//	}
//
//	// Producer
//	ev := Event{...}
//	q.Enqueue(&ev)      // blocks while full
//
//	// Consumer
//	ev, err := q.Dequeue()  // blocks while empty
//
//	// Shutdown
//	q.Close()           // wakes every blocked goroutine
//
// # Basic Usage
//
// Enqueue passes the element by pointer; the queue stores a copy of the
// pointed-to value, so the original may be reused afterwards. Dequeue
// returns the element by value and clears the vacated slot so the GC can
// reclaim anything it referenced.
//
//	q, _ := blq.New[int](8)
//
//	v := 42
//	if err := q.Enqueue(&v); err != nil {
//	    // ErrClosed: queue was shut down
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
//
// # Non-Blocking Operations
//
// TryEnqueue and TryDequeue never suspend. They return [ErrWouldBlock]
// when the queue is full or empty, which pairs naturally with a retry
// loop and adaptive backoff:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.TryEnqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !blq.IsWouldBlock(err) {
//	        return err // Closed
//	    }
//	    backoff.Wait()
//	}
//
// # Common Patterns
//
// Worker Pool (blocking):
//
//	jobs, _ := blq.New[Job](256)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := jobs.Dequeue()
//	            if err != nil {
//	                return // ErrClosed after drain
//	            }
//	            job.Run()
//	        }
//	    }()
//	}
//
//	// Submit from anywhere; blocks when workers fall behind
//	func Submit(j Job) error {
//	    return jobs.Enqueue(&j)
//	}
//
//	// Shutdown: workers finish remaining jobs, then exit
//	jobs.Close()
//
// Pipeline Stage:
//
//	stage, _ := blq.New[Data](64)
//
//	go func() { // upstream
//	    defer stage.Close()
//	    for data := range input {
//	        if stage.Enqueue(&data) != nil {
//	            return
//	        }
//	    }
//	}()
//
//	go func() { // downstream
//	    for {
//	        data, err := stage.Dequeue()
//	        if err != nil {
//	            return
//	        }
//	        process(data)
//	    }
//	}()
//
// # Blocking Semantics
//
// A goroutine suspends only inside Enqueue (queue full) or Dequeue
// (queue empty). While suspended it holds no lock, so other goroutines
// make progress. Each successful enqueue wakes at most one waiting
// consumer, and each successful dequeue wakes at most one waiting
// producer — each operation changes the occupancy by exactly one, so
// exactly one waiter can proceed. Woken goroutines re-test their
// predicate in a loop before proceeding.
//
// A producer that is never paired with a consumer blocks forever. That
// is the contract, not a defect: use the Try variants or Close for
// bounded-time behavior.
//
// # Ordering Guarantees
//
// With exactly one producer and one consumer, elements are delivered in
// the exact order enqueued (strict FIFO). With multiple producers the
// relative order of items from different producers is unspecified;
// likewise, which consumer receives a given item is unspecified. What is
// guaranteed under any interleaving: every enqueued item is delivered to
// exactly one consumer exactly once — no loss, no duplication.
//
// # Capacity and Length
//
// Capacity is fixed at creation and not rounded: New[T](5) buffers at
// most 5 items. New returns [ErrInvalidCapacity] for capacities below 1.
// A capacity of 1 behaves as a single-slot rendezvous.
//
// Because every mutation is serialized by the queue's lock, Len returns
// an exact count — something lock-free queues cannot offer cheaply. The
// value is advisory the instant Len returns.
//
// # Graceful Shutdown
//
// Close wakes every blocked goroutine. Producers receive [ErrClosed];
// consumers first drain items enqueued before Close (in order), then
// receive [ErrClosed]. Close is idempotent and may be called from any
// goroutine, including a consumer or producer.
//
//	prodWg.Wait() // producers finished
//	q.Close()     // consumers drain and exit
//
// There is no destroy operation. Dropping the last reference after Close
// releases everything; closing first guarantees no goroutine is left
// suspended on an unreachable queue.
//
// # Error Handling
//
// All errors are sentinels tested with errors.Is or the helpers:
//
//	blq.IsWouldBlock(err)  // full/empty on a Try operation
//	blq.IsClosed(err)      // queue shut down
//	blq.IsSemantic(err)    // control flow signal, not a failure
//	blq.IsNonFailure(err)  // nil or ErrWouldBlock
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency.
//
// # Thread Safety
//
// All operations are safe for any number of concurrent producers and
// consumers; there are no single-producer or single-consumer constraints
// to violate. The mutex/condvar core is fully visible to Go's race
// detector, so the entire test suite runs under -race.
//
// # Element Flavors
//
// One generic implementation covers all element kinds. Where a lock-free
// design needs dedicated uintptr or unsafe.Pointer variants to control
// slot layout, here Ring[uintptr] and Ring[unsafe.Pointer] are ordinary
// instantiations with identical semantics.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, and [code.hybscloud.com/atomix] for the ordered atomic closed
// flag consulted on non-blocking fast paths.
package blq
