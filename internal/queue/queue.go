// Package queue provides thread-safe FIFO queues for pipelining RFQ
// messages between producer and consumer goroutines. Queue grows without
// bound; Bounded adds producer backpressure at a fixed capacity.
package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed is returned by pushes after Close.
var ErrClosed = errors.New("queue is closed")

// Queue is an unbounded thread-safe FIFO queue. Any number of producers
// and consumers may operate concurrently; items come out in the order they
// went in. The zero value is not usable; call New.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool

	// size mirrors len(items), updated inside the critical section so that
	// Len and Empty are exact without taking the lock.
	size atomic.Int64
}

// New creates an empty unbounded queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an item and wakes one waiting consumer. It returns
// ErrClosed after Close.
func (q *Queue[T]) Push(item T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, item)
	q.size.Add(1)
	q.mu.Unlock()

	q.cond.Signal()
	return nil
}

// TryPop removes and returns the head of the queue without blocking. The
// second return is false when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// Pop blocks until an item is available or the queue is closed. The second
// return is false only when the queue was closed and drained.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// PopContext blocks like Pop but also gives up when ctx is done, returning
// false on cancellation, closure-and-empty, or expiry.
func (q *Queue[T]) PopContext(ctx context.Context) (T, bool) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Take and release the lock so the broadcast cannot slip in
			// between a waiter's predicate check and its wait.
			q.mu.Lock()
			q.mu.Unlock() //nolint:staticcheck // empty critical section is the point
			q.cond.Broadcast()
		case <-done:
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed && ctx.Err() == nil {
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// PopTimeout blocks like Pop for at most the given duration.
func (q *Queue[T]) PopTimeout(timeout time.Duration) (T, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return q.PopContext(ctx)
}

// Len returns the exact number of queued items without locking.
func (q *Queue[T]) Len() int {
	return int(q.size.Load())
}

// Empty reports whether the queue holds no items, without locking.
func (q *Queue[T]) Empty() bool {
	return q.size.Load() == 0
}

// Clear discards all queued items.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
	q.size.Store(0)
}

// Close marks the queue closed and wakes every blocked consumer. Items
// already queued remain poppable; further pushes fail. Close is
// idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// popLocked removes the head. Callers must hold mu and have checked the
// queue is non-empty.
func (q *Queue[T]) popLocked() T {
	item := q.items[0]
	var zero T
	q.items[0] = zero // release the reference
	q.items = q.items[1:]
	q.size.Add(-1)
	return item
}
