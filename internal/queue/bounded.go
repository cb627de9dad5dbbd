package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Bounded is a thread-safe FIFO queue with a fixed capacity. Producers
// block when the queue is full, giving natural backpressure in a
// producer/consumer pipeline.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	items    []T
	capacity int
	closed   bool
	size     atomic.Int64
}

// NewBounded creates an empty queue holding at most capacity items.
func NewBounded[T any](capacity int) *Bounded[T] {
	q := &Bounded[T]{capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Push appends an item, blocking while the queue is full. It returns
// ErrClosed if the queue is closed before space frees up.
func (q *Bounded[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) >= q.capacity && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrClosed
	}

	q.items = append(q.items, item)
	q.size.Add(1)
	q.notEmpty.Signal()
	return nil
}

// TryPush appends an item without blocking. It returns false when the
// queue is full and ErrClosed when it is closed.
func (q *Bounded[T]) TryPush(item T) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false, ErrClosed
	}
	if len(q.items) >= q.capacity {
		return false, nil
	}

	q.items = append(q.items, item)
	q.size.Add(1)
	q.notEmpty.Signal()
	return true, nil
}

// TryPop removes and returns the head without blocking; false when empty.
func (q *Bounded[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// Pop blocks until an item is available or the queue is closed and
// drained.
func (q *Bounded[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.notEmpty.Wait()
	}

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// PopContext blocks like Pop but also gives up when ctx is done.
func (q *Bounded[T]) PopContext(ctx context.Context) (T, bool) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			q.mu.Lock()
			q.mu.Unlock() //nolint:staticcheck // empty critical section is the point
			q.notEmpty.Broadcast()
		case <-done:
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed && ctx.Err() == nil {
		q.notEmpty.Wait()
	}

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// PopTimeout blocks like Pop for at most the given duration.
func (q *Bounded[T]) PopTimeout(timeout time.Duration) (T, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return q.PopContext(ctx)
}

// Len returns the exact number of queued items without locking.
func (q *Bounded[T]) Len() int {
	return int(q.size.Load())
}

// Empty reports whether the queue holds no items, without locking.
func (q *Bounded[T]) Empty() bool {
	return q.size.Load() == 0
}

// Full reports whether the queue is at capacity, without locking.
func (q *Bounded[T]) Full() bool {
	return int(q.size.Load()) >= q.capacity
}

// Cap returns the queue's capacity.
func (q *Bounded[T]) Cap() int {
	return q.capacity
}

// Close marks the queue closed, failing blocked and future pushes and
// waking every waiter. Queued items remain poppable. Idempotent.
func (q *Bounded[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Closed reports whether Close has been called.
func (q *Bounded[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *Bounded[T]) popLocked() T {
	item := q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	q.size.Add(-1)
	q.notFull.Signal()
	return item
}
