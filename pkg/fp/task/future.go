package task

import (
	"context"
	"sync/atomic"
)

// Future holds the value a forked Task settles on. Only the first Complete
// stores a value. Any number of goroutines may wait in Get or Await and they
// observe that same value.
type Future[A any] struct {
	isCompleted uint32
	completed   chan struct{}

	value A
}

func NewFuture[A any]() *Future[A] {
	return &Future[A]{
		completed: make(chan struct{}),
	}
}

// Fork runs t on a new goroutine and returns the Future it completes
func Fork[A any](ctx context.Context, t Task[A]) *Future[A] {
	f := NewFuture[A]()

	go func() {
		f.Complete(t(ctx))
	}()

	return f
}

// Complete stores value and wakes every waiter; later calls are no-ops
func (f *Future[A]) Complete(value A) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = value
		close(f.completed)
	}
}

// IsCompleted reports whether the future already holds a value
func (f *Future[A]) IsCompleted() bool {
	return atomic.LoadUint32(&f.isCompleted) == 1
}

// Get blocks until the future is completed or until ctx is done
func (f *Future[A]) Get(ctx context.Context) (A, error) {
	select {
	case <-f.completed:
		return f.value, nil
	case <-ctx.Done():
		return *new(A), context.Canceled
	}
}

// Await blocks until the future is completed
func (f *Future[A]) Await() A {
	<-f.completed
	return f.value
}
