package task

import (
	"context"
	"time"

	"github.com/ib-77/either/pkg/fp"
)

type Task[A any] func(ctx context.Context) A

func Of[A any](a A) Task[A] {
	return func(context.Context) A {
		return a
	}
}

// Run executes the task on the calling goroutine
func (t Task[A]) Run(ctx context.Context) A {
	return t(ctx)
}

func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) B {
		return f(t(ctx))
	}
}

func Chain[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) B {
		return f(t(ctx))(ctx)
	}
}

// ApSeq runs tf, then ta, then applies the function
func ApSeq[A, B any](tf Task[func(A) B], ta Task[A]) Task[B] {
	return func(ctx context.Context) B {
		f := tf(ctx)
		return f(ta(ctx))
	}
}

// ApPar runs tf and ta concurrently and applies the function once both are done
func ApPar[A, B any](tf Task[func(A) B], ta Task[A]) Task[B] {
	return func(ctx context.Context) B {
		fa := Fork(ctx, ta)
		f := tf(ctx)
		return f(fa.Await())
	}
}

// Delay waits d, or until ctx is done, before running t
func Delay[A any](d time.Duration, t Task[A]) Task[A] {
	return func(ctx context.Context) A {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
		return t(ctx)
	}
}

// TraverseSliceSeq runs f(as[i]) one after the other, in input order
func TraverseSliceSeq[A, B any](as []A, f func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) []B {
		out := make([]B, 0, len(as))
		for _, a := range as {
			out = append(out, f(a)(ctx))
		}
		return out
	}
}

// TraverseSlicePar starts f(as[i]) for every element at once, the results
// keep the input order
func TraverseSlicePar[A, B any](as []A, f func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) []B {
		futures := make([]*Future[B], 0, len(as))
		for _, a := range as {
			futures = append(futures, Fork(ctx, f(a)))
		}

		out := make([]B, 0, len(as))
		for _, fb := range futures {
			out = append(out, fb.Await())
		}
		return out
	}
}

func SequenceSlicePar[A any](ts []Task[A]) Task[[]A] {
	return TraverseSlicePar(ts, fp.Identity[Task[A]])
}

// Applicative returns the dictionary used to traverse into Task
func Applicative[A, B any]() fp.Applicative[A, Task[A], B, Task[B]] {
	return fp.Applicative[A, Task[A], B, Task[B]]{
		Of:  Of[B],
		Map: Map[A, B],
	}
}
