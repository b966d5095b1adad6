// Package task provides Task[A], a deferred computation that produces an A
// when run, and Future[A], a value completed exactly once by an asynchronous
// computation and readable by many consumers.
//
// Highlights:
// - Of/Map/Chain: build and compose tasks
// - ApSeq/ApPar: apply a task of a function, sequentially or concurrently
// - Fork: start a task on its own goroutine and get a Future back
// - TraverseSliceSeq/TraverseSlicePar: turn []A into a Task of []B
// - Applicative: the Of/Map dictionary used by either.Traverse, Wither and Wilt
//
// Effects are never cancelled once started. A task that never returns
// keeps every task composed from it waiting.
package task
