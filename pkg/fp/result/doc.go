// Package result provides Result[T], an either.Either[error, T] that also
// carries an id, its creation time and a cancellation flag, for pipelines
// that report outcomes rather than just values.
//
// Highlights:
// - Success/Fail/Cancel/FromEither: construct Result[T]
// - Try: call a function (T, error) and convert the error to a failure
// - ValidateAll: run validators, stopping at the first failure or joining all of them
// - Match: fold an Interruptible outcome into success, failure or cancellation
package result
