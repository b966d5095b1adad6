package result

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/either/pkg/fp/either"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     either.Either[error, T]
	isCancel  bool
}

func newResult[T any](value either.Either[error, T], isCancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		isCancel:  isCancel,
	}
}

func Success[T any](r T) Result[T] {
	return newResult(either.Right[error](r), false)
}

func Fail[T any](err error) Result[T] {
	return newResult(either.Left[error, T](err), false)
}

func Cancel[T any](err error) Result[T] {
	return newResult(either.Left[error, T](err), true)
}

// FromEither wraps e, a Left holding a context cancellation error is marked as cancelled
func FromEither[T any](e either.Either[error, T]) Result[T] {
	err, isLeft := e.LeftValue()
	return newResult(e, isLeft && IsCancellationError(err))
}

// Try calls f and converts a non-nil error to a failure
func Try[T any](f func() (T, error)) Result[T] {
	return FromEither(either.Try(f))
}

func (r Result[T]) Result() T {
	v, _ := r.value.RightValue()
	return v
}

func (r Result[T]) Err() error {
	err, _ := r.value.LeftValue()
	return err
}

func (r Result[T]) Either() either.Either[error, T] {
	return r.value
}

func (r Result[T]) IsSuccess() bool {
	return r.value.IsRight()
}

func (r Result[T]) IsFailure() bool {
	return r.value.IsLeft() && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
