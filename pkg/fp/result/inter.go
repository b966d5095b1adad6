package result

import (
	"time"

	"github.com/ib-77/either/pkg/fp/either"
)

// Outcome is a settled computation seen as an either.Either[error, T]
type Outcome[T any] interface {
	Either() either.Either[error, T]
	// CreatedAt is the moment the outcome was settled (UTC)
	CreatedAt() time.Time
}

// Interruptible tells a cancelled run apart from a failed one
type Interruptible[T any] interface {
	Outcome[T]
	IsCancel() bool
}
