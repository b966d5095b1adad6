package result

import (
	"github.com/ib-77/either/pkg/fp/either"
)

// Match folds o into one value. A Left goes to onCancel when o was
// cancelled and to onFailure otherwise.
func Match[T, B any](o Interruptible[T], onSuccess func(T) B, onFailure func(error) B, onCancel func(error) B) B {
	return either.Fold(o.Either(),
		func(err error) B {
			if o.IsCancel() {
				return onCancel(err)
			}
			return onFailure(err)
		},
		onSuccess)
}
