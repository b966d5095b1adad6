package result

import (
	"github.com/ib-77/either/pkg/fp"
	"github.com/ib-77/either/pkg/fp/either"
)

var validation = either.GetApplicativeValidation[error](fp.MonoidError)

// ValidateAll runs every validator against the value of input.
// With breakOnError the first failing validator ends the run, otherwise all
// failures are joined with errors.Join. A failed or cancelled input is
// returned unchanged.
func ValidateAll[T any](input Result[T], breakOnError bool, validators ...func(in T) error) Result[T] {
	if !input.IsSuccess() || len(validators) == 0 {
		return input
	}

	value := input.Result()
	acc := input.value
	for _, validate := range validators {
		checked := either.FromErr(value, validate(value))

		if breakOnError {
			acc = either.ApSecond(acc, checked)
			if acc.IsLeft() {
				break
			}
		} else {
			acc = either.ApAccumulate(validation, either.Map(acc, keepFirst[T]), checked)
		}
	}

	if err, failed := acc.LeftValue(); failed {
		return Fail[T](err)
	}
	return input
}

func keepFirst[T any](a T) func(T) T {
	return func(T) T { return a }
}
