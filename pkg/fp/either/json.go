package either

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseJSON decodes text into an A. A decoding failure is returned as a Left
// wrapping the decoder error.
func ParseJSON[A any](text string) Either[error, A] {
	var a A
	if err := jsonAPI.UnmarshalFromString(text, &a); err != nil {
		return Left[error, A](errors.Wrap(err, "parse json"))
	}
	return Right[error](a)
}

// StringifyJSON encodes v. Values that cannot be encoded, including values
// that reference themselves, are returned as a Left.
func StringifyJSON(v any) Either[error, string] {
	b, err := json.Marshal(v)
	if err != nil {
		return Left[error, string](errors.Wrap(err, "stringify json"))
	}
	return Right[error](string(b))
}
