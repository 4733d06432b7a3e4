package step

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrFormat = errors.New("malformed operation")

// FormatError is returned for a token that is neither an upsert nor a remove,
// or whose focal value is not a non-negative integer.
type FormatError struct {
	Token  string
	Reason string
	Err    error
}

func (err *FormatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%v %q: %s: %v", ErrFormat, err.Token, err.Reason, err.Err)
	}
	return fmt.Sprintf("%v %q: %s", ErrFormat, err.Token, err.Reason)
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

func (err *FormatError) Is(target error) bool {
	return target == ErrFormat
}
