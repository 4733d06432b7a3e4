package input

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrResource = errors.New("input unavailable")
	ErrDecode   = errors.New("input not decodable")
)

// ResourceError is returned when the input path is missing or can not be read
type ResourceError struct {
	Path string
	Err  error
}

func (err *ResourceError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrResource, err.Path, err.Err)
}

func (err *ResourceError) Unwrap() error {
	return err.Err
}

func (err *ResourceError) Is(target error) bool {
	return target == ErrResource
}

// DecodeError is returned when a line can not be read as text
type DecodeError struct {
	Line int
	Err  error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("%v: line %d: %v", ErrDecode, err.Line, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

func (err *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
