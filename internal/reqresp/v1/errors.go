package v1

import (
	"errors"
	"fmt"
)

// ErrMalformed 载荷格式错误
var ErrMalformed = errors.New("v1: malformed payload")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
