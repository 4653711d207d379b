package user

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput  = errors.New("malformed csv input")
	ErrInvalidEncoding = fmt.Errorf("%w: content is not valid UTF-8", ErrMalformedInput)
	ErrMissingColumn   = fmt.Errorf("%w: missing required column", ErrMalformedInput)
	ErrInvalidAge      = fmt.Errorf("%w: age is not an integer", ErrMalformedInput)
	ErrUserNotFound    = errors.New("user not found")
)
