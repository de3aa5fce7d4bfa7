package cube

import "errors"

var (
	// ErrIndexOutOfRange is returned when a coordinate lies outside the current radius.
	ErrIndexOutOfRange = errors.New("cube: coordinate out of range")
	// ErrInvalidArgument is returned for a negative initial radius.
	ErrInvalidArgument = errors.New("cube: invalid argument")
	// ErrPreconditionViolated is returned when Expand or Shrink is refused by the size-change policy.
	ErrPreconditionViolated = errors.New("cube: precondition violated")
)
