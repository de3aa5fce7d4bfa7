package cube

import (
	"fmt"
	"log"
	"strings"
)

// SizeChangeBehaviour decides what happens when the grid is expanded while its
// outer layer is not full, or shrunk while its outer layer is not empty.
type SizeChangeBehaviour int

const (
	// Fail refuses the operation with ErrPreconditionViolated.
	Fail SizeChangeBehaviour = iota
	// Ignore proceeds silently.
	Ignore
	// Warning proceeds and logs a warning.
	Warning
	// Error proceeds and logs an error.
	Error
)

func (b SizeChangeBehaviour) String() string {
	switch b {
	case Fail:
		return "fail"
	case Ignore:
		return "ignore"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("SizeChangeBehaviour(%d)", int(b))
}

// ParseSizeChangeBehaviour accepts ignore, warning, error, fail or exception.
func ParseSizeChangeBehaviour(s string) (SizeChangeBehaviour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return Ignore, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "fail", "exception", "":
		return Fail, nil
	}
	return Fail, fmt.Errorf("unknown size change behaviour %q: %w", s, ErrInvalidArgument)
}

// report applies the behaviour to a violated precondition. Only Fail returns an error.
func (b SizeChangeBehaviour) report(logger *log.Logger, msg string) error {
	switch b {
	case Ignore:
		return nil
	case Warning:
		logger.Printf("WARN %s", msg)
		return nil
	case Error:
		logger.Printf("ERROR %s", msg)
		return nil
	}
	return fmt.Errorf("%s: %w", msg, ErrPreconditionViolated)
}
