package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTooManyArguments = errors.New("too many arguments")
	ErrTooManyLines     = errors.New("too many lines of code")
	ErrBadNodeIndex     = errors.New("invalid node index")
	ErrUndefinedLabel   = errors.New("label not found")
)

// Error places a compile error at a node and a physical source line.
type Error struct {
	Node int
	Line int // 1-based; 0 when the error is not tied to a line.
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Node %d, line %d: %v", e.Node, e.Line, e.Err)
	}
	return fmt.Sprintf("Node %d: %v", e.Node, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// splitErrors flattens errors combined with errors.Join.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var errs []error
	for _, e := range joined.Unwrap() {
		errs = append(errs, splitErrors(e)...)
	}
	return errs
}
