package core

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks errors raised before any mutation because the input
// state cannot support the requested operation.
var ErrPrecondition = errors.New("precondition failed")

var (
	// ErrMissingStart reports a search requested without a start cell.
	ErrMissingStart = fmt.Errorf("%w: start cell is not set", ErrPrecondition)
	// ErrMissingTarget reports a search requested without a target cell.
	ErrMissingTarget = fmt.Errorf("%w: target cell is not set", ErrPrecondition)
)

// InvariantViolation is the panic value used when a state the type system
// should rule out is reached. It signals a bug and is never recovered.
type InvariantViolation struct {
	Msg string
}

func (v InvariantViolation) Error() string { return "invariant violation: " + v.Msg }

// RequireEndpoints returns the start and target of v, or the precondition
// error naming whichever is missing.
func RequireEndpoints(v View) (start, target CellPosition, err error) {
	start, ok := v.Start()
	if !ok {
		return start, target, ErrMissingStart
	}
	target, ok = v.Target()
	if !ok {
		return start, target, ErrMissingTarget
	}
	return start, target, nil
}
