package machine

import (
	"errors"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrBreakpoint      = errors.New(f("breakpoint"))
	ErrBreakExpression = errors.New(f("invalid break expression"))
	ErrClockInvalid    = errors.New(f("clock rate must be positive"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	// An instruction fault already names its address.
	var ee *cpu.ErrExecute
	if errors.As(err.Err, &ee) {
		return err.Err.Error()
	}
	return f("pc %03X %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrBreak reports that the break expression held before the instruction at Pc.
type ErrBreak struct {
	Pc   uint16
	Expr string
}

func (err *ErrBreak) Error() string {
	return f("break at %03X: %v", err.Pc, err.Expr)
}

func (err *ErrBreak) Is(target error) bool {
	return target == ErrBreakpoint
}

// ErrExpression reports a break expression that does not evaluate to a truth value.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("break expression '%v' is not a condition", string(err))
}

func (err ErrExpression) Is(target error) bool {
	return target == ErrBreakExpression
}
