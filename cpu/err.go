package cpu

import (
	"errors"

	"github.com/ezrec/armcore/isa"
	"github.com/ezrec/armcore/translate"
)

var f = translate.From

var (
	// Register file errors
	ErrNoSPSR      = errors.New(f("mode has no spsr"))
	ErrModeInvalid = errors.New(f("mode invalid"))

	// Executor errors
	ErrMemoryMissing = errors.New(f("no memory attached"))
	ErrReadOnly      = errors.New(f("memory is read only"))
	ErrCoprocessor   = errors.New(f("coprocessor absent"))
	ErrModelUnknown  = errors.New(f("model unknown"))
)

// ErrAbort is a memory access failure raised as a prefetch or data abort.
type ErrAbort struct {
	Kind    ExceptionKind
	Address uint32
	Err     error
}

func (err *ErrAbort) Error() string {
	return f("%v at %#08x: %v", err.Kind, err.Address, err.Err)
}

func (err *ErrAbort) Unwrap() error {
	return err.Err
}

// ErrExecute locates an error raised while executing an instruction.
type ErrExecute struct {
	Instruction isa.Instruction
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("%v: %v", err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
