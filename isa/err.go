package isa

import (
	"errors"

	"github.com/ezrec/armcore/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrUndefined       = errors.New(f("undefined instruction"))
	ErrUnpredictable   = errors.New(f("unpredictable instruction"))
	ErrNotClassified   = errors.New(f("instruction not classified"))
	ErrOperandMismatch = errors.New(f("operand does not match opcode"))
)

// ErrFieldConflict is a should-be-zero or should-be-one field holding an
// unexpected value.
type ErrFieldConflict struct {
	Word  uint32 // Offending instruction word.
	Field string // Field name, e.g. "bits[11:8]".
	Want  uint32 // Required field value.
}

func (err *ErrFieldConflict) Error() string {
	return f("word %#08x: %v should be %#x", err.Word, err.Field, err.Want)
}

// Is matches ErrUnpredictable.
func (err *ErrFieldConflict) Is(target error) bool {
	return target == ErrUnpredictable
}

// ErrInstruction locates a decode error.
type ErrInstruction struct {
	Address uint32
	Word    uint32
	Thumb   bool
	Err     error
}

func (err *ErrInstruction) Error() string {
	if err.Thumb {
		return f("%08x: %04x %v", err.Address, err.Word, err.Err)
	}
	return f("%08x: %08x %v", err.Address, err.Word, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
