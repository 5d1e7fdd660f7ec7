package memory

import (
	"errors"

	"github.com/ezrec/armcore/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrUnmapped = errors.New(f("address unmapped"))
	ErrReadOnly = errors.New(f("region read only"))
	ErrOverlap  = errors.New(f("region overlaps"))
	ErrTooLarge = errors.New(f("data exceeds region"))
)

// ErrAccess locates a failed bus access.
type ErrAccess struct {
	Address uint32
	Width   int // Access width in bytes.
	Err     error
}

func (err *ErrAccess) Error() string {
	return f("%d byte access at %#08x: %v", err.Width, err.Address, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}
