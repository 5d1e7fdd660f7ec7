package cpu

import (
	"log"
)

// ExceptionKind identifies an exception source.
type ExceptionKind int

//go:generate go tool stringer -linecomment -type=ExceptionKind
const (
	EXCEPTION_RESET          = ExceptionKind(0) // reset
	EXCEPTION_UNDEFINED      = ExceptionKind(1) // undefined
	EXCEPTION_SWI            = ExceptionKind(2) // swi
	EXCEPTION_PREFETCH_ABORT = ExceptionKind(3) // prefetch-abort
	EXCEPTION_DATA_ABORT     = ExceptionKind(4) // data-abort
	EXCEPTION_IRQ            = ExceptionKind(5) // irq
	EXCEPTION_FIQ            = ExceptionKind(6) // fiq
	EXCEPTION_COUNT          = ExceptionKind(7) // -
)

// Exception vector addresses.
const (
	VECTOR_RESET          = uint32(0x00)
	VECTOR_UNDEFINED      = uint32(0x04)
	VECTOR_SWI            = uint32(0x08)
	VECTOR_PREFETCH_ABORT = uint32(0x0c)
	VECTOR_DATA_ABORT     = uint32(0x10)
	VECTOR_IRQ            = uint32(0x18)
	VECTOR_FIQ            = uint32(0x1c)
)

var _exception_vector = [EXCEPTION_COUNT]uint32{
	EXCEPTION_RESET:          VECTOR_RESET,
	EXCEPTION_UNDEFINED:      VECTOR_UNDEFINED,
	EXCEPTION_SWI:            VECTOR_SWI,
	EXCEPTION_PREFETCH_ABORT: VECTOR_PREFETCH_ABORT,
	EXCEPTION_DATA_ABORT:     VECTOR_DATA_ABORT,
	EXCEPTION_IRQ:            VECTOR_IRQ,
	EXCEPTION_FIQ:            VECTOR_FIQ,
}

// Lower is more urgent.
var _exception_priority = [EXCEPTION_COUNT]int{
	EXCEPTION_RESET:          1,
	EXCEPTION_DATA_ABORT:     2,
	EXCEPTION_FIQ:            3,
	EXCEPTION_IRQ:            4,
	EXCEPTION_PREFETCH_ABORT: 5,
	EXCEPTION_UNDEFINED:      6,
	EXCEPTION_SWI:            6,
}

var _exception_mode = [EXCEPTION_COUNT]Mode{
	EXCEPTION_RESET:          MODE_SUPERVISOR,
	EXCEPTION_UNDEFINED:      MODE_UNDEFINED,
	EXCEPTION_SWI:            MODE_SUPERVISOR,
	EXCEPTION_PREFETCH_ABORT: MODE_ABORT,
	EXCEPTION_DATA_ABORT:     MODE_ABORT,
	EXCEPTION_IRQ:            MODE_IRQ,
	EXCEPTION_FIQ:            MODE_FIQ,
}

// Vector returns the vector table address of the exception.
func (kind ExceptionKind) Vector() uint32 {
	return _exception_vector[kind]
}

// Priority returns the exception priority, 1 being the most urgent.
func (kind ExceptionKind) Priority() int {
	return _exception_priority[kind]
}

// Mode returns the mode entered on dispatch.
func (kind ExceptionKind) Mode() Mode {
	return _exception_mode[kind]
}

// Exception is a raised, not yet dispatched, exception.
type Exception struct {
	Kind     ExceptionKind
	Priority int
}

// NewException returns the exception of the given kind.
func NewException(kind ExceptionKind) Exception {
	return Exception{Kind: kind, Priority: kind.Priority()}
}

func (e Exception) String() string {
	return f("%v (priority %d)", e.Kind, e.Priority)
}

// Exceptions is the exception controller.
type Exceptions struct {
	Verbose bool // Set to enable verbose logging.

	Stack ExceptionStack // Pending exceptions.
}

// Raise queues an exception. It returns false when a pending exception of
// equal or higher priority already holds the top of the stack.
func (ex *Exceptions) Raise(kind ExceptionKind) (ok bool) {
	ok = ex.Stack.Push(NewException(kind))
	if ex.Verbose {
		if ok {
			log.Printf("cpu: raise %v", kind)
		} else {
			top, _ := ex.Stack.Peek()
			log.Printf("cpu: raise %v rejected, %v pending", kind, top.Kind)
		}
	}
	return
}

// Pending returns the most urgent pending exception.
func (ex *Exceptions) Pending() (e Exception, ok bool) {
	return ex.Stack.Peek()
}

// Reset drops every pending exception.
func (ex *Exceptions) Reset() {
	ex.Stack.Reset()
}

// Dispatch delivers the most urgent pending exception, if any:
//   - The CPSR is saved into the SPSR of the exception mode.
//   - The exception mode is entered, in ARM state, with IRQ disabled
//     (and FIQ disabled for Reset and FIQ).
//   - LR of the exception mode holds the return address.
//   - PC is set to the vector.
//
// The PC is taken to hold the address of the next instruction to fetch.
func (ex *Exceptions) Dispatch(regs *Registers) (e Exception, ok bool) {
	e, ok = ex.Stack.Pop()
	if !ok {
		return
	}

	cpsr := regs.CPSR()
	pc := regs.PC()

	width := uint32(4)
	if regs.State() == STATE_THUMB {
		width = 2
	}

	var lr uint32
	switch e.Kind {
	case EXCEPTION_PREFETCH_ABORT, EXCEPTION_IRQ, EXCEPTION_FIQ:
		lr = pc + 4
	case EXCEPTION_DATA_ABORT:
		lr = pc + 8 - width
	default:
		lr = pc
	}

	mode := e.Kind.Mode()
	err := regs.SwitchMode(mode)
	if err != nil {
		panic(err)
	}
	err = regs.SetSPSR(cpsr)
	if err != nil {
		panic(err)
	}

	regs.SetState(STATE_ARM)
	disable := PSR_I
	if e.Kind == EXCEPTION_RESET || e.Kind == EXCEPTION_FIQ {
		disable |= PSR_F
	}
	regs.SetSlot(REG_CPSR, regs.CPSR()|disable)

	regs.Write(14, lr)
	regs.SetPC(e.Kind.Vector())

	if ex.Verbose {
		log.Printf("cpu: dispatch %v to %#08x, lr %#08x", e, e.Kind.Vector(), lr)
	}

	return
}
