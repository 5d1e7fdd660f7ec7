package cpu

// Mode is the processor mode held in CPSR bits[4:0].
type Mode uint8

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_USER       = Mode(0x10) // usr
	MODE_FIQ        = Mode(0x11) // fiq
	MODE_IRQ        = Mode(0x12) // irq
	MODE_SUPERVISOR = Mode(0x13) // svc
	MODE_ABORT      = Mode(0x17) // abt
	MODE_UNDEFINED  = Mode(0x1b) // und
	MODE_SYSTEM     = Mode(0x1f) // sys
)

// Program status register bits.
const (
	PSR_MODE_MASK = uint32(0x1f)
	PSR_T         = uint32(1 << 5) // Thumb state.
	PSR_F         = uint32(1 << 6) // FIQ disable.
	PSR_I         = uint32(1 << 7) // IRQ disable.
	PSR_FLAGS     = uint32(0xf000_0000)
)

// Modes returns every valid mode.
func Modes() []Mode {
	return []Mode{MODE_USER, MODE_FIQ, MODE_IRQ, MODE_SUPERVISOR, MODE_ABORT, MODE_UNDEFINED, MODE_SYSTEM}
}

// Valid returns true for the seven architectural modes.
func (m Mode) Valid() bool {
	switch m {
	case MODE_USER, MODE_FIQ, MODE_IRQ, MODE_SUPERVISOR, MODE_ABORT, MODE_UNDEFINED, MODE_SYSTEM:
		return true
	}
	return false
}

// Privileged returns true for every mode except User.
func (m Mode) Privileged() bool {
	return m != MODE_USER
}

// HasSPSR returns true for the exception modes.
func (m Mode) HasSPSR() bool {
	return m.bank() != BANK_USER
}

// bank returns the register bank of the mode. An invalid mode has no bank
// and panics.
func (m Mode) bank() bank {
	switch m {
	case MODE_USER, MODE_SYSTEM:
		return BANK_USER
	case MODE_FIQ:
		return BANK_FIQ
	case MODE_IRQ:
		return BANK_IRQ
	case MODE_SUPERVISOR:
		return BANK_SUPERVISOR
	case MODE_ABORT:
		return BANK_ABORT
	case MODE_UNDEFINED:
		return BANK_UNDEFINED
	}
	panic(f("mode %#02x has no register bank", uint8(m)))
}

// State is the instruction set state held in CPSR bit 5.
type State uint8

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_ARM   = State(0) // arm
	STATE_THUMB = State(1) // thumb
)
