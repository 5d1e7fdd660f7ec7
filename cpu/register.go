package cpu

import (
	"github.com/ezrec/armcore/field"
)

// Register names a physical register slot.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0         = Register(0)  // r0
	REG_R1         = Register(1)  // r1
	REG_R2         = Register(2)  // r2
	REG_R3         = Register(3)  // r3
	REG_R4         = Register(4)  // r4
	REG_R5         = Register(5)  // r5
	REG_R6         = Register(6)  // r6
	REG_R7         = Register(7)  // r7
	REG_R8         = Register(8)  // r8
	REG_R9         = Register(9)  // r9
	REG_R10        = Register(10) // r10
	REG_R11        = Register(11) // r11
	REG_R12        = Register(12) // r12
	REG_R13        = Register(13) // r13
	REG_R14        = Register(14) // r14
	REG_R15        = Register(15) // r15
	REG_R8_FIQ     = Register(16) // r8_fiq
	REG_R9_FIQ     = Register(17) // r9_fiq
	REG_R10_FIQ    = Register(18) // r10_fiq
	REG_R11_FIQ    = Register(19) // r11_fiq
	REG_R12_FIQ    = Register(20) // r12_fiq
	REG_R13_FIQ    = Register(21) // r13_fiq
	REG_R14_FIQ    = Register(22) // r14_fiq
	REG_R13_IRQ    = Register(23) // r13_irq
	REG_R14_IRQ    = Register(24) // r14_irq
	REG_R13_SVC    = Register(25) // r13_svc
	REG_R14_SVC    = Register(26) // r14_svc
	REG_R13_ABT    = Register(27) // r13_abt
	REG_R14_ABT    = Register(28) // r14_abt
	REG_R13_UND    = Register(29) // r13_und
	REG_R14_UND    = Register(30) // r14_und
	REG_CPSR       = Register(31) // cpsr
	REG_SPSR_FIQ   = Register(32) // spsr_fiq
	REG_SPSR_IRQ   = Register(33) // spsr_irq
	REG_SPSR_SVC   = Register(34) // spsr_svc
	REG_SPSR_ABT   = Register(35) // spsr_abt
	REG_SPSR_UND   = Register(36) // spsr_und
	REGISTER_COUNT = Register(37) // -
)

// RegisterSlots returns every physical register slot in order.
func RegisterSlots() (regs []Register) {
	for reg := range REGISTER_COUNT {
		regs = append(regs, reg)
	}
	return
}

// bank selects one of the six register views.
type bank int

const (
	BANK_USER       = bank(0) // User and System
	BANK_FIQ        = bank(1)
	BANK_IRQ        = bank(2)
	BANK_SUPERVISOR = bank(3)
	BANK_ABORT      = bank(4)
	BANK_UNDEFINED  = bank(5)
	BANK_COUNT      = bank(6)
)

var _bank_user = [16]Register{
	REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
	REG_R8, REG_R9, REG_R10, REG_R11, REG_R12, REG_R13, REG_R14, REG_R15,
}

// _bank_view maps each bank's r0-r15 onto physical slots.
var _bank_view = [BANK_COUNT][16]Register{
	BANK_USER: _bank_user,
	BANK_FIQ: {
		REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
		REG_R8_FIQ, REG_R9_FIQ, REG_R10_FIQ, REG_R11_FIQ, REG_R12_FIQ, REG_R13_FIQ, REG_R14_FIQ, REG_R15,
	},
	BANK_IRQ: {
		REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
		REG_R8, REG_R9, REG_R10, REG_R11, REG_R12, REG_R13_IRQ, REG_R14_IRQ, REG_R15,
	},
	BANK_SUPERVISOR: {
		REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
		REG_R8, REG_R9, REG_R10, REG_R11, REG_R12, REG_R13_SVC, REG_R14_SVC, REG_R15,
	},
	BANK_ABORT: {
		REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
		REG_R8, REG_R9, REG_R10, REG_R11, REG_R12, REG_R13_ABT, REG_R14_ABT, REG_R15,
	},
	BANK_UNDEFINED: {
		REG_R0, REG_R1, REG_R2, REG_R3, REG_R4, REG_R5, REG_R6, REG_R7,
		REG_R8, REG_R9, REG_R10, REG_R11, REG_R12, REG_R13_UND, REG_R14_UND, REG_R15,
	},
}

var _bank_spsr = [BANK_COUNT]Register{
	BANK_USER:       REGISTER_COUNT,
	BANK_FIQ:        REG_SPSR_FIQ,
	BANK_IRQ:        REG_SPSR_IRQ,
	BANK_SUPERVISOR: REG_SPSR_SVC,
	BANK_ABORT:      REG_SPSR_ABT,
	BANK_UNDEFINED:  REG_SPSR_UND,
}

// Resolve returns the physical slot holding reg in mode.
func Resolve(mode Mode, reg field.Reg) Register {
	return _bank_view[mode.bank()][reg&0xf]
}
