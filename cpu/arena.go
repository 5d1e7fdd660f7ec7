package cpu

import (
	"fmt"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

// Registers is the banked register file. The zero value has no valid mode;
// use NewRegisters or Reset before access.
type Registers struct {
	slot [REGISTER_COUNT]uint32
}

// NewRegisters returns a register file in Supervisor mode, ARM state, with
// interrupts disabled.
func NewRegisters() (regs *Registers) {
	regs = &Registers{}
	regs.Reset()
	return
}

// Reset clears every slot and enters Supervisor mode with IRQ and FIQ
// disabled.
func (regs *Registers) Reset() {
	clear(regs.slot[:])
	regs.slot[REG_CPSR] = uint32(MODE_SUPERVISOR) | PSR_I | PSR_F
}

// Read returns the value of r0-r15 in the current mode.
func (regs *Registers) Read(reg field.Reg) uint32 {
	return regs.slot[Resolve(regs.Mode(), reg)]
}

// Write sets r0-r15 in the current mode.
func (regs *Registers) Write(reg field.Reg, value uint32) {
	regs.slot[Resolve(regs.Mode(), reg)] = value
}

// UserRead returns the User mode view of r0-r15.
func (regs *Registers) UserRead(reg field.Reg) uint32 {
	return regs.slot[Resolve(MODE_USER, reg)]
}

// UserWrite sets the User mode view of r0-r15.
func (regs *Registers) UserWrite(reg field.Reg, value uint32) {
	regs.slot[Resolve(MODE_USER, reg)] = value
}

// Slot returns a physical register slot.
func (regs *Registers) Slot(reg Register) uint32 {
	return regs.slot[reg]
}

// SetSlot sets a physical register slot. No mode checks are made, even for
// REG_CPSR.
func (regs *Registers) SetSlot(reg Register, value uint32) {
	regs.slot[reg] = value
}

// Mode returns the current processor mode.
func (regs *Registers) Mode() Mode {
	return Mode(regs.slot[REG_CPSR] & PSR_MODE_MASK)
}

// SwitchMode changes the processor mode, exposing the banked registers of
// the new mode. Every other CPSR bit is kept.
func (regs *Registers) SwitchMode(mode Mode) (err error) {
	if !mode.Valid() {
		err = fmt.Errorf("%w: %#02x", ErrModeInvalid, uint8(mode))
		return
	}
	regs.slot[REG_CPSR] = (regs.slot[REG_CPSR] &^ PSR_MODE_MASK) | uint32(mode)
	return
}

// CPSR returns the current program status register.
func (regs *Registers) CPSR() uint32 {
	return regs.slot[REG_CPSR]
}

// SetCPSR replaces the current program status register. The mode bits must
// name a valid mode.
func (regs *Registers) SetCPSR(value uint32) (err error) {
	mode := Mode(value & PSR_MODE_MASK)
	if !mode.Valid() {
		err = fmt.Errorf("%w: %#02x", ErrModeInvalid, uint8(mode))
		return
	}
	regs.slot[REG_CPSR] = value
	return
}

// SPSR returns the saved program status register of the current mode.
func (regs *Registers) SPSR() (value uint32, err error) {
	spsr := _bank_spsr[regs.Mode().bank()]
	if spsr == REGISTER_COUNT {
		err = ErrNoSPSR
		return
	}
	value = regs.slot[spsr]
	return
}

// SetSPSR sets the saved program status register of the current mode.
func (regs *Registers) SetSPSR(value uint32) (err error) {
	spsr := _bank_spsr[regs.Mode().bank()]
	if spsr == REGISTER_COUNT {
		err = ErrNoSPSR
		return
	}
	regs.slot[spsr] = value
	return
}

// State returns the instruction set state.
func (regs *Registers) State() State {
	if regs.slot[REG_CPSR]&PSR_T != 0 {
		return STATE_THUMB
	}
	return STATE_ARM
}

// SetState sets the instruction set state.
func (regs *Registers) SetState(state State) {
	if state == STATE_THUMB {
		regs.slot[REG_CPSR] |= PSR_T
	} else {
		regs.slot[REG_CPSR] &^= PSR_T
	}
}

// PC returns r15.
func (regs *Registers) PC() uint32 {
	return regs.slot[REG_R15]
}

// SetPC sets r15.
func (regs *Registers) SetPC(value uint32) {
	regs.slot[REG_R15] = value
}

// Flags returns the condition flags of the CPSR.
func (regs *Registers) Flags() isa.Flags {
	return isa.FlagsOf(regs.slot[REG_CPSR])
}

// SetFlags replaces the condition flags of the CPSR.
func (regs *Registers) SetFlags(fl isa.Flags) {
	regs.slot[REG_CPSR] = fl.Apply(regs.slot[REG_CPSR])
}

// IRQDisabled returns true when the CPSR I bit is set.
func (regs *Registers) IRQDisabled() bool {
	return regs.slot[REG_CPSR]&PSR_I != 0
}

// FIQDisabled returns true when the CPSR F bit is set.
func (regs *Registers) FIQDisabled() bool {
	return regs.slot[REG_CPSR]&PSR_F != 0
}

// String returns the current mode's register view.
func (regs *Registers) String() (text string) {
	mode := regs.Mode()
	if !mode.Valid() {
		return fmt.Sprintf(" cpsr: %04X_%04X (invalid mode)\n", regs.slot[REG_CPSR]>>16, regs.slot[REG_CPSR]&0xffff)
	}

	for n := range field.Reg(16) {
		val := regs.Read(n)
		text += fmt.Sprintf("% 5s: %04X_%04X\n", n, val>>16, val&0xffff)
	}

	cpsr := regs.CPSR()
	text += fmt.Sprintf("% 5s: %04X_%04X %v %v %v\n", "cpsr", cpsr>>16, cpsr&0xffff,
		isa.FlagsOf(cpsr), mode, regs.State())

	spsr, err := regs.SPSR()
	if err == nil {
		text += fmt.Sprintf("% 5s: %04X_%04X\n", "spsr", spsr>>16, spsr&0xffff)
	} else {
		text += fmt.Sprintf("% 5s: ----_----\n", "spsr")
	}

	return
}
