package cpu

import (
	"math/bits"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

// shiftImmediate applies an immediate-amount shift, where an amount of 0
// encodes LSR #32, ASR #32 and RRX.
func shiftImmediate(kind isa.ShiftType, value uint32, amount uint8, carry bool) (result uint32, carryOut bool) {
	if amount == 0 {
		switch kind {
		case isa.SHIFT_LSL:
			return value, carry
		case isa.SHIFT_ROR:
			result = value >> 1
			if carry {
				result |= 1 << 31
			}
			return result, value&1 != 0
		}
		return shiftRegister(kind, value, 32, carry)
	}
	return shiftRegister(kind, value, uint32(amount), carry)
}

// shiftRegister applies a shift by the bottom byte of a register.
func shiftRegister(kind isa.ShiftType, value uint32, amount uint32, carry bool) (result uint32, carryOut bool) {
	amount &= 0xff
	if amount == 0 {
		return value, carry
	}

	switch kind {
	case isa.SHIFT_LSL:
		switch {
		case amount < 32:
			result = value << amount
			carryOut = value&(1<<(32-amount)) != 0
		case amount == 32:
			carryOut = value&1 != 0
		}
	case isa.SHIFT_LSR:
		switch {
		case amount < 32:
			result = value >> amount
			carryOut = value&(1<<(amount-1)) != 0
		case amount == 32:
			carryOut = value&(1<<31) != 0
		}
	case isa.SHIFT_ASR:
		if amount >= 32 {
			result = uint32(int32(value) >> 31)
			carryOut = value&(1<<31) != 0
			return
		}
		result = uint32(int32(value) >> amount)
		carryOut = value&(1<<(amount-1)) != 0
	case isa.SHIFT_ROR:
		amount &= 31
		if amount == 0 {
			return value, value&(1<<31) != 0
		}
		result = bits.RotateLeft32(value, -int(amount))
		carryOut = result&(1<<31) != 0
	}
	return
}

// addWithCarry returns a + b + carry with the carry and overflow outputs.
func addWithCarry(a, b uint32, carry bool) (result uint32, carryOut bool, overflow bool) {
	var cin uint32
	if carry {
		cin = 1
	}
	result, cout := bits.Add32(a, b, cin)
	carryOut = cout != 0
	overflow = ((a^result)&(b^result))>>31 != 0
	return
}

// operand2 evaluates a shifter operand. Register-specified shifts read PC
// one word further ahead.
func (cpu *Cpu) operand2(so isa.ShifterOperand, carry bool) (value uint32, carryOut bool) {
	if so.Immediate.IsSet() {
		value = so.Value()
		carryOut = carry
		if so.Rotate != 0 {
			carryOut = value&(1<<31) != 0
		}
		return
	}

	if so.ShiftByReg.IsSet() {
		rm := cpu.readAhead(so.Rm)
		return shiftRegister(so.Shift, rm, cpu.Registers.Read(so.Rs), carry)
	}

	return shiftImmediate(so.Shift, cpu.Registers.Read(so.Rm), so.ShiftImm, carry)
}

// readAhead reads a register, with PC one word past its usual value.
func (cpu *Cpu) readAhead(reg field.Reg) uint32 {
	value := cpu.Registers.Read(reg)
	if reg == field.PC {
		value += 4
	}
	return value
}

func (cpu *Cpu) dataProcessing(inst isa.Instruction) (err error) {
	dp := inst.Operand.(isa.DataProcessing)
	regs := &cpu.Registers

	fl := regs.Flags()
	op2, shiftCarry := cpu.operand2(dp.Op2, fl.C)

	rn := regs.Read(dp.Rn)
	if dp.Op2.ShiftByReg.IsSet() && dp.Rn == field.PC {
		rn += 4
	}

	var result uint32
	carry, overflow := fl.C, fl.V
	switch dp.Alu {
	case isa.ALU_AND, isa.ALU_TST:
		result = rn & op2
	case isa.ALU_EOR, isa.ALU_TEQ:
		result = rn ^ op2
	case isa.ALU_SUB, isa.ALU_CMP:
		result, carry, overflow = addWithCarry(rn, ^op2, true)
	case isa.ALU_RSB:
		result, carry, overflow = addWithCarry(op2, ^rn, true)
	case isa.ALU_ADD, isa.ALU_CMN:
		result, carry, overflow = addWithCarry(rn, op2, false)
	case isa.ALU_ADC:
		result, carry, overflow = addWithCarry(rn, op2, fl.C)
	case isa.ALU_SBC:
		result, carry, overflow = addWithCarry(rn, ^op2, fl.C)
	case isa.ALU_RSC:
		result, carry, overflow = addWithCarry(op2, ^rn, fl.C)
	case isa.ALU_ORR:
		result = rn | op2
	case isa.ALU_MOV:
		result = op2
	case isa.ALU_BIC:
		result = rn &^ op2
	case isa.ALU_MVN:
		result = ^op2
	}
	if dp.Alu.Logical() {
		carry = shiftCarry
	}

	if dp.S.IsSet() {
		if dp.Rd == field.PC && !dp.Alu.Compare() {
			err = cpu.restoreCPSR()
			if err != nil {
				return
			}
		} else {
			regs.SetFlags(isa.Flags{N: result>>31 != 0, Z: result == 0, C: carry, V: overflow})
		}
	}

	if !dp.Alu.Compare() {
		cpu.write(dp.Rd, result)
	}

	return
}

func (cpu *Cpu) multiply(inst isa.Instruction) (err error) {
	m := inst.Operand.(isa.Multiply)
	regs := &cpu.Registers

	result := regs.Read(m.Rm) * regs.Read(m.Rs)
	if m.A.IsSet() {
		result += regs.Read(m.Rn)
	}
	regs.Write(m.Rd, result)

	if m.S.IsSet() {
		fl := regs.Flags()
		fl.N = result>>31 != 0
		fl.Z = result == 0
		regs.SetFlags(fl)
	}
	return
}

func (cpu *Cpu) multiplyLong(inst isa.Instruction) (err error) {
	ml := inst.Operand.(isa.MultiplyLong)
	regs := &cpu.Registers

	rm, rs := regs.Read(ml.Rm), regs.Read(ml.Rs)

	var result uint64
	if ml.U.IsSet() {
		result = uint64(int64(int32(rm)) * int64(int32(rs)))
	} else {
		result = uint64(rm) * uint64(rs)
	}
	if ml.A.IsSet() {
		result += uint64(regs.Read(ml.RdHi))<<32 | uint64(regs.Read(ml.RdLo))
	}

	regs.Write(ml.RdLo, uint32(result))
	regs.Write(ml.RdHi, uint32(result>>32))

	if ml.S.IsSet() {
		fl := regs.Flags()
		fl.N = result>>63 != 0
		fl.Z = result == 0
		regs.SetFlags(fl)
	}
	return
}

func (cpu *Cpu) countLeadingZeros(inst isa.Instruction) (err error) {
	clz := inst.Operand.(isa.CountLeadingZeros)
	cpu.Registers.Write(clz.Rd, uint32(bits.LeadingZeros32(cpu.Registers.Read(clz.Rm))))
	return
}

func (cpu *Cpu) statusRead(inst isa.Instruction) (err error) {
	mrs := inst.Operand.(isa.StatusRead)
	regs := &cpu.Registers

	value := regs.CPSR()
	if mrs.R.IsSet() {
		value, err = regs.SPSR()
		if err != nil {
			return
		}
	}
	regs.Write(mrs.Rd, value)
	return
}

// statusWrite implements MSR. User mode may only write the flags byte of
// the CPSR, and the T bit is never written.
func (cpu *Cpu) statusWrite(inst isa.Instruction) (err error) {
	msr := inst.Operand.(isa.StatusWrite)
	regs := &cpu.Registers

	value := regs.Read(msr.Rm)
	if msr.Immediate.IsSet() {
		value = msr.Value()
	}
	mask := msr.ByteMask()

	if msr.R.IsSet() {
		var spsr uint32
		spsr, err = regs.SPSR()
		if err != nil {
			return
		}
		return regs.SetSPSR((spsr &^ mask) | (value & mask))
	}

	if !regs.Mode().Privileged() {
		mask &= PSR_FLAGS
	}
	mask &^= PSR_T

	cpsr := regs.CPSR()
	return regs.SetCPSR((cpsr &^ mask) | (value & mask))
}
