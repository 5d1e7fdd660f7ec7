package cpu

import (
	"math/bits"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

// storage returns the write side of the attached memory.
func (cpu *Cpu) storage(address uint32) (st Storage, err error) {
	st, ok := cpu.Memory.(Storage)
	if !ok {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, ErrReadOnly)
	}
	return
}

// loadWord reads a word; unaligned addresses rotate the aligned word.
func (cpu *Cpu) loadWord(address uint32) (value uint32, err error) {
	value, err = cpu.Memory.FetchWord(address &^ 3)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
		return
	}
	value = bits.RotateLeft32(value, -8*int(address&3))
	return
}

func (cpu *Cpu) loadHalfword(address uint32) (value uint16, err error) {
	value, err = cpu.Memory.FetchHalfword(address &^ 1)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
	}
	return
}

func (cpu *Cpu) loadByte(address uint32) (value uint8, err error) {
	value, err = cpu.Memory.FetchByte(address)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
	}
	return
}

func (cpu *Cpu) storeWord(address uint32, value uint32) (err error) {
	st, err := cpu.storage(address)
	if err != nil {
		return
	}
	err = st.StoreWord(address&^3, value)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
	}
	return
}

func (cpu *Cpu) storeHalfword(address uint32, value uint16) (err error) {
	st, err := cpu.storage(address)
	if err != nil {
		return
	}
	err = st.StoreHalfword(address&^1, value)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
	}
	return
}

func (cpu *Cpu) storeByte(address uint32, value uint8) (err error) {
	st, err := cpu.storage(address)
	if err != nil {
		return
	}
	err = st.StoreByte(address, value)
	if err != nil {
		err = cpu.abort(EXCEPTION_DATA_ABORT, address, err)
	}
	return
}

// storeValue reads a register for storing. A stored PC is the instruction
// address plus 12.
func (cpu *Cpu) storeValue(reg field.Reg) uint32 {
	return cpu.readAhead(reg)
}

// addressing returns the transfer address and the written-back base.
func addressing(base uint32, offset uint32, p, u field.Flag) (address uint32, writeback uint32) {
	if u.IsSet() {
		writeback = base + offset
	} else {
		writeback = base - offset
	}
	address = base
	if p.IsSet() {
		address = writeback
	}
	return
}

func (cpu *Cpu) singleTransfer(inst isa.Instruction) (err error) {
	st := inst.Operand.(isa.SingleTransfer)
	regs := &cpu.Registers

	offset := uint32(st.Mode2.Offset)
	if st.Mode2.Register.IsSet() {
		offset, _ = shiftImmediate(st.Mode2.Shift, regs.Read(st.Mode2.Rm), st.Mode2.ShiftImm, regs.Flags().C)
	}

	address, writeback := addressing(regs.Read(st.Rn), offset, st.P, st.U)

	var value uint32
	if st.L.IsSet() {
		if st.B.IsSet() {
			var b uint8
			b, err = cpu.loadByte(address)
			value = uint32(b)
		} else {
			value, err = cpu.loadWord(address)
		}
	} else {
		if st.B.IsSet() {
			err = cpu.storeByte(address, uint8(cpu.storeValue(st.Rd)))
		} else {
			err = cpu.storeWord(address, cpu.storeValue(st.Rd))
		}
	}
	if err != nil {
		return
	}

	if !st.P.IsSet() || st.W.IsSet() {
		cpu.write(st.Rn, writeback)
	}

	if st.L.IsSet() {
		if st.Rd == field.PC {
			cpu.loadPC(value)
		} else {
			regs.Write(st.Rd, value)
		}
	}

	return
}

func (cpu *Cpu) halfwordTransfer(inst isa.Instruction) (err error) {
	ht := inst.Operand.(isa.HalfwordTransfer)
	regs := &cpu.Registers

	offset := uint32(ht.Offset)
	if !ht.I.IsSet() {
		offset = regs.Read(ht.Rm)
	}

	address, writeback := addressing(regs.Read(ht.Rn), offset, ht.P, ht.U)

	var value uint32
	switch {
	case !ht.L.IsSet():
		err = cpu.storeHalfword(address, uint16(cpu.storeValue(ht.Rd)))
	case ht.S.IsSet() && ht.H.IsSet():
		var half uint16
		half, err = cpu.loadHalfword(address)
		value = uint32(int32(int16(half)))
	case ht.S.IsSet():
		var b uint8
		b, err = cpu.loadByte(address)
		value = uint32(int32(int8(b)))
	default:
		var half uint16
		half, err = cpu.loadHalfword(address)
		value = uint32(half)
	}
	if err != nil {
		return
	}

	if !ht.P.IsSet() || ht.W.IsSet() {
		cpu.write(ht.Rn, writeback)
	}

	if ht.L.IsSet() {
		cpu.write(ht.Rd, value)
	}

	return
}

// blockTransfer implements LDM and STM.
//   - An empty list transfers PC only and moves the base by 0x40.
//   - With S set, a list without PC transfers the User bank; LDM with PC
//     also restores the CPSR from the SPSR.
//   - STM stores the original base when Rn is the lowest listed register,
//     otherwise the written-back base.
//   - A failed access leaves every register unchanged.
func (cpu *Cpu) blockTransfer(inst isa.Instruction) (err error) {
	bt := inst.Operand.(isa.BlockTransfer)
	regs := &cpu.Registers

	list := bt.List
	size := uint32(list.Count()) * 4
	if list == 0 {
		list = 1 << field.PC
		size = 0x40
	}

	base := regs.Read(bt.Rn)
	var address, writeback uint32
	if bt.U.IsSet() {
		writeback = base + size
		address = base
		if bt.P.IsSet() {
			address += 4
		}
	} else {
		writeback = base - size
		address = writeback
		if !bt.P.IsSet() {
			address += 4
		}
	}

	user := bt.S.IsSet() && !(bt.L.IsSet() && list.Has(field.PC))

	if !bt.L.IsSet() {
		first := true
		for reg := range list.Regs() {
			var value uint32
			switch {
			case reg == bt.Rn && bt.W.IsSet() && !first:
				value = writeback
			case user:
				value = regs.UserRead(reg)
				if reg == field.PC {
					value += 4
				}
			default:
				value = cpu.storeValue(reg)
			}
			err = cpu.storeWord(address, value)
			if err != nil {
				return
			}
			address += 4
			first = false
		}

		if bt.W.IsSet() {
			regs.Write(bt.Rn, writeback)
		}
		return
	}

	var values [16]uint32
	for reg := range list.Regs() {
		values[reg], err = cpu.loadWord(address &^ 3)
		if err != nil {
			return
		}
		address += 4
	}

	if bt.W.IsSet() {
		regs.Write(bt.Rn, writeback)
	}

	for reg := range list.Regs() {
		switch {
		case reg == field.PC:
		case user:
			regs.UserWrite(reg, values[reg])
		default:
			regs.Write(reg, values[reg])
		}
	}

	if list.Has(field.PC) {
		if bt.S.IsSet() {
			err = cpu.restoreCPSR()
			if err != nil {
				return
			}
			cpu.branch(values[field.PC])
			return
		}
		cpu.loadPC(values[field.PC])
	}

	return
}

// swap implements SWP and SWPB as a load followed by a store.
func (cpu *Cpu) swap(inst isa.Instruction) (err error) {
	s := inst.Operand.(isa.Swap)
	regs := &cpu.Registers

	address := regs.Read(s.Rn)
	source := regs.Read(s.Rm)

	var value uint32
	if s.B.IsSet() {
		var b uint8
		b, err = cpu.loadByte(address)
		if err != nil {
			return
		}
		value = uint32(b)
		err = cpu.storeByte(address, uint8(source))
	} else {
		value, err = cpu.loadWord(address)
		if err != nil {
			return
		}
		err = cpu.storeWord(address, source)
	}
	if err != nil {
		return
	}

	regs.Write(s.Rd, value)
	return
}
