package isa

import (
	"fmt"
)

// Arch is the instruction set revision being decoded.
type Arch int

const (
	ARMv4T  = Arch(4) // ARM7TDMI
	ARMv5TE = Arch(5) // ARM946E-S
)

// Instruction is a decoded instruction.
type Instruction struct {
	Opcode    Opcode
	Operand   Operand
	Condition Condition
	Address   uint32
	Word      uint32 // Encoded word; Thumb halfwords are zero extended.
	Thumb     bool
}

// newInstruction checks the operand shape against the opcode.
func newInstruction(op Opcode, operand Operand, cond Condition, address, word uint32, thumb bool) (inst Instruction, err error) {
	if operand == nil || !op.accepts(operand) {
		err = ErrOperandMismatch
		return
	}

	inst = Instruction{
		Opcode:    op,
		Operand:   operand,
		Condition: cond,
		Address:   address,
		Word:      word,
		Thumb:     thumb,
	}
	return
}

// Valid returns true if the operand shape matches the opcode, as it does for
// every decoded instruction.
func (inst Instruction) Valid() bool {
	return inst.Operand != nil && inst.Opcode.accepts(inst.Operand)
}

// Size returns the width of the encoded instruction in bytes.
func (inst Instruction) Size() uint32 {
	if inst.Thumb {
		return 2
	}
	return 4
}

// Mnemonic returns the assembler mnemonic, including condition and flag
// suffixes.
func (inst Instruction) Mnemonic() (name string) {
	cond := inst.Condition.String()
	if inst.Condition == AL || (inst.Condition == NV && !inst.Thumb) {
		cond = ""
	}

	switch operand := inst.Operand.(type) {
	case DataProcessing:
		name = operand.Alu.String() + cond
		if operand.S.IsSet() && !operand.Alu.Compare() {
			name += "s"
		}
	case Multiply:
		name = "mul"
		if operand.A.IsSet() {
			name = "mla"
		}
		name += cond
		if operand.S.IsSet() {
			name += "s"
		}
	case MultiplyLong:
		name = "u"
		if operand.U.IsSet() {
			name = "s"
		}
		if operand.A.IsSet() {
			name += "mlal"
		} else {
			name += "mull"
		}
		name += cond
		if operand.S.IsSet() {
			name += "s"
		}
	case Swap:
		name = "swp" + cond
		if operand.B.IsSet() {
			name += "b"
		}
	case BranchExchange:
		name = "bx"
		if operand.Link.IsSet() {
			name = "blx"
		}
		name += cond
	case HalfwordTransfer:
		name = "str"
		if operand.L.IsSet() {
			name = "ldr"
		}
		name += cond
		if operand.S.IsSet() {
			name += "s"
		}
		if operand.H.IsSet() {
			name += "h"
		} else {
			name += "b"
		}
	case SingleTransfer:
		name = "str"
		if operand.L.IsSet() {
			name = "ldr"
		}
		name += cond
		if operand.B.IsSet() {
			name += "b"
		}
		if !operand.P.IsSet() && operand.W.IsSet() {
			name += "t"
		}
	case BlockTransfer:
		name = "stm"
		if operand.L.IsSet() {
			name = "ldm"
		}
		name += cond
		name += [4]string{"da", "ia", "db", "ib"}[operand.P<<1|operand.U]
	case CoprocessorTransfer:
		name = inst.Opcode.String() + cond
		if operand.N.IsSet() {
			name += "l"
		}
	case CoprocessorRegister:
		name = "mcr"
		if operand.L.IsSet() {
			name = "mrc"
		}
		name += cond
	case ConditionalBranch:
		name = "b" + operand.Cond.String()
	case ThumbBranch:
		name = [4]string{"b", "blx", "bl", "bl"}[operand.Half]
	default:
		name = inst.Opcode.String() + cond
	}

	return
}

func (inst Instruction) String() string {
	if inst.Operand == nil {
		return fmt.Sprintf("%08x: <none>", inst.Address)
	}
	return fmt.Sprintf("%08x: %v %v", inst.Address, inst.Mnemonic(), inst.Operand)
}
