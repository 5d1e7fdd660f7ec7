package cpu

import (
	"log"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

// effect applies an instruction to the core.
type effect func(cpu *Cpu, inst isa.Instruction) error

var _effect = [isa.OP_COUNT]effect{
	isa.OP_DATA_PROCESSING:       (*Cpu).dataProcessing,
	isa.OP_MULTIPLY:              (*Cpu).multiply,
	isa.OP_MULTIPLY_LONG:         (*Cpu).multiplyLong,
	isa.OP_SWAP:                  (*Cpu).swap,
	isa.OP_BRANCH_EXCHANGE:       (*Cpu).branchExchange,
	isa.OP_COUNT_LEADING_ZEROS:   (*Cpu).countLeadingZeros,
	isa.OP_STATUS_READ:           (*Cpu).statusRead,
	isa.OP_STATUS_WRITE:          (*Cpu).statusWrite,
	isa.OP_HALFWORD_TRANSFER:     (*Cpu).halfwordTransfer,
	isa.OP_SINGLE_TRANSFER:       (*Cpu).singleTransfer,
	isa.OP_BLOCK_TRANSFER:        (*Cpu).blockTransfer,
	isa.OP_BRANCH:                (*Cpu).branchOffset,
	isa.OP_BRANCH_LINK:           (*Cpu).branchOffset,
	isa.OP_BRANCH_LINK_EXCHANGE:  (*Cpu).branchLinkExchange,
	isa.OP_COPROCESSOR_LOAD:      (*Cpu).coprocessor,
	isa.OP_COPROCESSOR_STORE:     (*Cpu).coprocessor,
	isa.OP_COPROCESSOR_DATA:      (*Cpu).coprocessor,
	isa.OP_COPROCESSOR_REGISTER:  (*Cpu).coprocessor,
	isa.OP_SOFTWARE_INTERRUPT:    (*Cpu).softwareInterrupt,
	isa.OP_PRELOAD:               (*Cpu).preload,
	isa.OP_THUMB_BRANCH_COND:     (*Cpu).thumbBranchCond,
	isa.OP_THUMB_BRANCH:          (*Cpu).thumbBranch,
	isa.OP_THUMB_BRANCH_LINK:     (*Cpu).thumbBranch,
	isa.OP_THUMB_BRANCH_EXCHANGE: (*Cpu).branchExchange,
}

// returnAddress is the LR value for a call from inst.
func returnAddress(inst isa.Instruction) uint32 {
	if inst.Thumb {
		return (inst.Address + 2) | 1
	}
	return inst.Address + 4
}

func (cpu *Cpu) branchOffset(inst isa.Instruction) (err error) {
	br := inst.Operand.(isa.Branch)
	if br.Link.IsSet() {
		cpu.Registers.Write(field.LR, returnAddress(inst))
	}
	cpu.branch(br.Target(inst.Address))
	return
}

// branchExchange implements BX and BLX (register) in both states.
func (cpu *Cpu) branchExchange(inst isa.Instruction) (err error) {
	bx := inst.Operand.(isa.BranchExchange)
	target := cpu.Registers.Read(bx.Rm)
	if bx.Link.IsSet() {
		cpu.Registers.Write(field.LR, returnAddress(inst))
	}
	cpu.exchange(target)
	return
}

func (cpu *Cpu) branchLinkExchange(inst isa.Instruction) (err error) {
	blx := inst.Operand.(isa.BranchLinkExchange)
	cpu.Registers.Write(field.LR, returnAddress(inst))
	cpu.exchange(blx.Target(inst.Address) | 1)
	return
}

func (cpu *Cpu) softwareInterrupt(inst isa.Instruction) (err error) {
	if cpu.Verbose {
		swi := inst.Operand.(isa.SoftwareInterrupt)
		log.Printf("cpu: swi %#x", swi.Comment)
	}
	cpu.Exceptions.Raise(EXCEPTION_SWI)
	return
}

// coprocessor handles every coprocessor form. No coprocessor is attached,
// so each one is an undefined instruction.
func (cpu *Cpu) coprocessor(inst isa.Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: %v: %v", inst, ErrCoprocessor)
	}
	cpu.Exceptions.Raise(EXCEPTION_UNDEFINED)
	return
}

// preload is a cache hint.
func (cpu *Cpu) preload(inst isa.Instruction) (err error) {
	return
}

func (cpu *Cpu) thumbBranchCond(inst isa.Instruction) (err error) {
	cb := inst.Operand.(isa.ConditionalBranch)
	cpu.branch(cb.Target(inst.Address))
	return
}

// thumbBranch implements B and the two halves of BL and BLX.
//   - The BL prefix leaves PC + (offset << 12) in LR.
//   - The suffix branches to LR + (offset << 1) and leaves the return
//     address in LR. The BLX suffix also enters ARM state.
func (cpu *Cpu) thumbBranch(inst isa.Instruction) (err error) {
	tb := inst.Operand.(isa.ThumbBranch)
	regs := &cpu.Registers

	switch tb.Half {
	case isa.LINK_NONE:
		offset := uint32(field.SignExtend(uint32(tb.Offset)<<1, 12))
		cpu.branch(regs.PC() + offset)
	case isa.LINK_HIGH:
		offset := uint32(field.SignExtend(uint32(tb.Offset)<<12, 23))
		regs.Write(field.LR, regs.PC()+offset)
		cpu.linked = true
	case isa.LINK_LOW, isa.LINK_EXCHANGE:
		if !cpu.linked && cpu.Verbose {
			log.Printf("cpu: %v: suffix without prefix", inst)
		}
		target := regs.Read(field.LR) + uint32(tb.Offset)<<1
		regs.Write(field.LR, returnAddress(inst))
		if tb.Half == isa.LINK_EXCHANGE {
			cpu.exchange(target &^ 3)
		} else {
			cpu.branch(target)
		}
	}
	return
}
