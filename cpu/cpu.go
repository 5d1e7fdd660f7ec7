package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"time"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

var _cpu_defines = map[string]string{
	"VECTOR_RESET":          fmt.Sprintf("0x%x", VECTOR_RESET),
	"VECTOR_UNDEFINED":      fmt.Sprintf("0x%x", VECTOR_UNDEFINED),
	"VECTOR_SWI":            fmt.Sprintf("0x%x", VECTOR_SWI),
	"VECTOR_PREFETCH_ABORT": fmt.Sprintf("0x%x", VECTOR_PREFETCH_ABORT),
	"VECTOR_DATA_ABORT":     fmt.Sprintf("0x%x", VECTOR_DATA_ABORT),
	"VECTOR_IRQ":            fmt.Sprintf("0x%x", VECTOR_IRQ),
	"VECTOR_FIQ":            fmt.Sprintf("0x%x", VECTOR_FIQ),
	"MODE_USR":              fmt.Sprintf("0x%x", uint8(MODE_USER)),
	"MODE_FIQ":              fmt.Sprintf("0x%x", uint8(MODE_FIQ)),
	"MODE_IRQ":              fmt.Sprintf("0x%x", uint8(MODE_IRQ)),
	"MODE_SVC":              fmt.Sprintf("0x%x", uint8(MODE_SUPERVISOR)),
	"MODE_ABT":              fmt.Sprintf("0x%x", uint8(MODE_ABORT)),
	"MODE_UND":              fmt.Sprintf("0x%x", uint8(MODE_UNDEFINED)),
	"MODE_SYS":              fmt.Sprintf("0x%x", uint8(MODE_SYSTEM)),
	"PSR_T":                 fmt.Sprintf("0x%x", PSR_T),
	"PSR_F":                 fmt.Sprintf("0x%x", PSR_F),
	"PSR_I":                 fmt.Sprintf("0x%x", PSR_I),
}

// Cpu is the simulation context of one ARM core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Model      Model      // Core model.
	Registers  Registers  // Banked register file.
	Exceptions Exceptions // Exception controller.
	Memory     Memory     // Attached memory.

	Ticks   int           // Instructions stepped.
	Elapsed time.Duration // Ticks times the model tick duration.

	decoder  isa.Decoder
	branched bool // PC written by the current instruction.
	linked   bool // Thumb BL prefix executed, suffix pending.
}

// NewCpu creates a core of the given model attached to memory. The core is
// reset with an entry point of 0.
func NewCpu(model Model, memory Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Model:   model,
		Memory:  memory,
		decoder: isa.NewDecoder(model.Arch()),
	}
	cpu.Reset(0)

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and enters Supervisor mode, ARM state.
// - Drops pending exceptions.
// - Zeros statistics counters.
// - Sets PC to entry.
func (cpu *Cpu) Reset(entry uint32) {
	if cpu.Verbose {
		log.Printf("cpu: reset %v, entry %#08x", cpu.Model, entry)
	}

	cpu.decoder = isa.NewDecoder(cpu.Model.Arch())
	cpu.Registers.Reset()
	cpu.Registers.SetPC(entry)
	cpu.Exceptions.Reset()
	cpu.Ticks = 0
	cpu.Elapsed = 0
	cpu.branched = false
	cpu.linked = false
}

// Interrupt raises an exception, honouring the CPSR I and F masks for IRQ
// and FIQ. It returns true if the exception is now pending.
func (cpu *Cpu) Interrupt(kind ExceptionKind) (ok bool) {
	switch {
	case kind == EXCEPTION_IRQ && cpu.Registers.IRQDisabled():
		return
	case kind == EXCEPTION_FIQ && cpu.Registers.FIQDisabled():
		return
	}
	return cpu.Exceptions.Raise(kind)
}

// LinkPending returns true between the two halves of a Thumb BL.
func (cpu *Cpu) LinkPending() bool {
	return cpu.linked
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Registers.String()
	pending := "-"
	if e, ok := cpu.Exceptions.Pending(); ok {
		pending = e.Kind.String()
	}
	text += fmt.Sprintf("% 5s: %v\n", "exc", pending)
	text += fmt.Sprintf("% 5s: %v (%v)\n", "ticks", cpu.Ticks, cpu.Elapsed)
	return
}

// Tick dispatches the most urgent pending exception, then steps one
// instruction.
func (cpu *Cpu) Tick() (err error) {
	cpu.Exceptions.Verbose = cpu.Verbose
	cpu.Exceptions.Dispatch(&cpu.Registers)

	return cpu.Step()
}

// Step fetches, decodes and executes the instruction at PC.
//   - A fetch failure raises a prefetch abort and leaves PC unchanged.
//   - A decode failure raises an undefined instruction exception and
//     advances PC.
//   - A failed condition advances PC only.
func (cpu *Cpu) Step() (err error) {
	if cpu.Memory == nil {
		err = ErrMemoryMissing
		return
	}

	regs := &cpu.Registers
	pc := regs.PC()

	var inst isa.Instruction
	var size uint32
	if regs.State() == STATE_THUMB {
		pc &^= 1
		size = 2
		var half uint16
		half, err = cpu.Memory.FetchHalfword(pc)
		if err != nil {
			err = cpu.abort(EXCEPTION_PREFETCH_ABORT, pc, err)
			return
		}
		inst, err = cpu.decoder.Thumb(half, pc)
	} else {
		pc &^= 3
		size = 4
		var word uint32
		word, err = cpu.Memory.FetchWord(pc)
		if err != nil {
			err = cpu.abort(EXCEPTION_PREFETCH_ABORT, pc, err)
			return
		}
		inst, err = cpu.decoder.ARM(word, pc)
	}

	cpu.Ticks++
	cpu.Elapsed += cpu.Model.TickDuration()

	if err != nil {
		if cpu.Verbose {
			log.Printf("cpu: %v", err)
		}
		cpu.Exceptions.Raise(EXCEPTION_UNDEFINED)
		regs.SetPC(pc + size)
		cpu.linked = false
		return
	}

	if !isa.Evaluate(inst.Condition, regs.Flags()) {
		if cpu.Verbose {
			log.Printf("cpu: %v (skipped)", inst)
		}
		regs.SetPC(pc + size)
		cpu.linked = false
		return
	}

	return cpu.Execute(inst)
}

// Execute applies a decoded instruction whose condition has passed. While
// the effect runs, r15 reads as the instruction address plus two
// instruction widths.
func (cpu *Cpu) Execute(inst isa.Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrExecute{Instruction: inst, Err: err}
		}
	}()

	if !inst.Valid() {
		err = isa.ErrOperandMismatch
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v", inst)
	}

	regs := &cpu.Registers
	size := inst.Size()

	cpu.branched = false
	regs.SetPC(inst.Address + 2*size)
	err = _effect[inst.Opcode](cpu, inst)
	if !cpu.branched {
		regs.SetPC(inst.Address + size)
	}

	// Only a BL prefix keeps the pairing open.
	tb, ok := inst.Operand.(isa.ThumbBranch)
	if !ok || tb.Half != isa.LINK_HIGH {
		cpu.linked = false
	}

	return
}

// abort raises a prefetch or data abort for a failed memory access.
func (cpu *Cpu) abort(kind ExceptionKind, address uint32, cause error) error {
	cpu.Exceptions.Raise(kind)
	return &ErrAbort{Kind: kind, Address: address, Err: cause}
}

// branch writes PC, aligned for the current state.
func (cpu *Cpu) branch(target uint32) {
	if cpu.Registers.State() == STATE_THUMB {
		target &^= 1
	} else {
		target &^= 3
	}
	cpu.Registers.SetPC(target)
	cpu.branched = true
}

// exchange branches to target, entering Thumb state when bit 0 is set.
func (cpu *Cpu) exchange(target uint32) {
	if target&1 != 0 {
		cpu.Registers.SetState(STATE_THUMB)
	} else {
		cpu.Registers.SetState(STATE_ARM)
	}
	cpu.branch(target)
}

// loadPC writes a loaded value to PC. From ARMv5 on, loads interwork.
func (cpu *Cpu) loadPC(value uint32) {
	if cpu.decoder.Arch >= isa.ARMv5TE {
		cpu.exchange(value)
		return
	}
	cpu.branch(value)
}

// write sets a register, branching when it is PC.
func (cpu *Cpu) write(reg field.Reg, value uint32) {
	if reg == field.PC {
		cpu.branch(value)
		return
	}
	cpu.Registers.Write(reg, value)
}

// restoreCPSR copies the SPSR of the current mode into the CPSR.
func (cpu *Cpu) restoreCPSR() (err error) {
	spsr, err := cpu.Registers.SPSR()
	if err != nil {
		return
	}
	return cpu.Registers.SetCPSR(spsr)
}
