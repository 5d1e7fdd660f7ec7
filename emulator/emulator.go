// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/armcore/asm"
	"github.com/ezrec/armcore/cpu"
	"github.com/ezrec/armcore/internal"
	"github.com/ezrec/armcore/isa"
	"github.com/ezrec/armcore/memory"
)

const (
	RAM_BASE = 0x0000_0000 // Base of work RAM.
	RAM_SIZE = 4 << 20     // 4MiB of work RAM.
)

var _emulator_defines = map[string]string{
	"RAM_BASE": fmt.Sprintf("0x%x", RAM_BASE),
	"RAM_SIZE": fmt.Sprintf("0x%x", RAM_SIZE),
}

// Emulator state. CPU + memory bus + the loaded image.
type Emulator struct {
	Verbose  bool       // If set, enables verbose logging.
	*cpu.Cpu            // Reference to the CPU simulation.
	Image    *asm.Image // Reference to the currently loaded image.

	Bus memory.Bus  // Memory bus.
	Ram *memory.Ram // Work RAM, mapped at RAM_BASE.
}

// NewEmulator creates a new emulator of the given core model.
func NewEmulator(model cpu.Model) (emu *Emulator) {
	emu = &Emulator{
		Image: &asm.Image{},
		Ram:   memory.NewRam(RAM_BASE, RAM_SIZE),
	}

	err := emu.Bus.Map(emu.Ram)
	if err != nil {
		panic(err)
	}

	emu.Cpu = cpu.NewCpu(model, &emu.Bus)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadRom maps a read-only image file at base.
func (emu *Emulator) LoadRom(filesys fs.FS, name string, base uint32) (err error) {
	rom, err := memory.ReadRom(filesys, name, base)
	if err != nil {
		return
	}

	return emu.Bus.Map(rom)
}

// Reset clears RAM, loads the image and resets the CPU to the image
// entry point. An entry point with bit 0 set starts in Thumb state.
func (emu *Emulator) Reset() (err error) {
	emu.Bus.Verbose = emu.Verbose
	emu.Ram.Reset()

	for address, data := range emu.Image.Segments() {
		err = emu.Bus.Load(address, data)
		if err != nil {
			return
		}
	}

	entry := emu.Image.Entry
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset(entry &^ 1)
	if entry&1 != 0 {
		emu.Cpu.Registers.SetState(cpu.STATE_THUMB)
	}

	if emu.Verbose {
		log.Printf("emulator: reset, entry %#08x", entry)
	}

	return
}

// LineNo returns the source line number of the instruction at PC, or 0
// if it is not in the image.
func (emu *Emulator) LineNo() int {
	dbg := emu.Image.Debug(emu.Cpu.Registers.PC())
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator. It is done when the core
// branches to itself with no exception pending.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Registers.PC()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	_, pending := emu.Cpu.Exceptions.Pending()
	done = emu.Cpu.Registers.PC() == pc && !pending

	return
}

// Trapped returns true if err is a guest fault that the core has already
// raised as a processor exception. The guest handler runs on the next Tick.
func (emu *Emulator) Trapped(err error) bool {
	if _, pending := emu.Cpu.Exceptions.Pending(); !pending {
		return false
	}

	var abort *cpu.ErrAbort
	switch {
	case errors.As(err, &abort):
		return true
	case errors.Is(err, isa.ErrUndefined),
		errors.Is(err, isa.ErrUnpredictable),
		errors.Is(err, isa.ErrNotClassified):
		return true
	}

	return false
}
