package cpu

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fuzzCpu returns a core about to execute word (or its low half) at 0x100,
// with every general register pointing into memory.
func fuzzCpu(model Model, word uint32, thumb bool, flags uint8) (cpu *Cpu) {
	cpu, mem := newTestCpu(model)
	binary.LittleEndian.PutUint32(mem.Data[0x100:], word)

	for reg := range 15 {
		cpu.Registers.SetSlot(Register(reg), 0x1000+uint32(reg)*0x100)
	}
	cpu.Registers.SetPC(0x100)
	cpu.Registers.SetSlot(REG_CPSR, cpu.Registers.CPSR()|uint32(flags&0xf)<<28)
	if thumb {
		cpu.Registers.SetState(STATE_THUMB)
	}

	return
}

func FuzzStep(f *testing.F) {
	for _, word := range []uint32{
		0xe1b0_f00e, 0xe8bd_80f0, 0xe12f_ff10, 0xef00_0042, 0xe7f0_00f0,
		0xe5a0_1004, 0xe083_2190, 0xe16f_0f11, 0xfa00_0000, 0xf802_f000,
		0x0000_d0fe, 0x0000_4770, 0xe321_f01f, 0xe8a0_0000,
	} {
		f.Add(word, false, false, uint8(0))
		f.Add(word, true, true, uint8(0xf))
	}

	f.Fuzz(func(t *testing.T, word uint32, thumb bool, v5e bool, flags uint8) {
		assert := assert.New(t)

		model := MODEL_ARM7TDMI
		if v5e {
			model = MODEL_ARM946ES
		}

		cpu := fuzzCpu(model, word, thumb, flags)
		err := cpu.Step()

		assert.True(cpu.Registers.Mode().Valid(), "%08x", word)
		if cpu.Registers.State() == STATE_THUMB {
			assert.Equal(uint32(0), cpu.Registers.PC()&1, "%08x", word)
		} else {
			assert.Equal(uint32(0), cpu.Registers.PC()&3, "%08x", word)
		}
		assert.Equal(1, cpu.Ticks)

		// Deterministic.
		again := fuzzCpu(model, word, thumb, flags)
		again_err := again.Step()
		assert.Equal(err == nil, again_err == nil, "%08x", word)
		assert.Equal(cpu.Registers, again.Registers, "%08x", word)
		assert.Equal(cpu.Exceptions.Stack.Data, again.Exceptions.Stack.Data, "%08x", word)
	})
}
