package cpu

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

var errFault = errors.New("bus fault")

// testMemory is 64KiB of RAM at address 0; any access beyond it faults.
type testMemory struct {
	Data []byte
}

func (mem *testMemory) check(address uint32, width int) (err error) {
	if uint64(address)+uint64(width) > uint64(len(mem.Data)) {
		err = errFault
	}
	return
}

func (mem *testMemory) FetchByte(address uint32) (value uint8, err error) {
	if err = mem.check(address, 1); err == nil {
		value = mem.Data[address]
	}
	return
}

func (mem *testMemory) FetchHalfword(address uint32) (value uint16, err error) {
	if err = mem.check(address, 2); err == nil {
		value = binary.LittleEndian.Uint16(mem.Data[address:])
	}
	return
}

func (mem *testMemory) FetchWord(address uint32) (value uint32, err error) {
	if err = mem.check(address, 4); err == nil {
		value = binary.LittleEndian.Uint32(mem.Data[address:])
	}
	return
}

func (mem *testMemory) StoreByte(address uint32, value uint8) (err error) {
	if err = mem.check(address, 1); err == nil {
		mem.Data[address] = value
	}
	return
}

func (mem *testMemory) StoreHalfword(address uint32, value uint16) (err error) {
	if err = mem.check(address, 2); err == nil {
		binary.LittleEndian.PutUint16(mem.Data[address:], value)
	}
	return
}

func (mem *testMemory) StoreWord(address uint32, value uint32) (err error) {
	if err = mem.check(address, 4); err == nil {
		binary.LittleEndian.PutUint32(mem.Data[address:], value)
	}
	return
}

func (mem *testMemory) word(address uint32) uint32 {
	return binary.LittleEndian.Uint32(mem.Data[address:])
}

// romMemory hides the Storage side of a testMemory.
type romMemory struct {
	mem *testMemory
}

func (rom romMemory) FetchByte(address uint32) (uint8, error) { return rom.mem.FetchByte(address) }
func (rom romMemory) FetchHalfword(address uint32) (uint16, error) {
	return rom.mem.FetchHalfword(address)
}
func (rom romMemory) FetchWord(address uint32) (uint32, error) { return rom.mem.FetchWord(address) }

// newTestCpu loads words at address 0 and resets the core there.
func newTestCpu(model Model, words ...uint32) (cpu *Cpu, mem *testMemory) {
	mem = &testMemory{Data: make([]byte, 0x10000)}
	for n, word := range words {
		binary.LittleEndian.PutUint32(mem.Data[4*n:], word)
	}
	cpu = NewCpu(model, mem)
	return
}

func steps(t *testing.T, cpu *Cpu, count int) {
	for range count {
		err := cpu.Step()
		if !assert.NoError(t, err, cpu.String()) {
			return
		}
	}
}

func TestStep_DataProcessing(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []uint32
		reg     field.Reg
		value   uint32
		flags   isa.Flags
	}){
		{"mov_add", []uint32{0xe3a0_0001, 0xe280_1002}, 1, 3, isa.Flags{}},
		{"subs_zero", []uint32{0xe3a0_0001, 0xe050_0000}, 0, 0, isa.Flags{Z: true, C: true}},
		{"adds_overflow", []uint32{0xe3e0_0102, 0xe290_1001}, 1, 0x8000_0000, isa.Flags{N: true, V: true}},
		{"cmp_lt", []uint32{0xe3a0_0001, 0xe350_0005}, 0, 1, isa.Flags{N: true}},
		{"lsl_imm", []uint32{0xe3a0_1001, 0xe1a0_0201}, 0, 0x10, isa.Flags{}},
		{"lsr_32", []uint32{0xe3e0_1000, 0xe1b0_0021}, 0, 0, isa.Flags{Z: true, C: true}},
		{"orr_shift_reg", []uint32{0xe3a0_1003, 0xe3a0_2004, 0xe181_0211}, 0, 0x33, isa.Flags{}},
		{"rsb", []uint32{0xe3a0_1003, 0xe261_000a}, 0, 7, isa.Flags{}},
		{"bic_mvn", []uint32{0xe3e0_1000, 0xe3c1_00ff}, 0, 0xffff_ff00, isa.Flags{}},
		{"add_pc", []uint32{0xe28f_0000}, 0, 8, isa.Flags{}},
	}

	for _, entry := range table {
		cpu, _ := newTestCpu(MODEL_ARM7TDMI, entry.program...)
		steps(t, cpu, len(entry.program))
		assert.Equal(entry.value, cpu.Registers.Read(entry.reg), entry.name)
		assert.Equal(entry.flags, cpu.Registers.Flags(), entry.name)
		assert.Equal(uint32(4*len(entry.program)), cpu.Registers.PC(), entry.name)
	}
}

func TestStep_ConditionSuppressed(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe3b0_0000, // movs r0, #0
		0x13a0_1005, // movne r1, #5
		0x03a0_2006, // moveq r2, #6
	)
	steps(t, cpu, 3)

	assert.Equal(uint32(0), cpu.Registers.Read(1))
	assert.Equal(uint32(6), cpu.Registers.Read(2))
	assert.Equal(uint32(12), cpu.Registers.PC())
	assert.Equal(3, cpu.Ticks)
}

func TestStep_Branch(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xeb00_0000, // bl +8
		0x0000_0000,
		0xeaff_fffe, // b .
	)

	steps(t, cpu, 1)
	assert.Equal(uint32(8), cpu.Registers.PC())
	assert.Equal(uint32(4), cpu.Registers.Read(field.LR))

	steps(t, cpu, 1)
	assert.Equal(uint32(8), cpu.Registers.PC())
}

func TestStep_Interworking(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe28f_0001, // add r0, pc, #1
		0xe12f_ff10, // bx r0
		0xf802_f000, // bl (prefix, suffix +4)
		0x0000_e7fe, // b .
		0x0000_4770, // bx lr
	)

	steps(t, cpu, 2)
	assert.Equal(uint32(9), cpu.Registers.Read(0))
	assert.Equal(STATE_THUMB, cpu.Registers.State())
	assert.Equal(uint32(8), cpu.Registers.PC())

	steps(t, cpu, 1)
	assert.True(cpu.LinkPending())
	assert.Equal(uint32(0xa), cpu.Registers.PC())
	assert.Equal(uint32(0xc), cpu.Registers.Read(field.LR))

	steps(t, cpu, 1)
	assert.False(cpu.LinkPending())
	assert.Equal(uint32(0x10), cpu.Registers.PC())
	assert.Equal(uint32(0xd), cpu.Registers.Read(field.LR))

	steps(t, cpu, 1)
	assert.Equal(uint32(0xc), cpu.Registers.PC())
	assert.Equal(STATE_THUMB, cpu.Registers.State())

	steps(t, cpu, 1)
	assert.Equal(uint32(0xc), cpu.Registers.PC())
}

func TestStep_ThumbConditional(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xd0fe_f000, // bl prefix; beq .
	)
	cpu.Registers.SetState(STATE_THUMB)

	steps(t, cpu, 1)
	assert.True(cpu.LinkPending())

	// Not taken, and the pairing is broken.
	steps(t, cpu, 1)
	assert.False(cpu.LinkPending())
	assert.Equal(uint32(4), cpu.Registers.PC())

	cpu.Registers.SetPC(2)
	cpu.Registers.SetFlags(isa.Flags{Z: true})
	steps(t, cpu, 1)
	assert.Equal(uint32(2), cpu.Registers.PC())
}

func TestStep_ThumbUndefinedBreaksLink(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0x46c0_f000, // bl prefix; mov r8, r8 (not classified)
	)
	cpu.Registers.SetState(STATE_THUMB)

	steps(t, cpu, 1)
	assert.True(cpu.LinkPending())

	err := cpu.Step()
	assert.ErrorIs(err, isa.ErrNotClassified)
	assert.False(cpu.LinkPending())
	assert.Equal(uint32(4), cpu.Registers.PC())

	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_UNDEFINED, e.Kind)
}

func TestStep_LoadStore(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_0c01, // mov r0, #0x100
		0xe3a0_1801, // mov r1, #0x10000
		0xe5a0_1004, // str r1, [r0, #4]!
		0xe590_2000, // ldr r2, [r0]
		0xe5d0_3002, // ldrb r3, [r0, #2]
		0xe490_4008, // ldr r4, [r0], #8
		0xe510_5006, // ldr r5, [r0, #-6]
	)
	steps(t, cpu, 7)

	assert.Equal(uint32(0x1_0000), mem.word(0x104))
	assert.Equal(uint32(0x1_0000), cpu.Registers.Read(2))
	assert.Equal(uint32(0x01), cpu.Registers.Read(3))
	assert.Equal(uint32(0x1_0000), cpu.Registers.Read(4))
	assert.Equal(uint32(0x10c), cpu.Registers.Read(0))
	assert.Equal(uint32(0x1), cpu.Registers.Read(5))
}

func TestStep_Halfword(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_0c01, // mov r0, #0x100
		0xe3e0_1000, // mvn r1, #0
		0xe1c0_10b2, // strh r1, [r0, #2]
		0xe1d0_20b2, // ldrh r2, [r0, #2]
		0xe1d0_30f2, // ldrsh r3, [r0, #2]
		0xe1d0_40d2, // ldrsb r4, [r0, #2]
		0xe1d0_50b0, // ldrh r5, [r0]
	)
	steps(t, cpu, 7)

	assert.Equal(uint32(0xffff_0000), mem.word(0x100))
	assert.Equal(uint32(0xffff), cpu.Registers.Read(2))
	assert.Equal(uint32(0xffff_ffff), cpu.Registers.Read(3))
	assert.Equal(uint32(0xffff_ffff), cpu.Registers.Read(4))
	assert.Equal(uint32(0), cpu.Registers.Read(5))
}

func TestStep_BlockTransfer(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_dc02, // mov sp, #0x200
		0xe3a0_0001, // mov r0, #1
		0xe280_1002, // add r1, r0, #2
		0xe3a0_2002, // mov r2, #2
		0xe3a0_3003, // mov r3, #3
		0xe3a0_e040, // mov lr, #0x40
		0xe92d_400f, // stmdb sp!, {r0-r3, lr}
		0xe8bd_80f0, // ldmia sp!, {r4-r7, pc}
	)

	steps(t, cpu, 7)
	assert.Equal(uint32(0x1ec), cpu.Registers.Read(field.SP))
	for n, want := range []uint32{1, 3, 2, 3, 0x40} {
		assert.Equal(want, mem.word(0x1ec+4*uint32(n)))
	}

	steps(t, cpu, 1)
	assert.Equal(uint32(0x200), cpu.Registers.Read(field.SP))
	assert.Equal(uint32(1), cpu.Registers.Read(4))
	assert.Equal(uint32(3), cpu.Registers.Read(5))
	assert.Equal(uint32(2), cpu.Registers.Read(6))
	assert.Equal(uint32(3), cpu.Registers.Read(7))
	assert.Equal(uint32(0x40), cpu.Registers.PC())
}

func TestStep_BlockTransferEmpty(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_0c01, // mov r0, #0x100
		0xe8a0_0000, // stmia r0!, {}
	)
	steps(t, cpu, 2)

	assert.Equal(uint32(0x140), cpu.Registers.Read(0))
	assert.Equal(uint32(4+12), mem.word(0x100))
}

func TestStep_BlockTransferUser(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_0c01, // mov r0, #0x100
		0xe8c0_6000, // stmia r0, {sp, lr}^
		0xe8d0_6000, // ldmia r0, {sp, lr}^
	)
	cpu.Registers.UserWrite(field.SP, 0x1111)
	cpu.Registers.UserWrite(field.LR, 0x2222)
	cpu.Registers.Write(field.SP, 0x3333)
	cpu.Registers.Write(field.LR, 0x4444)

	steps(t, cpu, 2)
	assert.Equal(uint32(0x1111), mem.word(0x100))
	assert.Equal(uint32(0x2222), mem.word(0x104))

	assert.NoError(mem.StoreWord(0x100, 0x5555))
	steps(t, cpu, 1)
	assert.Equal(uint32(0x5555), cpu.Registers.UserRead(field.SP))
	assert.Equal(uint32(0x3333), cpu.Registers.Read(field.SP))
	assert.Equal(uint32(0x4444), cpu.Registers.Read(field.LR))
}

func TestStep_Swap(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_0c01, // mov r0, #0x100
		0xe3a0_2002, // mov r2, #2
		0xe580_2000, // str r2, [r0]
		0xe3a0_1001, // mov r1, #1
		0xe100_3091, // swp r3, r1, [r0]
		0xe3a0_10aa, // mov r1, #0xaa
		0xe140_4091, // swpb r4, r1, [r0]
	)
	steps(t, cpu, 7)

	assert.Equal(uint32(2), cpu.Registers.Read(3))
	assert.Equal(uint32(1), cpu.Registers.Read(4))
	assert.Equal(uint32(0xaa), mem.word(0x100))
}

func TestStep_Multiply(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe3e0_0000, // mvn r0, #0
		0xe3a0_1002, // mov r1, #2
		0xe083_2190, // umull r2, r3, r0, r1
		0xe0c5_4190, // smull r4, r5, r0, r1
		0xe006_0190, // mul r6, r0, r1
		0xe0b3_2190, // umlals r2, r3, r0, r1
	)
	steps(t, cpu, 5)

	assert.Equal(uint32(0xffff_fffe), cpu.Registers.Read(2))
	assert.Equal(uint32(1), cpu.Registers.Read(3))
	assert.Equal(uint32(0xffff_fffe), cpu.Registers.Read(4))
	assert.Equal(uint32(0xffff_ffff), cpu.Registers.Read(5))
	assert.Equal(uint32(0xffff_fffe), cpu.Registers.Read(6))

	steps(t, cpu, 1)
	assert.Equal(uint32(0xffff_fffc), cpu.Registers.Read(2))
	assert.Equal(uint32(3), cpu.Registers.Read(3))
	assert.Equal(isa.Flags{}, cpu.Registers.Flags())
}

func TestStep_Status(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe10f_0000, // mrs r0, cpsr
		0xe321_f01f, // msr cpsr_c, #0x1f
		0xe321_f010, // msr cpsr_c, #0x10
		0xe321_f01f, // msr cpsr_c, #0x1f
		0xe328_f20f, // msr cpsr_f, #0xf0000000
		0xe14f_0000, // mrs r0, spsr
	)

	steps(t, cpu, 1)
	assert.Equal(uint32(0xd3), cpu.Registers.Read(0))

	steps(t, cpu, 1)
	assert.Equal(MODE_SYSTEM, cpu.Registers.Mode())
	assert.False(cpu.Registers.IRQDisabled())

	steps(t, cpu, 1)
	assert.Equal(MODE_USER, cpu.Registers.Mode())

	steps(t, cpu, 1)
	assert.Equal(MODE_USER, cpu.Registers.Mode())

	steps(t, cpu, 1)
	assert.Equal(isa.Flags{N: true, Z: true, C: true, V: true}, cpu.Registers.Flags())

	err := cpu.Step()
	assert.ErrorIs(err, ErrNoSPSR)

	var execute *ErrExecute
	if assert.ErrorAs(err, &execute) {
		assert.Equal(isa.OP_STATUS_READ, execute.Instruction.Opcode)
	}
	assert.Equal(uint32(0x18), cpu.Registers.PC())
}

func TestStep_ReturnFromException(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe1b0_f00e, // movs pc, lr
	)
	assert.NoError(cpu.Registers.SetSPSR(0x8000_0030))
	cpu.Registers.Write(field.LR, 0x101)

	steps(t, cpu, 1)
	assert.Equal(MODE_USER, cpu.Registers.Mode())
	assert.Equal(STATE_THUMB, cpu.Registers.State())
	assert.Equal(uint32(0x100), cpu.Registers.PC())
	assert.True(cpu.Registers.Flags().N)
}

func TestStep_SoftwareInterrupt(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xef00_0042, // swi 0x42
	)
	assert.NoError(cpu.Registers.SetCPSR(0x10))

	steps(t, cpu, 1)
	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_SWI, e.Kind)
	assert.Equal(uint32(4), cpu.Registers.PC())

	// Dispatch, then step the (skipped) word at the vector.
	assert.NoError(cpu.Tick())
	assert.Equal(MODE_SUPERVISOR, cpu.Registers.Mode())
	assert.Equal(uint32(4), cpu.Registers.Read(field.LR))
	assert.Equal(uint32(VECTOR_SWI+4), cpu.Registers.PC())

	spsr, err := cpu.Registers.SPSR()
	assert.NoError(err)
	assert.Equal(uint32(0x10), spsr)
}

func TestStep_Undefined(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe7f0_00f0, // undefined
	)

	err := cpu.Step()
	assert.ErrorIs(err, isa.ErrUndefined)
	assert.Equal(uint32(4), cpu.Registers.PC())

	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_UNDEFINED, e.Kind)

	assert.NoError(cpu.Tick())
	assert.Equal(MODE_UNDEFINED, cpu.Registers.Mode())
	assert.Equal(uint32(4), cpu.Registers.Read(field.LR))
}

func TestStep_EqualPriority(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xef00_0000, // swi 0
		0xe7f0_00f0, // undefined
	)

	assert.NoError(cpu.Step())
	assert.ErrorIs(cpu.Step(), isa.ErrUndefined)

	assert.Len(cpu.Exceptions.Stack.Data, 1)
	e, _ := cpu.Exceptions.Pending()
	assert.Equal(EXCEPTION_SWI, e.Kind)
}

func TestStep_PrefetchAbort(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI)
	cpu.Registers.SetPC(0x2_0000)

	err := cpu.Step()
	assert.ErrorIs(err, errFault)

	var abort *ErrAbort
	if assert.ErrorAs(err, &abort) {
		assert.Equal(EXCEPTION_PREFETCH_ABORT, abort.Kind)
		assert.Equal(uint32(0x2_0000), abort.Address)
	}
	assert.Equal(uint32(0x2_0000), cpu.Registers.PC())
	assert.Equal(0, cpu.Ticks)

	_, ok := cpu.Exceptions.Dispatch(&cpu.Registers)
	assert.True(ok)
	assert.Equal(MODE_ABORT, cpu.Registers.Mode())
	assert.Equal(uint32(0x2_0004), cpu.Registers.Read(field.LR))
	assert.Equal(VECTOR_PREFETCH_ABORT, cpu.Registers.PC())
}

func TestStep_DataAbort(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI,
		0xe3a0_1801, // mov r1, #0x10000
		0xe591_0000, // ldr r0, [r1]
	)
	cpu.Registers.Write(0, 0x77)

	steps(t, cpu, 1)
	err := cpu.Step()
	assert.ErrorIs(err, errFault)

	var abort *ErrAbort
	if assert.ErrorAs(err, &abort) {
		assert.Equal(EXCEPTION_DATA_ABORT, abort.Kind)
		assert.Equal(uint32(0x1_0000), abort.Address)
	}
	assert.Equal(uint32(0x77), cpu.Registers.Read(0))
	assert.Equal(uint32(8), cpu.Registers.PC())

	_, ok := cpu.Exceptions.Dispatch(&cpu.Registers)
	assert.True(ok)
	assert.Equal(MODE_ABORT, cpu.Registers.Mode())
	assert.Equal(uint32(4+8), cpu.Registers.Read(field.LR))
	assert.Equal(VECTOR_DATA_ABORT, cpu.Registers.PC())
}

func TestStep_ReadOnly(t *testing.T) {
	assert := assert.New(t)

	_, mem := newTestCpu(MODEL_ARM7TDMI,
		0xe581_0000, // str r0, [r1]
	)
	cpu := NewCpu(MODEL_ARM7TDMI, romMemory{mem: mem})

	err := cpu.Step()
	assert.ErrorIs(err, ErrReadOnly)
	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_DATA_ABORT, e.Kind)
}

func TestStep_Coprocessor(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM946ES,
		0xee11_0f10, // mrc p15, 0, r0, c1, c0, 0
	)

	assert.NoError(cpu.Step())
	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_UNDEFINED, e.Kind)
	assert.Equal(uint32(4), cpu.Registers.PC())
}

func TestStep_ARMv5(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM946ES,
		0xe3a0_1801, // mov r1, #0x10000
		0xe16f_0f11, // clz r0, r1
		0xf5d1_f004, // pld [r1, #4]
		0xfa00_0000, // blx +8
	)
	steps(t, cpu, 4)

	assert.Equal(uint32(15), cpu.Registers.Read(0))
	assert.Equal(STATE_THUMB, cpu.Registers.State())
	assert.Equal(uint32(0xc+8), cpu.Registers.PC())
	assert.Equal(uint32(0x10), cpu.Registers.Read(field.LR))

	// ARMv4T rejects the same encodings.
	cpu, _ = newTestCpu(MODEL_ARM7TDMI, 0xe16f_0f11)
	assert.ErrorIs(cpu.Step(), isa.ErrUndefined)
}

func TestTick_Elapsed(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM946ES)
	for range 3 {
		assert.NoError(cpu.Tick())
	}
	assert.Equal(3, cpu.Ticks)
	assert.Equal(3*67*time.Microsecond, cpu.Elapsed)

	cpu.Reset(0x40)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(time.Duration(0), cpu.Elapsed)
	assert.Equal(uint32(0x40), cpu.Registers.PC())
}

func TestCpu_Interrupt(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI)
	assert.False(cpu.Interrupt(EXCEPTION_IRQ))
	assert.False(cpu.Interrupt(EXCEPTION_FIQ))

	assert.NoError(cpu.Registers.SetCPSR(uint32(MODE_SUPERVISOR)))
	assert.True(cpu.Interrupt(EXCEPTION_IRQ))
	assert.True(cpu.Interrupt(EXCEPTION_FIQ))
	assert.False(cpu.Interrupt(EXCEPTION_IRQ))

	assert.NoError(cpu.Tick())
	assert.Equal(MODE_FIQ, cpu.Registers.Mode())
	e, ok := cpu.Exceptions.Pending()
	assert.True(ok)
	assert.Equal(EXCEPTION_IRQ, e.Kind)
}

func TestCpu_MemoryMissing(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(MODEL_ARM7TDMI, nil)
	assert.ErrorIs(cpu.Step(), ErrMemoryMissing)
}

func TestCpu_ExecuteInvalid(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI)
	pc := cpu.Registers.PC()

	for _, inst := range []isa.Instruction{
		{},
		{Opcode: isa.OP_BRANCH, Operand: isa.Swap{}},
		{Opcode: isa.OP_COUNT, Operand: isa.Swap{}},
	} {
		err := cpu.Execute(inst)
		assert.ErrorIs(err, isa.ErrOperandMismatch)
		var exec_err *ErrExecute
		assert.ErrorAs(err, &exec_err)
	}
	assert.Equal(pc, cpu.Registers.PC())
}

func TestCpu_Effects(t *testing.T) {
	assert := assert.New(t)

	for _, op := range isa.Opcodes() {
		assert.NotNil(_effect[op], op.String())
	}
}

func TestCpu_Defines(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(MODEL_ARM7TDMI)
	defines := map[string]string{}
	for k, v := range cpu.Defines() {
		defines[k] = v
	}
	assert.Equal("0x8", defines["VECTOR_SWI"])
	assert.Equal("0x1c", defines["VECTOR_FIQ"])
	assert.Equal("0x13", defines["MODE_SVC"])
	assert.Equal("0x80", defines["PSR_I"])
}

func TestModel(t *testing.T) {
	assert := assert.New(t)

	model, err := ParseModel("ARM946ES")
	assert.NoError(err)
	assert.Equal(MODEL_ARM946ES, model)
	assert.Equal(isa.ARMv5TE, model.Arch())

	model, err = ParseModel("arm7tdmi")
	assert.NoError(err)
	assert.Equal(isa.ARMv4T, model.Arch())
	assert.Equal(34*time.Microsecond, model.TickDuration())

	_, err = ParseModel("z80")
	assert.ErrorIs(err, ErrModelUnknown)
}
