package field

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagAt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Set, FlagAt(0x0010_0000, 20))
	assert.Equal(Unset, FlagAt(0xffef_ffff, 20))
	assert.True(FlagAt(0x8000_0000, 31).IsSet())
	assert.Equal(uint32(1), Set.Uint32())
	assert.Equal(Set, FlagOf(true))
	assert.Equal(Unset, FlagOf(false))
}

func TestRegAt(t *testing.T) {
	assert := assert.New(t)

	word := uint32(0x000f_a5c0)
	assert.Equal(Reg(0xf), RegAt(word, 16))
	assert.Equal(Reg(0xa), RegAt(word, 12))
	assert.Equal(Reg(0x5), RegAt(word, 8))
	assert.Equal(Reg(0xc), RegAt(word, 4))
	assert.Equal(Reg(0x0), RegAt(word, 0))
}

func TestReg_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("r0", Reg(0).String())
	assert.Equal("r12", Reg(12).String())
	assert.Equal("sp", SP.String())
	assert.Equal("lr", LR.String())
	assert.Equal("pc", PC.String())
}

func TestByteAt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Byte(0xab), ByteAt(0x0000_0fab, 0, 0xff))
	assert.Equal(Byte(0xf), ByteAt(0x0000_0fab, 8, 0xf))
	assert.Panics(func() { ByteAt(0xffff_ffff, 0, 0x1ff) })
}

func TestRegisterListOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(RegisterList(0x1234), RegisterListOf(0xffff_1234))
	assert.Equal(RegisterList(0x1234), RegisterListOf(0x0000_1234))

	for _, high := range []uint32{0, 0x0001_0000, 0xdead_0000, 0xffff_0000} {
		for _, low := range []uint32{0, 1, 0x8000, 0xc0de, 0xffff} {
			assert.Equal(RegisterList(low), RegisterListOf(high|low))
		}
	}
}

func TestRegisterList(t *testing.T) {
	assert := assert.New(t)

	rl := RegisterList(0x400f | 0x8000)
	assert.True(rl.Has(0))
	assert.True(rl.Has(LR))
	assert.False(rl.Has(4))
	assert.Equal(6, rl.Count())
	assert.Equal([]Reg{0, 1, 2, 3, LR, PC}, slices.Collect(rl.Regs()))
	assert.Equal("{r0-r3, lr, pc}", rl.String())
	assert.Equal("{}", RegisterList(0).String())
	assert.Equal("{r4, r5}", RegisterList(0x30).String())
}

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(-2), SignExtend(0xfffffe, 24))
	assert.Equal(int32(0x7fffff), SignExtend(0x7fffff, 24))
	assert.Equal(int32(-128), SignExtend(0x80, 8))
	assert.Equal(int32(127), SignExtend(0x7f, 8))
}
