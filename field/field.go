// Package field extracts typed bit fields from instruction encodings.
//
// Every extractor shifts and masks a 32-bit word, then narrows the result to
// the smallest type that holds it: Flag for single bits, Reg for 4-bit
// register indices, Byte for 8-bit immediates, opcodes and rotates, and
// RegisterList for the 16-bit register bitmap of block transfers.
package field

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Flag is a single-bit field.
type Flag uint8

const (
	Unset = Flag(0) // Bit clear.
	Set   = Flag(1) // Bit set.
)

// IsSet returns true if the flag is Set.
func (f Flag) IsSet() bool {
	return f == Set
}

// Uint32 returns the flag as 0 or 1.
func (f Flag) Uint32() uint32 {
	return uint32(f)
}

// FlagOf converts a bool to a Flag.
func FlagOf(set bool) Flag {
	if set {
		return Set
	}
	return Unset
}

// Reg is a 4-bit register index.
type Reg uint8

const (
	SP = Reg(13) // Stack pointer.
	LR = Reg(14) // Link register.
	PC = Reg(15) // Program counter.
)

func (r Reg) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}
	return fmt.Sprintf("r%d", uint8(r))
}

// Byte is an 8-bit field: immediate, opcode or rotate.
type Byte uint8

// RegisterList is the 16-bit register bitmap of a block transfer.
type RegisterList uint16

// Has returns true if the register is in the list.
func (rl RegisterList) Has(r Reg) bool {
	return (rl>>r)&1 == 1
}

// Count returns the number of registers in the list.
func (rl RegisterList) Count() int {
	return bits.OnesCount16(uint16(rl))
}

// Regs iterates the listed registers, lowest first.
func (rl RegisterList) Regs() iter.Seq[Reg] {
	return func(yield func(Reg) bool) {
		for r := Reg(0); r < 16; r++ {
			if rl.Has(r) && !yield(r) {
				return
			}
		}
	}
}

func (rl RegisterList) String() string {
	var parts []string
	for r := 0; r < 16; {
		if !rl.Has(Reg(r)) {
			r++
			continue
		}
		end := r
		for end+1 < 16 && rl.Has(Reg(end+1)) {
			end++
		}
		if end-r >= 2 {
			parts = append(parts, Reg(r).String()+"-"+Reg(end).String())
		} else {
			for n := r; n <= end; n++ {
				parts = append(parts, Reg(n).String())
			}
		}
		r = end + 1
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// unsigned is the set of narrowing targets.
type unsigned interface {
	~uint8 | ~uint16
}

// narrow converts a masked value to T, panicking if it does not fit in width
// bits. Masking makes the panic unreachable through the extractors below.
func narrow[T unsigned](value uint32, width uint) T {
	if value>>width != 0 {
		panic(fmt.Sprintf("field: %#x does not fit in %d bits", value, width))
	}
	return T(value)
}

// Bits returns (word >> offset) & mask.
func Bits(word uint32, offset uint, mask uint32) uint32 {
	return (word >> offset) & mask
}

// FlagAt returns the bit at offset.
func FlagAt(word uint32, offset uint) Flag {
	return narrow[Flag](Bits(word, offset, 0x1), 1)
}

// RegAt returns the 4-bit register index at offset.
func RegAt(word uint32, offset uint) Reg {
	return narrow[Reg](Bits(word, offset, 0xf), 4)
}

// ByteAt returns the masked field at offset as a Byte. The mask must not
// exceed 8 bits.
func ByteAt(word uint32, offset uint, mask uint32) Byte {
	return narrow[Byte](Bits(word, offset, mask), 8)
}

// RegisterListOf keeps the low 16 bits of word. Bits 16-31 are discarded.
func RegisterListOf(word uint32) RegisterList {
	return narrow[RegisterList](word&0xffff, 16)
}

// SignExtend sign extends the low width bits of value.
func SignExtend(value uint32, width uint) int32 {
	shift := 32 - width
	return int32(value<<shift) >> shift
}
