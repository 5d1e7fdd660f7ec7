package isa

import (
	"github.com/ezrec/armcore/field"
)

// Thumb decodes a 16-bit Thumb instruction fetched from address. Only the
// branch formats are classified.
func (d Decoder) Thumb(half uint16, address uint32) (inst Instruction, err error) {
	word := uint32(half)

	defer func() {
		if err != nil {
			inst = Instruction{}
			err = &ErrInstruction{Address: address, Word: word, Thumb: true, Err: err}
		}
	}()

	var op Opcode
	var operand Operand
	cond := AL

	switch {
	case word&0xf000 == 0xd000:
		// Conditional branch; cond 1110 is undefined, 1111 is SWI.
		cond = Condition(field.Bits(word, 8, 0xf))
		switch cond {
		case AL:
			err = ErrUndefined
			return
		case NV:
			err = ErrNotClassified
			return
		}
		op = OP_THUMB_BRANCH_COND
		operand = ConditionalBranch{
			Cond:   cond,
			Offset: int8(field.ByteAt(word, 0, 0xff)),
		}
	case word&0xe000 == 0xe000:
		tb := ThumbBranch{
			Half:   LinkHalf(field.Bits(word, 11, 0x3)),
			Offset: uint16(field.Bits(word, 0, 0x7ff)),
		}
		if tb.Half == LINK_EXCHANGE && (d.Arch < ARMv5TE || tb.Offset&1 != 0) {
			err = ErrUndefined
			return
		}
		op = OP_THUMB_BRANCH_LINK
		if tb.Half == LINK_NONE {
			op = OP_THUMB_BRANCH
		}
		operand = tb
	case word&0xff00 == 0x4700:
		err = require(word, "bits[2:0]", 0, 0x7, 0)
		if err != nil {
			return
		}
		bx := BranchExchange{
			Link: field.FlagAt(word, 7),
			Rm:   field.RegAt(word, 3),
		}
		if bx.Link.IsSet() {
			if d.Arch < ARMv5TE {
				err = ErrUndefined
				return
			}
			if bx.Rm == field.PC {
				err = ErrUnpredictable
				return
			}
		}
		op = OP_THUMB_BRANCH_EXCHANGE
		operand = bx
	default:
		err = ErrNotClassified
		return
	}

	return newInstruction(op, operand, cond, address, word, true)
}
