package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/armcore/field"
)

func TestThumb_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		decoder  Decoder
		half     uint16
		opcode   Opcode
		operand  Operand
		mnemonic string
	}){
		{"beq", v4, 0xd0fe, OP_THUMB_BRANCH_COND, ConditionalBranch{Cond: EQ, Offset: -2}, "beq"},
		{"bgt", v4, 0xdc05, OP_THUMB_BRANCH_COND, ConditionalBranch{Cond: GT, Offset: 5}, "bgt"},
		{"b", v4, 0xe7fe, OP_THUMB_BRANCH, ThumbBranch{Half: LINK_NONE, Offset: 0x7fe}, "b"},
		{"bl_hi", v4, 0xf7ff, OP_THUMB_BRANCH_LINK, ThumbBranch{Half: LINK_HIGH, Offset: 0x7ff}, "bl"},
		{"bl_lo", v4, 0xf802, OP_THUMB_BRANCH_LINK, ThumbBranch{Half: LINK_LOW, Offset: 0x002}, "bl"},
		{"blx_lo", v5, 0xe802, OP_THUMB_BRANCH_LINK, ThumbBranch{Half: LINK_EXCHANGE, Offset: 0x002}, "blx"},
		{"bx_lr", v4, 0x4770, OP_THUMB_BRANCH_EXCHANGE, BranchExchange{Rm: field.LR}, "bx"},
		{"bx_r8", v4, 0x4740, OP_THUMB_BRANCH_EXCHANGE, BranchExchange{Rm: 8}, "bx"},
		{"blx_r0", v5, 0x4780, OP_THUMB_BRANCH_EXCHANGE, BranchExchange{Link: field.Set, Rm: 0}, "blx"},
	}

	for _, entry := range table {
		inst, err := entry.decoder.Thumb(entry.half, 0x300)
		if !assert.NoError(err, entry.name) {
			continue
		}
		assert.Equal(entry.opcode, inst.Opcode, entry.name)
		assert.Equal(entry.operand, inst.Operand, entry.name)
		assert.Equal(entry.mnemonic, inst.Mnemonic(), entry.name)
		assert.True(inst.Thumb, entry.name)
		assert.True(inst.Opcode.Thumb(), entry.name)
		assert.Equal(uint32(2), inst.Size(), entry.name)
		assert.Equal(uint32(entry.half), inst.Word, entry.name)
	}
}

func TestThumb_ConditionalBranch(t *testing.T) {
	assert := assert.New(t)

	inst, err := v4.Thumb(0xd1fe, 0x100)
	assert.NoError(err)
	assert.Equal(NE, inst.Condition)

	cb := inst.Operand.(ConditionalBranch)
	assert.Equal(uint32(0x100), cb.Target(0x100))
	assert.Equal("bne -4", inst.Mnemonic()+" "+cb.String())

	inst, err = v4.Thumb(0xd47f, 0x100)
	assert.NoError(err)
	assert.Equal(uint32(0x100+4+0xfe), inst.Operand.(ConditionalBranch).Target(0x100))
}

func TestThumb_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		decoder Decoder
		half    uint16
		err     error
	}){
		{"cond_al", v4, 0xde00, ErrUndefined},
		{"cond_nv_swi", v4, 0xdf01, ErrNotClassified},
		{"blx_suffix_v4", v4, 0xe800, ErrUndefined},
		{"blx_suffix_odd", v5, 0xe801, ErrUndefined},
		{"bx_sbz", v4, 0x4771, ErrUnpredictable},
		{"blx_reg_v4", v4, 0x4780, ErrUndefined},
		{"blx_pc", v5, 0x47f8, ErrUnpredictable},
		{"mov_imm", v4, 0x2001, ErrNotClassified},
		{"add_hi", v4, 0x4468, ErrNotClassified},
	}

	for _, entry := range table {
		inst, err := entry.decoder.Thumb(entry.half, 0x400)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(Instruction{}, inst, entry.name)

		var ei *ErrInstruction
		if assert.True(errors.As(err, &ei), entry.name) {
			assert.True(ei.Thumb, entry.name)
			assert.Equal(uint32(entry.half), ei.Word, entry.name)
			assert.Equal(uint32(0x400), ei.Address, entry.name)
		}
	}
}

func TestThumb_BranchExchangeConflict(t *testing.T) {
	assert := assert.New(t)

	_, err := v4.Thumb(0x4777, 0)

	var conflict *ErrFieldConflict
	if assert.True(errors.As(err, &conflict)) {
		assert.Equal(uint32(0x4777), conflict.Word)
		assert.Equal("bits[2:0]", conflict.Field)
	}
}
