package asm

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"

	"github.com/ezrec/armcore/field"
	"github.com/ezrec/armcore/isa"
)

// condMap maps condition suffixes.
var condMap = map[string]isa.Condition{
	"eq": isa.EQ,
	"ne": isa.NE,
	"cs": isa.CS,
	"hs": isa.HS,
	"cc": isa.CC,
	"lo": isa.LO,
	"mi": isa.MI,
	"pl": isa.PL,
	"vs": isa.VS,
	"vc": isa.VC,
	"hi": isa.HI,
	"ls": isa.LS,
	"ge": isa.GE,
	"lt": isa.LT,
	"gt": isa.GT,
	"le": isa.LE,
	"al": isa.AL,
}

// regMap maps register aliases.
var regMap = map[string]field.Reg{
	"sp": field.SP,
	"lr": field.LR,
	"pc": field.PC,
}

// Mnemonics in match order; a longer mnemonic sharing a prefix comes first.
var _mnemonic = []string{"blx", "bx", "bl", "b", "swi", "mov", "nop"}

// splitMnemonic separates a mnemonic from its condition suffix.
func splitMnemonic(word string) (name string, cond isa.Condition, err error) {
	for _, name = range _mnemonic {
		suffix, ok := strings.CutPrefix(word, name)
		if !ok {
			continue
		}
		if len(suffix) == 0 {
			cond = isa.AL
			return
		}
		cond, ok = condMap[suffix]
		if ok {
			return
		}
	}

	name = ""
	err = ErrInstructionInvalid
	return
}

// parseReg returns the register named by word.
func parseReg(word string) (reg field.Reg, err error) {
	word = strings.ToLower(word)
	reg, ok := regMap[word]
	if ok {
		return
	}
	if rest, ok := strings.CutPrefix(word, "r"); ok {
		n, atoi_err := strconv.Atoi(rest)
		if atoi_err == nil && n >= 0 && n < 16 {
			reg = field.Reg(n)
			return
		}
	}
	err = ErrRegisterInvalid
	return
}

// encodeImmediate returns the rotate:imm8 encoding of a data-processing
// immediate.
func encodeImmediate(value uint32) (encoded uint32, ok bool) {
	for rotate := range uint32(16) {
		imm8 := bits.RotateLeft32(value, int(2*rotate))
		if imm8 <= 0xff {
			return rotate<<8 | imm8, true
		}
	}
	return
}

// directive assembles a directive line. A non-empty target is resolved by
// the statement fixup.
func (asm *Assembler) directive(stmt *Statement, name string, args []string) (target string, err error) {
	le := binary.LittleEndian

	switch name {
	case ".org", ".align":
		if len(args) < 1 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value uint32
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if name == ".org" {
			asm.address = value
			return
		}
		if value == 0 || value&(value-1) != 0 {
			err = ErrAlignInvalid
			return
		}
		pad := (value - asm.address%value) % value
		stmt.Data = make([]byte, pad)
	case ".entry":
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		asm.entry = asm.address
		if len(args) == 1 {
			asm.entry, err = asm.valueOf(args[0])
			if err != nil {
				return
			}
		} else if asm.thumb {
			asm.entry |= 1
		}
		asm.entered = true
	case ".arm":
		asm.thumb = false
	case ".thumb":
		asm.thumb = true
	case ".word":
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) == 1 && reLabel.MatchString(args[0]) {
			stmt.Data = make([]byte, 4)
			stmt.Fixup = FIXUP_WORD
			target = args[0]
			return
		}
		for _, arg := range args {
			var value uint32
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			stmt.Data = le.AppendUint32(stmt.Data, value)
		}
	case ".half":
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, arg := range args {
			var value uint32
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			if value > 0xffff && value < 0xffff_8000 {
				err = ErrValueRange
				return
			}
			stmt.Data = le.AppendUint16(stmt.Data, uint16(value))
		}
	case ".byte":
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, arg := range args {
			var value uint32
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			if value > 0xff && value < 0xffff_ff80 {
				err = ErrValueRange
				return
			}
			stmt.Data = append(stmt.Data, uint8(value))
		}
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// instruction assembles an instruction line in the current state. A
// non-empty target is resolved by the statement fixup.
func (asm *Assembler) instruction(stmt *Statement, mnemonic string, args []string) (target string, err error) {
	name, cond, err := splitMnemonic(mnemonic)
	if err != nil {
		return
	}

	want_args := 1
	switch name {
	case "nop":
		want_args = 0
	case "mov":
		want_args = 2
	}
	if len(args) < want_args {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > want_args {
		err = ErrOpcodeExtraArgs
		return
	}

	if asm.thumb {
		if stmt.Address&1 != 0 {
			err = ErrAddressAlign
			return
		}
		return asm.thumbInstruction(stmt, name, cond, args)
	}

	if stmt.Address&3 != 0 {
		err = ErrAddressAlign
		return
	}
	return asm.armInstruction(stmt, name, cond, args)
}

func (asm *Assembler) armInstruction(stmt *Statement, name string, cond isa.Condition, args []string) (target string, err error) {
	word := uint32(cond) << 28

	switch name {
	case "b", "bl":
		word |= 0x0a00_0000
		if name == "bl" {
			word |= 1 << 24
		}
		stmt.Fixup = FIXUP_BRANCH
		target = args[0]
	case "blx":
		var rm field.Reg
		rm, err = parseReg(args[0])
		if err == nil {
			word |= 0x012f_ff30 | uint32(rm)
			break
		}
		// BLX <label> has no condition field.
		if cond != isa.AL {
			err = ErrConditionInvalid
			return
		}
		err = nil
		word = 0xfa00_0000
		stmt.Fixup = FIXUP_BRANCH_EXCHANGE
		target = args[0]
	case "bx":
		var rm field.Reg
		rm, err = parseReg(args[0])
		if err != nil {
			return
		}
		word |= 0x012f_ff10 | uint32(rm)
	case "swi":
		var comment uint32
		comment, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if comment > 0xff_ffff {
			err = ErrValueRange
			return
		}
		word |= 0x0f00_0000 | comment
	case "mov":
		var rd field.Reg
		rd, err = parseReg(args[0])
		if err != nil {
			return
		}
		word |= uint32(rd) << 12
		if rm, reg_err := parseReg(args[1]); reg_err == nil {
			word |= 0x01a0_0000 | uint32(rm)
			break
		}
		var value uint32
		value, err = asm.valueOf(args[1])
		if err != nil {
			return
		}
		if imm, ok := encodeImmediate(value); ok {
			word |= 0x03a0_0000 | imm
		} else if imm, ok := encodeImmediate(^value); ok {
			word |= 0x03e0_0000 | imm
		} else {
			err = ErrImmediateRange
			return
		}
	case "nop":
		word |= 0x01a0_0000
	}

	stmt.Data = binary.LittleEndian.AppendUint32(nil, word)
	return
}

func (asm *Assembler) thumbInstruction(stmt *Statement, name string, cond isa.Condition, args []string) (target string, err error) {
	le := binary.LittleEndian

	// Only B carries a condition in Thumb state.
	if cond != isa.AL && name != "b" {
		err = ErrConditionInvalid
		return
	}

	switch name {
	case "b":
		if cond == isa.AL {
			stmt.Data = le.AppendUint16(nil, 0xe000)
			stmt.Fixup = FIXUP_THUMB_BRANCH
		} else {
			stmt.Data = le.AppendUint16(nil, 0xd000|uint16(cond)<<8)
			stmt.Fixup = FIXUP_THUMB_COND
		}
		target = args[0]
	case "bl":
		stmt.Data = le.AppendUint16(nil, 0xf000)
		stmt.Data = le.AppendUint16(stmt.Data, 0xf800)
		stmt.Fixup = FIXUP_THUMB_LINK
		target = args[0]
	case "bx", "blx":
		var rm field.Reg
		rm, err = parseReg(args[0])
		if err != nil {
			return
		}
		half := 0x4700 | uint16(rm)<<3
		if name == "blx" {
			half |= 1 << 7
		}
		stmt.Data = le.AppendUint16(nil, half)
	case "nop":
		// b to the next halfword
		stmt.Data = le.AppendUint16(nil, 0xe7ff)
	default:
		err = ErrInstructionInvalid
	}

	return
}
