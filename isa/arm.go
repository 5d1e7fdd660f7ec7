package isa

import (
	"github.com/ezrec/armcore/field"
)

// Decoder decodes instruction words for an architecture revision.
type Decoder struct {
	Arch Arch
}

// NewDecoder returns a decoder for the architecture revision.
func NewDecoder(arch Arch) Decoder {
	return Decoder{Arch: arch}
}

// ARM decodes a 32-bit ARM instruction fetched from address.
func (d Decoder) ARM(word uint32, address uint32) (inst Instruction, err error) {
	defer func() {
		if err != nil {
			inst = Instruction{}
			err = &ErrInstruction{Address: address, Word: word, Err: err}
		}
	}()

	var op Opcode
	var operand Operand

	cond := Condition(field.Bits(word, 28, 0xf))
	if cond == NV {
		op, operand, err = d.unconditional(word)
	} else {
		op, operand, err = d.classify(word)
	}
	if err != nil {
		return
	}

	return newInstruction(op, operand, cond, address, word, false)
}

// unconditional decodes the condition NV space.
func (d Decoder) unconditional(word uint32) (op Opcode, operand Operand, err error) {
	if d.Arch < ARMv5TE {
		err = ErrUnpredictable
		return
	}

	switch {
	case word&0x0d70_f000 == 0x0550_f000:
		op = OP_PRELOAD
		operand = preload(word)
	case field.Bits(word, 25, 0x7) == 0b101:
		op = OP_BRANCH_LINK_EXCHANGE
		operand = BranchLinkExchange{
			H:      field.FlagAt(word, 24),
			Offset: field.SignExtend(field.Bits(word, 0, 0xff_ffff), 24),
		}
	default:
		err = ErrUndefined
	}
	return
}

// classify dispatches on the primary group in bits[27:25].
func (d Decoder) classify(word uint32) (op Opcode, operand Operand, err error) {
	switch field.Bits(word, 25, 0x7) {
	case 0b000:
		return d.group000(word)
	case 0b001:
		if field.Bits(word, 23, 0x3) == 0b10 {
			switch field.Bits(word, 20, 0x3) {
			case 0b10:
				op = OP_STATUS_WRITE
				operand, err = statusWrite(word)
				return
			case 0b00:
				err = ErrUndefined
				return
			}
		}
		op = OP_DATA_PROCESSING
		operand = dataProcessing(word)
	case 0b010:
		op = OP_SINGLE_TRANSFER
		operand = singleTransfer(word)
	case 0b011:
		if field.FlagAt(word, 4).IsSet() {
			err = ErrUndefined
			return
		}
		op = OP_SINGLE_TRANSFER
		operand = singleTransfer(word)
	case 0b100:
		op = OP_BLOCK_TRANSFER
		operand, err = blockTransfer(word)
	case 0b101:
		op = OP_BRANCH
		if field.FlagAt(word, 24).IsSet() {
			op = OP_BRANCH_LINK
		}
		operand = branch(word)
	case 0b110:
		op = OP_COPROCESSOR_STORE
		if field.FlagAt(word, 20).IsSet() {
			op = OP_COPROCESSOR_LOAD
		}
		operand = coprocessorTransfer(word)
	case 0b111:
		switch {
		case field.FlagAt(word, 24).IsSet():
			op = OP_SOFTWARE_INTERRUPT
			operand = softwareInterrupt(word)
		case !field.FlagAt(word, 4).IsSet():
			op = OP_COPROCESSOR_DATA
			operand = coprocessorData(word)
		default:
			op = OP_COPROCESSOR_REGISTER
			operand = coprocessorRegister(word)
		}
	}
	return
}

// group000 separates multiplies, swaps, halfword transfers and the
// miscellaneous space from register data-processing.
func (d Decoder) group000(word uint32) (op Opcode, operand Operand, err error) {
	if field.Bits(word, 4, 0xf) == 0b1001 {
		switch field.Bits(word, 23, 0x3) {
		case 0b00:
			if field.FlagAt(word, 22).IsSet() {
				err = ErrUndefined
				return
			}
			op = OP_MULTIPLY
			operand, err = multiply(word)
		case 0b01:
			op = OP_MULTIPLY_LONG
			ml := multiplyLong(word)
			if ml.RdHi == ml.RdLo {
				err = ErrUnpredictable
				return
			}
			operand = ml
		case 0b10:
			if field.Bits(word, 20, 0x3) != 0 {
				err = ErrUndefined
				return
			}
			op = OP_SWAP
			operand, err = swap(word)
		default:
			err = ErrUndefined
		}
		return
	}

	if field.FlagAt(word, 7).IsSet() && field.FlagAt(word, 4).IsSet() {
		op = OP_HALFWORD_TRANSFER
		operand, err = halfwordTransfer(word)
		return
	}

	if field.Bits(word, 23, 0x3) == 0b10 && !field.FlagAt(word, 20).IsSet() {
		return d.miscellaneous(word)
	}

	op = OP_DATA_PROCESSING
	operand = dataProcessing(word)
	return
}

// miscellaneous decodes MRS, MSR (register), BX, BLX (register) and CLZ.
func (d Decoder) miscellaneous(word uint32) (op Opcode, operand Operand, err error) {
	op21 := field.Bits(word, 21, 0x3)

	switch field.Bits(word, 4, 0xf) {
	case 0b0000:
		if op21&1 == 0 {
			op = OP_STATUS_READ
			operand, err = statusRead(word)
		} else {
			op = OP_STATUS_WRITE
			operand, err = statusWrite(word)
		}
		return
	case 0b0001:
		switch op21 {
		case 0b01:
			op = OP_BRANCH_EXCHANGE
			operand, err = branchExchange(word)
			return
		case 0b11:
			if d.Arch < ARMv5TE {
				break
			}
			op = OP_COUNT_LEADING_ZEROS
			operand, err = countLeadingZeros(word)
			return
		}
	case 0b0011:
		if op21 != 0b01 || d.Arch < ARMv5TE {
			break
		}
		op = OP_BRANCH_EXCHANGE
		operand, err = branchExchange(word)
		return
	}

	err = ErrUndefined
	return
}

// require returns an ErrFieldConflict unless bits at offset under mask equal
// want.
func require(word uint32, name string, offset uint, mask uint32, want uint32) error {
	if field.Bits(word, offset, mask) != want {
		return &ErrFieldConflict{Word: word, Field: name, Want: want}
	}
	return nil
}

func dataProcessing(word uint32) DataProcessing {
	dp := DataProcessing{
		Alu: AluOp(field.Bits(word, 21, 0xf)),
		S:   field.FlagAt(word, 20),
		Rn:  field.RegAt(word, 16),
		Rd:  field.RegAt(word, 12),
	}

	if field.FlagAt(word, 25).IsSet() {
		dp.Op2 = ShifterOperand{
			Immediate: field.Set,
			Imm:       field.ByteAt(word, 0, 0xff),
			Rotate:    field.ByteAt(word, 8, 0xf),
		}
		return dp
	}

	dp.Op2 = ShifterOperand{
		Rm:         field.RegAt(word, 0),
		Shift:      ShiftType(field.Bits(word, 5, 0x3)),
		ShiftByReg: field.FlagAt(word, 4),
	}
	if dp.Op2.ShiftByReg.IsSet() {
		dp.Op2.Rs = field.RegAt(word, 8)
	} else {
		dp.Op2.ShiftImm = uint8(field.Bits(word, 7, 0x1f))
	}
	return dp
}

func multiply(word uint32) (m Multiply, err error) {
	m = Multiply{
		A:  field.FlagAt(word, 21),
		S:  field.FlagAt(word, 20),
		Rd: field.RegAt(word, 16),
		Rn: field.RegAt(word, 12),
		Rs: field.RegAt(word, 8),
		Rm: field.RegAt(word, 0),
	}
	if !m.A.IsSet() {
		err = require(word, "bits[15:12]", 12, 0xf, 0)
	}
	return
}

func multiplyLong(word uint32) MultiplyLong {
	return MultiplyLong{
		U:    field.FlagAt(word, 22),
		A:    field.FlagAt(word, 21),
		S:    field.FlagAt(word, 20),
		RdHi: field.RegAt(word, 16),
		RdLo: field.RegAt(word, 12),
		Rs:   field.RegAt(word, 8),
		Rm:   field.RegAt(word, 0),
	}
}

func swap(word uint32) (s Swap, err error) {
	err = require(word, "bits[11:8]", 8, 0xf, 0)
	if err != nil {
		return
	}
	s = Swap{
		B:  field.FlagAt(word, 22),
		Rn: field.RegAt(word, 16),
		Rd: field.RegAt(word, 12),
		Rm: field.RegAt(word, 0),
	}
	return
}

func branchExchange(word uint32) (bx BranchExchange, err error) {
	err = require(word, "bits[19:8]", 8, 0xfff, 0xfff)
	if err != nil {
		return
	}
	bx = BranchExchange{
		Link: field.FlagAt(word, 5),
		Rm:   field.RegAt(word, 0),
	}
	if bx.Link.IsSet() && bx.Rm == field.PC {
		err = ErrUnpredictable
	}
	return
}

func countLeadingZeros(word uint32) (clz CountLeadingZeros, err error) {
	err = require(word, "bits[19:16]", 16, 0xf, 0xf)
	if err == nil {
		err = require(word, "bits[11:8]", 8, 0xf, 0xf)
	}
	if err != nil {
		return
	}
	clz = CountLeadingZeros{
		Rd: field.RegAt(word, 12),
		Rm: field.RegAt(word, 0),
	}
	return
}

func statusRead(word uint32) (mrs StatusRead, err error) {
	err = require(word, "bits[19:16]", 16, 0xf, 0xf)
	if err == nil {
		err = require(word, "bits[11:0]", 0, 0xfff, 0)
	}
	if err != nil {
		return
	}
	mrs = StatusRead{
		R:  field.FlagAt(word, 22),
		Rd: field.RegAt(word, 12),
	}
	return
}

func statusWrite(word uint32) (msr StatusWrite, err error) {
	err = require(word, "bits[15:12]", 12, 0xf, 0xf)
	if err != nil {
		return
	}
	msr = StatusWrite{
		R:         field.FlagAt(word, 22),
		Mask:      uint8(field.Bits(word, 16, 0xf)),
		Immediate: field.FlagAt(word, 25),
	}
	if msr.Immediate.IsSet() {
		msr.Imm = field.ByteAt(word, 0, 0xff)
		msr.Rotate = field.ByteAt(word, 8, 0xf)
		return
	}
	err = require(word, "bits[11:4]", 4, 0xff, 0)
	msr.Rm = field.RegAt(word, 0)
	return
}

func halfwordTransfer(word uint32) (ht HalfwordTransfer, err error) {
	ht = HalfwordTransfer{
		P:  field.FlagAt(word, 24),
		U:  field.FlagAt(word, 23),
		I:  field.FlagAt(word, 22),
		W:  field.FlagAt(word, 21),
		L:  field.FlagAt(word, 20),
		Rn: field.RegAt(word, 16),
		Rd: field.RegAt(word, 12),
		S:  field.FlagAt(word, 6),
		H:  field.FlagAt(word, 5),
	}

	// Signed stores are the doubleword extension, which is not decoded.
	if ht.S.IsSet() && !ht.L.IsSet() {
		err = ErrUndefined
		return
	}

	if ht.I.IsSet() {
		ht.Offset = field.Byte(field.Bits(word, 8, 0xf)<<4 | field.Bits(word, 0, 0xf))
		return
	}
	err = require(word, "bits[11:8]", 8, 0xf, 0)
	ht.Rm = field.RegAt(word, 0)
	return
}

func mode2(word uint32) AddressingMode2 {
	if field.FlagAt(word, 25).IsSet() {
		return AddressingMode2{
			Register: field.Set,
			Rm:       field.RegAt(word, 0),
			Shift:    ShiftType(field.Bits(word, 5, 0x3)),
			ShiftImm: uint8(field.Bits(word, 7, 0x1f)),
		}
	}
	return AddressingMode2{Offset: uint16(field.Bits(word, 0, 0xfff))}
}

func singleTransfer(word uint32) SingleTransfer {
	return SingleTransfer{
		P:     field.FlagAt(word, 24),
		U:     field.FlagAt(word, 23),
		B:     field.FlagAt(word, 22),
		W:     field.FlagAt(word, 21),
		L:     field.FlagAt(word, 20),
		Rn:    field.RegAt(word, 16),
		Rd:    field.RegAt(word, 12),
		Mode2: mode2(word),
	}
}

func preload(word uint32) Preload {
	return Preload{
		U:     field.FlagAt(word, 23),
		Rn:    field.RegAt(word, 16),
		Mode2: mode2(word),
	}
}

func blockTransfer(word uint32) (bt BlockTransfer, err error) {
	bt = BlockTransfer{
		P:    field.FlagAt(word, 24),
		U:    field.FlagAt(word, 23),
		S:    field.FlagAt(word, 22),
		W:    field.FlagAt(word, 21),
		L:    field.FlagAt(word, 20),
		Rn:   field.RegAt(word, 16),
		List: field.RegisterListOf(word),
	}
	if bt.Rn == field.PC {
		err = ErrUnpredictable
	}
	return
}

func branch(word uint32) Branch {
	return Branch{
		Link:   field.FlagAt(word, 24),
		Offset: field.SignExtend(field.Bits(word, 0, 0xff_ffff), 24),
	}
}

func coprocessorTransfer(word uint32) CoprocessorTransfer {
	return CoprocessorTransfer{
		P:      field.FlagAt(word, 24),
		U:      field.FlagAt(word, 23),
		N:      field.FlagAt(word, 22),
		W:      field.FlagAt(word, 21),
		L:      field.FlagAt(word, 20),
		Rn:     field.RegAt(word, 16),
		CRd:    field.RegAt(word, 12),
		CPNum:  field.RegAt(word, 8),
		Offset: field.ByteAt(word, 0, 0xff),
	}
}

func coprocessorData(word uint32) CoprocessorData {
	return CoprocessorData{
		Op1:   uint8(field.Bits(word, 20, 0xf)),
		CRn:   field.RegAt(word, 16),
		CRd:   field.RegAt(word, 12),
		CPNum: field.RegAt(word, 8),
		Op2:   uint8(field.Bits(word, 5, 0x7)),
		CRm:   field.RegAt(word, 0),
	}
}

func coprocessorRegister(word uint32) CoprocessorRegister {
	return CoprocessorRegister{
		Op1:   uint8(field.Bits(word, 21, 0x7)),
		L:     field.FlagAt(word, 20),
		CRn:   field.RegAt(word, 16),
		Rd:    field.RegAt(word, 12),
		CPNum: field.RegAt(word, 8),
		Op2:   uint8(field.Bits(word, 5, 0x7)),
		CRm:   field.RegAt(word, 0),
	}
}

func softwareInterrupt(word uint32) SoftwareInterrupt {
	return SoftwareInterrupt{Comment: field.Bits(word, 0, 0xff_ffff)}
}
