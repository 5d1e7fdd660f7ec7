package isa

import (
	"fmt"

	"github.com/ezrec/armcore/field"
)

// Operand is the field set extracted for one instruction shape.
type Operand interface {
	fmt.Stringer
	operand()
}

// ShifterOperand is addressing mode 1: the second operand of a
// data-processing instruction.
type ShifterOperand struct {
	Immediate  field.Flag // I: bits[7:0] rotated right by 2*Rotate.
	Imm        field.Byte
	Rotate     field.Byte
	Rm         field.Reg
	Shift      ShiftType
	ShiftImm   uint8      // 5-bit shift amount.
	ShiftByReg field.Flag // Shift amount taken from Rs.
	Rs         field.Reg
}

// Value returns the rotated immediate.
func (so ShifterOperand) Value() uint32 {
	rot := uint(so.Rotate) * 2
	value := uint32(so.Imm)
	return (value >> rot) | (value << ((32 - rot) & 31))
}

func (so ShifterOperand) String() string {
	if so.Immediate.IsSet() {
		return fmt.Sprintf("#%#x", so.Value())
	}
	if so.ShiftByReg.IsSet() {
		return fmt.Sprintf("%v, %v %v", so.Rm, so.Shift, so.Rs)
	}
	if so.ShiftImm == 0 && so.Shift == SHIFT_LSL {
		return so.Rm.String()
	}
	return fmt.Sprintf("%v, %v #%d", so.Rm, so.Shift, so.ShiftImm)
}

// AddressingMode2 is the offset of a word/byte transfer or preload.
type AddressingMode2 struct {
	Register field.Flag // Offset is a shifted register.
	Offset   uint16     // 12-bit immediate offset.
	Rm       field.Reg
	Shift    ShiftType
	ShiftImm uint8
}

func (am AddressingMode2) String() string {
	return am.signed(field.Set)
}

// signed formats the offset with the sign selected by the U bit.
func (am AddressingMode2) signed(u field.Flag) string {
	if !am.Register.IsSet() {
		return fmt.Sprintf("#%v%#x", sign(u), am.Offset)
	}
	if am.ShiftImm == 0 && am.Shift == SHIFT_LSL {
		return sign(u) + am.Rm.String()
	}
	return fmt.Sprintf("%v%v, %v #%d", sign(u), am.Rm, am.Shift, am.ShiftImm)
}

// DataProcessing operand.
type DataProcessing struct {
	Alu AluOp
	S   field.Flag
	Rn  field.Reg
	Rd  field.Reg
	Op2 ShifterOperand
}

// Multiply operand (MUL, MLA).
type Multiply struct {
	A  field.Flag
	S  field.Flag
	Rd field.Reg
	Rn field.Reg
	Rs field.Reg
	Rm field.Reg
}

// MultiplyLong operand (UMULL, UMLAL, SMULL, SMLAL).
type MultiplyLong struct {
	U    field.Flag // Set for signed.
	A    field.Flag
	S    field.Flag
	RdHi field.Reg
	RdLo field.Reg
	Rs   field.Reg
	Rm   field.Reg
}

// Swap operand (SWP, SWPB).
type Swap struct {
	B  field.Flag
	Rn field.Reg
	Rd field.Reg
	Rm field.Reg
}

// BranchExchange operand (BX, BLX register; Thumb BX, BLX).
type BranchExchange struct {
	Link field.Flag
	Rm   field.Reg
}

// CountLeadingZeros operand.
type CountLeadingZeros struct {
	Rd field.Reg
	Rm field.Reg
}

// StatusRead operand (MRS).
type StatusRead struct {
	R  field.Flag // SPSR when set.
	Rd field.Reg
}

// StatusWrite operand (MSR).
type StatusWrite struct {
	R         field.Flag // SPSR when set.
	Mask      uint8      // Field mask bits[19:16]: c, x, s, f.
	Immediate field.Flag
	Imm       field.Byte
	Rotate    field.Byte
	Rm        field.Reg
}

// Value returns the rotated immediate.
func (sw StatusWrite) Value() uint32 {
	return ShifterOperand{Imm: sw.Imm, Rotate: sw.Rotate}.Value()
}

// ByteMask returns the mask of the status bits written.
func (sw StatusWrite) ByteMask() (mask uint32) {
	for n := range 4 {
		if sw.Mask&(1<<n) != 0 {
			mask |= 0xff << (8 * n)
		}
	}
	return
}

// HalfwordTransfer operand (LDRH, STRH, LDRSB, LDRSH).
type HalfwordTransfer struct {
	P      field.Flag
	U      field.Flag
	I      field.Flag // Immediate offset.
	W      field.Flag
	L      field.Flag
	S      field.Flag // Signed.
	H      field.Flag // Halfword.
	Rn     field.Reg
	Rd     field.Reg
	Rm     field.Reg
	Offset field.Byte
}

// SingleTransfer operand (LDR, STR, LDRB, STRB).
type SingleTransfer struct {
	P     field.Flag
	U     field.Flag
	B     field.Flag
	W     field.Flag
	L     field.Flag
	Rn    field.Reg
	Rd    field.Reg
	Mode2 AddressingMode2
}

// BlockTransfer operand (LDM, STM).
type BlockTransfer struct {
	P    field.Flag
	U    field.Flag
	S    field.Flag
	W    field.Flag
	L    field.Flag
	Rn   field.Reg
	List field.RegisterList
}

// Branch operand (B, BL). Offset is in words.
type Branch struct {
	Link   field.Flag
	Offset int32
}

// Target returns the branch destination for an instruction at address.
func (br Branch) Target(address uint32) uint32 {
	return address + 8 + uint32(br.Offset<<2)
}

// BranchLinkExchange operand (BLX immediate).
type BranchLinkExchange struct {
	H      field.Flag // Halfword offset bit.
	Offset int32
}

// Target returns the Thumb destination for an instruction at address.
func (blx BranchLinkExchange) Target(address uint32) uint32 {
	return address + 8 + uint32(blx.Offset<<2) + blx.H.Uint32()<<1
}

// CoprocessorTransfer operand (LDC, STC).
type CoprocessorTransfer struct {
	P      field.Flag
	U      field.Flag
	N      field.Flag
	W      field.Flag
	L      field.Flag
	Rn     field.Reg
	CRd    field.Reg
	CPNum  field.Reg
	Offset field.Byte // Words.
}

// CoprocessorData operand (CDP).
type CoprocessorData struct {
	Op1   uint8
	CRn   field.Reg
	CRd   field.Reg
	CPNum field.Reg
	Op2   uint8
	CRm   field.Reg
}

// CoprocessorRegister operand (MRC, MCR).
type CoprocessorRegister struct {
	Op1   uint8
	L     field.Flag
	CRn   field.Reg
	Rd    field.Reg
	CPNum field.Reg
	Op2   uint8
	CRm   field.Reg
}

// SoftwareInterrupt operand. Comment is 24 bits.
type SoftwareInterrupt struct {
	Comment uint32
}

// Preload operand (PLD).
type Preload struct {
	U     field.Flag
	Rn    field.Reg
	Mode2 AddressingMode2
}

// ConditionalBranch is the Thumb conditional branch operand.
type ConditionalBranch struct {
	Cond   Condition
	Offset int8 // Halfwords.
}

// Target returns the destination for an instruction at address.
func (cb ConditionalBranch) Target(address uint32) uint32 {
	return address + 4 + uint32(int32(cb.Offset)<<1)
}

// ThumbBranch is the Thumb unconditional branch family operand. Long branches
// with link are assembled from a LINK_HIGH halfword followed by a LINK_LOW or
// LINK_EXCHANGE halfword.
type ThumbBranch struct {
	Half   LinkHalf
	Offset uint16 // 11 bits.
}

func (DataProcessing) operand()      {}
func (Multiply) operand()            {}
func (MultiplyLong) operand()        {}
func (Swap) operand()                {}
func (BranchExchange) operand()      {}
func (CountLeadingZeros) operand()   {}
func (StatusRead) operand()          {}
func (StatusWrite) operand()         {}
func (HalfwordTransfer) operand()    {}
func (SingleTransfer) operand()      {}
func (BlockTransfer) operand()       {}
func (Branch) operand()              {}
func (BranchLinkExchange) operand()  {}
func (CoprocessorTransfer) operand() {}
func (CoprocessorData) operand()     {}
func (CoprocessorRegister) operand() {}
func (SoftwareInterrupt) operand()   {}
func (Preload) operand()             {}
func (ConditionalBranch) operand()   {}
func (ThumbBranch) operand()         {}

func (dp DataProcessing) String() string {
	switch {
	case dp.Alu.Compare():
		return fmt.Sprintf("%v, %v", dp.Rn, dp.Op2)
	case dp.Alu == ALU_MOV || dp.Alu == ALU_MVN:
		return fmt.Sprintf("%v, %v", dp.Rd, dp.Op2)
	}
	return fmt.Sprintf("%v, %v, %v", dp.Rd, dp.Rn, dp.Op2)
}

func (m Multiply) String() string {
	if m.A.IsSet() {
		return fmt.Sprintf("%v, %v, %v, %v", m.Rd, m.Rm, m.Rs, m.Rn)
	}
	return fmt.Sprintf("%v, %v, %v", m.Rd, m.Rm, m.Rs)
}

func (ml MultiplyLong) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", ml.RdLo, ml.RdHi, ml.Rm, ml.Rs)
}

func (s Swap) String() string {
	return fmt.Sprintf("%v, %v, [%v]", s.Rd, s.Rm, s.Rn)
}

func (bx BranchExchange) String() string {
	return bx.Rm.String()
}

func (clz CountLeadingZeros) String() string {
	return fmt.Sprintf("%v, %v", clz.Rd, clz.Rm)
}

func psrName(r field.Flag) string {
	if r.IsSet() {
		return "spsr"
	}
	return "cpsr"
}

func (mrs StatusRead) String() string {
	return fmt.Sprintf("%v, %v", mrs.Rd, psrName(mrs.R))
}

func (msr StatusWrite) String() string {
	var mask string
	for n, c := range "cxsf" {
		if msr.Mask&(1<<n) != 0 {
			mask += string(c)
		}
	}
	if msr.Immediate.IsSet() {
		return fmt.Sprintf("%v_%v, #%#x", psrName(msr.R), mask, msr.Value())
	}
	return fmt.Sprintf("%v_%v, %v", psrName(msr.R), mask, msr.Rm)
}

func sign(u field.Flag) string {
	if u.IsSet() {
		return ""
	}
	return "-"
}

func (ht HalfwordTransfer) String() string {
	offset := fmt.Sprintf("#%v%#x", sign(ht.U), uint8(ht.Offset))
	if !ht.I.IsSet() {
		offset = sign(ht.U) + ht.Rm.String()
	}
	return transferString(ht.Rd, ht.Rn, ht.P, ht.W, offset)
}

func (st SingleTransfer) String() string {
	return transferString(st.Rd, st.Rn, st.P, st.W, st.Mode2.signed(st.U))
}

func transferString(rd, rn field.Reg, p, w field.Flag, offset string) string {
	if !p.IsSet() {
		return fmt.Sprintf("%v, [%v], %v", rd, rn, offset)
	}
	var bang string
	if w.IsSet() {
		bang = "!"
	}
	return fmt.Sprintf("%v, [%v, %v]%v", rd, rn, offset, bang)
}

func (bt BlockTransfer) String() string {
	var bang, hat string
	if bt.W.IsSet() {
		bang = "!"
	}
	if bt.S.IsSet() {
		hat = "^"
	}
	return fmt.Sprintf("%v%v, %v%v", bt.Rn, bang, bt.List, hat)
}

func (br Branch) String() string {
	return fmt.Sprintf("%+d", br.Offset<<2)
}

func (blx BranchLinkExchange) String() string {
	return fmt.Sprintf("%+d", blx.Offset<<2+int32(blx.H)<<1)
}

func (ct CoprocessorTransfer) String() string {
	return fmt.Sprintf("p%d, c%d, [%v, #%v%#x]", ct.CPNum, ct.CRd, ct.Rn, sign(ct.U), uint32(ct.Offset)<<2)
}

func (cd CoprocessorData) String() string {
	return fmt.Sprintf("p%d, %d, c%d, c%d, c%d, %d", cd.CPNum, cd.Op1, cd.CRd, cd.CRn, cd.CRm, cd.Op2)
}

func (cr CoprocessorRegister) String() string {
	return fmt.Sprintf("p%d, %d, %v, c%d, c%d, %d", cr.CPNum, cr.Op1, cr.Rd, cr.CRn, cr.CRm, cr.Op2)
}

func (swi SoftwareInterrupt) String() string {
	return fmt.Sprintf("#%#x", swi.Comment)
}

func (pld Preload) String() string {
	return fmt.Sprintf("[%v, %v]", pld.Rn, pld.Mode2.signed(pld.U))
}

func (cb ConditionalBranch) String() string {
	return fmt.Sprintf("%+d", int32(cb.Offset)<<1)
}

func (tb ThumbBranch) String() string {
	return fmt.Sprintf("%#x", tb.Offset)
}
