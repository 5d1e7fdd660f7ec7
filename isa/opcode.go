package isa

// Opcode is the instruction class selected by decoding.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_DATA_PROCESSING       = Opcode(0)  // dp
	OP_MULTIPLY              = Opcode(1)  // mul
	OP_MULTIPLY_LONG         = Opcode(2)  // mull
	OP_SWAP                  = Opcode(3)  // swp
	OP_BRANCH_EXCHANGE       = Opcode(4)  // bx
	OP_COUNT_LEADING_ZEROS   = Opcode(5)  // clz
	OP_STATUS_READ           = Opcode(6)  // mrs
	OP_STATUS_WRITE          = Opcode(7)  // msr
	OP_HALFWORD_TRANSFER     = Opcode(8)  // ldrh
	OP_SINGLE_TRANSFER       = Opcode(9)  // ldr
	OP_BLOCK_TRANSFER        = Opcode(10) // ldm
	OP_BRANCH                = Opcode(11) // b
	OP_BRANCH_LINK           = Opcode(12) // bl
	OP_BRANCH_LINK_EXCHANGE  = Opcode(13) // blx
	OP_COPROCESSOR_LOAD      = Opcode(14) // ldc
	OP_COPROCESSOR_STORE     = Opcode(15) // stc
	OP_COPROCESSOR_DATA      = Opcode(16) // cdp
	OP_COPROCESSOR_REGISTER  = Opcode(17) // mrc
	OP_SOFTWARE_INTERRUPT    = Opcode(18) // swi
	OP_PRELOAD               = Opcode(19) // pld
	OP_THUMB_BRANCH_COND     = Opcode(20) // tbcond
	OP_THUMB_BRANCH          = Opcode(21) // tb
	OP_THUMB_BRANCH_LINK     = Opcode(22) // tbl
	OP_THUMB_BRANCH_EXCHANGE = Opcode(23) // tbx
	OP_COUNT                 = Opcode(24) // -
)

// Opcodes returns every opcode in order.
func Opcodes() (ops []Opcode) {
	for op := range OP_COUNT {
		ops = append(ops, op)
	}
	return
}

// Thumb returns true for opcodes decoded from Thumb halfwords.
func (op Opcode) Thumb() bool {
	return op >= OP_THUMB_BRANCH_COND && op < OP_COUNT
}

// accepts returns true if the operand shape belongs to the opcode.
func (op Opcode) accepts(operand Operand) (ok bool) {
	switch operand.(type) {
	case DataProcessing:
		ok = op == OP_DATA_PROCESSING
	case Multiply:
		ok = op == OP_MULTIPLY
	case MultiplyLong:
		ok = op == OP_MULTIPLY_LONG
	case Swap:
		ok = op == OP_SWAP
	case BranchExchange:
		ok = op == OP_BRANCH_EXCHANGE || op == OP_THUMB_BRANCH_EXCHANGE
	case CountLeadingZeros:
		ok = op == OP_COUNT_LEADING_ZEROS
	case StatusRead:
		ok = op == OP_STATUS_READ
	case StatusWrite:
		ok = op == OP_STATUS_WRITE
	case HalfwordTransfer:
		ok = op == OP_HALFWORD_TRANSFER
	case SingleTransfer:
		ok = op == OP_SINGLE_TRANSFER
	case BlockTransfer:
		ok = op == OP_BLOCK_TRANSFER
	case Branch:
		ok = op == OP_BRANCH || op == OP_BRANCH_LINK
	case BranchLinkExchange:
		ok = op == OP_BRANCH_LINK_EXCHANGE
	case CoprocessorTransfer:
		ok = op == OP_COPROCESSOR_LOAD || op == OP_COPROCESSOR_STORE
	case CoprocessorData:
		ok = op == OP_COPROCESSOR_DATA
	case CoprocessorRegister:
		ok = op == OP_COPROCESSOR_REGISTER
	case SoftwareInterrupt:
		ok = op == OP_SOFTWARE_INTERRUPT
	case Preload:
		ok = op == OP_PRELOAD
	case ConditionalBranch:
		ok = op == OP_THUMB_BRANCH_COND
	case ThumbBranch:
		ok = op == OP_THUMB_BRANCH || op == OP_THUMB_BRANCH_LINK
	}
	return
}

// AluOp is the data-processing operation in bits[24:21].
type AluOp uint8

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_AND = AluOp(0x0) // and
	ALU_EOR = AluOp(0x1) // eor
	ALU_SUB = AluOp(0x2) // sub
	ALU_RSB = AluOp(0x3) // rsb
	ALU_ADD = AluOp(0x4) // add
	ALU_ADC = AluOp(0x5) // adc
	ALU_SBC = AluOp(0x6) // sbc
	ALU_RSC = AluOp(0x7) // rsc
	ALU_TST = AluOp(0x8) // tst
	ALU_TEQ = AluOp(0x9) // teq
	ALU_CMP = AluOp(0xa) // cmp
	ALU_CMN = AluOp(0xb) // cmn
	ALU_ORR = AluOp(0xc) // orr
	ALU_MOV = AluOp(0xd) // mov
	ALU_BIC = AluOp(0xe) // bic
	ALU_MVN = AluOp(0xf) // mvn
)

// Compare returns true for the operations that only set flags.
func (op AluOp) Compare() bool {
	return op >= ALU_TST && op <= ALU_CMN
}

// Logical returns true for the operations whose carry comes from the shifter.
func (op AluOp) Logical() bool {
	switch op {
	case ALU_AND, ALU_EOR, ALU_TST, ALU_TEQ, ALU_ORR, ALU_MOV, ALU_BIC, ALU_MVN:
		return true
	}
	return false
}

// ShiftType is the barrel shifter operation in bits[6:5].
type ShiftType uint8

//go:generate go tool stringer -linecomment -type=ShiftType
const (
	SHIFT_LSL = ShiftType(0) // lsl
	SHIFT_LSR = ShiftType(1) // lsr
	SHIFT_ASR = ShiftType(2) // asr
	SHIFT_ROR = ShiftType(3) // ror
)

// LinkHalf is the H field of the Thumb unconditional branch family.
type LinkHalf uint8

//go:generate go tool stringer -linecomment -type=LinkHalf
const (
	LINK_NONE     = LinkHalf(0) // b
	LINK_EXCHANGE = LinkHalf(1) // blx.lo
	LINK_HIGH     = LinkHalf(2) // bl.hi
	LINK_LOW      = LinkHalf(3) // bl.lo
)
