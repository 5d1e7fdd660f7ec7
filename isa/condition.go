package isa

// Condition is the 4-bit condition field of an instruction.
type Condition uint8

//go:generate go tool stringer -linecomment -type=Condition
const (
	EQ = Condition(0x0) // eq
	NE = Condition(0x1) // ne
	CS = Condition(0x2) // cs
	CC = Condition(0x3) // cc
	MI = Condition(0x4) // mi
	PL = Condition(0x5) // pl
	VS = Condition(0x6) // vs
	VC = Condition(0x7) // vc
	HI = Condition(0x8) // hi
	LS = Condition(0x9) // ls
	GE = Condition(0xa) // ge
	LT = Condition(0xb) // lt
	GT = Condition(0xc) // gt
	LE = Condition(0xd) // le
	AL = Condition(0xe) // al
	NV = Condition(0xf) // nv
)

// Aliases
const (
	HS = CS
	LO = CC
)

// Flags are the N, Z, C and V condition flags.
type Flags struct {
	N bool // Negative
	Z bool // Zero
	C bool // Carry
	V bool // Overflow
}

// FlagsOf returns the flags held in bits 31..28 of a status value.
func FlagsOf(status uint32) Flags {
	return Flags{
		N: status&(1<<31) != 0,
		Z: status&(1<<30) != 0,
		C: status&(1<<29) != 0,
		V: status&(1<<28) != 0,
	}
}

// Word returns the flags positioned in bits 31..28.
func (fl Flags) Word() (word uint32) {
	if fl.N {
		word |= 1 << 31
	}
	if fl.Z {
		word |= 1 << 30
	}
	if fl.C {
		word |= 1 << 29
	}
	if fl.V {
		word |= 1 << 28
	}
	return
}

// Apply replaces bits 31..28 of status with the flags.
func (fl Flags) Apply(status uint32) uint32 {
	return (status & 0x0fff_ffff) | fl.Word()
}

func (fl Flags) String() string {
	out := []byte("nzcv")
	for n, set := range []bool{fl.N, fl.Z, fl.C, fl.V} {
		if set {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}

// Evaluate returns true if an instruction with the condition executes under
// the flags. AL and NV always execute.
func Evaluate(cond Condition, fl Flags) bool {
	switch cond & 0xf {
	case EQ:
		return fl.Z
	case NE:
		return !fl.Z
	case CS:
		return fl.C
	case CC:
		return !fl.C
	case MI:
		return fl.N
	case PL:
		return !fl.N
	case VS:
		return fl.V
	case VC:
		return !fl.V
	case HI:
		return fl.C && !fl.Z
	case LS:
		return !fl.C || fl.Z
	case GE:
		return fl.N == fl.V
	case LT:
		return fl.N != fl.V
	case GT:
		return !fl.Z && fl.N == fl.V
	case LE:
		return fl.Z || fl.N != fl.V
	}
	return true
}
