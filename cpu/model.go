package cpu

import (
	"strings"
	"time"

	"github.com/ezrec/armcore/isa"
)

// Model is a processor core.
type Model int

//go:generate go tool stringer -linecomment -type=Model
const (
	MODEL_ARM7TDMI = Model(0) // arm7tdmi
	MODEL_ARM946ES = Model(1) // arm946es
)

// Fixed time charged per executed instruction.
const (
	TICK_ARM7TDMI = 34 * time.Microsecond
	TICK_ARM946ES = 67 * time.Microsecond
)

// ParseModel returns the model named by its lower case string.
func ParseModel(name string) (model Model, err error) {
	switch strings.ToLower(name) {
	case MODEL_ARM7TDMI.String():
		model = MODEL_ARM7TDMI
	case MODEL_ARM946ES.String():
		model = MODEL_ARM946ES
	default:
		err = ErrModelUnknown
	}
	return
}

// Arch returns the instruction set revision of the model.
func (m Model) Arch() isa.Arch {
	if m == MODEL_ARM946ES {
		return isa.ARMv5TE
	}
	return isa.ARMv4T
}

// TickDuration returns the time charged per instruction.
func (m Model) TickDuration() time.Duration {
	if m == MODEL_ARM946ES {
		return TICK_ARM946ES
	}
	return TICK_ARM7TDMI
}
