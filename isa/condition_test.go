package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allFlags returns all 16 flag combinations.
func allFlags() (all []Flags) {
	for n := range 16 {
		all = append(all, Flags{N: n&8 != 0, Z: n&4 != 0, C: n&2 != 0, V: n&1 != 0})
	}
	return
}

func TestEvaluate_EQ(t *testing.T) {
	assert := assert.New(t)

	assert.True(Evaluate(EQ, Flags{Z: true}))
	assert.False(Evaluate(EQ, Flags{Z: false}))
	assert.True(Evaluate(EQ, Flags{N: true, Z: true, C: true, V: true}))
}

func TestEvaluate_Always(t *testing.T) {
	assert := assert.New(t)

	for _, fl := range allFlags() {
		assert.True(Evaluate(AL, fl), fl.String())
		assert.True(Evaluate(NV, fl), fl.String())
	}
}

func TestEvaluate_Table(t *testing.T) {
	assert := assert.New(t)

	table := map[Condition]func(fl Flags) bool{
		EQ: func(fl Flags) bool { return fl.Z },
		NE: func(fl Flags) bool { return !fl.Z },
		HS: func(fl Flags) bool { return fl.C },
		LO: func(fl Flags) bool { return !fl.C },
		MI: func(fl Flags) bool { return fl.N },
		PL: func(fl Flags) bool { return !fl.N },
		VS: func(fl Flags) bool { return fl.V },
		VC: func(fl Flags) bool { return !fl.V },
		HI: func(fl Flags) bool { return fl.C && !fl.Z },
		LS: func(fl Flags) bool { return !fl.C || fl.Z },
		GE: func(fl Flags) bool { return fl.N == fl.V },
		LT: func(fl Flags) bool { return fl.N != fl.V },
		GT: func(fl Flags) bool { return !fl.Z && fl.N == fl.V },
		LE: func(fl Flags) bool { return fl.Z || fl.N != fl.V },
	}

	for cond, want := range table {
		for _, fl := range allFlags() {
			assert.Equal(want(fl), Evaluate(cond, fl), "%v %v", cond, fl)
		}
	}
}

func TestFlagsOf(t *testing.T) {
	assert := assert.New(t)

	fl := FlagsOf(0xa000_001f)
	assert.Equal(Flags{N: true, C: true}, fl)
	assert.Equal(uint32(0xa000_0000), fl.Word())
	assert.Equal("NzCv", fl.String())

	for _, fl := range allFlags() {
		assert.Equal(fl, FlagsOf(fl.Word()))
		assert.Equal(uint32(0x0000_00d3)|fl.Word(), fl.Apply(0xf000_00d3))
	}
}

func TestCondition_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("eq", EQ.String())
	assert.Equal("cs", HS.String())
	assert.Equal("nv", NV.String())
	assert.Equal("Condition(16)", Condition(16).String())
}
