// Package cpu implements the ARM processor core: a banked register file, the
// exception controller, and an executor that fetches, decodes and applies
// instructions against an attached memory.
//
// The register file holds the sixteen general registers, the FIQ bank of
// r8-r14, the r13/r14 banks of the remaining privileged modes, the CPSR and
// one SPSR per exception mode. Registers are stored as an arena of named
// slots, see Register.
//
// Exceptions are queued on a priority-ordered stack and delivered through
// the fixed vector table on the next Tick.
package cpu
