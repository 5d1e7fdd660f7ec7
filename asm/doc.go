// Package asm assembles source text into a loadable memory image.
//
// The source is line oriented, with ';' starting a comment. A line holds
// optional labels ("name:"), then a directive or an instruction:
//
//	.org ADDR          Set the assembly address.
//	.entry [ADDR]      Set the entry point (default: here).
//	.arm / .thumb      Select the instruction set.
//	.align N           Pad with zeros to an N byte boundary.
//	.word / .half / .byte V...
//	.equ NAME VALUE
//	.macro NAME ARG... / .endm
//
// Instructions are the branch forms (b, bl, bx, blx), swi, mov of a register
// or an encodable immediate, and nop. Any other instruction can be given
// with .word. Conditions are mnemonic suffixes ("bne", "swieq").
//
// Values may be written as $(EXPR), evaluated at assembly time as a
// starlark expression over the integer equates and the labels seen so far.
package asm
