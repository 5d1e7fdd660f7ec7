// Package isa decodes ARM and Thumb instruction words.
//
// Decoding classifies a word into a closed set of Opcode variants, each paired
// with exactly one Operand shape extracted from the word's bit fields. The
// decoder never panics on guest data: every malformed, reserved or
// unclassified encoding resolves to a typed error wrapped in ErrInstruction.
//
// The Thumb decoder classifies only the branch formats; all other halfwords
// resolve to ErrNotClassified.
package isa
