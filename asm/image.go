package asm

import (
	"encoding/binary"
	"iter"
	"slices"
)

// Fixup is the link-time patch applied to a statement.
type Fixup int

//go:generate go tool stringer -linecomment -type=Fixup
const (
	FIXUP_NONE            = Fixup(0) // none
	FIXUP_WORD            = Fixup(1) // word
	FIXUP_BRANCH          = Fixup(2) // branch
	FIXUP_BRANCH_EXCHANGE = Fixup(3) // blx
	FIXUP_THUMB_BRANCH    = Fixup(4) // thumb-branch
	FIXUP_THUMB_COND      = Fixup(5) // thumb-cond
	FIXUP_THUMB_LINK      = Fixup(6) // thumb-link
)

// Statement is one assembled source line.
type Statement struct {
	LineNo    int      // Source line number.
	Address   uint32   // Address of the first byte.
	Words     []string // Source words, after expansion.
	Data      []byte   // Assembled bytes.
	LinkLabel string   // Label resolved by the link pass.
	Fixup     Fixup    // Patch applied with the label's address.
}

// Contains returns true if address lies in the statement's bytes.
func (stmt *Statement) Contains(address uint32) bool {
	return address >= stmt.Address && uint64(address) < uint64(stmt.Address)+uint64(len(stmt.Data))
}

// resolve patches the statement's bytes with the target address.
func (stmt *Statement) resolve(target uint32) (err error) {
	le := binary.LittleEndian

	var here, low, high, align int64
	switch stmt.Fixup {
	case FIXUP_NONE:
		return
	case FIXUP_WORD:
		le.PutUint32(stmt.Data, target)
		return
	case FIXUP_BRANCH:
		here, low, high, align = 8, -(1 << 25), 1<<25, 4
	case FIXUP_BRANCH_EXCHANGE:
		here, low, high, align = 8, -(1 << 25), 1<<25, 2
	case FIXUP_THUMB_BRANCH:
		here, low, high, align = 4, -(1 << 11), 1<<11, 2
	case FIXUP_THUMB_COND:
		here, low, high, align = 4, -(1 << 8), 1<<8, 2
	case FIXUP_THUMB_LINK:
		here, low, high, align = 4, -(1 << 22), 1<<22, 2
	}

	offset := int64(target) - (int64(stmt.Address) + here)
	if offset%align != 0 {
		err = ErrBranchAlign
		return
	}
	if offset < low || offset >= high {
		err = ErrBranchRange
		return
	}

	switch stmt.Fixup {
	case FIXUP_BRANCH:
		word := le.Uint32(stmt.Data)
		word = word&0xff00_0000 | uint32(offset>>2)&0xff_ffff
		le.PutUint32(stmt.Data, word)
	case FIXUP_BRANCH_EXCHANGE:
		word := le.Uint32(stmt.Data)
		word = word&0xfe00_0000 | uint32(offset>>1)&1<<24 | uint32(offset>>2)&0xff_ffff
		le.PutUint32(stmt.Data, word)
	case FIXUP_THUMB_BRANCH:
		half := le.Uint16(stmt.Data)
		le.PutUint16(stmt.Data, half&0xf800|uint16(offset>>1)&0x7ff)
	case FIXUP_THUMB_COND:
		half := le.Uint16(stmt.Data)
		le.PutUint16(stmt.Data, half&0xff00|uint16(offset>>1)&0xff)
	case FIXUP_THUMB_LINK:
		hi := le.Uint16(stmt.Data[0:])
		lo := le.Uint16(stmt.Data[2:])
		le.PutUint16(stmt.Data[0:], hi&0xf800|uint16(offset>>12)&0x7ff)
		le.PutUint16(stmt.Data[2:], lo&0xf800|uint16(offset>>1)&0x7ff)
	}

	return
}

// Image is an assembled program.
type Image struct {
	Entry      uint32 // Entry point. Bit 0 set enters Thumb state.
	Statements []Statement
}

// Debug locates an address in the image source.
type Debug struct {
	*Statement
	Offset int // Byte offset of the address in the statement.
}

// Debug returns the statement holding address. The embedded Statement is
// nil if there is none.
func (img *Image) Debug(address uint32) (dbg Debug) {
	for n, stmt := range img.Statements {
		if stmt.Contains(address) {
			dbg = Debug{
				Statement: &img.Statements[n],
				Offset:    int(address - stmt.Address),
			}
			break
		}
	}

	return
}

// Segments returns the image as runs of contiguous bytes, keyed by their
// load address.
func (img *Image) Segments() iter.Seq2[uint32, []byte] {
	return func(yield func(address uint32, data []byte) bool) {
		var base uint32
		var data []byte
		for _, stmt := range img.Statements {
			if len(data) > 0 && uint64(base)+uint64(len(data)) == uint64(stmt.Address) {
				data = append(data, stmt.Data...)
				continue
			}
			if len(data) > 0 && !yield(base, data) {
				return
			}
			base = stmt.Address
			data = slices.Clone(stmt.Data)
		}
		if len(data) > 0 {
			yield(base, data)
		}
	}
}

// Size returns the number of assembled bytes.
func (img *Image) Size() (size int) {
	for _, stmt := range img.Statements {
		size += len(stmt.Data)
	}
	return
}
