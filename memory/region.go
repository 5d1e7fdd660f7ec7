package memory

// Region is a contiguous block of the address space.
type Region interface {
	// Base returns the first address of the region.
	Base() uint32
	// Bytes returns the backing store of the region.
	Bytes() []byte
	// Writable returns true if stores are accepted.
	Writable() bool
}

// Rom is a read-only region.
type Rom struct {
	Address uint32
	Data    []byte
}

var _ Region = (*Rom)(nil)

func (rom *Rom) Base() uint32 {
	return rom.Address
}

func (rom *Rom) Bytes() []byte {
	return rom.Data
}

func (rom *Rom) Writable() bool {
	return false
}

// Ram is a writable region.
type Ram struct {
	Address uint32
	Data    []byte
}

var _ Region = (*Ram)(nil)

// NewRam returns a zeroed RAM region of size bytes at base.
func NewRam(base uint32, size int) *Ram {
	return &Ram{
		Address: base,
		Data:    make([]byte, size),
	}
}

func (ram *Ram) Base() uint32 {
	return ram.Address
}

func (ram *Ram) Bytes() []byte {
	return ram.Data
}

func (ram *Ram) Writable() bool {
	return true
}

// Reset zeroes the region.
func (ram *Ram) Reset() {
	clear(ram.Data)
}

// contains returns true if [address, address+width) lies in the region.
func contains(region Region, address uint32, width int) bool {
	base := region.Base()
	if address < base {
		return false
	}
	return uint64(address-base)+uint64(width) <= uint64(len(region.Bytes()))
}
