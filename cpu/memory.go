package cpu

// Memory is the fetch side of the bus the core executes from.
type Memory interface {
	FetchByte(address uint32) (value uint8, err error)
	FetchHalfword(address uint32) (value uint16, err error)
	FetchWord(address uint32) (value uint32, err error)
}

// Storage is the optional write side of Memory.
type Storage interface {
	StoreByte(address uint32, value uint8) (err error)
	StoreHalfword(address uint32, value uint16) (err error)
	StoreWord(address uint32, value uint32) (err error)
}
