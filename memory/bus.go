package memory

import (
	"encoding/binary"
	"log"
)

// Bus routes accesses to the mapped regions.
type Bus struct {
	Verbose bool // Set to enable verbose logging.

	Regions []Region
}

// Map adds a region to the bus. Regions may not overlap.
func (bus *Bus) Map(region Region) (err error) {
	base := uint64(region.Base())
	end := base + uint64(len(region.Bytes()))
	for _, other := range bus.Regions {
		other_base := uint64(other.Base())
		other_end := other_base + uint64(len(other.Bytes()))
		if base < other_end && other_base < end {
			err = ErrOverlap
			return
		}
	}

	if bus.Verbose {
		log.Printf("memory: map %#08x-%#08x writable:%v", base, end, region.Writable())
	}

	bus.Regions = append(bus.Regions, region)
	return
}

// Region returns the region holding [address, address+width).
func (bus *Bus) Region(address uint32, width int) (region Region, err error) {
	for _, region = range bus.Regions {
		if contains(region, address, width) {
			return
		}
	}
	region = nil
	err = &ErrAccess{Address: address, Width: width, Err: ErrUnmapped}
	return
}

// slice returns the bytes backing an access.
func (bus *Bus) slice(address uint32, width int, store bool) (data []byte, err error) {
	region, err := bus.Region(address, width)
	if err != nil {
		return
	}
	if store && !region.Writable() {
		err = &ErrAccess{Address: address, Width: width, Err: ErrReadOnly}
		return
	}
	offset := address - region.Base()
	data = region.Bytes()[offset : offset+uint32(width)]
	return
}

// Load copies data into the bus at address, ignoring write protection.
func (bus *Bus) Load(address uint32, data []byte) (err error) {
	region, err := bus.Region(address, len(data))
	if err != nil {
		_, start_err := bus.Region(address, 1)
		if start_err == nil {
			err = &ErrAccess{Address: address, Width: len(data), Err: ErrTooLarge}
		}
		return
	}
	copy(region.Bytes()[address-region.Base():], data)
	return
}

func (bus *Bus) FetchByte(address uint32) (value uint8, err error) {
	data, err := bus.slice(address, 1, false)
	if err != nil {
		return
	}
	value = data[0]
	return
}

func (bus *Bus) FetchHalfword(address uint32) (value uint16, err error) {
	data, err := bus.slice(address, 2, false)
	if err != nil {
		return
	}
	value = binary.LittleEndian.Uint16(data)
	return
}

func (bus *Bus) FetchWord(address uint32) (value uint32, err error) {
	data, err := bus.slice(address, 4, false)
	if err != nil {
		return
	}
	value = binary.LittleEndian.Uint32(data)
	return
}

func (bus *Bus) StoreByte(address uint32, value uint8) (err error) {
	data, err := bus.slice(address, 1, true)
	if err != nil {
		return
	}
	data[0] = value
	return
}

func (bus *Bus) StoreHalfword(address uint32, value uint16) (err error) {
	data, err := bus.slice(address, 2, true)
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint16(data, value)
	return
}

func (bus *Bus) StoreWord(address uint32, value uint32) (err error) {
	data, err := bus.slice(address, 4, true)
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint32(data, value)
	return
}
