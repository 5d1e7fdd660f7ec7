package memory

import (
	"io/fs"
)

// ReadRom reads a raw image from a file system into a ROM region at base.
func ReadRom(filesys fs.FS, name string, base uint32) (rom *Rom, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	rom = &Rom{
		Address: base,
		Data:    data,
	}
	return
}
