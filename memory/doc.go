// Package memory implements a flat little-endian bus of ROM and RAM regions
// for the processor core to fetch from and store to.
package memory
