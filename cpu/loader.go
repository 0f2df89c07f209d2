package cpu

import "github.com/go6502/go6502/memory"

// LoadProg loads a raw program image into mem and returns the address
// execution should start at. The first two bytes of program are the
// little-endian load address; every byte after that is copied
// sequentially starting there. An empty (or one-byte) program loads
// nothing and returns 0.
func LoadProg(program []byte, mem *memory.Memory) uint16 {
	if len(program) < 2 {
		return 0
	}
	addr := uint16(program[0]) | uint16(program[1])<<8
	for i, b := range program[2:] {
		mem.Write(addr+uint16(i), b)
	}
	return addr
}
