package cpu

import "github.com/go6502/go6502/memory"

// This file holds the cycle-accounted bus primitives every addressing
// mode and instruction handler builds on. Every primitive charges
// cycles before returning, so callers never need to remember to do it
// themselves — they only charge the extra, instruction-specific cycles
// documented alongside each handler.

// fetchByte reads the byte at PC, advances PC, and charges 1 cycle.
func (c *Chip) fetchByte(mem *memory.Memory, cycles *int32) uint8 {
	v := mem.Read(c.PC)
	c.PC++
	charge(cycles, 1)
	return v
}

// fetchWord reads the little-endian word at PC, advancing PC by two and
// charging 2 cycles total.
func (c *Chip) fetchWord(mem *memory.Memory, cycles *int32) uint16 {
	lo := c.fetchByte(mem, cycles)
	hi := c.fetchByte(mem, cycles)
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads the byte at addr, charging 1 cycle.
func (c *Chip) readByte(mem *memory.Memory, cycles *int32, addr uint16) uint8 {
	v := mem.Read(addr)
	charge(cycles, 1)
	return v
}

// readWord reads the little-endian word at addr and addr+1, charging 2
// cycles total. Note this does not wrap within a page — callers that
// need zero-page pointer wraparound build the address themselves byte
// by byte (see the modeIndirectX/modeIndirectY cases of effectiveAddr).
func (c *Chip) readWord(mem *memory.Memory, cycles *int32, addr uint16) uint16 {
	lo := c.readByte(mem, cycles, addr)
	hi := c.readByte(mem, cycles, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

// writeByte stores val at addr, charging 1 cycle.
func (c *Chip) writeByte(mem *memory.Memory, cycles *int32, addr uint16, val uint8) {
	mem.Write(addr, val)
	charge(cycles, 1)
}

// pushByte pushes val onto the stack (page 1) and charges 2 cycles
// total: one for the write, one for the internal SP decrement. Used by
// PHA/PHP and by the pull operations' symmetric popByte.
func (c *Chip) pushByte(mem *memory.Memory, cycles *int32, val uint8) {
	mem.Write(0x0100+uint16(c.SP), val)
	c.SP--
	charge(cycles, 2)
}

// popByte pops the top byte off the stack, charging 2 cycles total (one
// internal SP increment, one read).
func (c *Chip) popByte(mem *memory.Memory, cycles *int32) uint8 {
	c.SP++
	v := mem.Read(0x0100 + uint16(c.SP))
	charge(cycles, 2)
	return v
}

// pushReturnAddr pushes a 16-bit address (high byte first, per 6502
// convention) onto the stack for JSR, charging 2 cycles total for both
// bytes — a dedicated primitive distinct from two pushByte calls, since
// JSR's documented total cycle count only has room for one combined
// push of the return address.
func (c *Chip) pushReturnAddr(mem *memory.Memory, cycles *int32, val uint16) {
	mem.Write(0x0100+uint16(c.SP), uint8(val>>8))
	c.SP--
	mem.Write(0x0100+uint16(c.SP), uint8(val&0xFF))
	c.SP--
	charge(cycles, 2)
}

// popReturnAddr pops a 16-bit address (low byte first) for RTS/RTI,
// charging 3 cycles total (2 reads, 1 internal increment step).
func (c *Chip) popReturnAddr(mem *memory.Memory, cycles *int32) uint16 {
	c.SP++
	lo := mem.Read(0x0100 + uint16(c.SP))
	c.SP++
	hi := mem.Read(0x0100 + uint16(c.SP))
	charge(cycles, 3)
	return uint16(hi)<<8 | uint16(lo)
}
