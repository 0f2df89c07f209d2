package cpu

import "github.com/go6502/go6502/memory"

// addrMode enumerates the 8 addressing modes an instruction handler can
// be parameterized over. Immediate is handled inline by callers (it
// produces a value, not an address) so it has no case in effectiveAddr.
type addrMode int

const (
	modeZeroPage addrMode = iota
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
)

// effectiveAddr computes the effective address for m, charging the
// cycles documented for that mode. chargePenaltyAlways distinguishes
// the two flavours of indexed/indirect-Y addressing: read-type
// instructions pass false (the extra cycle is only charged when the
// index addition actually crosses a page), store and read-modify-write
// instructions pass true (the fix-up cycle always happens, since a
// store must settle the effective address's high byte regardless of
// whether a carry occurred).
func (c *Chip) effectiveAddr(mem *memory.Memory, cycles *int32, m addrMode, chargePenaltyAlways bool) uint16 {
	switch m {
	case modeZeroPage:
		return uint16(c.fetchByte(mem, cycles))

	case modeZeroPageX:
		zp := c.fetchByte(mem, cycles)
		charge(cycles, 1)
		return uint16(zp + c.X)

	case modeZeroPageY:
		zp := c.fetchByte(mem, cycles)
		charge(cycles, 1)
		return uint16(zp + c.Y)

	case modeAbsolute:
		return c.fetchWord(mem, cycles)

	case modeAbsoluteX:
		return c.absoluteIndexed(mem, cycles, c.X, chargePenaltyAlways)

	case modeAbsoluteY:
		return c.absoluteIndexed(mem, cycles, c.Y, chargePenaltyAlways)

	case modeIndirectX:
		zp := c.fetchByte(mem, cycles)
		charge(cycles, 1)
		ptr := uint16(zp + c.X)
		lo := c.readByte(mem, cycles, ptr)
		hi := c.readByte(mem, cycles, uint16(uint8(ptr+1)))
		return uint16(hi)<<8 | uint16(lo)

	case modeIndirectY:
		zp := c.fetchByte(mem, cycles)
		lo := c.readByte(mem, cycles, uint16(zp))
		hi := c.readByte(mem, cycles, uint16(uint8(zp+1)))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		if chargePenaltyAlways || (base&0xFF00) != (addr&0xFF00) {
			charge(cycles, 1)
		}
		return addr
	}
	panic("cpu: unhandled addressing mode")
}

// absoluteIndexed implements Absolute,X and Absolute,Y: fetch the
// little-endian base word, add reg, and charge the page-crossing
// fix-up cycle either unconditionally (stores/RMW) or only when the
// high byte actually changed (loads). The high-byte comparison is the
// correct 6502 test; a subtraction-based test (addr-base >= 0xFF) gives
// the wrong answer when reg == 0xFF and no page is actually crossed.
func (c *Chip) absoluteIndexed(mem *memory.Memory, cycles *int32, reg uint8, chargePenaltyAlways bool) uint16 {
	base := c.fetchWord(mem, cycles)
	addr := base + uint16(reg)
	if chargePenaltyAlways || (base&0xFF00) != (addr&0xFF00) {
		charge(cycles, 1)
	}
	return addr
}
