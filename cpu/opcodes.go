package cpu

import "github.com/go6502/go6502/memory"

// This file holds the instruction-family helpers and the opcode
// dispatch table. Each helper charges exactly the cycles its family
// documents beyond addressing (effectiveAddr/fetchByte already charge
// the addressing-mode cost); dispatch's switch maps every documented
// opcode byte to one of them.

// valueAt reads the operand for a read-type instruction at addressing
// mode m (the conditional page-cross penalty variant).
func (c *Chip) valueAt(mem *memory.Memory, cycles *int32, m addrMode) uint8 {
	addr := c.effectiveAddr(mem, cycles, m, false)
	return c.readByte(mem, cycles, addr)
}

func (c *Chip) loadRegImmediate(mem *memory.Memory, cycles *int32, reg *uint8) {
	v := c.fetchByte(mem, cycles)
	*reg = v
	c.loadRegisterSetStatus(v)
}

func (c *Chip) loadReg(mem *memory.Memory, cycles *int32, m addrMode, reg *uint8) {
	v := c.valueAt(mem, cycles, m)
	*reg = v
	c.loadRegisterSetStatus(v)
}

func (c *Chip) store(mem *memory.Memory, cycles *int32, m addrMode, val uint8) {
	addr := c.effectiveAddr(mem, cycles, m, true)
	c.writeByte(mem, cycles, addr, val)
}

func (c *Chip) logicalImmediate(mem *memory.Memory, cycles *int32, fn func(a, b uint8) uint8) {
	v := c.fetchByte(mem, cycles)
	c.A = fn(c.A, v)
	c.loadRegisterSetStatus(c.A)
}

func (c *Chip) logical(mem *memory.Memory, cycles *int32, m addrMode, fn func(a, b uint8) uint8) {
	v := c.valueAt(mem, cycles, m)
	c.A = fn(c.A, v)
	c.loadRegisterSetStatus(c.A)
}

func andFn(a, b uint8) uint8 { return a & b }
func eorFn(a, b uint8) uint8 { return a ^ b }
func oraFn(a, b uint8) uint8 { return a | b }

func (c *Chip) aluImmediate(mem *memory.Memory, cycles *int32, fn func(uint8) error) error {
	v := c.fetchByte(mem, cycles)
	return fn(v)
}

func (c *Chip) alu(mem *memory.Memory, cycles *int32, m addrMode, fn func(uint8) error) error {
	v := c.valueAt(mem, cycles, m)
	return fn(v)
}

func (c *Chip) compareImmediate(mem *memory.Memory, cycles *int32, reg uint8) {
	v := c.fetchByte(mem, cycles)
	c.compare(reg, v)
}

func (c *Chip) compareAt(mem *memory.Memory, cycles *int32, m addrMode, reg uint8) {
	v := c.valueAt(mem, cycles, m)
	c.compare(reg, v)
}

func (c *Chip) bitAt(mem *memory.Memory, cycles *int32, m addrMode) {
	v := c.valueAt(mem, cycles, m)
	c.bit(v)
}

// rmw implements the read-modify-write recipe shared by ASL/LSR/ROL/
// ROR/INC/DEC on memory: read (1 cycle), an internal modify cycle
// (1 cycle — the dummy write-back real 6502 hardware performs before
// the real write), then write (1 cycle).
func (c *Chip) rmw(mem *memory.Memory, cycles *int32, m addrMode, fn func(uint8) uint8) {
	addr := c.effectiveAddr(mem, cycles, m, true)
	v := c.readByte(mem, cycles, addr)
	charge(cycles, 1)
	nv := fn(v)
	c.writeByte(mem, cycles, addr, nv)
}

// rmwAcc implements the accumulator form of ASL/LSR/ROL/ROR: 1 internal
// cycle, no bus access.
func (c *Chip) rmwAcc(cycles *int32, fn func(uint8) uint8) {
	charge(cycles, 1)
	c.A = fn(c.A)
}

// transfer implements the 2-cycle register-to-register moves.
// TXS doesn't touch flags; everything else does.
func (c *Chip) transfer(cycles *int32, dst *uint8, val uint8, setFlags bool) {
	charge(cycles, 1)
	*dst = val
	if setFlags {
		c.loadRegisterSetStatus(val)
	}
}

func (c *Chip) incdecReg(cycles *int32, reg *uint8, fn func(uint8) uint8) {
	charge(cycles, 1)
	*reg = fn(*reg)
}

func (c *Chip) flagOp(cycles *int32, fn func()) {
	charge(cycles, 1)
	fn()
}

// pullA/pullP implement PLA/PLP: pop (2 cycles) plus the extra internal
// cycle pulls pay that pushes don't (PHA/PHP use pushByte directly, 3
// cycles total; PLA/PLP need the extra 1 to reach their documented 4).
func (c *Chip) pullA(mem *memory.Memory, cycles *int32) {
	v := c.popByte(mem, cycles)
	charge(cycles, 1)
	c.A = v
	c.loadRegisterSetStatus(v)
}

func (c *Chip) pullP(mem *memory.Memory, cycles *int32) {
	v := c.popByte(mem, cycles)
	charge(cycles, 1)
	c.P = v &^ (P_BREAK | P_UNUSED)
}

// branch implements every conditional branch: 2 base cycles (opcode
// fetch, already charged by Execute, plus the displacement fetch
// here), +1 if taken, +1 more if the branch crosses a page. This
// resolves the spec's open question in favor of the authentic 6502
// total of 4 cycles for a taken, page-crossing branch (not 5).
func (c *Chip) branch(mem *memory.Memory, cycles *int32, cond bool) {
	offset := c.fetchByte(mem, cycles)
	if !cond {
		return
	}
	old := c.PC
	c.PC = uint16(int32(old) + int32(int8(offset)))
	charge(cycles, 1)
	if (old & 0xFF00) != (c.PC & 0xFF00) {
		charge(cycles, 1)
	}
}

// jsr pushes the address of the last byte of the JSR instruction
// (PC-1 at this point, since fetchWord already advanced PC past the
// 3-byte instruction) and jumps to the fetched target.
func (c *Chip) jsr(mem *memory.Memory, cycles *int32) {
	target := c.fetchWord(mem, cycles)
	c.pushReturnAddr(mem, cycles, c.PC-1)
	charge(cycles, 1)
	c.PC = target
}

// rts pops the return address and adds 1, undoing JSR's PC-1.
func (c *Chip) rts(mem *memory.Memory, cycles *int32) {
	addr := c.popReturnAddr(mem, cycles)
	c.PC = addr + 1
	charge(cycles, 2)
}

// jmpIndirect fetches the pointer word, then reads the target word at
// that pointer. Unlike real NMOS 6502 hardware, the pointer's high byte
// is read from ptr+1 with ordinary 16-bit wraparound, not from the same
// page as the low byte — the well-known JMP ($xxFF) page-wrap bug is
// not emulated, matching the spec's stated fixed-behaviour default.
func (c *Chip) jmpIndirect(mem *memory.Memory, cycles *int32) {
	ptr := c.fetchWord(mem, cycles)
	addr := c.readWord(mem, cycles, ptr)
	c.PC = addr
}

// brk implements BRK: advance past the ignored padding byte, push PC
// and P (with B and U forced set in the stacked value only), disable
// further interrupts, and load PC from the IRQ vector.
func (c *Chip) brk(mem *memory.Memory, cycles *int32) {
	c.PC++
	c.pushReturnAddr(mem, cycles, c.PC)
	c.pushByte(mem, cycles, c.P|P_BREAK|P_UNUSED)
	c.P |= P_INTERRUPT
	lo := c.readByte(mem, cycles, IRQVector)
	hi := c.readByte(mem, cycles, IRQVector+1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// rti implements RTI: pop P (masking B/U, which only exist in the
// stacked representation) then pop PC unmodified — unlike RTS, RTI does
// not add 1 to the popped address.
func (c *Chip) rti(mem *memory.Memory, cycles *int32) {
	v := c.popByte(mem, cycles)
	c.P = v &^ (P_BREAK | P_UNUSED)
	c.PC = c.popReturnAddr(mem, cycles)
}

// dispatch decodes op and runs its handler, charging every cycle the
// instruction documents beyond the opcode fetch Execute already
// charged. It returns a non-nil error only for the two fatal faults
// this core defines: an unknown opcode, or decimal-mode ADC/SBC.
func (c *Chip) dispatch(op uint8, mem *memory.Memory, cycles *int32) error {
	switch op {
	// LDA
	case 0xA9:
		c.loadRegImmediate(mem, cycles, &c.A)
	case 0xA5:
		c.loadReg(mem, cycles, modeZeroPage, &c.A)
	case 0xB5:
		c.loadReg(mem, cycles, modeZeroPageX, &c.A)
	case 0xAD:
		c.loadReg(mem, cycles, modeAbsolute, &c.A)
	case 0xBD:
		c.loadReg(mem, cycles, modeAbsoluteX, &c.A)
	case 0xB9:
		c.loadReg(mem, cycles, modeAbsoluteY, &c.A)
	case 0xA1:
		c.loadReg(mem, cycles, modeIndirectX, &c.A)
	case 0xB1:
		c.loadReg(mem, cycles, modeIndirectY, &c.A)

	// LDX
	case 0xA2:
		c.loadRegImmediate(mem, cycles, &c.X)
	case 0xA6:
		c.loadReg(mem, cycles, modeZeroPage, &c.X)
	case 0xB6:
		c.loadReg(mem, cycles, modeZeroPageY, &c.X)
	case 0xAE:
		c.loadReg(mem, cycles, modeAbsolute, &c.X)
	case 0xBE:
		c.loadReg(mem, cycles, modeAbsoluteY, &c.X)

	// LDY
	case 0xA0:
		c.loadRegImmediate(mem, cycles, &c.Y)
	case 0xA4:
		c.loadReg(mem, cycles, modeZeroPage, &c.Y)
	case 0xB4:
		c.loadReg(mem, cycles, modeZeroPageX, &c.Y)
	case 0xAC:
		c.loadReg(mem, cycles, modeAbsolute, &c.Y)
	case 0xBC:
		c.loadReg(mem, cycles, modeAbsoluteX, &c.Y)

	// STA
	case 0x85:
		c.store(mem, cycles, modeZeroPage, c.A)
	case 0x95:
		c.store(mem, cycles, modeZeroPageX, c.A)
	case 0x8D:
		c.store(mem, cycles, modeAbsolute, c.A)
	case 0x9D:
		c.store(mem, cycles, modeAbsoluteX, c.A)
	case 0x99:
		c.store(mem, cycles, modeAbsoluteY, c.A)
	case 0x81:
		c.store(mem, cycles, modeIndirectX, c.A)
	case 0x91:
		c.store(mem, cycles, modeIndirectY, c.A)

	// STX / STY
	case 0x86:
		c.store(mem, cycles, modeZeroPage, c.X)
	case 0x96:
		c.store(mem, cycles, modeZeroPageY, c.X)
	case 0x8E:
		c.store(mem, cycles, modeAbsolute, c.X)
	case 0x84:
		c.store(mem, cycles, modeZeroPage, c.Y)
	case 0x94:
		c.store(mem, cycles, modeZeroPageX, c.Y)
	case 0x8C:
		c.store(mem, cycles, modeAbsolute, c.Y)

	// Transfers
	case 0xAA: // TAX
		c.transfer(cycles, &c.X, c.A, true)
	case 0xA8: // TAY
		c.transfer(cycles, &c.Y, c.A, true)
	case 0x8A: // TXA
		c.transfer(cycles, &c.A, c.X, true)
	case 0x98: // TYA
		c.transfer(cycles, &c.A, c.Y, true)
	case 0xBA: // TSX
		c.transfer(cycles, &c.X, c.SP, true)
	case 0x9A: // TXS
		c.transfer(cycles, &c.SP, c.X, false)

	// Stack
	case 0x48: // PHA
		c.pushByte(mem, cycles, c.A)
	case 0x08: // PHP
		c.pushByte(mem, cycles, c.P|P_BREAK|P_UNUSED)
	case 0x68: // PLA
		c.pullA(mem, cycles)
	case 0x28: // PLP
		c.pullP(mem, cycles)

	// AND
	case 0x29:
		c.logicalImmediate(mem, cycles, andFn)
	case 0x25:
		c.logical(mem, cycles, modeZeroPage, andFn)
	case 0x35:
		c.logical(mem, cycles, modeZeroPageX, andFn)
	case 0x2D:
		c.logical(mem, cycles, modeAbsolute, andFn)
	case 0x3D:
		c.logical(mem, cycles, modeAbsoluteX, andFn)
	case 0x39:
		c.logical(mem, cycles, modeAbsoluteY, andFn)
	case 0x21:
		c.logical(mem, cycles, modeIndirectX, andFn)
	case 0x31:
		c.logical(mem, cycles, modeIndirectY, andFn)

	// EOR
	case 0x49:
		c.logicalImmediate(mem, cycles, eorFn)
	case 0x45:
		c.logical(mem, cycles, modeZeroPage, eorFn)
	case 0x55:
		c.logical(mem, cycles, modeZeroPageX, eorFn)
	case 0x4D:
		c.logical(mem, cycles, modeAbsolute, eorFn)
	case 0x5D:
		c.logical(mem, cycles, modeAbsoluteX, eorFn)
	case 0x59:
		c.logical(mem, cycles, modeAbsoluteY, eorFn)
	case 0x41:
		c.logical(mem, cycles, modeIndirectX, eorFn)
	case 0x51:
		c.logical(mem, cycles, modeIndirectY, eorFn)

	// ORA
	case 0x09:
		c.logicalImmediate(mem, cycles, oraFn)
	case 0x05:
		c.logical(mem, cycles, modeZeroPage, oraFn)
	case 0x15:
		c.logical(mem, cycles, modeZeroPageX, oraFn)
	case 0x0D:
		c.logical(mem, cycles, modeAbsolute, oraFn)
	case 0x1D:
		c.logical(mem, cycles, modeAbsoluteX, oraFn)
	case 0x19:
		c.logical(mem, cycles, modeAbsoluteY, oraFn)
	case 0x01:
		c.logical(mem, cycles, modeIndirectX, oraFn)
	case 0x11:
		c.logical(mem, cycles, modeIndirectY, oraFn)

	// BIT
	case 0x24:
		c.bitAt(mem, cycles, modeZeroPage)
	case 0x2C:
		c.bitAt(mem, cycles, modeAbsolute)

	// ADC
	case 0x69:
		if err := c.aluImmediate(mem, cycles, c.adc); err != nil {
			return err
		}
	case 0x65:
		if err := c.alu(mem, cycles, modeZeroPage, c.adc); err != nil {
			return err
		}
	case 0x75:
		if err := c.alu(mem, cycles, modeZeroPageX, c.adc); err != nil {
			return err
		}
	case 0x6D:
		if err := c.alu(mem, cycles, modeAbsolute, c.adc); err != nil {
			return err
		}
	case 0x7D:
		if err := c.alu(mem, cycles, modeAbsoluteX, c.adc); err != nil {
			return err
		}
	case 0x79:
		if err := c.alu(mem, cycles, modeAbsoluteY, c.adc); err != nil {
			return err
		}
	case 0x61:
		if err := c.alu(mem, cycles, modeIndirectX, c.adc); err != nil {
			return err
		}
	case 0x71:
		if err := c.alu(mem, cycles, modeIndirectY, c.adc); err != nil {
			return err
		}

	// SBC
	case 0xE9:
		if err := c.aluImmediate(mem, cycles, c.sbc); err != nil {
			return err
		}
	case 0xE5:
		if err := c.alu(mem, cycles, modeZeroPage, c.sbc); err != nil {
			return err
		}
	case 0xF5:
		if err := c.alu(mem, cycles, modeZeroPageX, c.sbc); err != nil {
			return err
		}
	case 0xED:
		if err := c.alu(mem, cycles, modeAbsolute, c.sbc); err != nil {
			return err
		}
	case 0xFD:
		if err := c.alu(mem, cycles, modeAbsoluteX, c.sbc); err != nil {
			return err
		}
	case 0xF9:
		if err := c.alu(mem, cycles, modeAbsoluteY, c.sbc); err != nil {
			return err
		}
	case 0xE1:
		if err := c.alu(mem, cycles, modeIndirectX, c.sbc); err != nil {
			return err
		}
	case 0xF1:
		if err := c.alu(mem, cycles, modeIndirectY, c.sbc); err != nil {
			return err
		}

	// CMP
	case 0xC9:
		c.compareImmediate(mem, cycles, c.A)
	case 0xC5:
		c.compareAt(mem, cycles, modeZeroPage, c.A)
	case 0xD5:
		c.compareAt(mem, cycles, modeZeroPageX, c.A)
	case 0xCD:
		c.compareAt(mem, cycles, modeAbsolute, c.A)
	case 0xDD:
		c.compareAt(mem, cycles, modeAbsoluteX, c.A)
	case 0xD9:
		c.compareAt(mem, cycles, modeAbsoluteY, c.A)
	case 0xC1:
		c.compareAt(mem, cycles, modeIndirectX, c.A)
	case 0xD1:
		c.compareAt(mem, cycles, modeIndirectY, c.A)

	// CPX
	case 0xE0:
		c.compareImmediate(mem, cycles, c.X)
	case 0xE4:
		c.compareAt(mem, cycles, modeZeroPage, c.X)
	case 0xEC:
		c.compareAt(mem, cycles, modeAbsolute, c.X)

	// CPY
	case 0xC0:
		c.compareImmediate(mem, cycles, c.Y)
	case 0xC4:
		c.compareAt(mem, cycles, modeZeroPage, c.Y)
	case 0xCC:
		c.compareAt(mem, cycles, modeAbsolute, c.Y)

	// INX/INY/DEX/DEY
	case 0xE8:
		c.incdecReg(cycles, &c.X, c.inc)
	case 0xC8:
		c.incdecReg(cycles, &c.Y, c.inc)
	case 0xCA:
		c.incdecReg(cycles, &c.X, c.dec)
	case 0x88:
		c.incdecReg(cycles, &c.Y, c.dec)

	// INC
	case 0xE6:
		c.rmw(mem, cycles, modeZeroPage, c.inc)
	case 0xF6:
		c.rmw(mem, cycles, modeZeroPageX, c.inc)
	case 0xEE:
		c.rmw(mem, cycles, modeAbsolute, c.inc)
	case 0xFE:
		c.rmw(mem, cycles, modeAbsoluteX, c.inc)

	// DEC
	case 0xC6:
		c.rmw(mem, cycles, modeZeroPage, c.dec)
	case 0xD6:
		c.rmw(mem, cycles, modeZeroPageX, c.dec)
	case 0xCE:
		c.rmw(mem, cycles, modeAbsolute, c.dec)
	case 0xDE:
		c.rmw(mem, cycles, modeAbsoluteX, c.dec)

	// ASL
	case 0x0A:
		c.rmwAcc(cycles, c.asl)
	case 0x06:
		c.rmw(mem, cycles, modeZeroPage, c.asl)
	case 0x16:
		c.rmw(mem, cycles, modeZeroPageX, c.asl)
	case 0x0E:
		c.rmw(mem, cycles, modeAbsolute, c.asl)
	case 0x1E:
		c.rmw(mem, cycles, modeAbsoluteX, c.asl)

	// LSR
	case 0x4A:
		c.rmwAcc(cycles, c.lsr)
	case 0x46:
		c.rmw(mem, cycles, modeZeroPage, c.lsr)
	case 0x56:
		c.rmw(mem, cycles, modeZeroPageX, c.lsr)
	case 0x4E:
		c.rmw(mem, cycles, modeAbsolute, c.lsr)
	case 0x5E:
		c.rmw(mem, cycles, modeAbsoluteX, c.lsr)

	// ROL
	case 0x2A:
		c.rmwAcc(cycles, c.rol)
	case 0x26:
		c.rmw(mem, cycles, modeZeroPage, c.rol)
	case 0x36:
		c.rmw(mem, cycles, modeZeroPageX, c.rol)
	case 0x2E:
		c.rmw(mem, cycles, modeAbsolute, c.rol)
	case 0x3E:
		c.rmw(mem, cycles, modeAbsoluteX, c.rol)

	// ROR
	case 0x6A:
		c.rmwAcc(cycles, c.ror)
	case 0x66:
		c.rmw(mem, cycles, modeZeroPage, c.ror)
	case 0x76:
		c.rmw(mem, cycles, modeZeroPageX, c.ror)
	case 0x6E:
		c.rmw(mem, cycles, modeAbsolute, c.ror)
	case 0x7E:
		c.rmw(mem, cycles, modeAbsoluteX, c.ror)

	// Branches
	case 0x10: // BPL
		c.branch(mem, cycles, c.P&P_NEGATIVE == 0)
	case 0x30: // BMI
		c.branch(mem, cycles, c.P&P_NEGATIVE != 0)
	case 0x50: // BVC
		c.branch(mem, cycles, c.P&P_OVERFLOW == 0)
	case 0x70: // BVS
		c.branch(mem, cycles, c.P&P_OVERFLOW != 0)
	case 0x90: // BCC
		c.branch(mem, cycles, c.P&P_CARRY == 0)
	case 0xB0: // BCS
		c.branch(mem, cycles, c.P&P_CARRY != 0)
	case 0xD0: // BNE
		c.branch(mem, cycles, c.P&P_ZERO == 0)
	case 0xF0: // BEQ
		c.branch(mem, cycles, c.P&P_ZERO != 0)

	// Flags
	case 0x18: // CLC
		c.flagOp(cycles, func() { c.P &^= P_CARRY })
	case 0x38: // SEC
		c.flagOp(cycles, func() { c.P |= P_CARRY })
	case 0x58: // CLI
		c.flagOp(cycles, func() { c.P &^= P_INTERRUPT })
	case 0x78: // SEI
		c.flagOp(cycles, func() { c.P |= P_INTERRUPT })
	case 0xB8: // CLV
		c.flagOp(cycles, func() { c.P &^= P_OVERFLOW })
	case 0xD8: // CLD
		c.flagOp(cycles, func() { c.P &^= P_DECIMAL })
	case 0xF8: // SED
		c.flagOp(cycles, func() { c.P |= P_DECIMAL })

	// Jumps and calls
	case 0x4C: // JMP abs
		c.PC = c.effectiveAddr(mem, cycles, modeAbsolute, false)
	case 0x6C: // JMP ind
		c.jmpIndirect(mem, cycles)
	case 0x20: // JSR
		c.jsr(mem, cycles)
	case 0x60: // RTS
		c.rts(mem, cycles)

	// System
	case 0x00: // BRK
		c.brk(mem, cycles)
	case 0x40: // RTI
		c.rti(mem, cycles)
	case 0xEA: // NOP
		charge(cycles, 1)

	default:
		return &UnknownOpcodeError{Opcode: op, PC: c.PC - 1}
	}
	return nil
}
