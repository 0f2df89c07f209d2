// Package cpu implements a cycle-counted functional emulator of the
// documented MOS 6502 instruction set. A Chip is driven by a host that
// owns a memory.Memory and repeatedly calls Execute with a cycle
// budget; the core decodes and runs whole instructions (never a
// partial one) until the budget is exhausted.
//
// Undocumented opcodes and BCD arithmetic are explicitly unsupported:
// both are treated as fatal faults rather than approximated, per the
// spec this core implements.
package cpu

import (
	"fmt"

	"github.com/go6502/go6502/memory"
)

// Status flag bits, packed into Chip.P. Naming follows the convention
// used by the wider 65xx family this core was distilled from: a P_
// prefix per bit rather than individual bool fields, so PHP/PLP/BRK/RTI
// can treat P as one canonical byte.
const (
	P_CARRY     = uint8(0x01)
	P_ZERO      = uint8(0x02)
	P_INTERRUPT = uint8(0x04)
	P_DECIMAL   = uint8(0x08)
	P_BREAK     = uint8(0x10) // Only meaningful in the stacked representation.
	P_UNUSED    = uint8(0x20) // Always reads as 1 when pushed.
	P_OVERFLOW  = uint8(0x40)
	P_NEGATIVE  = uint8(0x80)
)

// Vector addresses. BRK loads PC from IRQVector; ResetVector is not read
// by Reset, which takes its PC from the caller.
const (
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// Chip is the 6502 register file: PC/SP/A/X/Y and the packed status
// byte P. There is no interrupt, clock-pacing or peripheral state here
// by design — those are out of scope for this core (see package doc).
type Chip struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
}

// New returns a Chip in its zero state. Reset must be called before
// running any instructions; the zero value alone doesn't set SP to its
// documented 0xFF reset value.
func New() *Chip {
	return &Chip{}
}

// Reset is the only way to enter a defined initial state: PC is set to
// pc, SP to 0xFF, A/X/Y/P to zero, and memory is zeroed.
func (c *Chip) Reset(pc uint16, mem *memory.Memory) {
	mem.Initialise()
	c.PC = pc
	c.SP = 0xFF
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P = 0
}

// ChipDef defines the 6502 this package builds. It carries only what
// this core's data model needs: a reset vector and the memory to run
// against. Unlike the wider 65xx family this was distilled from, there
// is no CPU variant selector and no IRQ/NMI/RDY sender wiring — both are
// out of scope here.
type ChipDef struct {
	// PC is the address Init resets the Chip to.
	PC uint16
	// Ram is the memory Init resets and the returned Chip runs against.
	Ram *memory.Memory
}

// Init builds a Chip from def and returns it in powered-on state (i.e.
// already Reset). Callers that don't need ChipDef's single default can
// still call New and Reset directly.
func Init(def *ChipDef) *Chip {
	c := New()
	c.Reset(def.PC, def.Ram)
	return c
}

// String implements fmt.Stringer so a Chip prints usefully under %v
// and in test failure dumps, mirroring the original implementation's
// PrintStatus debug helper.
func (c *Chip) String() string {
	return fmt.Sprintf("PC:%04X SP:%02X A:%02X X:%02X Y:%02X P:%02X", c.PC, c.SP, c.A, c.X, c.Y, c.P)
}

// charge deducts n cycles from the running budget. Every bus primitive
// and every instruction handler's internal-work step goes through this
// (or one of the bus primitives, which call it directly) so the cycle
// count charged is always traceable to a documented cause.
func charge(cycles *int32, n int32) {
	*cycles -= n
}

// Execute runs instructions in program order until the cycle budget is
// exhausted, returning the number of cycles actually consumed. That
// value may exceed budget if the final instruction overshot a zero or
// negative remaining count — the core never stops mid-instruction.
// A non-nil error indicates a fatal fault (UnknownOpcodeError or
// DecimalModeError); Chip and mem reflect state up to and including the
// offending instruction's partial effects are never applied past the
// point of the fault within that instruction, but prior instructions'
// effects stand.
func (c *Chip) Execute(budget int32, mem *memory.Memory) (int32, error) {
	remaining := budget
	for remaining > 0 {
		op := c.fetchByte(mem, &remaining)
		if err := c.dispatch(op, mem, &remaining); err != nil {
			return budget - remaining, err
		}
	}
	return budget - remaining, nil
}
