package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go6502/go6502/memory"
)

// dispatchCase drives dispatch for one documented opcode byte and checks
// the cycles it consumes, table-driven over a small sample of opcodes
// (immediate, zero page,X, absolute,X, JSR, BRK, NOP); the other
// addressing modes are not covered by this table.
type dispatchCase struct {
	name    string
	program []byte
	setup   func(c *Chip, mem *memory.Memory)
	cycles  int32
	check   func(t *testing.T, c *Chip, mem *memory.Memory)
}

func TestDispatchTableCycleCounts(t *testing.T) {
	cases := []dispatchCase{
		{
			name:    "LDA immediate",
			program: []byte{0xA9, 0x37},
			cycles:  2,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint8(0x37), c.A)
			},
		},
		{
			name:    "LDA absolute,X with page cross",
			program: []byte{0xBD, 0xFF, 0x20},
			setup:   func(c *Chip, mem *memory.Memory) { c.X = 0x01; mem.Write(0x2100, 0x66) },
			cycles:  5,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint8(0x66), c.A)
			},
		},
		{
			name:    "STA absolute,X always pays the fix-up cycle",
			program: []byte{0x9D, 0x00, 0x20},
			setup:   func(c *Chip, mem *memory.Memory) { c.X = 0x01; c.A = 0x5A },
			cycles:  5,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint8(0x5A), mem.Read(0x2001))
			},
		},
		{
			name:    "INC zero page,X",
			program: []byte{0xF6, 0x10},
			setup:   func(c *Chip, mem *memory.Memory) { c.X = 0x01; mem.Write(0x0011, 0x7F) },
			cycles:  6,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint8(0x80), mem.Read(0x0011))
			},
		},
		{
			name:    "JSR",
			program: []byte{0x20, 0x00, 0x90},
			cycles:  6,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint16(0x9000), c.PC)
			},
		},
		{
			name:    "BRK",
			program: []byte{0x00},
			setup:   func(c *Chip, mem *memory.Memory) { mem.Write(0xFFFE, 0x00); mem.Write(0xFFFF, 0x40) },
			cycles:  7,
			check: func(t *testing.T, c *Chip, mem *memory.Memory) {
				assert.Equal(t, uint16(0x4000), c.PC)
			},
		},
		{
			name:    "NOP",
			program: []byte{0xEA},
			cycles:  2,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, mem := setup(t, 0x8000, tc.program)
			if tc.setup != nil {
				tc.setup(c, mem)
			}
			consumed, err := c.Execute(tc.cycles, mem)
			require.NoError(t, err)
			assert.Equal(t, tc.cycles, consumed)
			if tc.check != nil {
				tc.check(t, c, mem)
			}
		})
	}
}

func TestDispatchRejectsUndocumentedOpcodes(t *testing.T) {
	// Sample of undocumented/reserved opcode bytes real NMOS 6502 silicon
	// gives unofficial behaviour to; this core treats all of them as a
	// fatal UnknownOpcodeError, per spec.md's non-goals.
	undocumented := []uint8{0x02, 0x03, 0x0B, 0x1A, 0x3B, 0x5C, 0x93, 0xAB, 0xEB, 0xFF}
	for _, op := range undocumented {
		c, mem := setup(t, 0x8000, []byte{op})
		_, err := c.Execute(10, mem)
		require.Errorf(t, err, "opcode %#02x", op)
		var uerr *UnknownOpcodeError
		require.ErrorAsf(t, err, &uerr, "opcode %#02x", op)
		assert.Equal(t, op, uerr.Opcode)
	}
}
