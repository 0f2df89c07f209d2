package cpu

import "testing"

func TestINXWraps(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0xE8})
	c.X = 0xFF
	consumed, err := c.Execute(2, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 2)
	if c.X != 0x00 {
		t.Fatalf("X = %#02x, want 0x00", c.X)
	}
	if c.P&P_ZERO == 0 {
		t.Fatal("Z flag not set after wrap to 0")
	}
}

func TestDEYUnderflows(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0x88})
	c.Y = 0x00
	_, err := c.Execute(2, mem)
	mustNoError(t, err)
	if c.Y != 0xFF {
		t.Fatalf("Y = %#02x, want 0xFF", c.Y)
	}
	if c.P&P_NEGATIVE == 0 {
		t.Fatal("N flag not set for 0xFF")
	}
}

func TestINCZeroPage(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0xE6, 0x10})
	mem.Write(0x0010, 0x7F)
	consumed, err := c.Execute(5, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 5)
	if got := mem.Read(0x0010); got != 0x80 {
		t.Fatalf("mem[0x0010] = %#02x, want 0x80", got)
	}
	if c.P&P_NEGATIVE == 0 {
		t.Fatal("N flag not set for 0x80")
	}
}

func TestINCAbsoluteX(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0xFE, 0x00, 0x20})
	c.X = 0x01
	mem.Write(0x2001, 0x00)
	consumed, err := c.Execute(7, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 7)
	if got := mem.Read(0x2001); got != 0x01 {
		t.Fatalf("mem[0x2001] = %#02x, want 0x01", got)
	}
}

func TestDECZeroPage(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0xC6, 0x10})
	mem.Write(0x0010, 0x01)
	consumed, err := c.Execute(5, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 5)
	if got := mem.Read(0x0010); got != 0x00 {
		t.Fatalf("mem[0x0010] = %#02x, want 0x00", got)
	}
	if c.P&P_ZERO == 0 {
		t.Fatal("Z flag not set after decrementing to 0")
	}
}

func TestASLAccumulator(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0x0A})
	c.A = 0x81
	consumed, err := c.Execute(2, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 2)
	if c.A != 0x02 {
		t.Fatalf("A = %#02x, want 0x02", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Fatal("C flag not set from bit 7")
	}
}

func TestLSRAccumulator(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0x4A})
	c.A = 0x01
	_, err := c.Execute(2, mem)
	mustNoError(t, err)
	if c.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Fatal("C flag not set from bit 0")
	}
	if c.P&P_ZERO == 0 {
		t.Fatal("Z flag not set")
	}
}

func TestROLCarriesThroughBit0(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0x2A})
	c.A = 0x80
	c.P |= P_CARRY
	consumed, err := c.Execute(2, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 2)
	if c.A != 0x01 {
		t.Fatalf("A = %#02x, want 0x01 (old carry rotated into bit 0)", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Fatal("C flag not set from old bit 7")
	}
}

func TestRORMemoryZeroPage(t *testing.T) {
	c, mem := setup(t, 0x8000, []byte{0x66, 0x10})
	mem.Write(0x0010, 0x01)
	consumed, err := c.Execute(5, mem)
	mustNoError(t, err)
	mustCycles(t, consumed, 5)
	if got := mem.Read(0x0010); got != 0x00 {
		t.Fatalf("mem[0x0010] = %#02x, want 0x00", got)
	}
	if c.P&P_CARRY == 0 {
		t.Fatal("C flag not set from old bit 0")
	}
}
