package cpu

import "fmt"

// UnknownOpcodeError is returned by Execute when the fetched opcode
// byte does not correspond to a documented 6502 instruction. This is a
// fatal fault: Chip and memory state up to the offending byte are
// preserved, and the caller must not continue feeding the same PC.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// DecimalModeError is returned when ADC or SBC is attempted while the D
// flag is set. Decimal (BCD) arithmetic is explicitly unsupported.
type DecimalModeError struct {
	PC uint16
}

// Error implements the error interface.
func (e *DecimalModeError) Error() string {
	return fmt.Sprintf("cpu: decimal mode ADC/SBC not implemented at PC 0x%04X", e.PC)
}
