// Package disassemble renders decode-table entries as human-readable
// assembly text, reading the bus with readonly set so stepping through a
// program for display never perturbs memory-mapped I/O.
package disassemble

import (
	"fmt"

	"github.com/sixfiveohtwo/sixfiveohtwo/bus"
	"github.com/sixfiveohtwo/sixfiveohtwo/cpu"
)

// operandLen returns how many operand bytes follow the opcode byte for
// the given addressing mode.
func operandLen(mode cpu.AddressingMode) int {
	switch mode {
	case cpu.ModeIMP, cpu.ModeACC:
		return 0
	case cpu.ModeABS, cpu.ModeABX, cpu.ModeABY, cpu.ModeIND:
		return 2
	default:
		return 1
	}
}

// Step disassembles the single instruction at addr and returns its text
// plus the address of the following instruction. variant selects which
// decode table (NMOS/NMOS_RICOH/CMOS) to read opcodes against.
func Step(b bus.Bus, addr uint16, variant cpu.CPUType) (string, uint16) {
	table := cpu.BuildDecodeTable(variant)
	op := b.Read(addr, true)
	entry, err := table.Lookup(op)
	if err != nil {
		return fmt.Sprintf("$%04X: ??? {$%02X}", addr, op), addr + 1
	}

	next := addr + 1
	var operand string
	switch entry.Mode {
	case cpu.ModeIMP:
	case cpu.ModeACC:
		operand = "A"
	case cpu.ModeIMM:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("#$%02X", v)
	case cpu.ModeZP0:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("$%02X", v)
	case cpu.ModeZPX:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("$%02X,X", v)
	case cpu.ModeZPY:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("$%02X,Y", v)
	case cpu.ModeREL:
		off := b.Read(next, true)
		next++
		target := next
		if off&0x80 != 0 {
			target -= uint16(0x100 - uint16(off))
		} else {
			target += uint16(off)
		}
		operand = fmt.Sprintf("$%04X", target)
	case cpu.ModeABS:
		lo := b.Read(next, true)
		hi := b.Read(next+1, true)
		next += 2
		operand = fmt.Sprintf("$%04X", uint16(hi)<<8|uint16(lo))
	case cpu.ModeABX:
		lo := b.Read(next, true)
		hi := b.Read(next+1, true)
		next += 2
		operand = fmt.Sprintf("$%04X,X", uint16(hi)<<8|uint16(lo))
	case cpu.ModeABY:
		lo := b.Read(next, true)
		hi := b.Read(next+1, true)
		next += 2
		operand = fmt.Sprintf("$%04X,Y", uint16(hi)<<8|uint16(lo))
	case cpu.ModeIND:
		lo := b.Read(next, true)
		hi := b.Read(next+1, true)
		next += 2
		operand = fmt.Sprintf("($%04X)", uint16(hi)<<8|uint16(lo))
	case cpu.ModeIZX:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("($%02X,X)", v)
	case cpu.ModeIZY:
		v := b.Read(next, true)
		next++
		operand = fmt.Sprintf("($%02X),Y", v)
	}

	text := entry.Mnemonic
	if operand != "" {
		text += " " + operand
	}
	return fmt.Sprintf("$%04X: %s {%s}", addr, text, entry.Mode), next
}

// Disassemble walks [start, end) and returns the rendered text for every
// instruction boundary it encounters, keyed by that instruction's
// address. A branch or data byte landing mid-instruction in the range is
// not separately re-disassembled; Step always advances by a whole
// instruction.
func Disassemble(b bus.Bus, start, end uint16, variant cpu.CPUType) map[uint16]string {
	out := make(map[uint16]string)
	addr := start
	for addr < end {
		text, next := Step(b, addr, variant)
		out[addr] = text
		if next <= addr {
			break // guards against a malformed table looping forever
		}
		addr = next
	}
	return out
}
