package cpu

// fetchOperand resolves the effective address (or accumulator operand)
// for the given addressing mode in one pass, per DESIGN.md decision 9:
// the teacher's per-tick addrXxx functions collapsed into a single call.
// It advances PC past any operand bytes and sets c.addrAbs/c.fetched/
// c.operandAcc/c.pageCrossed as appropriate. Execution functions in
// instructions.go read c.fetched for both load-style and RMW operands;
// RMW functions then store their result through writeResult, which
// targets c.addrAbs (or A when c.operandAcc is set).
func (c *CPU) fetchOperand(mode AddressingMode) {
	switch mode {
	case ModeIMP:
		// No operand. A handful of implied-mode instructions (PHA, PLA,
		// TAX...) still need one bus read of the next opcode byte on real
		// hardware for timing; semantics don't depend on it so it's
		// skipped here.
	case ModeACC:
		c.operandAcc = true
		c.fetched = c.A
	case ModeIMM:
		c.fetched = c.bus.Read(c.PC, false)
		c.addrAbs = c.PC
		c.PC++
	case ModeZP0:
		addr := c.bus.Read(c.PC, false)
		c.PC++
		c.addrAbs = uint16(addr)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeZPX:
		addr := c.bus.Read(c.PC, false)
		c.PC++
		c.addrAbs = uint16(addr + c.X) // zero-page wrap, no carry out
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeZPY:
		addr := c.bus.Read(c.PC, false)
		c.PC++
		c.addrAbs = uint16(addr + c.Y)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeREL:
		off := c.bus.Read(c.PC, false)
		c.PC++
		// Sign-extend the offset and compute the branch target relative
		// to the instruction following the 2-byte branch opcode.
		if off&0x80 != 0 {
			c.addrRel = c.PC - uint16(0x100-uint16(off))
		} else {
			c.addrRel = c.PC + uint16(off)
		}
	case ModeABS:
		lo := c.bus.Read(c.PC, false)
		c.PC++
		hi := c.bus.Read(c.PC, false)
		c.PC++
		c.addrAbs = uint16(hi)<<8 | uint16(lo)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeABX:
		lo := c.bus.Read(c.PC, false)
		c.PC++
		hi := c.bus.Read(c.PC, false)
		c.PC++
		base := uint16(hi)<<8 | uint16(lo)
		c.addrAbs = base + uint16(c.X)
		c.pageCrossed = (c.addrAbs & 0xFF00) != (base & 0xFF00)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeABY:
		lo := c.bus.Read(c.PC, false)
		c.PC++
		hi := c.bus.Read(c.PC, false)
		c.PC++
		base := uint16(hi)<<8 | uint16(lo)
		c.addrAbs = base + uint16(c.Y)
		c.pageCrossed = (c.addrAbs & 0xFF00) != (base & 0xFF00)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeIND:
		ptrLo := c.bus.Read(c.PC, false)
		c.PC++
		ptrHi := c.bus.Read(c.PC, false)
		c.PC++
		ptr := uint16(ptrHi)<<8 | uint16(ptrLo)
		hiAddr := ptr + 1
		if ptrLo == 0xFF && c.variant != CPU_CMOS {
			// NMOS page-wrap bug: the high byte is fetched from $xx00,
			// not $(xx+1)00. CMOS fixed this.
			hiAddr = uint16(ptrHi) << 8
		}
		lo := c.bus.Read(ptr, false)
		hi := c.bus.Read(hiAddr, false)
		c.addrAbs = uint16(hi)<<8 | uint16(lo)
	case ModeIZX:
		zp := c.bus.Read(c.PC, false)
		c.PC++
		ptr := zp + c.X // zero-page wrap
		lo := c.bus.Read(uint16(ptr), false)
		hi := c.bus.Read(uint16(ptr+1), false)
		c.addrAbs = uint16(hi)<<8 | uint16(lo)
		c.fetched = c.bus.Read(c.addrAbs, false)
	case ModeIZY:
		zp := c.bus.Read(c.PC, false)
		c.PC++
		lo := c.bus.Read(uint16(zp), false)
		hi := c.bus.Read(uint16(zp+1), false)
		base := uint16(hi)<<8 | uint16(lo)
		c.addrAbs = base + uint16(c.Y)
		c.pageCrossed = (c.addrAbs & 0xFF00) != (base & 0xFF00)
		c.fetched = c.bus.Read(c.addrAbs, false)
	}
}

// writeResult stores v to wherever fetchOperand resolved the operand:
// the accumulator for ACC mode, memory otherwise. Used by RMW
// instructions (ASL, ROL, INC, the illegal RMW family...) after computing
// their new value.
func (c *CPU) writeResult(v uint8) {
	if c.operandAcc {
		c.A = v
		return
	}
	c.bus.Write(c.addrAbs, v)
}
