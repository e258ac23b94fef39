package cpu

// The stack lives at $0100-$01FF; S is the low byte of the next free
// slot and grows downward, exactly as on real hardware. Grounded on the
// teacher's push/pop pair.
func (c *CPU) pushByte(v uint8) {
	c.bus.Write(0x0100+uint16(c.S), v)
	c.S--
}

func (c *CPU) popByte() uint8 {
	c.S++
	return c.bus.Read(0x0100+uint16(c.S), false)
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

// serviceInterrupt runs the common BRK/IRQ/NMI sequence: push PC and P
// (with the break flag set only for a software BRK), set the
// interrupt-disable flag, and load PC from the given vector. Grounded on
// the teacher's runInterrupt, unified across all three entry points since
// they differ only in whether the break flag is pushed set and whether a
// throwaway opcode fetch precedes the push. Always costs 7 cycles.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) uint8 {
	if !brk {
		// A hardware IRQ/NMI still burns the cycle that would have
		// fetched the next opcode; the byte read is discarded.
		c.bus.Read(c.PC, true)
	}
	c.pushWord(c.PC)
	p := c.P | uint8(FlagUnused)
	if brk {
		p |= uint8(FlagBreak)
	} else {
		p &^= uint8(FlagBreak)
	}
	c.pushByte(p)
	c.SetFlag(FlagInterrupt, true)
	lo := c.bus.Read(vector, false)
	hi := c.bus.Read(vector+1, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 7
}
