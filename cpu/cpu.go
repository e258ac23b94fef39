// Package cpu implements the MOS 6502 instruction set (legal and the
// documented illegal opcodes) as a single-call stepper over a bus.Bus.
package cpu

import (
	"fmt"
	"time"

	"github.com/sixfiveohtwo/sixfiveohtwo/bus"
)

// CPUType selects which hardware variant's quirks the decode table and
// instruction engine honor. Modeled as a runtime enum rather than Go build
// tags so every variant is reachable in one test binary (see DESIGN.md
// Open Question decision 1).
type CPUType int

const (
	CPU_NMOS       CPUType = iota // standard NMOS 6502, full illegal-opcode set
	CPU_NMOS_RICOH                // 2A03/2A07: NMOS minus BCD arithmetic
	CPU_CMOS                      // 65C02: illegal slots become NOPs/WAI/STP, some cycle counts drop
)

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)

// speedTable is the fixed millisecond-per-step table spec.md §6 names,
// indexed by a 0-10 speed setting (0 slowest, 10 fastest).
// Replaces the teacher's wall-clock SetClock calibration loop: see
// SPEC_FULL.md "Supplemented features".
var speedTable = [...]time.Duration{
	550 * time.Millisecond,
	550 * time.Millisecond,
	440 * time.Millisecond,
	330 * time.Millisecond,
	220 * time.Millisecond,
	160 * time.Millisecond,
	80 * time.Millisecond,
	40 * time.Millisecond,
	20 * time.Millisecond,
	10 * time.Millisecond,
	5 * time.Millisecond,
}

// CPU is the top-level chip: the register file, the bus it's wired to, and
// the bookkeeping Step needs to run one instruction to completion and
// report an accurate cycle count.
type CPU struct {
	Registers

	bus     bus.Bus
	variant CPUType
	table   *DecodeTable

	opcode      uint8
	mode        AddressingMode
	addrAbs     uint16
	addrRel     uint16
	fetched     uint8
	operandAcc  bool
	pageCrossed bool

	pendingNMI bool
	pendingIRQ bool

	// Two-stage interrupt-armed latch: IRQ servicing checks the flag
	// state from the instruction *before* the one that just ran, matching
	// real 6502 behavior where SEI/CLI/PLP take effect one instruction
	// late with respect to interrupt sampling; NMI does not consult it.
	// See spec.md §3 invariant 4.
	interruptArmedPrev bool
	interruptArmedNow  bool

	cycleCount  uint8
	totalCycles uint64
	speed       int

	delay func(time.Duration)
}

// New creates a CPU wired to b, running as the given variant. The CPU is
// not usable until PowerOn or Reset is called.
func New(b bus.Bus, variant CPUType) *CPU {
	return &CPU{
		bus:     b,
		variant: variant,
		table:   BuildDecodeTable(variant),
		speed:   len(speedTable) - 1,
		delay:   time.Sleep,
	}
}

// PowerOn resets the chip to its documented power-on state and loads PC
// from the reset vector, per spec.md §4.5.1's RESET sequence. Registers.reset
// sets the raw post-push-shape SR of U|B; PowerOn then normalizes that to
// the real reset state of U|I, clearing B and disabling interrupts, the way
// the teacher's Reset does P_INTERRUPT and the original CPU::reset() clears
// B on top of the register-file primitive.
func (c *CPU) PowerOn() {
	c.Registers.reset()
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagInterrupt, true)
	c.pendingNMI, c.pendingIRQ = false, false
	c.interruptArmedPrev, c.interruptArmedNow = false, false
	lo := c.bus.Read(vectorReset, false)
	hi := c.bus.Read(vectorReset+1, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.cycleCount = 0
	c.totalCycles = 0
}

// Reset is an alias for PowerOn: the 6502 has no separate warm-reset state
// distinct from cold power-on other than memory contents being preserved,
// which is the bus's concern, not the CPU's.
func (c *CPU) Reset() {
	c.PowerOn()
}

// LoadProgram copies prog into the bus starting at addr and points the
// reset vector at it, then performs PowerOn so PC starts there. A
// convenience for hosts and tests that don't want to hand-roll a vector.
func (c *CPU) LoadProgram(addr uint16, prog []uint8) {
	for i, b := range prog {
		c.bus.Write(addr+uint16(i), b)
	}
	c.bus.Write(vectorReset, uint8(addr&0xFF))
	c.bus.Write(vectorReset+1, uint8(addr>>8))
	c.PowerOn()
}

// RequestIRQ latches a level-triggered interrupt request. It is honored at
// the start of the next Step if the interrupt-disable flag was clear as of
// the previously completed instruction (spec.md §3 invariant 4) and is
// re-checked every Step until acknowledged, matching real IRQ being a
// level not an edge.
func (c *CPU) RequestIRQ() {
	c.pendingIRQ = true
}

// RequestNMI latches an edge-triggered non-maskable interrupt. Unlike IRQ
// it cannot be masked and is serviced on the next Step regardless of the
// interrupt-disable flag.
func (c *CPU) RequestNMI() {
	c.pendingNMI = true
}

// SetSpeed selects a 0-10 index into the fixed millisecond-per-step table.
// Out-of-range values clamp to the nearest valid index.
func (c *CPU) SetSpeed(speed int) {
	if speed < 0 {
		speed = 0
	}
	if speed >= len(speedTable) {
		speed = len(speedTable) - 1
	}
	c.speed = speed
}

// Jammed reports whether a JAM/KIL/HLT opcode has halted the chip. Once
// jammed a CPU never executes another instruction; only PowerOn clears it.
func (c *CPU) Jammed() bool {
	return c.jammed
}

// OpCode returns the opcode byte most recently fetched by Step.
func (c *CPU) OpCode() uint8 {
	return c.opcode
}

// CycleCount returns the cycle cost of the most recently completed Step.
func (c *CPU) CycleCount() uint8 {
	return c.cycleCount
}

// TotalCycles returns the running total of cycles consumed since the last
// PowerOn, per spec.md §4.2's operation_cycle counter.
func (c *CPU) TotalCycles() uint64 {
	return c.totalCycles
}

// Step runs exactly one instruction (or one interrupt sequence) to
// completion and returns the number of cycles it cost. Per spec.md
// §4.5.1: an NMI request is serviced unconditionally; an IRQ request is
// serviced only if the interrupt-disable flag was clear as of the
// previous instruction. A jammed CPU always returns 0 without touching
// the bus, PC, or cycle counters.
func (c *CPU) Step() uint8 {
	if c.jammed {
		return 0
	}

	c.interruptArmedPrev = c.interruptArmedNow
	c.interruptArmedNow = !c.GetFlag(FlagInterrupt)

	if c.pendingNMI {
		c.pendingNMI = false
		c.cycleCount = c.serviceInterrupt(vectorNMI, false)
		c.afterStep()
		return c.cycleCount
	}
	if c.pendingIRQ && c.interruptArmedPrev {
		c.pendingIRQ = false
		c.cycleCount = c.serviceInterrupt(vectorIRQ, false)
		c.afterStep()
		return c.cycleCount
	}

	c.opcode = c.bus.Read(c.PC, false)
	c.PC++

	entry, err := c.table.Lookup(c.opcode)
	if err != nil {
		// Every slot in a fully-built table resolves; unreachable under
		// BuildDecodeTable's own output, kept defensive for a hand-built
		// or truncated table.
		panic(err)
	}
	c.mode = entry.Mode
	c.pageCrossed = false
	c.operandAcc = false
	c.fetchOperand(entry.Mode)

	extra := entry.exec(c)

	total := entry.Cycles + extra
	if c.pageCrossed && entry.class == classLoad {
		total++
	}
	c.cycleCount = total
	c.afterStep()
	return total
}

func (c *CPU) afterStep() {
	c.totalCycles += uint64(c.cycleCount)
	c.delay(speedTable[c.speed])
}

// String renders a compact register dump, used by the CLI host and by
// test failure messages.
func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X P=%02X PC=%04X",
		c.A, c.X, c.Y, c.S, c.P, c.PC)
}
