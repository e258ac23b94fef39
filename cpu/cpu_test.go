package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/sixfiveohtwo/sixfiveohtwo/bus"
)

func newTestCPU() (*CPU, *bus.RAM) {
	b := bus.NewRAM(0)
	c := New(b, CPU_NMOS)
	return c, b
}

// --- spec.md §8 property tests ---

func TestUnusedFlagAlwaysReadsOne(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0xA9, 0x00}) // LDA #$00
	c.Step()
	if !c.GetFlag(FlagUnused) {
		t.Error("FlagUnused not set after Step")
	}
}

func TestPowerOnNormalizesStatusToUnusedAndInterruptDisable(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, nil)
	if !c.GetFlag(FlagUnused) {
		t.Error("FlagUnused not set after PowerOn")
	}
	if !c.GetFlag(FlagInterrupt) {
		t.Error("FlagInterrupt not set after PowerOn, want interrupts disabled")
	}
	if c.GetFlag(FlagBreak) {
		t.Error("FlagBreak set after PowerOn, want clear")
	}
	if c.S != 0xFD {
		t.Errorf("S after PowerOn = %#02x, want 0xFD", c.S)
	}
}

func TestStepAdvancesOrJams(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0xEA}) // NOP
	pcBefore := c.GetPC()
	cyclesBefore := c.TotalCycles()
	c.Step()
	if c.jammed {
		return
	}
	if c.GetPC() == pcBefore {
		t.Error("PC did not advance and CPU did not jam")
	}
	if c.TotalCycles() == cyclesBefore {
		t.Error("total cycles did not advance and CPU did not jam")
	}
}

func TestImmediateLoadsSetFlags(t *testing.T) {
	cases := []struct {
		opcode uint8
		get    func(*CPU) uint8
	}{
		{0xA9, func(c *CPU) uint8 { return c.A }}, // LDA
		{0xA2, func(c *CPU) uint8 { return c.X }}, // LDX
		{0xA0, func(c *CPU) uint8 { return c.Y }}, // LDY
	}
	for _, tc := range cases {
		for _, imm := range []uint8{0x00, 0x7F, 0x80, 0xFF} {
			c, _ := newTestCPU()
			c.LoadProgram(0x0000, []uint8{tc.opcode, imm})
			c.Step()
			if got := tc.get(c); got != imm {
				t.Errorf("opcode %#02x: register = %#02x, want %#02x", tc.opcode, got, imm)
			}
			if c.GetFlag(FlagZero) != (imm == 0) {
				t.Errorf("opcode %#02x imm=%#02x: Z = %v", tc.opcode, imm, c.GetFlag(FlagZero))
			}
			if c.GetFlag(FlagNegative) != (imm&0x80 != 0) {
				t.Errorf("opcode %#02x imm=%#02x: N = %v", tc.opcode, imm, c.GetFlag(FlagNegative))
			}
		}
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0xA9, 0x77, 0x48, 0xA9, 0x00, 0x68}) // LDA #$77; PHA; LDA #$00; PLA
	c.Step()                                                          // LDA #$77
	c.Step()                                                          // PHA
	c.Step()                                                          // LDA #$00
	if c.A != 0x00 {
		t.Fatalf("A = %#02x before PLA, want 0x00", c.A)
	}
	c.Step() // PLA
	if c.A != 0x77 {
		t.Errorf("A after PLA = %#02x, want 0x77", c.A)
	}
}

func TestPHPPushesBreakAndUnused(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0x08}) // PHP
	c.P = 0x00
	c.Step() // PHP pushes P|B|U
	pushed := c.popByte()
	if pushed&uint8(FlagBreak) == 0 || pushed&uint8(FlagUnused) == 0 {
		t.Errorf("pushed P = %#02x, want B and U set", pushed)
	}
}

func TestJSRRTSRestoresPC(t *testing.T) {
	c, b := newTestCPU()
	// JSR $0010; BRK        at 0x0000
	// RTS                   at 0x0010
	c.LoadProgram(0x0000, []uint8{0x20, 0x10, 0x00})
	b.Write(0x0010, 0x60) // RTS
	returnAddr := c.PC + 3
	c.Step() // JSR
	if c.PC != 0x0010 {
		t.Fatalf("PC after JSR = %#04x, want 0x0010", c.PC)
	}
	c.Step() // RTS
	if c.PC != returnAddr {
		t.Errorf("PC after RTS = %#04x, want %#04x", c.PC, returnAddr)
	}
}

func TestADCOverflowMatchesSignedArithmetic(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for m := 0; m < 256; m += 23 {
			for _, carry := range []bool{false, true} {
				c, _ := newTestCPU()
				c.A = uint8(a)
				c.SetFlag(FlagCarry, carry)
				c.fetched = uint8(m)
				c.adc(c.fetched)

				cIn := int8(0)
				if carry {
					cIn = 1
				}
				want := int(int8(a)) + int(int8(m)) + int(cIn)
				wantOverflow := want > 127 || want < -128
				if c.GetFlag(FlagOverflow) != wantOverflow {
					t.Fatalf("a=%#02x m=%#02x carry=%v: V=%v, want %v", a, m, carry, c.GetFlag(FlagOverflow), wantOverflow)
				}
			}
		}
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0x0000, 0x6C)
	b.Write(0x0001, 0xFF)
	b.Write(0x0002, 0x01)
	b.Write(0x01FF, 0x03)
	b.Write(0x0100, 0x02)
	b.Write(0x0200, 0xCC)
	c.LoadProgram(0x0000, nil)
	c.Step()
	if c.PC != 0x0203 {
		t.Errorf("PC = %#04x, want 0x0203 (NMOS indirect-JMP page-wrap bug)", c.PC)
	}
}

func TestIndirectJMPPageWrapFixedOnCMOS(t *testing.T) {
	b := bus.NewRAM(0)
	c := New(b, CPU_CMOS)
	b.Write(0x0000, 0x6C)
	b.Write(0x0001, 0xFF)
	b.Write(0x0002, 0x01)
	b.Write(0x01FF, 0x03)
	b.Write(0x0100, 0x02)
	b.Write(0x0200, 0xCC)
	c.LoadProgram(0x0000, nil)
	c.Step()
	if c.PC != 0xCC03 {
		t.Errorf("PC = %#04x, want 0xCC03 (CMOS suppresses the page-wrap bug)", c.PC)
	}
}

func TestABXPageCrossCycles(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0x0000, 0xBD) // LDA $00F0,X
	b.Write(0x0001, 0xF0)
	b.Write(0x0002, 0x00)
	b.Write(0x0110, 0x42) // 0x00F0 + 0x20 crosses into page 1
	c.LoadProgram(0x0000, nil)
	c.X = 0x20
	if cycles := c.Step(); cycles != 5 {
		t.Errorf("cycles = %d, want 5 on page cross", cycles)
	}

	c2, b2 := newTestCPU()
	b2.Write(0x0000, 0xBD)
	b2.Write(0x0001, 0x10)
	b2.Write(0x0002, 0x00)
	b2.Write(0x0020, 0x42)
	c2.LoadProgram(0x0000, nil)
	c2.X = 0x10
	if cycles := c2.Step(); cycles != 4 {
		t.Errorf("cycles = %d, want 4 without page cross", cycles)
	}
}

func TestBranchCycles(t *testing.T) {
	// not taken
	c, b := newTestCPU()
	b.Write(0x0000, 0xD0) // BNE +2
	b.Write(0x0001, 0x02)
	c.LoadProgram(0x0000, nil)
	c.SetFlag(FlagZero, true)
	if cycles := c.Step(); cycles != 2 {
		t.Errorf("not-taken branch cycles = %d, want 2", cycles)
	}

	// taken, same page
	c2, b2 := newTestCPU()
	b2.Write(0x0000, 0xD0)
	b2.Write(0x0001, 0x02)
	c2.LoadProgram(0x0000, nil)
	c2.SetFlag(FlagZero, false)
	if cycles := c2.Step(); cycles != 3 {
		t.Errorf("taken same-page branch cycles = %d, want 3", cycles)
	}

	// taken, crossing a page: branch at $00F0, +$20 lands at $0112, which
	// is on a different page than the post-operand-fetch PC ($00F2).
	c3, b3 := newTestCPU()
	b3.Write(0x00F0, 0xD0)
	b3.Write(0x00F1, 0x20)
	c3.LoadProgram(0x0000, nil)
	c3.SetPC(0x00F0)
	c3.SetFlag(FlagZero, false)
	if cycles := c3.Step(); cycles != 4 {
		t.Errorf("taken page-crossing branch cycles = %d, want 4", cycles)
	}
	if c3.PC != 0x0112 {
		t.Errorf("PC after taken branch = %#04x, want 0x0112", c3.PC)
	}
}

// --- spec.md §8 end-to-end scenarios ---

func TestScenarioA_MultiplyByAddLoop(t *testing.T) {
	c, b := newTestCPU()
	prog := []uint8{
		0xA2, 0x0A, 0x8E, 0x00, 0x00,
		0xA2, 0x03, 0x8E, 0x01, 0x00,
		0xAC, 0x00, 0x00,
		0xA9, 0x00,
		0x18,
		0x6D, 0x01, 0x00,
		0x88,
		0xD0, 0xFA,
		0x8D, 0x02, 0x00,
		0xEA, 0xEA, 0xEA,
	}
	c.LoadProgram(0x8000, prog)
	for c.OpCode() != 0xEA {
		c.Step()
	}
	if got := b.Read(0x0002, false); got != 30 {
		t.Errorf("mem[0x0002] = %d, want 30", got)
	}
	if c.A != 30 {
		t.Errorf("A = %d, want 30", c.A)
	}
	if diff := deep.Equal(c.A, uint8(30)); diff != nil {
		t.Error(diff)
	}
}

func TestScenarioB_StackUnderflowWraps(t *testing.T) {
	c, b := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0x9A, 0x48}) // TXS; PHA
	c.X = 0x00
	c.A = 0x55
	c.S = 0x00
	c.Step() // TXS
	if c.S != 0x00 {
		t.Fatalf("S after TXS = %#02x, want 0x00", c.S)
	}
	c.Step() // PHA
	if c.S != 0xFF {
		t.Errorf("S after PHA = %#02x, want 0xFF (wrapped)", c.S)
	}
	if got := b.Read(0x0100, false); got != 0x55 {
		t.Errorf("mem[0x0100] = %#02x, want 0x55", got)
	}
}

func TestScenarioC_BRKPushOrder(t *testing.T) {
	c, b := newTestCPU()
	c.LoadProgram(0x0000, nil)
	b.Write(0xABCD, 0x00) // BRK
	b.Write(0xFFFE, 0x34)
	b.Write(0xFFFF, 0x12)
	c.SetPC(0xABCD)
	c.P = 0x30
	c.S = 0xFF
	c.Step()

	if got := b.Read(0x01FF, false); got != 0xAB {
		t.Errorf("stack[0x01FF] (PC hi) = %#02x, want 0xAB", got)
	}
	if got := b.Read(0x01FE, false); got != 0xCF {
		t.Errorf("stack[0x01FE] (PC lo) = %#02x, want 0xCF", got)
	}
	pushedP := b.Read(0x01FD, false)
	if pushedP&uint8(FlagBreak) == 0 || pushedP&uint8(FlagUnused) == 0 {
		t.Errorf("stack[0x01FD] (P) = %#02x, want B and U set", pushedP)
	}
	if c.S != 0xFC {
		t.Errorf("S after BRK = %#02x, want 0xFC", c.S)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC after BRK = %#04x, want 0x1234", c.PC)
	}
}

func TestScenarioD_IndirectJMPBug(t *testing.T) {
	c, b := newTestCPU()
	c.LoadProgram(0x0000, nil)
	b.Write(0x0000, 0x6C)
	b.Write(0x0001, 0xFF)
	b.Write(0x0002, 0x01)
	b.Write(0x01FF, 0x03)
	b.Write(0x0100, 0x02)
	b.Write(0x0200, 0xCC)
	c.Step()
	if c.PC != 0x0203 {
		t.Errorf("PC = %#04x, want 0x0203", c.PC)
	}
}

func TestScenarioE_ADCOverflowAndCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0x18, 0x69, 0x50}) // CLC; ADC #$50
	c.A = 0x50
	c.Step() // CLC
	c.Step() // ADC #$50
	if c.A != 0xA0 {
		t.Errorf("A = %#02x, want 0xA0", c.A)
	}
	if c.GetFlag(FlagCarry) {
		t.Error("C = true, want false")
	}
	if !c.GetFlag(FlagOverflow) {
		t.Error("V = false, want true")
	}
	if !c.GetFlag(FlagNegative) {
		t.Error("N = false, want true")
	}
	if c.GetFlag(FlagZero) {
		t.Error("Z = true, want false")
	}
}

func TestScenarioF_RTIFlagRestore(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0x40}) // RTI
	c.pushWord(0x9000)                   // return PC, pushed deep
	c.A = 0x80
	c.pushByte(c.A) // stand-in for the pushed SR byte, topmost
	c.Step()         // RTI
	if !c.GetFlag(FlagNegative) {
		t.Error("N = false, want true")
	}
	if c.GetFlag(FlagBreak) {
		t.Error("B = true, want false")
	}
	if !c.GetFlag(FlagUnused) {
		t.Error("U = false, want true")
	}
	if c.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000", c.PC)
	}
}

func TestCMPSetsCarryZeroNegative(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0xA9, 0x10, 0xC9, 0x10}) // LDA #$10; CMP #$10
	c.Step()
	c.Step()
	if !c.GetFlag(FlagCarry) || !c.GetFlag(FlagZero) || c.GetFlag(FlagNegative) {
		t.Errorf("flags after equal CMP: C=%v Z=%v N=%v", c.GetFlag(FlagCarry), c.GetFlag(FlagZero), c.GetFlag(FlagNegative))
	}
}

func TestJAMHaltsCPU(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0x02}) // JAM
	c.Step()
	if !c.Jammed() {
		t.Fatal("CPU not jammed after JAM opcode")
	}
	pc := c.GetPC()
	if pc != 0xFFFF {
		t.Errorf("GetPC() while jammed = %#04x, want 0xFFFF", pc)
	}
	if cycles := c.Step(); cycles != 0 {
		t.Errorf("Step() while jammed returned %d cycles, want 0", cycles)
	}
}

func TestRequestIRQHonoredOnlyWhenUnmasked(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0xFFFE, 0x00)
	b.Write(0xFFFF, 0x90)
	c.LoadProgram(0x0000, []uint8{0xEA, 0xEA}) // NOP; NOP
	c.SetFlag(FlagInterrupt, true)
	c.RequestIRQ()
	c.Step() // interrupt-armed-prev was false (post-PowerOn), so IRQ still masked by I
	if c.PC == 0x9000 {
		t.Fatal("IRQ serviced while I flag was set")
	}
}

func TestRequestIRQStaysPendingUntilUnmasked(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0xFFFE, 0x00)
	b.Write(0xFFFF, 0x90)
	c.LoadProgram(0x0000, []uint8{0xEA, 0x58, 0xEA, 0xEA}) // NOP; CLI; NOP; NOP
	c.SetFlag(FlagInterrupt, true)
	c.RequestIRQ()
	for i := 0; i < 3; i++ {
		c.Step()
		if c.PC == 0x9000 {
			t.Fatalf("IRQ serviced too early, after step %d", i)
		}
	}
	c.Step() // one full instruction after CLI took effect, IRQ is now armed
	if c.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000 (IRQ line stayed pending until unmasked)", c.PC)
	}
}

func TestRequestNMIAlwaysHonored(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0xFFFA, 0x00)
	b.Write(0xFFFB, 0x90)
	c.LoadProgram(0x0000, []uint8{0xEA})
	c.SetFlag(FlagInterrupt, true)
	c.RequestNMI()
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000 (NMI is never masked)", c.PC)
	}
}

func TestDumpDoesNotPanic(t *testing.T) {
	c, _ := newTestCPU()
	c.LoadProgram(0x0000, []uint8{0xEA})
	c.Step()
	_ = spew.Sdump(c)
}
