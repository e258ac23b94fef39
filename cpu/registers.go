package cpu

import "fmt"

// Flag identifies a single bit of the status register (SR/P).
type Flag uint8

// Status register bit positions, LSB to MSB. Names and values are the
// teacher's P_* constants renamed to the spec's flag vocabulary.
const (
	FlagCarry     Flag = 0x01 // C
	FlagZero      Flag = 0x02 // Z
	FlagInterrupt Flag = 0x04 // I - interrupt disable
	FlagDecimal   Flag = 0x08 // D
	FlagBreak     Flag = 0x10 // B
	FlagUnused    Flag = 0x20 // U - always reads 1
	FlagOverflow  Flag = 0x40 // V
	FlagNegative  Flag = 0x80 // N
)

// Register identifies one of the CPU's 8-bit registers for the generic
// Get/Set accessor API. PC is deliberately not a member of this type: it is
// 16 bits wide and is only reachable through GetPC/SetPC.
type Register int

const (
	RegA Register = iota
	RegX
	RegY
	RegS
	RegP
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	case RegS:
		return "S"
	case RegP:
		return "P"
	}
	return "INVALID"
}

// InvalidRegister reports a caller attempting to access PC through the
// 8-bit register API, or any other out-of-range Register value.
type InvalidRegister struct {
	Reg Register
}

func (e InvalidRegister) Error() string {
	return fmt.Sprintf("invalid 8-bit register access: %v", e.Reg)
}

// Registers is the register-file component: six registers (A, X, Y, S, PC,
// P) plus the flag-bit encode/decode helpers spec.md §4.2 describes. CPU
// embeds one of these and is the sole mutator; Registers itself has no
// notion of the bus or of instruction semantics.
type Registers struct {
	A, X, Y, S uint8
	P          uint8
	PC         uint16

	// jammed is set by the CPU's JAM handling and cleared by reset; CPU
	// reads it through this embedded field. While true every Get returns
	// 0xFF, every Set is a no-op, and GetPC returns 0xFFFF.
	jammed bool
}

// Get returns the 8-bit register identified by reg. PC is not a valid
// argument here and always returns InvalidRegister.
func (r *Registers) Get(reg Register) (uint8, error) {
	if r.jammed {
		return 0xFF, nil
	}
	switch reg {
	case RegA:
		return r.A, nil
	case RegX:
		return r.X, nil
	case RegY:
		return r.Y, nil
	case RegS:
		return r.S, nil
	case RegP:
		return r.P, nil
	}
	return 0, InvalidRegister{reg}
}

// Set stores val into the 8-bit register identified by reg. PC is not a
// valid argument here and always returns InvalidRegister.
func (r *Registers) Set(reg Register, val uint8) error {
	if r.jammed {
		return nil
	}
	switch reg {
	case RegA:
		r.A = val
	case RegX:
		r.X = val
	case RegY:
		r.Y = val
	case RegS:
		r.S = val
	case RegP:
		r.P = val
	default:
		return InvalidRegister{reg}
	}
	return nil
}

// GetPC returns the 16-bit program counter. While jammed this always
// returns 0xFFFF.
func (r *Registers) GetPC() uint16 {
	if r.jammed {
		return 0xFFFF
	}
	return r.PC
}

// SetPC stores the 16-bit program counter. A no-op while jammed.
func (r *Registers) SetPC(pc uint16) {
	if r.jammed {
		return
	}
	r.PC = pc
}

// GetFlag reports whether the given status bit is set.
func (r *Registers) GetFlag(f Flag) bool {
	if r.jammed {
		return true
	}
	return r.P&uint8(f) != 0
}

// SetFlag sets or clears the given status bit.
func (r *Registers) SetFlag(f Flag, val bool) {
	if r.jammed {
		return
	}
	if val {
		r.P |= uint8(f)
	} else {
		r.P &^= uint8(f)
	}
}

// reset puts the register file into its raw post-push-shape state: A=X=Y=0,
// S=0xFD, PC=0 (the caller loads the real vector separately), and P=U|B.
// CPU.PowerOn normalizes P further to U|I, per spec.md §4.5.4.
func (r *Registers) reset() {
	r.jammed = false
	r.A, r.X, r.Y = 0, 0, 0
	r.S = 0xFD
	r.PC = 0
	r.P = uint8(FlagUnused | FlagBreak)
}
