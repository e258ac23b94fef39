// Package bus defines the memory-transaction contract a 6502 family CPU
// core consumes and provides a flat RAM implementation of it.
package bus

// Bus is the interface the CPU core uses for all memory traffic. A real
// system built on this (an NES/Atari-style console, a single-board
// computer) is expected to overlay I/O registers and ROM banks behind the
// same contract; the CPU never assumes a specific memory map.
type Bus interface {
	// Read returns the byte stored at addr. When readonly is true the
	// caller (typically a disassembler) promises the read has no side
	// effects; implementations backing memory-mapped I/O may decline to
	// change state in that case.
	Read(addr uint16, readonly bool) uint8
	// Write stores data at addr.
	Write(addr uint16, data uint8)
	// Reset clears the bus back to its power-on state.
	Reset()
	// Clock advances the bus by one tick, returning true when a
	// frame/completion signal fires. A plain RAM bus has no such signal
	// and always returns true.
	Clock() bool
	// Complete reports whether the bus has no pending asynchronous work.
	// A plain RAM bus is always complete.
	Complete() bool
}

// RAM is the simplest Bus implementation: a flat, unmapped 64KiB address
// space. Addresses are masked to the buffer size so a smaller-than-64K RAM
// still aliases the way real hardware does when under-decoded.
type RAM struct {
	mem []uint8
}

// NewRAM creates a RAM-backed Bus of the given size, which must be a power
// of two no larger than 64KiB. A size of 0 defaults to a full 64KiB space.
func NewRAM(size int) *RAM {
	if size <= 0 {
		size = 1 << 16
	}
	return &RAM{mem: make([]uint8, size)}
}

// Read implements Bus. readonly is accepted for interface compatibility but
// unused: plain RAM has no read side effects to suppress.
func (r *RAM) Read(addr uint16, readonly bool) uint8 {
	return r.mem[int(addr)&(len(r.mem)-1)]
}

// Write implements Bus.
func (r *RAM) Write(addr uint16, data uint8) {
	r.mem[int(addr)&(len(r.mem)-1)] = data
}

// Reset implements Bus by zeroing all of memory.
func (r *RAM) Reset() {
	for i := range r.mem {
		r.mem[i] = 0x00
	}
}

// Clock implements Bus. Plain RAM has no internal clock of its own, so this
// always reports completion.
func (r *RAM) Clock() bool {
	return true
}

// Complete implements Bus. Plain RAM never has pending asynchronous work.
func (r *RAM) Complete() bool {
	return true
}

// Len returns the size of the underlying memory array.
func (r *RAM) Len() int {
	return len(r.mem)
}
