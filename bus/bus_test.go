package bus

import (
	"testing"

	"github.com/go-test/deep"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(0)
	r.Write(0x1234, 0xAB)
	if got, want := r.Read(0x1234, false), uint8(0xAB); got != want {
		t.Errorf("Read(0x1234) = %#02x, want %#02x", got, want)
	}
	if got, want := r.Read(0x1235, false), uint8(0x00); got != want {
		t.Errorf("Read(0x1235) = %#02x, want %#02x", got, want)
	}
}

func TestRAMReadonlyDoesNotPanic(t *testing.T) {
	r := NewRAM(0)
	r.Write(0x0010, 0x42)
	if got, want := r.Read(0x0010, true), uint8(0x42); got != want {
		t.Errorf("Read(readonly) = %#02x, want %#02x", got, want)
	}
}

func TestRAMAliasing(t *testing.T) {
	r := NewRAM(0x0800)
	r.Write(0x0000, 0x11)
	if got, want := r.Read(0x0800, false), uint8(0x11); got != want {
		t.Errorf("aliased Read(0x0800) = %#02x, want %#02x (mirrors 0x0000)", got, want)
	}
}

func TestRAMReset(t *testing.T) {
	r := NewRAM(0)
	r.Write(0x0000, 0xFF)
	r.Write(0xFFFF, 0xFF)
	r.Reset()
	if diff := deep.Equal(r.Read(0x0000, false), uint8(0x00)); diff != nil {
		t.Errorf("Read(0x0000) after Reset: %v", diff)
	}
	if diff := deep.Equal(r.Read(0xFFFF, false), uint8(0x00)); diff != nil {
		t.Errorf("Read(0xFFFF) after Reset: %v", diff)
	}
}

func TestRAMClockComplete(t *testing.T) {
	r := NewRAM(0)
	if !r.Clock() {
		t.Error("Clock() = false, want true for plain RAM")
	}
	if !r.Complete() {
		t.Error("Complete() = false, want true for plain RAM")
	}
}
