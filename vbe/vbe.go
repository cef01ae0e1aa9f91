// Package vbe programs the Bochs/QEMU "dispi" display adapter into a
// linear-framebuffer graphics mode and locates the framebuffer's physical
// base address over PCI.
//
// All hardware access goes through the PortIO interface, so the handshake
// can be driven against real port I/O or a fake register file in tests.
// Mapping the returned physical address into usable memory is the caller's
// job; the drawing pipeline only ever sees the resulting byte window.
package vbe

import (
	"errors"
	"fmt"

	"github.com/oskit/lfb"
)

// Sentinel errors for the mode handshake.
var (
	// ErrNoAdapter is returned when no dispi display adapter answers the
	// PCI scan.
	ErrNoAdapter = errors.New("vbe: display adapter not found")

	// ErrBadMode is returned when a requested mode does not fit the
	// 16-bit dispi registers.
	ErrBadMode = errors.New("vbe: mode out of register range")
)

// Dispi register ports.
const (
	dispiIndexPort uint16 = 0x01CE
	dispiDataPort  uint16 = 0x01CF
)

// Dispi register indexes.
const (
	RegID uint16 = iota
	RegXRes
	RegYRes
	RegBPP
	RegEnable
	RegBank
	RegVirtWidth
	RegVirtHeight
	RegXOffset
	RegYOffset
)

// Color depths the adapter understands.
const (
	Bpp4  uint16 = 4
	Bpp8  uint16 = 8
	Bpp24 uint16 = 24
	Bpp32 uint16 = 32
)

// Enable register bits.
const (
	modeEnabled uint16 = 0x01
	modeLFB     uint16 = 0x40
)

// PortIO is the x86 port access the register protocols run on. Real
// implementations talk to hardware; tests supply a fake register file.
type PortIO interface {
	Outw(port, value uint16)
	Outl(port uint16, value uint32)
	Inl(port uint16) uint32
}

// WriteRegister writes one dispi register: the index goes to the index
// port, the value to the data port.
func WriteRegister(io PortIO, index, value uint16) {
	io.Outw(dispiIndexPort, index)
	io.Outw(dispiDataPort, value)
}

// EnterWideMode switches the adapter to a width×height linear-framebuffer
// mode at the given color depth and returns the framebuffer's physical base
// address. The adapter is disabled while the mode registers are programmed
// and re-enabled with the LFB bit set, then located on the PCI bus to read
// its first base address register.
func EnterWideMode(io PortIO, width, height int, bpp uint16) (uint32, error) {
	if width <= 0 || width > 0xFFFF || height <= 0 || height > 0xFFFF {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadMode, width, height)
	}
	log := lfb.Logger()

	WriteRegister(io, RegEnable, 0)
	WriteRegister(io, RegXRes, uint16(width))
	WriteRegister(io, RegYRes, uint16(height))
	WriteRegister(io, RegBPP, bpp)
	WriteRegister(io, RegEnable, modeEnabled|modeLFB)
	log.Debug("display mode programmed", "width", width, "height", height, "bpp", bpp)

	dev, ok := FindDevice(io, adapterVendorID, adapterDeviceID)
	if !ok {
		return 0, ErrNoAdapter
	}
	log.Debug("display adapter found", "bus", dev.Bus, "slot", dev.Slot, "function", dev.Function)

	// Strip the flag bits a memory BAR carries in its low nibble.
	base := ConfigReadU32(io, dev, 0x10) &^ 0xF
	log.Info("linear framebuffer located", "base", fmt.Sprintf("%#x", base))
	return base, nil
}
