package vbe

// PCI configuration space ports.
const (
	pciConfigAddressPort uint16 = 0xCF8
	pciConfigDataPort    uint16 = 0xCFC
)

// The QEMU/Bochs standard VGA adapter.
const (
	adapterVendorID uint16 = 0x1234
	adapterDeviceID uint16 = 0x1111
)

// Device addresses one PCI function.
type Device struct {
	Bus      uint8
	Slot     uint8
	Function uint8
}

// ConfigReadU32 reads one aligned dword from a device's configuration
// space through the legacy 0xCF8/0xCFC port pair.
func ConfigReadU32(io PortIO, d Device, offset uint8) uint32 {
	addr := uint32(d.Bus)<<16 |
		uint32(d.Slot)<<11 |
		uint32(d.Function)<<8 |
		uint32(offset)&0xFC |
		0x8000_0000
	io.Outl(pciConfigAddressPort, addr)
	return io.Inl(pciConfigDataPort)
}

// FindDevice scans every bus, slot and function for the given vendor and
// device identifiers. The dword at configuration offset 0 reads as
// device<<16 | vendor.
func FindDevice(io PortIO, vendorID, deviceID uint16) (Device, bool) {
	target := uint32(deviceID)<<16 | uint32(vendorID)
	for bus := 0; bus <= 0xFF; bus++ {
		for slot := 0; slot < 32; slot++ {
			for fn := 0; fn < 8; fn++ {
				d := Device{Bus: uint8(bus), Slot: uint8(slot), Function: uint8(fn)}
				if ConfigReadU32(io, d, 0) == target {
					return d, true
				}
			}
		}
	}
	return Device{}, false
}
