package smbus

import "github.com/i2cbridge/i2cbridge-go/pkg/bus"

// RegisterAccess is the register-addressed capability surface. Client code
// that only reads and writes device registers should depend on this
// interface rather than on SMBus.
type RegisterAccess interface {
	ReadByteData(addr bus.Addr, reg uint8) (byte, error)
	WriteByteData(addr bus.Addr, reg uint8, value byte) error
	ReadBlockData(addr bus.Addr, reg uint8, n int) ([]byte, error)
	WriteBlockData(addr bus.Addr, reg uint8, data []byte) error
	ReadWordData(addr bus.Addr, reg uint8) (uint16, error)
	WriteWordData(addr bus.Addr, reg uint8, value uint16) error
}

// RawAccess is the register-less capability surface, for devices that
// address-select but do not register-select.
type RawAccess interface {
	ReadByte(addr bus.Addr) (byte, error)
	WriteByte(addr bus.Addr, value byte) error
}

// Compile-time interface satisfaction checks.
var (
	_ RegisterAccess = (*SMBus)(nil)
	_ RawAccess      = (*SMBus)(nil)
)
