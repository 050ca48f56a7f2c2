package smbus

import "github.com/i2cbridge/i2cbridge-go/pkg/bus"

// Word operations transfer 16-bit values in SMBus byte order: low byte
// first, high byte second. The byte order is fixed for wire compatibility
// with devices expecting the SMBus convention; it is not configurable.
//
// Both operations are composed strictly from the block operations and
// introduce no channel handling of their own.

// ReadWordData reads a 16-bit little-endian word from the given register.
func (s *SMBus) ReadWordData(addr bus.Addr, reg uint8) (uint16, error) {
	data, err := s.ReadBlockData(addr, reg, 2)
	if err != nil {
		return 0, err
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}

// WriteWordData writes a 16-bit little-endian word to the given register.
func (s *SMBus) WriteWordData(addr bus.Addr, reg uint8, value uint16) error {
	return s.WriteBlockData(addr, reg, []byte{byte(value & 0xFF), byte(value >> 8)})
}
