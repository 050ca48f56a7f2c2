package bus

import (
	"fmt"
	"strconv"
)

// Addr is a 7-bit I2C device address, right-aligned without the R/W bit.
type Addr uint8

// Address space constants.
const (
	// MaxAddr is the first invalid address; valid addresses are below it.
	MaxAddr Addr = 0x7F

	// ScanMin is the first address probed by a bus scan. Addresses below
	// it are reserved (general call, CBUS, high-speed master codes).
	ScanMin Addr = 0x08

	// ScanMax is the first address excluded from a bus scan. Addresses at
	// or above it are reserved (10-bit addressing escapes).
	ScanMax Addr = 0x78
)

// Valid reports whether the address is within the 7-bit addressable space.
func (a Addr) Valid() bool {
	return a < MaxAddr
}

// String formats the address in the conventional two-digit hex notation.
func (a Addr) String() string {
	return fmt.Sprintf("0x%02X", uint8(a))
}

// ParseAddr parses a device address from decimal ("72") or hex ("0x48")
// notation and validates it against the 7-bit address space.
func ParseAddr(s string) (Addr, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("parsing address %q: %w", s, err)
	}
	addr := Addr(v)
	if !addr.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}
	return addr, nil
}
