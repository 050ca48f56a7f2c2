package bus

import "errors"

// Bus errors.
var (
	// ErrShortTransfer indicates a read or write moved fewer bytes than
	// requested. Adapters treat this as a transport fault: the device is
	// absent or the bus transaction was cut short.
	ErrShortTransfer = errors.New("short transfer")

	// ErrInvalidAddress indicates an address outside the 7-bit space.
	ErrInvalidAddress = errors.New("invalid device address")

	// ErrUnknownScheme indicates no opener is registered for a URL scheme.
	ErrUnknownScheme = errors.New("unknown controller scheme")
)
