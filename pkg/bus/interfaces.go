package bus

// Controller is the transport contract consumed by this module. It owns the
// physical USB-to-serial connection and opens per-address communication
// channels. Implementations decide how (and whether) to serialize concurrent
// I/O on a single channel; every adapter operation in this module is exactly
// one Channel call.
type Controller interface {
	// OpenChannel opens a communication channel to the device at addr.
	// A Controller may defer device detection to the first transfer, in
	// which case OpenChannel succeeds for absent devices and the
	// channel's reads and writes fail instead.
	OpenChannel(addr Addr) (Channel, error)
}

// Channel is an open communication path to one device address over the
// shared controller. Channels are never closed by this module; their
// lifetime is tied to the Controller.
type Channel interface {
	// Read reads n bytes from the device without register addressing.
	Read(n int) ([]byte, error)

	// Write writes data to the device without register addressing.
	Write(data []byte) error

	// ReadFrom reads n bytes starting at the given register offset.
	ReadFrom(reg uint8, n int) ([]byte, error)

	// WriteTo writes data starting at the given register offset.
	WriteTo(reg uint8, data []byte) error
}
