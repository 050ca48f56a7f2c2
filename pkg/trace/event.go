package trace

import "time"

// Event represents one bus transaction.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the transaction completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the adapter session that issued the
	// transaction (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates data flow relative to the host.
	Direction Direction `cbor:"3,keyasint"`

	// Op classifies the transaction.
	Op Op `cbor:"4,keyasint"`

	// Addr is the 7-bit device address.
	Addr uint8 `cbor:"5,keyasint"`

	// Register is the register offset, if the operation was
	// register-addressed.
	Register *uint8 `cbor:"6,keyasint,omitempty"`

	// Data is the payload read or written. Empty for probes and for
	// failed reads.
	Data []byte `cbor:"7,keyasint,omitempty"`

	// Error is the transport error message, if the transaction failed.
	Error string `cbor:"8,keyasint,omitempty"`
}

// Direction indicates data flow relative to the host.
type Direction uint8

const (
	// DirectionIn indicates data read from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates data written to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Op classifies a bus transaction.
type Op uint8

const (
	// OpRegisterRead is a register-addressed read.
	OpRegisterRead Op = 0
	// OpRegisterWrite is a register-addressed write.
	OpRegisterWrite Op = 1
	// OpRawRead is a register-less read.
	OpRawRead Op = 2
	// OpRawWrite is a register-less write.
	OpRawWrite Op = 3
	// OpProbe is a presence probe.
	OpProbe Op = 4
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRegisterRead:
		return "REG_READ"
	case OpRegisterWrite:
		return "REG_WRITE"
	case OpRawRead:
		return "RAW_READ"
	case OpRawWrite:
		return "RAW_WRITE"
	case OpProbe:
		return "PROBE"
	default:
		return "UNKNOWN"
	}
}
