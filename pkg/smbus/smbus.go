package smbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
	"github.com/i2cbridge/i2cbridge-go/pkg/trace"
)

// ErrNegativeLength indicates a block read with a negative length.
var ErrNegativeLength = errors.New("negative block length")

// SMBus provides byte, block and word register access to devices on a
// shared bus. All channel acquisition goes through one ChannelCache, so an
// SMBus sharing its cache with other adapters sees the same channel objects.
type SMBus struct {
	cache   *bus.ChannelCache
	logger  trace.Logger
	session string
}

// New creates an SMBus adapter with its own channel cache over ctrl.
func New(ctrl bus.Controller) *SMBus {
	return NewWithCache(bus.NewChannelCache(ctrl))
}

// NewWithCache creates an SMBus adapter over an existing channel cache.
// Use this to share channels with other adapter surfaces.
func NewWithCache(cache *bus.ChannelCache) *SMBus {
	return &SMBus{
		cache:   cache,
		session: uuid.New().String(),
	}
}

// SetLogger configures transaction capture for this adapter.
// Pass nil to disable capture.
func (s *SMBus) SetLogger(logger trace.Logger) {
	s.logger = logger
}

// SessionID returns the adapter's trace session identifier.
func (s *SMBus) SessionID() string {
	return s.session
}

// ReadByteData reads one byte from the given register.
func (s *SMBus) ReadByteData(addr bus.Addr, reg uint8) (byte, error) {
	data, err := s.ReadBlockData(addr, reg, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// WriteByteData writes one byte to the given register.
func (s *SMBus) WriteByteData(addr bus.Addr, reg uint8, value byte) error {
	return s.WriteBlockData(addr, reg, []byte{value})
}

// ReadBlockData reads exactly n bytes starting at the given register.
// n must be >= 0; a zero-length read returns an empty buffer.
func (s *SMBus) ReadBlockData(addr bus.Addr, reg uint8, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	ch, err := s.cache.Channel(addr)
	if err != nil {
		return nil, err
	}

	data, err := ch.ReadFrom(reg, n)
	if err != nil {
		err = fmt.Errorf("reading %d bytes from %s register 0x%02X: %w", n, addr, reg, err)
		s.log(trace.OpRegisterRead, trace.DirectionIn, addr, &reg, nil, err)
		return nil, err
	}
	if len(data) != n {
		err = fmt.Errorf("%w: read %d bytes from %s register 0x%02X, want %d",
			bus.ErrShortTransfer, len(data), addr, reg, n)
		s.log(trace.OpRegisterRead, trace.DirectionIn, addr, &reg, nil, err)
		return nil, err
	}

	s.log(trace.OpRegisterRead, trace.DirectionIn, addr, &reg, data, nil)
	return data, nil
}

// WriteBlockData writes the buffer verbatim starting at the given register.
func (s *SMBus) WriteBlockData(addr bus.Addr, reg uint8, data []byte) error {
	ch, err := s.cache.Channel(addr)
	if err != nil {
		return err
	}

	if err := ch.WriteTo(reg, data); err != nil {
		err = fmt.Errorf("writing %d bytes to %s register 0x%02X: %w", len(data), addr, reg, err)
		s.log(trace.OpRegisterWrite, trace.DirectionOut, addr, &reg, nil, err)
		return err
	}

	s.log(trace.OpRegisterWrite, trace.DirectionOut, addr, &reg, data, nil)
	return nil
}

// ReadByte reads a single byte from the device without register addressing.
// Used by devices that address-select but do not register-select.
func (s *SMBus) ReadByte(addr bus.Addr) (byte, error) {
	ch, err := s.cache.Channel(addr)
	if err != nil {
		return 0, err
	}

	data, err := ch.Read(1)
	if err != nil {
		err = fmt.Errorf("reading byte from %s: %w", addr, err)
		s.log(trace.OpRawRead, trace.DirectionIn, addr, nil, nil, err)
		return 0, err
	}
	if len(data) != 1 {
		err = fmt.Errorf("%w: read %d bytes from %s, want 1", bus.ErrShortTransfer, len(data), addr)
		s.log(trace.OpRawRead, trace.DirectionIn, addr, nil, nil, err)
		return 0, err
	}

	s.log(trace.OpRawRead, trace.DirectionIn, addr, nil, data, nil)
	return data[0], nil
}

// WriteByte writes a single byte to the device without register addressing.
func (s *SMBus) WriteByte(addr bus.Addr, value byte) error {
	ch, err := s.cache.Channel(addr)
	if err != nil {
		return err
	}

	if err := ch.Write([]byte{value}); err != nil {
		err = fmt.Errorf("writing byte to %s: %w", addr, err)
		s.log(trace.OpRawWrite, trace.DirectionOut, addr, nil, nil, err)
		return err
	}

	s.log(trace.OpRawWrite, trace.DirectionOut, addr, nil, []byte{value}, nil)
	return nil
}

// log emits a trace event if capture is configured.
func (s *SMBus) log(op trace.Op, dir trace.Direction, addr bus.Addr, reg *uint8, data []byte, err error) {
	if s.logger == nil {
		return
	}

	event := trace.Event{
		Timestamp: time.Now(),
		SessionID: s.session,
		Direction: dir,
		Op:        op,
		Addr:      uint8(addr),
		Register:  reg,
		Data:      data,
	}
	if err != nil {
		event.Error = err.Error()
	}

	s.logger.Log(event)
}
