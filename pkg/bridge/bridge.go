package bridge

import (
	"fmt"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
	"github.com/i2cbridge/i2cbridge-go/pkg/config"
	"github.com/i2cbridge/i2cbridge-go/pkg/probe"
	"github.com/i2cbridge/i2cbridge-go/pkg/smbus"
	"github.com/i2cbridge/i2cbridge-go/pkg/trace"
)

// Bridge exposes the adapter surfaces of one bus. All surfaces share one
// channel cache: they can never hold diverging channel objects for the same
// address.
type Bridge struct {
	cache  *bus.ChannelCache
	smbus  *smbus.SMBus
	prober *probe.Prober

	// capture is owned by the bridge when opened from configuration.
	capture *trace.FileLogger

	// extra is an application-supplied logger composed with capture.
	extra trace.Logger
}

// New creates a bridge directly over a controller, with capture disabled.
func New(ctrl bus.Controller) *Bridge {
	cache := bus.NewChannelCache(ctrl)
	return &Bridge{
		cache:  cache,
		smbus:  smbus.NewWithCache(cache),
		prober: probe.NewWithCache(cache),
	}
}

// Open resolves the configured controller URL through the registry and
// assembles a bridge over it. If the configuration names a trace file, a
// capture logger is opened and wired into every surface; Close releases it.
func Open(cfg config.Config, reg *bus.Registry) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctrl, err := reg.Open(cfg.ControllerURL)
	if err != nil {
		return nil, fmt.Errorf("opening controller: %w", err)
	}

	br := New(ctrl)
	if cfg.TraceFile != "" {
		capture, err := trace.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("opening trace file: %w", err)
		}
		br.capture = capture
		br.wireLoggers()
	}

	return br, nil
}

// SMBus returns the register access surface.
func (b *Bridge) SMBus() *smbus.SMBus {
	return b.smbus
}

// Prober returns the presence probing surface.
func (b *Bridge) Prober() *probe.Prober {
	return b.prober
}

// SetLogger configures an application logger on every surface, composed
// with the bridge's own capture file when one is open. Pass nil to remove
// the application logger.
func (b *Bridge) SetLogger(logger trace.Logger) {
	b.extra = logger
	b.wireLoggers()
}

// wireLoggers pushes the effective logger into every surface.
func (b *Bridge) wireLoggers() {
	var logger trace.Logger
	switch {
	case b.capture != nil && b.extra != nil:
		logger = trace.NewMultiLogger(b.capture, b.extra)
	case b.capture != nil:
		logger = b.capture
	case b.extra != nil:
		logger = b.extra
	}

	b.smbus.SetLogger(logger)
	b.prober.SetLogger(logger)
}

// Close releases resources owned by the bridge. Channels are not closed;
// their lifetime belongs to the controller.
func (b *Bridge) Close() error {
	if b.capture != nil {
		return b.capture.Close()
	}
	return nil
}
