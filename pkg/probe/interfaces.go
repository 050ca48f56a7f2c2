package probe

import "github.com/i2cbridge/i2cbridge-go/pkg/bus"

// Scanner is the presence-testing capability surface.
type Scanner interface {
	IsConnected(addr bus.Addr) bool
	Scan() []bus.Addr
}

// Compile-time interface satisfaction check.
var _ Scanner = (*Prober)(nil)
