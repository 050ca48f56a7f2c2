package probe

import (
	"time"

	"github.com/google/uuid"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
	"github.com/i2cbridge/i2cbridge-go/pkg/trace"
)

// Prober tests device presence on a shared bus. Channel acquisition goes
// through one ChannelCache, so a Prober sharing its cache with an SMBus
// adapter reuses the same channel objects.
type Prober struct {
	cache   *bus.ChannelCache
	logger  trace.Logger
	session string
}

// New creates a Prober with its own channel cache over ctrl.
func New(ctrl bus.Controller) *Prober {
	return NewWithCache(bus.NewChannelCache(ctrl))
}

// NewWithCache creates a Prober over an existing channel cache.
// Use this to share channels with other adapter surfaces.
func NewWithCache(cache *bus.ChannelCache) *Prober {
	return &Prober{
		cache:   cache,
		session: uuid.New().String(),
	}
}

// SetLogger configures transaction capture for this prober.
// Pass nil to disable capture.
func (p *Prober) SetLogger(logger trace.Logger) {
	p.logger = logger
}

// IsConnected reports whether a device answers at addr. It attempts to
// acquire a channel and read one byte; any failure means "not connected".
// IsConnected never returns an error.
func (p *Prober) IsConnected(addr bus.Addr) bool {
	ch, err := p.cache.Channel(addr)
	if err != nil {
		p.log(addr, err)
		return false
	}

	_, err = ch.Read(1)
	p.log(addr, err)
	return err == nil
}

// Scan probes every address in [ScanMin, ScanMax) in ascending order and
// returns those that answered, in ascending order. Results are not cached:
// a repeated Scan re-probes every address.
func (p *Prober) Scan() []bus.Addr {
	return p.ScanRange(bus.ScanMin, bus.ScanMax)
}

// ScanRange probes every address in [min, max) in ascending order. Scan is
// equivalent to ScanRange(bus.ScanMin, bus.ScanMax).
func (p *Prober) ScanRange(min, max bus.Addr) []bus.Addr {
	var found []bus.Addr
	for addr := min; addr < max; addr++ {
		if p.IsConnected(addr) {
			found = append(found, addr)
		}
	}
	return found
}

// log emits a probe trace event if capture is configured.
func (p *Prober) log(addr bus.Addr, err error) {
	if p.logger == nil {
		return
	}

	event := trace.Event{
		Timestamp: time.Now(),
		SessionID: p.session,
		Direction: trace.DirectionIn,
		Op:        trace.OpProbe,
		Addr:      uint8(addr),
	}
	if err != nil {
		event.Error = err.Error()
	}

	p.logger.Log(event)
}
