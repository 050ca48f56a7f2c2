package bus

import (
	"fmt"
	"sync"
)

// ChannelCache multiplexes many logical devices over one Controller. It
// lazily opens and memoizes one Channel per device address: for a given
// cache, at most one Channel object ever exists per address, and once
// created it is reused for the cache's entire lifetime.
//
// The lookup-or-create step is mutex-guarded, so a ChannelCache is safe for
// concurrent use. Serialization of I/O on the returned channels is the
// Controller's contract.
type ChannelCache struct {
	ctrl Controller

	mu       sync.Mutex
	channels map[Addr]Channel
}

// NewChannelCache creates a channel cache over the given controller.
func NewChannelCache(ctrl Controller) *ChannelCache {
	return &ChannelCache{
		ctrl:     ctrl,
		channels: make(map[Addr]Channel),
	}
}

// Channel returns the channel for addr, opening it on first use. Repeated
// calls for the same address return the identical channel object. The only
// failure mode is a propagated controller open error; in that case nothing
// is cached and a later call retries the open.
func (c *ChannelCache) Channel(addr Addr) (Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ch, ok := c.channels[addr]; ok {
		return ch, nil
	}

	ch, err := c.ctrl.OpenChannel(addr)
	if err != nil {
		return nil, fmt.Errorf("opening channel to %s: %w", addr, err)
	}
	c.channels[addr] = ch

	return ch, nil
}

// Len returns the number of open channels.
func (c *ChannelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.channels)
}
