package bus

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// fakeController counts opens and can inject open failures per address.
type fakeController struct {
	mu       sync.Mutex
	opens    map[Addr]int
	failWith map[Addr]error
}

func newFakeController() *fakeController {
	return &fakeController{
		opens:    make(map[Addr]int),
		failWith: make(map[Addr]error),
	}
}

func (f *fakeController) OpenChannel(addr Addr) (Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.opens[addr]++
	if err := f.failWith[addr]; err != nil {
		return nil, err
	}
	return &fakeChannel{addr: addr}, nil
}

func (f *fakeController) openCount(addr Addr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[addr]
}

type fakeChannel struct {
	addr Addr
}

func (c *fakeChannel) Read(n int) ([]byte, error) { return make([]byte, n), nil }

func (c *fakeChannel) Write(data []byte) error { return nil }

func (c *fakeChannel) ReadFrom(reg uint8, n int) ([]byte, error) { return make([]byte, n), nil }

func (c *fakeChannel) WriteTo(reg uint8, data []byte) error { return nil }

func TestChannelCacheIdentity(t *testing.T) {
	cache := NewChannelCache(newFakeController())

	first, err := cache.Channel(0x48)
	if err != nil {
		t.Fatalf("Channel: %v", err)
	}
	second, err := cache.Channel(0x48)
	if err != nil {
		t.Fatalf("Channel: %v", err)
	}

	if first != second {
		t.Error("repeated lookups for one address must return the identical channel")
	}
}

func TestChannelCacheDistinctAddresses(t *testing.T) {
	cache := NewChannelCache(newFakeController())

	a, err := cache.Channel(0x10)
	if err != nil {
		t.Fatalf("Channel(0x10): %v", err)
	}
	b, err := cache.Channel(0x23)
	if err != nil {
		t.Fatalf("Channel(0x23): %v", err)
	}

	if a == b {
		t.Error("different addresses must get distinct channels")
	}
	if got := cache.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestChannelCacheOpensOnce(t *testing.T) {
	ctrl := newFakeController()
	cache := NewChannelCache(ctrl)

	for i := 0; i < 5; i++ {
		if _, err := cache.Channel(0x48); err != nil {
			t.Fatalf("Channel: %v", err)
		}
	}

	if got := ctrl.openCount(0x48); got != 1 {
		t.Errorf("OpenChannel called %d times, want 1", got)
	}
}

func TestChannelCacheOpenErrorNotCached(t *testing.T) {
	ctrl := newFakeController()
	openErr := errors.New("adapter unplugged")
	ctrl.failWith[0x48] = openErr

	cache := NewChannelCache(ctrl)

	if _, err := cache.Channel(0x48); !errors.Is(err, openErr) {
		t.Fatalf("Channel error = %v, want %v", err, openErr)
	}
	if got := cache.Len(); got != 0 {
		t.Errorf("failed open must not cache a channel, Len() = %d", got)
	}

	// Clear the fault; the next lookup retries the open.
	ctrl.mu.Lock()
	delete(ctrl.failWith, 0x48)
	ctrl.mu.Unlock()

	if _, err := cache.Channel(0x48); err != nil {
		t.Fatalf("Channel after fault cleared: %v", err)
	}
	if got := ctrl.openCount(0x48); got != 2 {
		t.Errorf("OpenChannel called %d times, want 2", got)
	}
}

func TestChannelCacheConcurrentLookups(t *testing.T) {
	ctrl := newFakeController()
	cache := NewChannelCache(ctrl)

	const goroutines = 16
	channels := make([]Channel, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, err := cache.Channel(0x50)
			if err != nil {
				panic(fmt.Sprintf("Channel: %v", err))
			}
			channels[i] = ch
		}(i)
	}
	wg.Wait()

	if got := ctrl.openCount(0x50); got != 1 {
		t.Errorf("OpenChannel called %d times under contention, want 1", got)
	}
	for i := 1; i < goroutines; i++ {
		if channels[i] != channels[0] {
			t.Fatal("concurrent lookups returned diverging channels")
		}
	}
}
