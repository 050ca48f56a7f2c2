package simbus

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
)

// Simulator errors.
var (
	// ErrNoDevice indicates a transfer to an address with no simulated
	// device behind it.
	ErrNoDevice = errors.New("no device at address")

	// ErrRegisterRange indicates a register transfer past the end of the
	// 256-byte register file.
	ErrRegisterRange = errors.New("register transfer out of range")
)

// Controller is a simulated bus controller. The zero value is not usable;
// create one with New.
type Controller struct {
	mu        sync.Mutex
	devices   map[bus.Addr]*Device
	openErrs  map[bus.Addr]error
	openCalls map[bus.Addr]int
}

// Device is one simulated peripheral.
type Device struct {
	mu sync.Mutex

	// registers is the device's register file.
	registers [256]byte

	// fifo backs register-less transfers: Write pushes, Read pops.
	// Reads beyond the FIFO content return zero bytes.
	fifo []byte

	// ReadErr, if set, fails every read on the device.
	ReadErr error

	// WriteErr, if set, fails every write on the device.
	WriteErr error
}

// New creates a simulator with no devices present.
func New() *Controller {
	return &Controller{
		devices:   make(map[bus.Addr]*Device),
		openErrs:  make(map[bus.Addr]error),
		openCalls: make(map[bus.Addr]int),
	}
}

// AddDevice makes a device present at addr and returns it for register
// preloading and error injection. Adding an existing address returns the
// existing device.
func (c *Controller) AddDevice(addr bus.Addr) *Device {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dev, ok := c.devices[addr]; ok {
		return dev
	}
	dev := &Device{}
	c.devices[addr] = dev
	return dev
}

// RemoveDevice makes the address vacant again. Channels already open to the
// address start failing their transfers.
func (c *Controller) RemoveDevice(addr bus.Addr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.devices, addr)
}

// FailOpen injects an error returned by OpenChannel for addr.
// Pass nil to clear.
func (c *Controller) FailOpen(addr bus.Addr, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.openErrs, addr)
		return
	}
	c.openErrs[addr] = err
}

// OpenCalls returns how many times OpenChannel was called for addr.
func (c *Controller) OpenCalls(addr bus.Addr) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openCalls[addr]
}

// OpenChannel opens a channel to addr. Opens succeed for vacant addresses;
// transfers on such channels fail with ErrNoDevice, the way bus masters that
// detect devices per transaction behave.
func (c *Controller) OpenChannel(addr bus.Addr) (bus.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.openCalls[addr]++
	if err := c.openErrs[addr]; err != nil {
		return nil, err
	}
	return &channel{ctrl: c, addr: addr}, nil
}

// device returns the present device at addr, or ErrNoDevice.
func (c *Controller) device(addr bus.Addr) (*Device, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dev, ok := c.devices[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, addr)
	}
	return dev, nil
}

// channel binds a controller to one address. Channels hold no state of
// their own; presence is re-checked on every transfer.
type channel struct {
	ctrl *Controller
	addr bus.Addr
}

func (ch *channel) Read(n int) ([]byte, error) {
	dev, err := ch.ctrl.device(ch.addr)
	if err != nil {
		return nil, err
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()

	if dev.ReadErr != nil {
		return nil, dev.ReadErr
	}

	data := make([]byte, n)
	popped := copy(data, dev.fifo)
	dev.fifo = dev.fifo[popped:]
	return data, nil
}

func (ch *channel) Write(data []byte) error {
	dev, err := ch.ctrl.device(ch.addr)
	if err != nil {
		return err
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()

	if dev.WriteErr != nil {
		return dev.WriteErr
	}

	dev.fifo = append(dev.fifo, data...)
	return nil
}

func (ch *channel) ReadFrom(reg uint8, n int) ([]byte, error) {
	dev, err := ch.ctrl.device(ch.addr)
	if err != nil {
		return nil, err
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()

	if dev.ReadErr != nil {
		return nil, dev.ReadErr
	}
	if int(reg)+n > len(dev.registers) {
		return nil, fmt.Errorf("%w: register 0x%02X length %d", ErrRegisterRange, reg, n)
	}

	data := make([]byte, n)
	copy(data, dev.registers[reg:int(reg)+n])
	return data, nil
}

func (ch *channel) WriteTo(reg uint8, data []byte) error {
	dev, err := ch.ctrl.device(ch.addr)
	if err != nil {
		return err
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()

	if dev.WriteErr != nil {
		return dev.WriteErr
	}
	if int(reg)+len(data) > len(dev.registers) {
		return fmt.Errorf("%w: register 0x%02X length %d", ErrRegisterRange, reg, len(data))
	}

	copy(dev.registers[reg:], data)
	return nil
}

// SetRegister preloads one register value.
func (d *Device) SetRegister(reg uint8, value byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.registers[reg] = value
}

// Register returns one register value.
func (d *Device) Register(reg uint8) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registers[reg]
}

// PushFIFO queues bytes for register-less reads.
func (d *Device) PushFIFO(data ...byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fifo = append(d.fifo, data...)
}

// FIFO returns a copy of the pending FIFO content.
func (d *Device) FIFO() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, len(d.fifo))
	copy(out, d.fifo)
	return out
}

// Open creates a simulator from a controller URL of the form
// "sim://0x10,0x23", where the host part lists the present device
// addresses. "sim://" opens an empty bus. Open satisfies bus.OpenFunc.
func Open(rawURL string) (bus.Controller, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing simulator URL %q: %w", rawURL, err)
	}

	ctrl := New()
	if u.Host == "" {
		return ctrl, nil
	}

	for _, part := range strings.Split(u.Host, ",") {
		addr, err := bus.ParseAddr(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("simulator URL %q: %w", rawURL, err)
		}
		ctrl.AddDevice(addr)
	}
	return ctrl, nil
}

// Compile-time interface satisfaction checks.
var (
	_ bus.Controller = (*Controller)(nil)
	_ bus.Channel    = (*channel)(nil)
	_ bus.OpenFunc   = Open
)
