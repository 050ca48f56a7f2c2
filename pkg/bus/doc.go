// Package bus defines the controller contract and channel multiplexing for
// an I2C bus driven by a USB-to-serial adapter.
//
// The package does not speak to hardware itself. A Controller implementation
// (an FTDI MPSSE engine, a CH347 HID bridge, the in-tree simulator) owns the
// physical connection and opens one Channel per 7-bit device address. On top
// of that contract this package provides:
//
//   - ChannelCache: lazily opens and memoizes one Channel per address so that
//     every adapter surface sharing a bus reuses the same channel objects.
//   - Registry: an explicit scheme-to-opener factory for resolving controller
//     URLs such as "ftdi://ftdi:232h/1" or "sim://0x10,0x23". Applications
//     construct a Registry and pass it down; there is no global registration.
//
// Higher-level access patterns (register byte/block/word I/O, presence
// probing) live in the smbus and probe packages, which are built around a
// shared ChannelCache.
package bus
