// Package smbus provides SMBus-style register access over a shared channel
// cache.
//
// The SMBus type is the surface that existing register read/write client
// code programs against: single-byte and block register transfers, raw
// register-less byte transfers, and 16-bit little-endian word transfers
// composed from the block operations.
//
// All operations are fail-loud. A transfer that does not move exactly the
// requested number of bytes fails with bus.ErrShortTransfer, and controller
// errors propagate unchanged to the caller. Best-effort presence testing
// lives in the probe package instead.
package smbus
