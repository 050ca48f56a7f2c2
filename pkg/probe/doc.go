// Package probe provides best-effort device presence testing.
//
// A probe is a non-destructive 1-byte read issued solely to test whether a
// device answers at an address. Probing is the one place in this module
// where transport errors are deliberately swallowed: "not present" is an
// expected, common outcome, so IsConnected collapses every failure (channel
// open or I/O) to false and Scan omits the address. The probe cannot
// distinguish an absent device from a transient bus fault.
package probe
