// Package simbus provides a simulated bus controller for tests and for the
// sim:// controller scheme of busctl.
//
// The simulator models a set of present devices, each with 256 bytes of
// register memory and a FIFO for register-less transfers. Registers echo:
// a write followed by a read of the same offset returns the written bytes.
// Absent devices accept channel opens but fail every transfer, matching
// controllers that defer device detection to the first transaction. Errors
// can be injected per device and per channel open for failure-path tests.
package simbus
