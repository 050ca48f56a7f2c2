// Package bridge assembles the adapter surfaces over one shared bus.
//
// A Bridge owns a single ChannelCache and hands out the register access
// (smbus) and presence probing (probe) surfaces built on it, so that every
// surface sees the same per-address channel objects. It also owns the
// optional trace capture file configured for the bus.
//
// Typical usage:
//
//	reg := bus.NewRegistry()
//	reg.Register("ftdi", ftdi.Open) // external controller implementation
//
//	br, err := bridge.Open(config.Default(), reg)
//	if err != nil { ... }
//	defer br.Close()
//
//	temp, err := br.SMBus().ReadWordData(0x76, 0xFA)
//	present := br.Prober().Scan()
package bridge
