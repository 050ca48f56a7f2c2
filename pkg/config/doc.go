// Package config loads bridge configuration from YAML.
//
// A configuration names the controller endpoint, optional device aliases for
// interactive use, an optional scan range override and an optional trace
// capture file:
//
//	controller_url: ftdi://ftdi:232h/1
//	trace_file: /tmp/bus-capture.cbor
//	scan_min: 0x08
//	scan_max: 0x78
//	aliases:
//	  bme280: 0x76
//	  eeprom: 0x50
//
// The controller URL format is owned by the controller implementation; this
// package treats it as an opaque value beyond requiring a scheme.
package config
