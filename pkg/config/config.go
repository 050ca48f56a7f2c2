package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
)

// DefaultControllerURL names the FTDI FT232H adapter in the conventional
// single-device position.
const DefaultControllerURL = "ftdi://ftdi:232h/1"

// Configuration errors.
var (
	ErrNoControllerURL = errors.New("controller_url must not be empty")
	ErrBadScanRange    = errors.New("invalid scan range")
)

// Config is the bridge configuration.
type Config struct {
	// ControllerURL names the physical transport endpoint.
	ControllerURL string `yaml:"controller_url"`

	// TraceFile, if set, enables transaction capture to this path.
	TraceFile string `yaml:"trace_file"`

	// ScanMin/ScanMax override the bus scan range [min, max).
	// Unset values fall back to the conventional 7-bit range.
	ScanMin *bus.Addr `yaml:"scan_min"`
	ScanMax *bus.Addr `yaml:"scan_max"`

	// Aliases maps friendly device names to addresses.
	Aliases map[string]bus.Addr `yaml:"aliases"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ControllerURL: DefaultControllerURL,
	}
}

// Load reads a YAML configuration file, fills in defaults and validates.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration bytes, fills in defaults and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.ControllerURL == "" {
		return ErrNoControllerURL
	}

	min, max := c.ScanRange()
	if min >= max || max > bus.MaxAddr {
		return fmt.Errorf("%w: [%s, %s)", ErrBadScanRange, min, max)
	}

	for name, addr := range c.Aliases {
		if !addr.Valid() {
			return fmt.Errorf("%w: alias %q is %s", bus.ErrInvalidAddress, name, addr)
		}
	}
	return nil
}

// ScanRange returns the effective scan range [min, max).
func (c Config) ScanRange() (min, max bus.Addr) {
	min, max = bus.ScanMin, bus.ScanMax
	if c.ScanMin != nil {
		min = *c.ScanMin
	}
	if c.ScanMax != nil {
		max = *c.ScanMax
	}
	return min, max
}

// Resolve maps a device name or textual address to an address. Aliases take
// precedence over literal notation.
func (c Config) Resolve(s string) (bus.Addr, error) {
	if addr, ok := c.Aliases[s]; ok {
		return addr, nil
	}
	return bus.ParseAddr(s)
}
