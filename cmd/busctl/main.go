// Command busctl is an interactive console for a bridged I2C bus.
//
// It connects to a bus controller named by URL, then offers an interactive
// prompt for scanning the bus and reading or writing device registers.
//
// Usage:
//
//	busctl [flags]
//
// Flags:
//
//	-config string   Configuration file path (YAML)
//	-url string      Controller URL (overrides config)
//	-trace string    Capture transactions to this CBOR file (overrides config)
//	-verbose         Echo every transaction to the console
//
// Examples:
//
//	# Poke at a simulated bus with two devices
//	busctl -url sim://0x10,0x23
//
//	# Use a config file with device aliases and capture traffic
//	busctl -config bus.yaml -trace /tmp/bus.cbor
//
// Interactive commands:
//
//	scan                      - probe the bus and list responding devices
//	probe <dev>               - test whether one device answers
//	read <dev> <reg> [n]      - read n register bytes (default 1)
//	write <dev> <reg> <b>...  - write bytes to a register
//	readw <dev> <reg>         - read a 16-bit little-endian word
//	writew <dev> <reg> <v>    - write a 16-bit little-endian word
//	recv <dev>                - read one byte without register addressing
//	send <dev> <b>            - write one byte without register addressing
//	quit                      - exit
//
// <dev> is a hex/decimal address or an alias from the configuration file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/i2cbridge/i2cbridge-go/cmd/busctl/interactive"
	"github.com/i2cbridge/i2cbridge-go/internal/simbus"
	"github.com/i2cbridge/i2cbridge-go/pkg/bridge"
	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
	"github.com/i2cbridge/i2cbridge-go/pkg/config"
	"github.com/i2cbridge/i2cbridge-go/pkg/trace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "busctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "configuration file path (YAML)")
	urlFlag := flag.String("url", "", "controller URL (overrides config)")
	traceFlag := flag.String("trace", "", "capture transactions to this CBOR file")
	verbose := flag.Bool("verbose", false, "echo every transaction to the console")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *urlFlag != "" {
		cfg.ControllerURL = *urlFlag
	}
	if *traceFlag != "" {
		cfg.TraceFile = *traceFlag
	}

	// Controllers are linked in explicitly. The simulator ships in-tree;
	// hardware controllers register their scheme here.
	registry := bus.NewRegistry()
	registry.Register("sim", simbus.Open)

	br, err := bridge.Open(cfg, registry)
	if err != nil {
		return err
	}
	defer br.Close()

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		br.SetLogger(trace.NewSlogAdapter(slog.New(handler)))
	}

	console, err := interactive.New(br, cfg)
	if err != nil {
		return err
	}
	defer console.Close()

	fmt.Printf("busctl connected to %s\n", cfg.ControllerURL)
	return console.Run()
}
