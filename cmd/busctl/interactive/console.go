// Package interactive provides the interactive command-line interface
// for busctl.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/i2cbridge/i2cbridge-go/pkg/bridge"
	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
	"github.com/i2cbridge/i2cbridge-go/pkg/config"
	"github.com/i2cbridge/i2cbridge-go/pkg/trace"
)

// Console handles interactive mode for busctl.
type Console struct {
	bridge *bridge.Bridge
	config config.Config
	rl     *readline.Instance
}

// New creates a new interactive console over the given bridge.
func New(br *bridge.Bridge, cfg config.Config) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bus> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		bridge: br,
		config: cfg,
		rl:     rl,
	}, nil
}

// Close releases the readline instance.
func (c *Console) Close() error {
	return c.rl.Close()
}

// Run starts the interactive command loop. It returns when the user quits
// or input is exhausted.
func (c *Console) Run() error {
	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "scan":
			c.cmdScan()

		case "probe":
			c.cmdProbe(args)

		case "read", "r":
			c.cmdRead(args)

		case "write", "w":
			c.cmdWrite(args)

		case "readw":
			c.cmdReadWord(args)

		case "writew":
			c.cmdWriteWord(args)

		case "recv":
			c.cmdRecv(args)

		case "send":
			c.cmdSend(args)

		case "quit", "exit", "q":
			return nil

		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Println(`Commands:
  scan                      probe the bus and list responding devices
  probe <dev>               test whether one device answers
  read <dev> <reg> [n]      read n register bytes (default 1)
  write <dev> <reg> <b>...  write bytes to a register
  readw <dev> <reg>         read a 16-bit little-endian word
  writew <dev> <reg> <v>    write a 16-bit little-endian word
  recv <dev>                read one byte without register addressing
  send <dev> <b>            write one byte without register addressing
  quit                      exit`)
}

func (c *Console) cmdScan() {
	min, max := c.config.ScanRange()
	found := c.bridge.Prober().ScanRange(min, max)
	if len(found) == 0 {
		fmt.Println("no devices found")
		return
	}
	for _, addr := range found {
		if name := c.aliasFor(addr); name != "" {
			fmt.Printf("  %s  (%s)\n", addr, name)
		} else {
			fmt.Printf("  %s\n", addr)
		}
	}
}

func (c *Console) cmdProbe(args []string) {
	addr, ok := c.device(args, 1, "probe <dev>")
	if !ok {
		return
	}
	if c.bridge.Prober().IsConnected(addr) {
		fmt.Printf("%s answers\n", addr)
	} else {
		fmt.Printf("%s does not answer\n", addr)
	}
}

func (c *Console) cmdRead(args []string) {
	if len(args) < 2 || len(args) > 3 {
		fmt.Println("usage: read <dev> <reg> [n]")
		return
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	reg, err := parseByte(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	n := 1
	if len(args) == 3 {
		n, err = parseCount(args[2])
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	data, err := c.bridge.SMBus().ReadBlockData(addr, reg, n)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(trace.Hex(data))
}

func (c *Console) cmdWrite(args []string) {
	if len(args) < 3 {
		fmt.Println("usage: write <dev> <reg> <b>...")
		return
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	reg, err := parseByte(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	data, err := parseBytes(args[2:])
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := c.bridge.SMBus().WriteBlockData(addr, reg, data); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("wrote %d bytes\n", len(data))
}

func (c *Console) cmdReadWord(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: readw <dev> <reg>")
		return
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	reg, err := parseByte(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	v, err := c.bridge.SMBus().ReadWordData(addr, reg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("0x%04X (%d)\n", v, v)
}

func (c *Console) cmdWriteWord(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: writew <dev> <reg> <v>")
		return
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	reg, err := parseByte(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := parseWord(args[2])
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := c.bridge.SMBus().WriteWordData(addr, reg, v); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("wrote 0x%04X\n", v)
}

func (c *Console) cmdRecv(args []string) {
	addr, ok := c.device(args, 1, "recv <dev>")
	if !ok {
		return
	}
	v, err := c.bridge.SMBus().ReadByte(addr)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("0x%02X\n", v)
}

func (c *Console) cmdSend(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: send <dev> <b>")
		return
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := parseByte(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := c.bridge.SMBus().WriteByte(addr, v); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("ok")
}

// device resolves a single-device argument list, printing usage on mistakes.
func (c *Console) device(args []string, want int, usage string) (addr bus.Addr, ok bool) {
	if len(args) != want {
		fmt.Printf("usage: %s\n", usage)
		return 0, false
	}
	addr, err := c.config.Resolve(args[0])
	if err != nil {
		fmt.Println(err)
		return 0, false
	}
	return addr, true
}

// aliasFor returns the configured alias for an address, if any.
func (c *Console) aliasFor(addr bus.Addr) string {
	for name, a := range c.config.Aliases {
		if a == addr {
			return name
		}
	}
	return ""
}
