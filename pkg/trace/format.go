package trace

import (
	"fmt"
	"strings"
)

// Addr formats a device address or register offset as two-digit hex.
func Addr(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}

// Hex formats a payload as space-separated hex bytes, e.g. "AA BB CC".
func Hex(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
