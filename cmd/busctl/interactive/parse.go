package interactive

import (
	"fmt"
	"strconv"
)

// parseByte parses a register offset or data byte in decimal or hex notation.
func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return uint8(v), nil
}

// parseBytes parses a sequence of data bytes.
func parseBytes(args []string) ([]byte, error) {
	data := make([]byte, 0, len(args))
	for _, arg := range args {
		v, err := parseByte(arg)
		if err != nil {
			return nil, err
		}
		data = append(data, v)
	}
	return data, nil
}

// parseWord parses a 16-bit value in decimal or hex notation.
func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q", s)
	}
	return uint16(v), nil
}

// parseCount parses a non-negative transfer length.
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return int(v), nil
}
