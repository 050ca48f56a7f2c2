package trace

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	reg := uint8(0x05)
	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "s",
		Direction: DirectionOut,
		Op:        OpRegisterWrite,
		Addr:      0x48,
		Register:  &reg,
		Data:      []byte{0xAA, 0xBB},
	})

	out := buf.String()
	for _, want := range []string{"REG_WRITE", "OUT", "0x48", "0x05", "AA BB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if !strings.Contains(out, "DEBUG") {
		t.Errorf("successful transactions log at debug level: %s", out)
	}
}

func TestSlogAdapterErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "s",
		Direction: DirectionIn,
		Op:        OpProbe,
		Addr:      0x50,
		Error:     "no device",
	})

	out := buf.String()
	if !strings.Contains(out, "WARN") {
		t.Errorf("failed transactions log at warn level: %s", out)
	}
	if !strings.Contains(out, "no device") {
		t.Errorf("output missing error message: %s", out)
	}
}

func TestHexFormat(t *testing.T) {
	if got := Hex(nil); got != "" {
		t.Errorf("Hex(nil) = %q, want empty", got)
	}
	if got := Hex([]byte{0x0A}); got != "0A" {
		t.Errorf("Hex = %q, want %q", got, "0A")
	}
	if got := Hex([]byte{0xAA, 0xBB, 0xCC}); got != "AA BB CC" {
		t.Errorf("Hex = %q, want %q", got, "AA BB CC")
	}
}
