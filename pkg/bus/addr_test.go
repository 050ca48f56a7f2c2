package bus

import (
	"errors"
	"testing"
)

func TestAddrValid(t *testing.T) {
	tests := []struct {
		addr Addr
		want bool
	}{
		{addr: 0x00, want: true},
		{addr: 0x08, want: true},
		{addr: 0x77, want: true},
		{addr: 0x7E, want: true},
		{addr: 0x7F, want: false},
		{addr: 0xFF, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.addr.String(), func(t *testing.T) {
			if got := tt.addr.Valid(); got != tt.want {
				t.Errorf("Addr(%s).Valid() = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestAddrString(t *testing.T) {
	if got := Addr(0x48).String(); got != "0x48" {
		t.Errorf("String() = %q, want %q", got, "0x48")
	}
	if got := Addr(0x08).String(); got != "0x08" {
		t.Errorf("String() = %q, want %q", got, "0x08")
	}
}

func TestParseAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    Addr
		wantErr error
	}{
		{in: "0x48", want: 0x48},
		{in: "72", want: 0x48},
		{in: "0x08", want: 0x08},
		{in: "0x7F", wantErr: ErrInvalidAddress},
		{in: "0xFF", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddr(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAddr(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAddr(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAddr(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAddrGarbage(t *testing.T) {
	for _, in := range []string{"not-an-address", "256", "-1", ""} {
		if _, err := ParseAddr(in); err == nil {
			t.Errorf("ParseAddr(%q) should fail", in)
		}
	}
}
