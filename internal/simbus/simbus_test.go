package simbus

import (
	"errors"
	"testing"

	"github.com/i2cbridge/i2cbridge-go/pkg/bus"
)

func TestRegisterEcho(t *testing.T) {
	ctrl := New()
	ctrl.AddDevice(0x10)

	ch, err := ctrl.OpenChannel(0x10)
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}

	if err := ch.WriteTo(0x05, []byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	got, err := ch.ReadFrom(0x05, 2)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if got[0] != 0xAA || got[1] != 0xBB {
		t.Errorf("ReadFrom = %v, want [AA BB]", got)
	}
}

func TestVacantAddressTransfersFail(t *testing.T) {
	ctrl := New()

	ch, err := ctrl.OpenChannel(0x50)
	if err != nil {
		t.Fatalf("opens succeed for vacant addresses, got %v", err)
	}

	if _, err := ch.Read(1); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Read error = %v, want ErrNoDevice", err)
	}
	if err := ch.Write([]byte{1}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Write error = %v, want ErrNoDevice", err)
	}
}

func TestHotplug(t *testing.T) {
	ctrl := New()
	ch, err := ctrl.OpenChannel(0x10)
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}

	// Presence is re-checked per transfer, so a channel opened before
	// the device appeared starts working once it does.
	if _, err := ch.Read(1); err == nil {
		t.Fatal("Read before hotplug should fail")
	}
	ctrl.AddDevice(0x10)
	if _, err := ch.Read(1); err != nil {
		t.Fatalf("Read after hotplug: %v", err)
	}

	ctrl.RemoveDevice(0x10)
	if _, err := ch.Read(1); err == nil {
		t.Fatal("Read after removal should fail")
	}
}

func TestFIFOSemantics(t *testing.T) {
	ctrl := New()
	dev := ctrl.AddDevice(0x10)
	dev.PushFIFO(0x01, 0x02, 0x03)

	ch, _ := ctrl.OpenChannel(0x10)

	got, err := ch.Read(2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got[0] != 0x01 || got[1] != 0x02 {
		t.Errorf("Read = %v, want [01 02]", got)
	}

	// Draining past the FIFO pads with zeros.
	got, err = ch.Read(2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got[0] != 0x03 || got[1] != 0x00 {
		t.Errorf("Read = %v, want [03 00]", got)
	}
}

func TestRegisterRange(t *testing.T) {
	ctrl := New()
	ctrl.AddDevice(0x10)
	ch, _ := ctrl.OpenChannel(0x10)

	if _, err := ch.ReadFrom(0xFE, 4); !errors.Is(err, ErrRegisterRange) {
		t.Errorf("ReadFrom past register file = %v, want ErrRegisterRange", err)
	}
	if err := ch.WriteTo(0xFF, []byte{1, 2}); !errors.Is(err, ErrRegisterRange) {
		t.Errorf("WriteTo past register file = %v, want ErrRegisterRange", err)
	}
}

func TestOpenURL(t *testing.T) {
	ctrl, err := Open("sim://0x10,0x23")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	sim := ctrl.(*Controller)
	if _, err := sim.device(0x10); err != nil {
		t.Errorf("0x10 should be present: %v", err)
	}
	if _, err := sim.device(0x23); err != nil {
		t.Errorf("0x23 should be present: %v", err)
	}
	if _, err := sim.device(0x50); err == nil {
		t.Error("0x50 should be vacant")
	}
}

func TestOpenURLEmpty(t *testing.T) {
	ctrl, err := Open("sim://")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := ctrl.(*Controller).device(0x10); err == nil {
		t.Error("empty simulator should have no devices")
	}
}

func TestOpenURLBadAddress(t *testing.T) {
	if _, err := Open("sim://0x10,0xFF"); !errors.Is(err, bus.ErrInvalidAddress) {
		t.Errorf("Open error = %v, want ErrInvalidAddress", err)
	}
	if _, err := Open("sim://0x10,junk"); err == nil {
		t.Error("Open with garbage address should fail")
	}
}
