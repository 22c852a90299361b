package hid

import (
	"errors"
	"testing"
)

func TestFormatReport(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0xD0}, "d0"},
		{[]byte{0xD0, 0x7F, 0x00}, "d0-7f-00"},
	}
	for _, tt := range tests {
		if got := FormatReport(tt.in); got != tt.want {
			t.Errorf("FormatReport(% x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMockManagerOpen(t *testing.T) {
	mgr := &MockManager{}
	dev := &MockDevice{}
	mgr.Add(0x0DB0, 0xB130, dev)

	d, err := mgr.OpenVIDPID(0x0DB0, 0xB130)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if d != Device(dev) {
		t.Fatalf("wrong device returned")
	}

	if _, err := mgr.OpenVIDPID(0x0CF2, 0xA104); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	scripted := errors.New("open failed")
	mgr.Fail(0x0CF2, 0xA104, scripted)
	if _, err := mgr.OpenVIDPID(0x0CF2, 0xA104); !errors.Is(err, scripted) {
		t.Fatalf("expected scripted error, got %v", err)
	}
}

func TestMockDeviceRecordsWrites(t *testing.T) {
	d := &MockDevice{Feature: []byte{0x01, 0x02}}

	if _, err := d.Write([]byte{0xD0, 0x7F}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(d.Writes) != 1 || d.Writes[0][0] != 0xD0 {
		t.Fatalf("write not recorded: %+v", d.Writes)
	}

	buf := make([]byte, 4)
	buf[0] = 0x52
	n, err := d.GetFeature(buf)
	if err != nil {
		t.Fatalf("get feature: %v", err)
	}
	if n != 3 || buf[1] != 0x01 || buf[2] != 0x02 {
		t.Fatalf("feature read incorrect: n=%d buf=% x", n, buf)
	}
}
