// Package hid opens raw HID devices by vendor/product id and performs
// report-level I/O against them.
package hid

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrNotFound reports that no device with the requested vendor/product pair
// is enumerated. Open failures caused by missing privileges wrap
// io/fs.ErrPermission instead, so callers can tell the two apart.
var ErrNotFound = errors.New("hid: device not found")

// Device represents an opened HID device capable of report I/O. The first
// byte of every buffer is the report ID, hidapi-style.
type Device interface {
	Write([]byte) (int, error)       // send output report
	SendFeature([]byte) (int, error) // send feature report
	GetFeature([]byte) (int, error)  // read feature report for buf[0]
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	// OpenVIDPID opens the first enumerated device matching the pair.
	// Multiple identical devices are a documented limitation: only the
	// first is controlled.
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}

// FormatReport renders report bytes as dash-separated hex for logs and the
// dump command.
func FormatReport(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
