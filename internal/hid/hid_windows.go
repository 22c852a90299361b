//go:build windows

package hid

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	sghid "github.com/sstallion/go-hid"
)

// Windows HID implementation on the hidapi binding. hid.Init is process-wide
// and idempotent, so it is guarded by a Once.

var initOnce sync.Once

type hidapiManager struct{}

func newManager() (Manager, error) {
	var err error
	initOnce.Do(func() { err = sghid.Init() })
	if err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	err := sghid.Enumerate(0, 0, func(info *sghid.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type hidapiDevice struct{ d *sghid.Device }

func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	var path string
	err := sghid.Enumerate(vendorID, productID, func(info *sghid.DeviceInfo) error {
		if path == "" {
			path = info.Path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w (%04x:%04x)", ErrNotFound, vendorID, productID)
	}

	d, err := sghid.OpenPath(path)
	if err != nil {
		// hidapi surfaces open failures as strings with no errno to
		// inspect; "access" is the wording it uses for privilege
		// errors. A wording change here degrades the classification to
		// TransportError, which still reports as a failure.
		if strings.Contains(strings.ToLower(err.Error()), "access") {
			return nil, fmt.Errorf("open %04x:%04x: %w: %v", vendorID, productID, fs.ErrPermission, err)
		}
		return nil, fmt.Errorf("open %04x:%04x: %w", vendorID, productID, err)
	}
	return &hidapiDevice{d}, nil
}

func (d *hidapiDevice) Write(p []byte) (int, error)       { return d.d.Write(p) }
func (d *hidapiDevice) SendFeature(p []byte) (int, error) { return d.d.SendFeatureReport(p) }
func (d *hidapiDevice) GetFeature(p []byte) (int, error)  { return d.d.GetFeatureReport(p) }
func (d *hidapiDevice) Close() error                      { return d.d.Close() }
