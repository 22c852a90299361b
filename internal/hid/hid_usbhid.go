//go:build !windows

package hid

import (
	"fmt"

	usbhid "rafaelmartins.com/p/usbhid"
)

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

type usbDevice struct{ d *usbhid.Device }

func (m *usbManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	// Enumerate first so absence and privilege failure stay distinct: Get
	// reports both as a plain error.
	devs, err := usbhid.Enumerate(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	})
	if err != nil {
		return nil, err
	}
	if len(devs) == 0 {
		return nil, fmt.Errorf("%w (%04x:%04x)", ErrNotFound, vendorID, productID)
	}

	first := devs[0].Path()
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == first
	}, true, false)
	if err != nil {
		// err wraps fs.ErrPermission when the hidraw node is not
		// accessible to the invoking user.
		return nil, fmt.Errorf("open %04x:%04x: %w", vendorID, productID, err)
	}
	return &usbDevice{d}, nil
}

func (d *usbDevice) Write(p []byte) (int, error) {
	// p includes the report ID at p[0]
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.d.SetOutputReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbDevice) SendFeature(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.d.SetFeatureReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbDevice) GetFeature(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf, err := d.d.GetFeatureReport(p[0])
	if err != nil {
		return 0, err
	}
	n := copy(p[1:], buf)
	return n + 1, nil
}

func (d *usbDevice) Close() error { return d.d.Close() }
