// Package smbus performs SMBus register writes against a Linux I2C
// character device. It covers exactly what the ENE RGB controller needs:
// byte and word data writes to a fixed slave address.
package smbus

import "errors"

// ErrNotFound reports that no matching I2C bus exists on this system.
var ErrNotFound = errors.New("smbus: bus not found")

// Dev is an open I2C slave ready for SMBus transfers.
type Dev interface {
	WriteByteData(cmd byte, val byte) error
	WriteWordData(cmd byte, val uint16) error
	Close() error
}

// Open opens the bus device node and selects the slave address.
// Permission failures wrap io/fs.ErrPermission.
func Open(path string, addr uint16) (Dev, error) {
	return open(path, addr)
}

// FindGPUBus locates the AMDGPU OEM I2C bus the GPU's RGB controller hangs
// off. Returns ErrNotFound if the kernel does not expose one.
func FindGPUBus() (string, error) {
	return findGPUBus()
}
