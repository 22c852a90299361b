//go:build linux

package smbus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// From linux/i2c-dev.h and linux/i2c.h.
const (
	i2cSlave = 0x0703
	i2cSMBus = 0x0720

	smbusWrite    = 0
	smbusByteData = 2
	smbusWordData = 3
)

// i2c_smbus_ioctl_data; data points at an i2c_smbus_data union (block
// transfers need 34 bytes, more than enough for byte/word).
type smbusIoctlData struct {
	readWrite uint8
	command   uint8
	size      uint32
	data      unsafe.Pointer
}

type dev struct {
	f *os.File
}

func open(path string, addr uint16) (Dev, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := unix.IoctlSetInt(int(f.Fd()), i2cSlave, int(addr)); err != nil {
		f.Close()
		return nil, fmt.Errorf("select slave 0x%02x on %s: %w", addr, path, err)
	}
	return &dev{f: f}, nil
}

func (d *dev) transfer(cmd byte, size uint32, data unsafe.Pointer) error {
	arg := smbusIoctlData{
		readWrite: smbusWrite,
		command:   cmd,
		size:      size,
		data:      data,
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), i2cSMBus, uintptr(unsafe.Pointer(&arg)))
	if errno != 0 {
		return fmt.Errorf("smbus write (cmd 0x%02x): %w", cmd, errno)
	}
	return nil
}

func (d *dev) WriteByteData(cmd byte, val byte) error {
	var data [34]byte
	data[0] = val
	return d.transfer(cmd, smbusByteData, unsafe.Pointer(&data))
}

func (d *dev) WriteWordData(cmd byte, val uint16) error {
	var data [34]byte
	data[0] = byte(val)
	data[1] = byte(val >> 8)
	return d.transfer(cmd, smbusWordData, unsafe.Pointer(&data))
}

func (d *dev) Close() error { return d.f.Close() }

// sysI2CDev is a variable so tests can point discovery at a fake tree.
var sysI2CDev = "/sys/class/i2c-dev"

func findGPUBus() (string, error) {
	entries, err := os.ReadDir(sysI2CDev)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read %s: %w", sysI2CDev, err)
	}

	for _, e := range entries {
		raw, err := os.ReadFile(filepath.Join(sysI2CDev, e.Name(), "name"))
		if err != nil {
			continue
		}
		name := string(raw)
		// The DRM driver names the connector-level OEM bus e.g.
		// "AMDGPU DM i2c OEM bus"; needs a kernel that exposes it.
		if strings.Contains(name, "AMDGPU") && strings.Contains(name, "OEM") {
			return "/dev/" + e.Name(), nil
		}
	}
	return "", ErrNotFound
}
