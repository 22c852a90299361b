// Package device holds the fixed table of controllable lighting devices and
// the per-device result vocabulary shared by the controller and the CLI.
package device

// Kind identifies a device's vendor protocol. The set is closed: each
// protocol encoding is hand-derived from vendor-specific reverse
// engineering, so adding a device is a code change, not a registration.
type Kind int

const (
	Cooler Kind = iota // MSI MPG CORELIQUID (LEDs + LCD)
	FanHub             // LianLi UNI FAN AL v2 hub
	GPU                // ASUS TUF GPU, ENE RGB controller
)

func (k Kind) String() string {
	switch k {
	case Cooler:
		return "cooler"
	case FanHub:
		return "fanhub"
	case GPU:
		return "gpu"
	}
	return "unknown"
}

// Bus selects the transport a device is reached over.
type Bus int

const (
	BusHID   Bus = iota // raw HID reports via hidraw/hidapi
	BusSMBus            // I2C/SMBus register writes
)

func (b Bus) String() string {
	switch b {
	case BusHID:
		return "hid"
	case BusSMBus:
		return "smbus"
	}
	return "unknown"
}

// Descriptor describes one physically controllable device. Descriptors are
// immutable and compiled in; VendorID/ProductID are zero for non-HID buses.
type Descriptor struct {
	Name      string
	Kind      Kind
	Bus       Bus
	VendorID  uint16
	ProductID uint16

	// ReportLens is the set of write sizes the device's protocol uses.
	// Every report an encoder produces for this device must have a length
	// in this set; the controller tests enforce it.
	ReportLens []int
}

// Registry returns the supported devices in their fixed apply order. The
// order is part of the tool's contract: results are reported in this order
// on every run.
func Registry() []Descriptor {
	return []Descriptor{
		{
			Name:       "MSI MPG CORELIQUID",
			Kind:       Cooler,
			Bus:        BusHID,
			VendorID:   0x0DB0,
			ProductID:  0xB130,
			ReportLens: []int{65, 185},
		},
		{
			Name:       "LianLi UNI FAN AL v2",
			Kind:       FanHub,
			Bus:        BusHID,
			VendorID:   0x0CF2,
			ProductID:  0xA104,
			ReportLens: []int{65, 146},
		},
		{
			Name:       "ASUS TUF GPU",
			Kind:       GPU,
			Bus:        BusSMBus,
			ReportLens: []int{3, 2},
		},
	}
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor)
	for _, d := range Registry() {
		m[d.Kind.String()] = d
	}
	return m
}()

// Lookup returns the descriptor with the given logical name ("cooler",
// "fanhub", "gpu").
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}
