// Package control walks the device registry and applies lighting commands
// over the HID and SMBus transports. A failure on one device never stops
// the walk; every registry entry yields exactly one result per invocation.
package control

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"lightsout/internal/coreliquid"
	"lightsout/internal/device"
	"lightsout/internal/enesmbus"
	"lightsout/internal/hid"
	"lightsout/internal/smbus"
	"lightsout/internal/unihub"
)

// SMBusOpener locates and opens the GPU's I2C bus. Split out as an
// interface so tests can script bus behavior.
type SMBusOpener interface {
	FindGPUBus() (string, error)
	Open(path string, addr uint16) (smbus.Dev, error)
}

type sysSMBus struct{}

func (sysSMBus) FindGPUBus() (string, error) { return smbus.FindGPUBus() }
func (sysSMBus) Open(path string, addr uint16) (smbus.Dev, error) {
	return smbus.Open(path, addr)
}

// interPacketGap paces the fan hub writes; the hub drops packets that
// arrive back to back.
const interPacketGap = 20 * time.Millisecond

// Controller sequences per-device apply operations. Zero-value fields are
// filled with defaults by New; tests construct it directly with mocks.
type Controller struct {
	HID      hid.Manager
	SMBus    SMBusOpener
	Registry []device.Descriptor

	// Timeout bounds each device's open/write/close sequence. The HID and
	// I2C writes have no timeout of their own, and a hung device must not
	// freeze control of the others.
	Timeout time.Duration

	// Sleep is the inter-packet pacing function; tests replace it.
	Sleep func(time.Duration)

	Log *slog.Logger
}

// New returns a Controller wired to the real transports.
func New() (*Controller, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, fmt.Errorf("hid manager: %w", err)
	}
	return &Controller{
		HID:      mgr,
		SMBus:    sysSMBus{},
		Registry: device.Registry(),
		Timeout:  2 * time.Second,
		Sleep:    time.Sleep,
		Log:      slog.Default(),
	}, nil
}

// ApplyOff extinguishes the lighting on every registry device, in registry
// order, and returns one result per entry.
func (c *Controller) ApplyOff(ctx context.Context) device.Results {
	return c.Apply(ctx, c.Registry...)
}

// Apply runs the off sequence for the given descriptors, one at a time.
func (c *Controller) Apply(ctx context.Context, devs ...device.Descriptor) device.Results {
	results := make(device.Results, 0, len(devs))
	for _, d := range devs {
		err := c.bounded(ctx, func() error { return c.applyOff(d) })
		results = append(results, ResultFor(d.Name, err))
		if err != nil {
			c.Log.Debug("apply failed", slog.String("device", d.Name), slog.Any("error", err))
		}
	}
	return results
}

// bounded runs f under the per-device time limit. The work runs in a
// goroutine; on expiry the goroutine is abandoned (its deferred close still
// runs whenever the stuck call returns) and the device is reported failed.
func (c *Controller) bounded(ctx context.Context, f func() error) error {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("device did not respond within %v: %w", timeout, ctx.Err())
	}
}

// applyOff picks the transport from the descriptor's bus, then the off
// sequence from its kind.
func (c *Controller) applyOff(d device.Descriptor) error {
	switch d.Bus {
	case device.BusHID:
		return c.hidOff(d)
	case device.BusSMBus:
		return c.gpuOff()
	}
	return fmt.Errorf("no transport for bus %v", d.Bus)
}

func (c *Controller) hidOff(d device.Descriptor) error {
	switch d.Kind {
	case device.Cooler:
		return c.coolerOff(d)
	case device.FanHub:
		return c.hubOff(d)
	}
	return fmt.Errorf("no off sequence for device kind %v", d.Kind)
}

// coolerOff zeroes every LED zone in the cooler's feature report, then
// blanks the LCD. The LCD report is only issued once the LED write
// succeeded.
func (c *Controller) coolerOff(d device.Descriptor) error {
	dev, err := c.HID.OpenVIDPID(d.VendorID, d.ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()

	feature := coreliquid.FeatureRequest()
	if _, err := dev.GetFeature(feature); err != nil {
		return fmt.Errorf("read LED feature report: %w", err)
	}
	c.Log.Debug("cooler feature report", slog.String("bytes", hid.FormatReport(feature)))

	if _, err := dev.SendFeature(coreliquid.DisableLEDs(feature)); err != nil {
		return fmt.Errorf("disable LEDs: %w", err)
	}
	if _, err := dev.Write(coreliquid.DisableLCD()); err != nil {
		return fmt.Errorf("disable LCD: %w", err)
	}
	return nil
}

// hubOff writes the full color+commit sequence for all hub channels.
// Commit failures abort the device; color packet failures are logged and
// skipped, matching how the hub tolerates missing color data.
func (c *Controller) hubOff(d device.Descriptor) error {
	dev, err := c.HID.OpenVIDPID(d.VendorID, d.ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()

	for i, pkt := range unihub.OffSequence() {
		if i > 0 {
			c.Sleep(interPacketGap)
		}
		if _, err := dev.Write(pkt.Data); err != nil {
			if pkt.Commit {
				return fmt.Errorf("hub commit packet: %w", err)
			}
			c.Log.Warn("hub color packet failed",
				slog.String("device", d.Name), slog.Any("error", err))
		}
	}
	return nil
}

func (c *Controller) gpuOff() error {
	bus, err := c.SMBus.FindGPUBus()
	if err != nil {
		return err
	}
	dev, err := c.SMBus.Open(bus, enesmbus.Addr)
	if err != nil {
		return err
	}
	defer dev.Close()

	for _, w := range enesmbus.OffSequence() {
		if w.IsWord {
			err = dev.WriteWordData(w.Cmd, w.Word)
		} else {
			err = dev.WriteByteData(w.Cmd, w.Byte)
		}
		if err != nil {
			return fmt.Errorf("gpu register write: %w", err)
		}
	}
	return nil
}

// ResultFor converts a per-device error into the reported outcome.
func ResultFor(name string, err error) device.Result {
	switch {
	case err == nil:
		return device.Result{Name: name, Outcome: device.Applied}
	case errors.Is(err, hid.ErrNotFound), errors.Is(err, smbus.ErrNotFound):
		return device.Result{Name: name, Outcome: device.NotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return device.Result{Name: name, Outcome: device.PermissionDenied, Err: err}
	default:
		return device.Result{Name: name, Outcome: device.TransportError, Err: err}
	}
}
