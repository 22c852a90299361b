package control

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lightsout/internal/coreliquid"
	"lightsout/internal/hid"
	"lightsout/internal/hwmon"
)

// daemonInterval is how often the temperature daemon forwards the CPU
// temperature to the cooler.
const daemonInterval = 2 * time.Second

// SetFanMode writes the cooler's pump/fan profile.
func (c *Controller) SetFanMode(ctx context.Context, mode coreliquid.FanMode) error {
	return c.bounded(ctx, func() error {
		dev, err := c.HID.OpenVIDPID(coreliquid.VendorID, coreliquid.ProductID)
		if err != nil {
			return err
		}
		defer dev.Close()
		return setFanMode(dev, mode)
	})
}

func setFanMode(dev hid.Device, mode coreliquid.FanMode) error {
	for _, report := range coreliquid.FanModeReports(mode) {
		if _, err := dev.Write(report); err != nil {
			return fmt.Errorf("fan mode command 0x%02x: %w", report[1], err)
		}
	}
	return nil
}

// Dump reads and returns the cooler's raw LED feature report, for protocol
// debugging.
func (c *Controller) Dump(ctx context.Context) ([]byte, error) {
	var feature []byte
	err := c.bounded(ctx, func() error {
		dev, err := c.HID.OpenVIDPID(coreliquid.VendorID, coreliquid.ProductID)
		if err != nil {
			return err
		}
		defer dev.Close()

		feature = coreliquid.FeatureRequest()
		if _, err := dev.GetFeature(feature); err != nil {
			return fmt.Errorf("read LED feature report: %w", err)
		}
		return nil
	})
	return feature, err
}

// RunDaemon forwards the CPU temperature to the cooler until ctx is
// cancelled, feeding its smart fan curve. Unlike the one-shot commands the
// daemon holds the device open for its whole lifetime.
func (c *Controller) RunDaemon(ctx context.Context, smart bool) error {
	dev, err := c.HID.OpenVIDPID(coreliquid.VendorID, coreliquid.ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()

	if smart {
		if err := setFanMode(dev, coreliquid.FanSmart); err != nil {
			return err
		}
	}

	sensor, err := hwmon.FindCPUSensor()
	if err != nil {
		return err
	}
	c.Log.Info("temperature daemon started",
		slog.String("sensor", sensor),
		slog.Duration("interval", daemonInterval))

	ticker := time.NewTicker(daemonInterval)
	defer ticker.Stop()
	for {
		temp, err := hwmon.ReadTemp(sensor)
		if err != nil {
			c.Log.Warn("temperature read failed", slog.Any("error", err))
		} else {
			c.Log.Debug("cpu temperature", slog.Int("celsius", temp))
			if _, err := dev.Write(coreliquid.CPUStatus(temp)); err != nil {
				c.Log.Warn("temperature report failed", slog.Any("error", err))
			}
		}

		select {
		case <-ctx.Done():
			c.Log.Info("temperature daemon stopped")
			return nil
		case <-ticker.C:
		}
	}
}
