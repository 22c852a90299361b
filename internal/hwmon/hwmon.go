// Package hwmon reads the CPU package temperature from the kernel hwmon
// tree, for feeding the cooler's smart fan mode.
package hwmon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoSensor reports that no known CPU temperature chip is present.
var ErrNoSensor = errors.New("hwmon: no CPU temperature sensor (k10temp or coretemp)")

// Root is the hwmon class directory; a variable so tests can substitute a
// fake tree.
var Root = "/sys/class/hwmon"

// FindCPUSensor returns the temp1_input path of the CPU temperature chip.
// AMD exposes k10temp (temp1 is Tctl), Intel coretemp (temp1 is the
// package temperature).
func FindCPUSensor() (string, error) {
	entries, err := os.ReadDir(Root)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", Root, err)
	}

	for _, e := range entries {
		raw, err := os.ReadFile(filepath.Join(Root, e.Name(), "name"))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(string(raw))
		if name != "k10temp" && name != "coretemp" {
			continue
		}
		temp := filepath.Join(Root, e.Name(), "temp1_input")
		if _, err := os.Stat(temp); err == nil {
			return temp, nil
		}
	}
	return "", ErrNoSensor
}

// ReadTemp reads a temp*_input file and returns whole degrees Celsius.
func ReadTemp(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read temperature: %w", err)
	}
	millideg, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse temperature: %w", err)
	}
	return millideg / 1000, nil
}
