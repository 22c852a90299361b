package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"lightsout/internal/hid"
)

// listAction prints every HID device the transport can see. Useful for
// checking device presence and udev permissions before running off.
func listAction() error {
	mgr, err := hid.NewManager()
	if err != nil {
		return err
	}
	devices, err := mgr.List()
	if err != nil {
		return fmt.Errorf("error listing devices: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 24, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(w, "PATH\tVENDOR\tPRODUCT ID\tMANUFACTURER\tPRODUCT\n")
	for _, d := range devices {
		_, _ = fmt.Fprintf(w, "%s\t%#04x\t%#04x\t%s\t%s\n",
			d.Path, d.VendorID, d.ProductID, d.Manufacturer, d.Product)
	}
	return w.Flush()
}
