// Command lightsout extinguishes the RGB lighting on a fixed set of vendor
// devices: the MSI MPG CORELIQUID cooler (LEDs and LCD), the LianLi UNI FAN
// AL v2 hub, and the ENE RGB controller on an ASUS TUF GPU.
//
// Exit codes are stable: 0 all devices applied, 1 usage error, 2 one or
// more devices absent (nothing else failed), 3 any transport or permission
// failure.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"lightsout/internal/control"
	"lightsout/internal/coreliquid"
	"lightsout/internal/device"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	if err := newApp(ctx).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(device.ExitUsage)
	}
}

func newApp(ctx context.Context) *cli.App {
	return &cli.App{
		Name:  "lightsout",
		Usage: "turn off RGB lighting on the cooler, fan hub and GPU",
		Description: "Exit codes: 0 all devices applied, 1 usage error, " +
			"2 device(s) absent, 3 transport or permission failure.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log report traffic to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
		CommandNotFound: func(c *cli.Context, cmd string) {
			fmt.Fprintf(c.App.ErrWriter, "unknown command: %s\n", cmd)
			cli.ShowAppHelp(c)
			cli.OsExiter(device.ExitUsage)
		},
		Commands: []*cli.Command{
			{
				Name:  "off",
				Usage: "turn off lighting on every supported device",
				Action: func(c *cli.Context) error {
					return applyAction(ctx)
				},
			},
			{
				Name:  "cooler",
				Usage: "turn off the MSI CORELIQUID LEDs and LCD",
				Action: func(c *cli.Context) error {
					return applyAction(ctx, "cooler")
				},
			},
			{
				Name:  "hub",
				Usage: "turn off the LianLi UNI FAN hub LEDs",
				Action: func(c *cli.Context) error {
					return applyAction(ctx, "fanhub")
				},
			},
			{
				Name:  "gpu",
				Usage: "turn off the GPU LEDs",
				Action: func(c *cli.Context) error {
					return applyAction(ctx, "gpu")
				},
			},
			{
				Name:      "fan",
				Usage:     "set the cooler fan mode",
				ArgsUsage: "<silent|balance|game|default|smart>",
				Action: func(c *cli.Context) error {
					return fanAction(ctx, c.Args().First())
				},
			},
			{
				Name:  "daemon",
				Usage: "forward the CPU temperature to the cooler (for smart fan mode)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "smart",
						Aliases: []string{"s"},
						Usage:   "set the fan mode to smart before starting",
					},
				},
				Action: func(c *cli.Context) error {
					return daemonAction(ctx, c.Bool("smart"))
				},
			},
			{
				Name:  "dump",
				Usage: "hex-dump the cooler LED feature report",
				Action: func(c *cli.Context) error {
					return dumpAction(ctx)
				},
			},
			{
				Name:  "list",
				Usage: "list HID devices visible to this user",
				Action: func(c *cli.Context) error {
					return listAction()
				},
			},
		},
	}
}

func applyAction(ctx context.Context, names ...string) error {
	ctl, err := control.New()
	if err != nil {
		return cli.Exit(err.Error(), device.ExitFailure)
	}

	var results device.Results
	if len(names) == 0 {
		results = ctl.ApplyOff(ctx)
	} else {
		devs := make([]device.Descriptor, 0, len(names))
		for _, n := range names {
			d, ok := device.Lookup(n)
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown device %q", n), device.ExitUsage)
			}
			devs = append(devs, d)
		}
		results = ctl.Apply(ctx, devs...)
	}

	return reportResults(results)
}

func fanAction(ctx context.Context, arg string) error {
	if arg == "" {
		return cli.Exit("usage: lightsout fan <silent|balance|game|default|smart>", device.ExitUsage)
	}
	mode, err := coreliquid.ParseFanMode(arg)
	if err != nil {
		return cli.Exit(err.Error(), device.ExitUsage)
	}

	ctl, err := control.New()
	if err != nil {
		return cli.Exit(err.Error(), device.ExitFailure)
	}

	if err := ctl.SetFanMode(ctx, mode); err != nil {
		r := control.ResultFor("MSI MPG CORELIQUID", err)
		printResult(r)
		return cli.Exit("", device.Results{r}.Code())
	}
	fmt.Printf("cooler fan mode set to %s\n", mode)
	return nil
}

func daemonAction(ctx context.Context, smart bool) error {
	ctl, err := control.New()
	if err != nil {
		return cli.Exit(err.Error(), device.ExitFailure)
	}
	if err := ctl.RunDaemon(ctx, smart); err != nil {
		r := control.ResultFor("MSI MPG CORELIQUID", err)
		printResult(r)
		return cli.Exit("", device.Results{r}.Code())
	}
	return nil
}

func dumpAction(ctx context.Context) error {
	ctl, err := control.New()
	if err != nil {
		return cli.Exit(err.Error(), device.ExitFailure)
	}
	feature, err := ctl.Dump(ctx)
	if err != nil {
		r := control.ResultFor("MSI MPG CORELIQUID", err)
		printResult(r)
		return cli.Exit("", device.Results{r}.Code())
	}

	fmt.Printf("feature report 0x%02x (%d bytes):\n", feature[0], len(feature))
	for off := 0; off < len(feature); off += 16 {
		end := off + 16
		if end > len(feature) {
			end = len(feature)
		}
		fmt.Printf("%04x: ", off)
		for _, b := range feature[off:end] {
			fmt.Printf("%02x ", b)
		}
		fmt.Println()
	}
	return nil
}

func reportResults(results device.Results) error {
	for _, r := range results {
		printResult(r)
	}
	fmt.Printf("summary: %s\n", results.Summary())
	if code := results.Code(); code != device.ExitOK {
		return cli.Exit("", code)
	}
	return nil
}

func printResult(r device.Result) {
	fmt.Println(renderResult(r))
}

func renderResult(r device.Result) string {
	switch r.Outcome {
	case device.Applied, device.NotFound:
		return fmt.Sprintf("  %s: %s", r.Name, r.Outcome)
	case device.PermissionDenied:
		return fmt.Sprintf("  %s: %s (retry with elevated privileges): %v", r.Name, r.Outcome, r.Err)
	default:
		return fmt.Sprintf("  %s: %s: %v", r.Name, r.Outcome, r.Err)
	}
}
