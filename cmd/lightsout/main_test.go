package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"lightsout/internal/device"
)

func TestUnknownCommand(t *testing.T) {
	// An unrecognized verb must exit with the usage code before any
	// transport is opened; the action for a known verb never runs.
	exitCode := -1
	prevExiter := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = prevExiter }()

	var errOut strings.Builder
	app := newApp(context.Background())
	app.Writer = io.Discard
	app.ErrWriter = &errOut

	if err := app.Run([]string{"lightsout", "blink"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if exitCode != device.ExitUsage {
		t.Fatalf("exit code = %d, want %d", exitCode, device.ExitUsage)
	}
	if !strings.Contains(errOut.String(), "unknown command: blink") {
		t.Fatalf("stderr misses the unknown command message: %q", errOut.String())
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name string
		r    device.Result
		want string
	}{
		{
			name: "applied",
			r:    device.Result{Name: "MSI MPG CORELIQUID", Outcome: device.Applied},
			want: "  MSI MPG CORELIQUID: applied",
		},
		{
			name: "not found",
			r:    device.Result{Name: "LianLi UNI FAN AL v2", Outcome: device.NotFound},
			want: "  LianLi UNI FAN AL v2: not found",
		},
		{
			name: "transport error carries detail",
			r: device.Result{
				Name:    "ASUS TUF GPU",
				Outcome: device.TransportError,
				Err:     errors.New("gpu register write: i/o error"),
			},
			want: "  ASUS TUF GPU: error: gpu register write: i/o error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderResult(tt.r); got != tt.want {
				t.Fatalf("renderResult = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderResultPermissionHint(t *testing.T) {
	r := device.Result{
		Name:    "MSI MPG CORELIQUID",
		Outcome: device.PermissionDenied,
		Err:     errors.New("open /dev/hidraw3: permission denied"),
	}
	got := renderResult(r)
	if !strings.Contains(got, "elevated privileges") {
		t.Fatalf("permission result misses the elevation hint: %q", got)
	}
}
