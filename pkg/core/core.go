package core

import (
	"context"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

// ProbeSession is the subset of a commander session a chip adapter needs.
// Both *jlink.Session and *jlink.SimSession satisfy it.
type ProbeSession interface {
	RunCommands(ctx context.Context, commands []string) (string, error)
	ReadReg32(ctx context.Context, addr uint32) (uint32, error)
}

var (
	_ ProbeSession = (*jlink.Session)(nil)
	_ ProbeSession = (*jlink.SimSession)(nil)
)

// SessionOpener creates a probe session for a chip family's fixed parameters.
type SessionOpener func(params jlink.Params) (ProbeSession, error)

// Core is implemented by every supported microcontroller family.
type Core interface {
	// Wipe mass-erases the flash memory of the device.
	Wipe(ctx context.Context) error
	// Program erases the device and loads each hex file in order.
	Program(ctx context.Context, hexFiles []string) error
	// DetectSeggerDeviceID returns the J-Link -device name for the attached chip.
	DetectSeggerDeviceID(ctx context.Context) (string, error)
	// Info identifies the attached chip.
	Info(ctx context.Context) (Info, error)
	// IsConnected reports whether the probe found the expected CPU core.
	IsConnected(ctx context.Context) (bool, error)
}

// Info is the identification result printed by the info command.
type Info struct {
	ChipName string
	SeggerID string
}

// Lines returns the two console lines: chip name first, then Segger ID.
func (i Info) Lines() []string {
	return []string{
		"Device ID : " + i.ChipName,
		"Segger ID : " + i.SeggerID,
	}
}

// Fprint writes Lines to w, one per line.
func (i Info) Fprint(w io.Writer) error {
	for _, line := range i.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatHex renders a register value as an 8-digit uppercase hex literal.
func FormatHex(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
