// Package lpc824 drives NXP LPC81x/LPC82x parts through J-Link Commander.
package lpc824

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/core"
	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

// DeviceIDRegister is the SYSCON DEVICE_ID register.
const DeviceIDRegister uint32 = 0x400483F8

// ConnectedBanner is printed by the commander once it has attached to the
// LPC8xx CPU.
const ConnectedBanner = "Info: Found Cortex-M0 r0p0, Little endian."

// UnknownDevice is returned by DetectSeggerDeviceID for unmapped IDs.
const UnknownDevice = "Unknown!"

// Params are the commander parameters every LPC824 session uses.
var Params = jlink.Params{
	Device:    "LPC824M201",
	Interface: jlink.InterfaceSWD,
	SpeedKHz:  1000,
}

func init() {
	core.Register(core.Descriptor{
		Name:            "lpc824",
		Description:     "NXP LPC81x/LPC82x (Cortex-M0+) over SWD",
		Params:          Params,
		IDRegister:      DeviceIDRegister,
		ConnectedBanner: ConnectedBanner,
		New: func(open core.SessionOpener) (core.Core, error) {
			c, err := New(open)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}

// LPC824 implements core.Core.
type LPC824 struct {
	session core.ProbeSession
}

var _ core.Core = (*LPC824)(nil)

// New opens a probe session with Params.
func New(open core.SessionOpener) (*LPC824, error) {
	session, err := open(Params)
	if err != nil {
		return nil, err
	}
	return &LPC824{session: session}, nil
}

// Wipe erases flash, resets the core and quits.
func (c *LPC824) Wipe(ctx context.Context) error {
	commands := []string{
		"erase", // NVIC erase enabled
		"r",     // reset
		"q",     // quit
	}
	_, err := c.session.RunCommands(ctx, commands)
	return err
}

// Program erases flash, loads every hex file in order, then resets and runs
// the MCU. Paths are made absolute since the commander resolves them against
// its own working directory.
func (c *LPC824) Program(ctx context.Context, hexFiles []string) error {
	commands, err := programCommands(hexFiles)
	if err != nil {
		return err
	}
	_, err = c.session.RunCommands(ctx, commands)
	return err
}

func programCommands(hexFiles []string) ([]string, error) {
	commands := make([]string, 0, len(hexFiles)+4)
	commands = append(commands, "erase")
	for _, f := range hexFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}
		commands = append(commands, fmt.Sprintf("loadfile \"%s\"", abs))
	}
	commands = append(commands,
		"r", // reset
		"g", // run the MCU
		"q", // quit
	)
	return commands, nil
}

// DetectSeggerDeviceID maps DEVICE_ID to a J-Link device name. Unmapped IDs
// yield UnknownDevice rather than the raw value.
func (c *LPC824) DetectSeggerDeviceID(ctx context.Context) (string, error) {
	id, err := c.session.ReadReg32(ctx, DeviceIDRegister)
	if err != nil {
		return "", err
	}
	name, ok := SeggerName(id)
	if !ok {
		name = core.FormatHex(id)
	}
	if strings.Contains(name, "0x") {
		return UnknownDevice, nil
	}
	return name, nil
}

// Info reads DEVICE_ID for the part name, falling back to the hex value, and
// then runs DetectSeggerDeviceID, which reads the register again.
func (c *LPC824) Info(ctx context.Context) (core.Info, error) {
	id, err := c.session.ReadReg32(ctx, DeviceIDRegister)
	if err != nil {
		return core.Info{}, err
	}
	name, ok := ChipName(id)
	if !ok {
		name = core.FormatHex(id)
	}
	segger, err := c.DetectSeggerDeviceID(ctx)
	if err != nil {
		return core.Info{}, err
	}
	return core.Info{ChipName: name, SeggerID: segger}, nil
}

// IsConnected runs a quit-only script, which still makes the commander attach
// and print its banner, and looks for ConnectedBanner in the output.
func (c *LPC824) IsConnected(ctx context.Context) (bool, error) {
	output, err := c.session.RunCommands(ctx, []string{"q"})
	if err != nil {
		return false, err
	}
	return strings.Contains(output, ConnectedBanner), nil
}
