package jlink

import (
	"fmt"
	"strconv"
)

// Interface names accepted by J-Link Commander's -if flag.
const (
	InterfaceSWD  = "swd"
	InterfaceJTAG = "jtag"
)

// Params selects the target device, debug interface and clock for a session.
// For a list of known device names see
// https://www.segger.com/jlink_supported_devices.html
type Params struct {
	Device    string
	Interface string
	SpeedKHz  int
}

// Args returns the parameters as J-Link Commander arguments.
func (p Params) Args() []string {
	return []string{
		"-device", p.Device,
		"-if", p.Interface,
		"-speed", strconv.Itoa(p.SpeedKHz),
	}
}

// String renders the parameters the way they appear on the command line.
func (p Params) String() string {
	return fmt.Sprintf("-device %s -if %s -speed %d", p.Device, p.Interface, p.SpeedKHz)
}

// Validate reports missing or nonsensical fields.
func (p Params) Validate() error {
	if p.Device == "" {
		return fmt.Errorf("jlink: device name is required")
	}
	switch p.Interface {
	case InterfaceSWD, InterfaceJTAG:
	default:
		return fmt.Errorf("jlink: unsupported interface %q", p.Interface)
	}
	if p.SpeedKHz <= 0 {
		return fmt.Errorf("jlink: invalid speed %dkHz", p.SpeedKHz)
	}
	return nil
}
