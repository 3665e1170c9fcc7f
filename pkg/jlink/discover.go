package jlink

import (
	"context"
	"fmt"

	"github.com/google/gousb"
)

// VendorIDSegger is the USB vendor ID assigned to SEGGER Microcontroller.
const VendorIDSegger uint16 = 0x1366

// ProbeInfo describes a J-Link probe found on the USB bus.
type ProbeInfo struct {
	Description string
	VendorID    uint16
	ProductID   uint16
	Bus         int
	Address     int
}

// Label returns a user-friendly description for the probe.
func (p ProbeInfo) Label() string {
	if p.Description != "" {
		return p.Description
	}
	return fmt.Sprintf("SEGGER J-Link (%04X:%04X)", p.VendorID, p.ProductID)
}

// DiscoverProbes enumerates attached SEGGER USB devices. Devices are only
// classified from their descriptors, none are opened.
func DiscoverProbes(ctx context.Context) ([]ProbeInfo, error) {
	var results []ProbeInfo
	usb := gousb.NewContext()
	defer usb.Close()

	_, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if info, ok := classifyUSBDevice(desc); ok {
			results = append(results, info)
		}
		return false
	})
	if err != nil && err != gousb.ErrorAccess {
		return results, err
	}
	return results, nil
}

func classifyUSBDevice(desc *gousb.DeviceDesc) (ProbeInfo, bool) {
	if uint16(desc.Vendor) != VendorIDSegger {
		return ProbeInfo{}, false
	}
	info := ProbeInfo{
		VendorID:  uint16(desc.Vendor),
		ProductID: uint16(desc.Product),
		Bus:       desc.Bus,
		Address:   desc.Address,
	}
	info.Description = productDescription(info.ProductID)
	return info, true
}

func productDescription(pid uint16) string {
	if d, ok := knownJLinkPIDs[pid]; ok {
		return d
	}
	return ""
}

var knownJLinkPIDs = map[uint16]string{
	0x0101: "SEGGER J-Link",
	0x0102: "SEGGER J-Link (USB address 1)",
	0x0103: "SEGGER J-Link (USB address 2)",
	0x0104: "SEGGER J-Link (USB address 3)",
	0x0105: "SEGGER J-Link OB",
	0x0107: "SEGGER J-Link (WinUSB)",
	0x1015: "SEGGER J-Link (CDC + MSD)",
	0x1020: "SEGGER J-Link (CDC)",
	0x1024: "SEGGER J-Link (CDC + MSD + WinUSB)",
	0x1051: "SEGGER J-Link (CDC + WinUSB)",
}
