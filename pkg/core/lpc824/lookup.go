package lpc824

// DEVICE_ID register value to part name and J-Link -device name.
// See 'DEVICE_ID' in:
// LPC81x Series --> http://www.nxp.com/documents/user_manual/UM10601.pdf
// LPC82x Series --> http://www.nxp.com/documents/user_manual/UM10800.pdf
// Segger ID list: https://www.segger.com/jlink_supported_devices.html

var chipNames = map[uint32]string{
	0x00008100: "LPC810M021FN8",
	0x00008110: "LPC811M001JDH16",
	0x00008120: "LPC812M101JDH16",
	0x00008121: "LPC812M101JD20",
	0x00008122: "LPC812M101JDH20 or LPC812M101JTB16",
	0x00008241: "LPC824M201JHI33",
	0x00008221: "LPC822M101JHI33",
	0x00008242: "LPC824M201JDH20",
	0x00008222: "LPC822M101JDH20",
}

var seggerNames = map[uint32]string{
	0x00008100: "LPC810M021",
	0x00008110: "LPC811M001",
	0x00008120: "LPC812M101",
	0x00008121: "LPC812M101",
	0x00008122: "LPC812M101",
	0x00008241: "LPC824M201",
	0x00008221: "LPC822M101",
	0x00008242: "LPC824M201",
	0x00008222: "LPC822M101",
}

// ChipName returns the part name for a DEVICE_ID value.
func ChipName(id uint32) (string, bool) {
	name, ok := chipNames[id]
	return name, ok
}

// SeggerName returns the J-Link device name for a DEVICE_ID value.
func SeggerName(id uint32) (string, bool) {
	name, ok := seggerNames[id]
	return name, ok
}

// DeviceIDs lists every DEVICE_ID value with a known part name.
func DeviceIDs() []uint32 {
	ids := make([]uint32, 0, len(chipNames))
	for id := range chipNames {
		ids = append(ids, id)
	}
	return ids
}
