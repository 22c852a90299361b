// Package coreliquid builds the HID reports for the MSI MPG CORELIQUID AIO
// cooler: LED/LCD shutdown, fan mode selection and the CPU status frames
// its smart fan mode feeds on. Report layouts follow the controller's
// feature-report format as captured from the vendor tooling.
package coreliquid

const (
	VendorID  uint16 = 0x0DB0
	ProductID uint16 = 0xB130

	// Feature report carrying the per-zone LED configuration.
	FeatureReportID  byte = 0x52
	FeatureReportLen      = 185

	// Output reports are 64 bytes plus the leading command prefix byte.
	ReportLen = 65

	cmdPrefix     byte = 0xD0
	cmdLCDDisable byte = 0x7F
	cmdFanMode1   byte = 0x40
	cmdFanMode2   byte = 0x41
	cmdCPUStatus  byte = 0x85

	ledModeDisable byte = 0x00
)

// ledOffsets are the mode byte positions of every LED zone inside the
// feature report.
var ledOffsets = []int{
	1, 11, 21, 31, 42, 53, 74, 84, 94, 104, 114, 124, 134, 144, 154, 164, 174,
}

// fanModeOffsets are the positions the fan mode byte is mirrored to in the
// 0x40/0x41 command buffers.
var fanModeOffsets = []int{2, 10, 18, 26, 34}

// FeatureRequest returns the buffer to pass to a feature-report read for
// the LED configuration.
func FeatureRequest() []byte {
	buf := make([]byte, FeatureReportLen)
	buf[0] = FeatureReportID
	return buf
}

// DisableLEDs takes the device's current feature report and returns a copy
// with every LED zone's mode set to disabled. The rest of the report is
// preserved; the controller rejects wholesale rewrites of unrelated zones.
func DisableLEDs(feature []byte) []byte {
	buf := make([]byte, FeatureReportLen)
	copy(buf, feature)
	buf[0] = FeatureReportID
	for _, off := range ledOffsets {
		buf[off] = ledModeDisable
	}
	return buf
}

// DisableLCD returns the output report that blanks the cooler's display.
func DisableLCD() []byte {
	buf := make([]byte, ReportLen)
	buf[0] = cmdPrefix
	buf[1] = cmdLCDDisable
	return buf
}

// FanModeReports returns the two command reports (0x40 then 0x41) that set
// the pump/fan profile. Both must be written, in order.
func FanModeReports(mode FanMode) [2][]byte {
	var out [2][]byte
	for i, cmd := range []byte{cmdFanMode1, cmdFanMode2} {
		buf := make([]byte, ReportLen)
		buf[0] = cmdPrefix
		buf[1] = cmd
		for _, off := range fanModeOffsets {
			buf[off] = byte(mode)
		}
		out[i] = buf
	}
	return out
}

// CPUStatus returns the report feeding the cooler the CPU temperature (and
// a nominal frequency; the firmware ignores it). Both fields little-endian.
func CPUStatus(tempC int) []byte {
	const nominalFreqMHz = 3000

	buf := make([]byte, ReportLen)
	buf[0] = cmdPrefix
	buf[1] = cmdCPUStatus
	buf[2] = byte(nominalFreqMHz & 0xFF)
	buf[3] = byte(nominalFreqMHz >> 8)
	buf[4] = byte(tempC & 0xFF)
	buf[5] = byte(tempC >> 8)
	return buf
}
