// Package enesmbus encodes the SMBus register writes that switch an ENE
// RGB controller (as found on ASUS TUF GPUs) to its off mode. The
// controller exposes 16-bit registers behind a two-step protocol: a word
// write selecting the register address, then a byte write carrying the
// value.
package enesmbus

const (
	// Slave address of the controller on the GPU's OEM I2C bus.
	Addr uint16 = 0x67

	regMode  uint16 = 0x8021
	regApply uint16 = 0x80A0

	modeOff  byte = 0x00
	applyVal byte = 0x01

	cmdAddr byte = 0x00 // register address selector (word write)
	cmdData byte = 0x01 // data (byte write)
)

// Write is one SMBus transfer. Word writes have Word set; byte writes use
// Byte.
type Write struct {
	Cmd    byte
	Word   uint16
	Byte   byte
	IsWord bool
}

// Len is the on-wire size of the transfer (command byte plus data).
func (w Write) Len() int {
	if w.IsWord {
		return 3
	}
	return 2
}

// SwapBytes converts a register address to the little-endian order the
// controller expects on the bus.
func SwapBytes(v uint16) uint16 {
	return (v&0xFF)<<8 | v>>8
}

// OffSequence returns the transfers that set the LED mode to off and apply
// it, in order. All four must succeed.
func OffSequence() []Write {
	return []Write{
		{Cmd: cmdAddr, Word: SwapBytes(regMode), IsWord: true},
		{Cmd: cmdData, Byte: modeOff},
		{Cmd: cmdAddr, Word: SwapBytes(regApply), IsWord: true},
		{Cmd: cmdData, Byte: applyVal},
	}
}
