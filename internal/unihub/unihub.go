// Package unihub builds the HID packets that extinguish a LianLi UNI FAN
// AL v2 hub. The hub drives four channels, each with separate fan-blade and
// edge LED zones; turning a zone off is an all-black color packet followed
// by a commit packet selecting static mode at zero brightness.
package unihub

const (
	VendorID  uint16 = 0x0CF2
	ProductID uint16 = 0xA104

	transactionID byte = 0xE0

	// Commit packets use the standard 65-byte report; color packets carry
	// the full per-LED payload.
	PacketLen      = 65
	ColorPacketLen = 146

	Channels = 4

	modeStatic           byte = 0x01
	speedVerySlow        byte = 0x02
	directionLeftToRight byte = 0x00
	brightnessOff        byte = 0x08 // 0%
)

// Zone selects which LED group of a channel a packet addresses.
type Zone int

const (
	ZoneFan  Zone = iota // blade LEDs, registers 0x30/0x10 + 2*channel
	ZoneEdge             // edge ring LEDs, registers 0x31/0x11 + 2*channel
)

// Packet is one write in the off sequence. Commit marks the packets whose
// failure must abort the device (color packets are best-effort).
type Packet struct {
	Data   []byte
	Commit bool
}

// ColorPacket returns an all-black color payload for one zone of one
// channel.
func ColorPacket(channel int, zone Zone) []byte {
	buf := make([]byte, ColorPacketLen)
	buf[0] = transactionID
	buf[1] = 0x30 + byte(zone) + byte(channel)*2
	// remaining bytes stay zero: black RGB for every LED
	return buf
}

// CommitPacket returns the action packet applying static black at zero
// brightness for one zone of one channel.
func CommitPacket(channel int, zone Zone) []byte {
	buf := make([]byte, PacketLen)
	buf[0] = transactionID
	buf[1] = 0x10 + byte(zone) + byte(channel)*2
	buf[2] = modeStatic
	buf[3] = speedVerySlow
	buf[4] = directionLeftToRight
	buf[5] = brightnessOff
	return buf
}

// OffSequence returns the full ordered packet sequence extinguishing every
// channel: per channel, both color packets then both commits.
func OffSequence() []Packet {
	var seq []Packet
	for ch := 0; ch < Channels; ch++ {
		seq = append(seq,
			Packet{Data: ColorPacket(ch, ZoneFan)},
			Packet{Data: ColorPacket(ch, ZoneEdge)},
			Packet{Data: CommitPacket(ch, ZoneFan), Commit: true},
			Packet{Data: CommitPacket(ch, ZoneEdge), Commit: true},
		)
	}
	return seq
}
