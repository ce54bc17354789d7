// Package hardware interprets the hardware related codes found in a Nintendo
// DS header
package hardware

// Unit is the hardware a game is intended to run on
type Unit uint8

// These are the unit codes used by released games
const (
	NDS     Unit = 0x00
	NDSDSi  Unit = 0x02
	DSiOnly Unit = 0x03
)

func (u Unit) String() string {
	strings := map[Unit]string{
		NDS:     "NDS",
		NDSDSi:  "NDS+DSi",
		DSiOnly: "DSi",
	}

	if s, ok := strings[u]; ok {
		return s
	}

	return "Unknown"
}
