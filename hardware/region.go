package hardware

// Region is the region lock of a game
type Region uint8

// These are the region codes
const (
	Normal Region = 0x00
	Korea  Region = 0x40
	China  Region = 0x80
)

func (r Region) String() string {
	strings := map[Region]string{
		Normal: "Normal",
		Korea:  "Korea",
		China:  "China",
	}

	if s, ok := strings[r]; ok {
		return s
	}

	return "Unknown"
}
