package hardware

const minCapacity = 128 << 10

// MaxCapacityClass is the largest defined device capacity class, 32 gigabits
const MaxCapacityClass = 0x0f

// Capacity returns the size in bytes of a cartridge of the given device
// capacity class. Classes 0x0-0x9 cover 1 to 512 megabits and 0xa-0xf
// cover 1 to 32 gigabits. Undefined classes return 0
func Capacity(class uint8) uint64 {
	if class > MaxCapacityClass {
		return 0
	}
	return minCapacity << class
}
