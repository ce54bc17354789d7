package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	assert.Equal(t, Unit(0), NDS)
	assert.Equal(t, Unit(3), DSiOnly)
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "NDS", Unit(0).String())
	assert.Equal(t, "NDS+DSi", Unit(2).String())
	assert.Equal(t, "DSi", Unit(3).String())
	assert.Equal(t, "Unknown", Unit(1).String())
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "Normal", Region(0x00).String())
	assert.Equal(t, "Korea", Region(0x40).String())
	assert.Equal(t, "China", Region(0x80).String())
	assert.Equal(t, "Unknown", Region(0xff).String())
}

func TestCapacity(t *testing.T) {
	tables := []struct {
		class uint8
		size  uint64
	}{
		{0x00, 128 << 10},
		{0x06, 8 << 20},
		{0x09, 64 << 20},
		{0x0a, 128 << 20},
		{0x0f, 4 << 30},
		{0x10, 0},
	}

	for _, table := range tables {
		assert.Equal(t, table.size, Capacity(table.class))
	}
}
