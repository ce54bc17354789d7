package catalog

import (
	"path/filepath"
	"testing"

	"github.com/bodgit/nds/nds"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeader(title, code string, version uint8) *nds.Header {
	h := new(nds.Header)
	copy(h.GameTitle[:], title)
	copy(h.GameCode[:], code)
	copy(h.MakerCode[:], "01")
	h.Version = version
	h.UnitCode = 0x02
	h.RegionCode = 0x40
	h.DeviceCapacity = 0x09
	h.TotalSize = 0x0086b840
	h.HeaderCRC = 0x8a1b
	return h
}

func newCatalog(t *testing.T) *Catalog {
	c, err := NewCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.Nil(t, err)
	t.Cleanup(func() {
		c.Close()
	})
	return c
}

func TestNewCatalog(t *testing.T) {
	_, err := NewCatalog("")
	assert.NotNil(t, err)
}

func TestAdd(t *testing.T) {
	c := newCatalog(t)

	id, err := c.Add(newHeader("TESTGAME", "ATGE", 0))
	require.Nil(t, err)

	entries, err := c.FindByCode("ATGE")
	require.Nil(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, Entry{
		ID:        id,
		Code:      "ATGE",
		Version:   0,
		Title:     "TESTGAME",
		Maker:     "01",
		Unit:      0x02,
		Region:    0x40,
		Capacity:  0x09,
		TotalSize: 0x0086b840,
		HeaderCRC: 0x8a1b,
	}, entries[0])
}

func TestAddReplace(t *testing.T) {
	c := newCatalog(t)

	id1, err := c.Add(newHeader("TESTGAME", "ATGE", 0))
	require.Nil(t, err)

	id2, err := c.Add(newHeader("RENAMED", "ATGE", 0))
	require.Nil(t, err)
	assert.Equal(t, id1, id2)

	id3, err := c.Add(newHeader("TESTGAME", "ATGE", 1))
	require.Nil(t, err)
	assert.NotEqual(t, id1, id3)

	entries, err := c.FindByCode("ATGE")
	require.Nil(t, err)
	assert.Equal(t, []string{"RENAMED", "TESTGAME"}, lo.Map(entries, func(e Entry, _ int) string {
		return e.Title
	}))
}

func TestList(t *testing.T) {
	c := newCatalog(t)

	for _, code := range []string{"BXYZ", "AAAA", "CPUE"} {
		_, err := c.Add(newHeader("GAME", code, 0))
		require.Nil(t, err)
	}

	entries, err := c.List()
	require.Nil(t, err)
	assert.Equal(t, []string{"AAAA", "BXYZ", "CPUE"}, lo.Map(entries, func(e Entry, _ int) string {
		return e.Code
	}))

	entries, err = c.FindByCode("ZZZZ")
	require.Nil(t, err)
	assert.Len(t, entries, 0)
}
