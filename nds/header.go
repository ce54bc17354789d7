/*
Package nds implements a decoder for the header found at the start of every
Nintendo DS cartridge image.

The header is the first 16384 bytes of the image. It names the game, describes
the cartridge hardware and locates the ARM9 and ARM7 binaries, the file name
and file allocation tables and the overlay tables within the rest of the
image. All multi-byte values are little-endian.
*/
package nds

import (
	"bytes"
	"fmt"
)

const (
	// Extension is the conventional file extension used
	Extension = ".nds"
	// Size is the exact size of the header region
	Size int64 = 16384
)

const (
	// TitleLength is the length of the game title, it is padded with spaces or zeroes
	TitleLength int = 12
	// CodeLength is the length of the game code
	CodeLength int = 4
	// MakerLength is the length of the maker code
	MakerLength int = 2
	// LogoLength is the length of the compressed logo bitmap
	LogoLength int = 0x9c
)

// Binary describes where one of the two executable images is stored within
// the ROM and where it is loaded to and started from in memory
type Binary struct {
	Offset uint32
	Entry  uint32
	Load   uint32
	Length uint32
}

// Table locates a table within the ROM
type Table struct {
	Offset uint32
	Length uint32
}

// Header represents the first 16384 bytes of a .nds file. Text fields hold
// the raw bytes including any padding
type Header struct {
	GameTitle      [TitleLength]byte
	GameCode       [CodeLength]byte
	MakerCode      [MakerLength]byte
	UnitCode       uint8
	DeviceType     uint8
	DeviceCapacity uint8
	RegionCode     uint8
	Version        uint8
	InternalFlags  uint8

	ARM9 Binary
	ARM7 Binary

	FNT         Table
	FAT         Table
	ARM9Overlay Table
	ARM7Overlay Table

	PortNormal uint32
	PortKEY1   uint32

	BannerOffset uint32

	SecureChecksum uint16
	SecureTimeout  uint16

	ARM9AutoLoad uint32
	ARM7AutoLoad uint32

	SecureDisable uint64

	TotalSize  uint32
	HeaderSize uint32

	ARM9AutoParam uint32
	ARM7AutoParam uint32

	Logo            [LogoLength]byte
	NintendoLogoCRC uint16
	HeaderCRC       uint16
}

func trim(b []byte) string {
	return string(bytes.TrimRight(b, "\x00 "))
}

// Title returns the game title with any padding removed
func (h Header) Title() string {
	return trim(h.GameTitle[:])
}

// Code returns the game code with any padding removed
func (h Header) Code() string {
	return trim(h.GameCode[:])
}

// Maker returns the maker code with any padding removed
func (h Header) Maker() string {
	return trim(h.MakerCode[:])
}

func (h Header) String() string {
	return fmt.Sprintf("%s, %s, %s, %d", h.Title(), h.Code(), h.Maker(), h.Version)
}

// UnmarshalBinary decodes the header from binary form. The receiver is left
// untouched if b cannot be decoded
func (h *Header) UnmarshalBinary(b []byte) error {
	header, err := Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}

	*h = *header

	return nil
}
