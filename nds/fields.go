package nds

import "encoding/binary"

// Kind is how the bytes of a field are interpreted
type Kind int

// These are the supported field kinds
const (
	Text Kind = iota
	Bytes
	Uint8
	Uint16
	Uint32
	Uint64
)

func (k Kind) String() string {
	strings := map[Kind]string{
		Text:   "text",
		Bytes:  "bytes",
		Uint8:  "u8",
		Uint16: "u16",
		Uint32: "u32",
		Uint64: "u64",
	}

	return strings[k]
}

// Field describes the location of a single header field
type Field struct {
	Name   string
	Offset int64
	Width  int
	Kind   Kind
}

type decodeFunc func(*Header, []byte) interface{}

type fieldDecoder struct {
	Field
	decode decodeFunc
}

func text(f func(*Header) []byte) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		dst := f(h)
		copy(dst, b)
		return string(dst)
	}
}

func raw(f func(*Header) []byte) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		dst := f(h)
		copy(dst, b)
		return append([]byte(nil), dst...)
	}
}

func u8(f func(*Header) *uint8) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		p := f(h)
		*p = b[0]
		return *p
	}
}

func u16(f func(*Header) *uint16) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		p := f(h)
		*p = binary.LittleEndian.Uint16(b)
		return *p
	}
}

func u32(f func(*Header) *uint32) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		p := f(h)
		*p = binary.LittleEndian.Uint32(b)
		return *p
	}
}

func u64(f func(*Header) *uint64) decodeFunc {
	return func(h *Header, b []byte) interface{} {
		p := f(h)
		*p = binary.LittleEndian.Uint64(b)
		return *p
	}
}

// Offsets 0x15-0x1c, 0x90-0xbf and everything from 0x160 are reserved
var fields = []fieldDecoder{
	{Field{"GameTitle", 0x000, TitleLength, Text}, text(func(h *Header) []byte { return h.GameTitle[:] })},
	{Field{"GameCode", 0x00c, CodeLength, Text}, text(func(h *Header) []byte { return h.GameCode[:] })},
	{Field{"MakerCode", 0x010, MakerLength, Text}, text(func(h *Header) []byte { return h.MakerCode[:] })},
	{Field{"UnitCode", 0x012, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.UnitCode })},
	{Field{"DeviceType", 0x013, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.DeviceType })},
	{Field{"DeviceCapacity", 0x014, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.DeviceCapacity })},
	{Field{"RegionCode", 0x01d, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.RegionCode })},
	{Field{"Version", 0x01e, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.Version })},
	{Field{"InternalFlags", 0x01f, 1, Uint8}, u8(func(h *Header) *uint8 { return &h.InternalFlags })},

	{Field{"ARM9Offset", 0x020, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9.Offset })},
	{Field{"ARM9Entry", 0x024, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9.Entry })},
	{Field{"ARM9Load", 0x028, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9.Load })},
	{Field{"ARM9Length", 0x02c, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9.Length })},
	{Field{"ARM7Offset", 0x030, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7.Offset })},
	{Field{"ARM7Entry", 0x034, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7.Entry })},
	{Field{"ARM7Load", 0x038, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7.Load })},
	{Field{"ARM7Length", 0x03c, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7.Length })},

	{Field{"FNTOffset", 0x040, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.FNT.Offset })},
	{Field{"FNTLength", 0x044, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.FNT.Length })},
	{Field{"FATOffset", 0x048, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.FAT.Offset })},
	{Field{"FATLength", 0x04c, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.FAT.Length })},
	{Field{"ARM9OverlayOffset", 0x050, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9Overlay.Offset })},
	{Field{"ARM9OverlayLength", 0x054, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9Overlay.Length })},
	{Field{"ARM7OverlayOffset", 0x058, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7Overlay.Offset })},
	{Field{"ARM7OverlayLength", 0x05c, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7Overlay.Length })},

	{Field{"PortNormal", 0x060, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.PortNormal })},
	{Field{"PortKEY1", 0x064, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.PortKEY1 })},
	{Field{"BannerOffset", 0x068, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.BannerOffset })},
	{Field{"SecureChecksum", 0x06c, 2, Uint16}, u16(func(h *Header) *uint16 { return &h.SecureChecksum })},
	{Field{"SecureTimeout", 0x06e, 2, Uint16}, u16(func(h *Header) *uint16 { return &h.SecureTimeout })},
	{Field{"ARM9AutoLoad", 0x070, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9AutoLoad })},
	{Field{"ARM7AutoLoad", 0x074, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7AutoLoad })},
	{Field{"SecureDisable", 0x078, 8, Uint64}, u64(func(h *Header) *uint64 { return &h.SecureDisable })},
	{Field{"TotalSize", 0x080, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.TotalSize })},
	{Field{"HeaderSize", 0x084, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.HeaderSize })},
	{Field{"ARM9AutoParam", 0x088, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM9AutoParam })},
	{Field{"ARM7AutoParam", 0x08c, 4, Uint32}, u32(func(h *Header) *uint32 { return &h.ARM7AutoParam })},

	{Field{"Logo", 0x0c0, LogoLength, Bytes}, raw(func(h *Header) []byte { return h.Logo[:] })},
	{Field{"NintendoLogoCRC", 0x15c, 2, Uint16}, u16(func(h *Header) *uint16 { return &h.NintendoLogoCRC })},
	{Field{"HeaderCRC", 0x15e, 2, Uint16}, u16(func(h *Header) *uint16 { return &h.HeaderCRC })},
}

// maxWidth is the widest field in the table
const maxWidth = LogoLength

// Fields returns the layout of every decoded field in offset order
func Fields() []Field {
	layout := make([]Field, len(fields))
	for i, f := range fields {
		layout[i] = f.Field
	}
	return layout
}
