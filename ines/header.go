package ines

import "fmt"

// iNES: https://www.nesdev.org/wiki/INES
// Reference: http://fms.komkon.org/EMUL8/NES.html

const (
	HeaderSize   int  = 16     // The classic iNES header has 16 bytes
	TrainerSize  int  = 0x200  // 512 bytes
	PRGBankSize  int  = 0x4000 // 16 KiB
	CHRBankSize  int  = 0x2000 // 8 KiB
	msDOSEOF     byte = 0x1A
	legacyFlags6 byte = 0b11
)

var magic = [4]byte{'N', 'E', 'S', msDOSEOF}

type Mirroring int

const (
	Horizontal Mirroring = iota
	Vertical
)

func (m Mirroring) String() string {
	if m == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type Region int

const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	if r == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Header is a decoded iNES header. The zero value is never returned alongside a nil error.
type Header struct {
	PRGBanks       uint8 // 16 KiB units
	CHRBanks       uint8 // 8 KiB units
	Mirroring      Mirroring
	HasBattery     bool
	HasTrainer     bool
	FourScreenVRAM bool
	IsVSSystem     bool
	Mapper         uint8
	RAMBanks       uint8 // 8 KiB units, at least 1
	Region         Region
}

// Decoder decodes iNES images.
//
// LegacyTrainerBit tests flags 6 bits 0-1 (byte6 & 0b11) for the trainer
// instead of bit 2.
type Decoder struct {
	LegacyTrainerBit bool
}

// DecodeHeader decodes the first 16 bytes of data with the default Decoder.
func DecodeHeader(data []byte) (Header, error) {
	return Decoder{}.DecodeHeader(data)
}

// DecodeHeader validates and decodes the first 16 bytes of data.
func (d Decoder) DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, newTruncated(len(data), HeaderSize)
	}
	for i, b := range magic {
		if data[i] != b {
			return Header{}, &FormatError{Kind: InvalidMagic, Offset: i}
		}
	}

	// https://www.nesdev.org/wiki/INES#Flags_7
	flags7 := data[7]
	if flags7&0x0E != 0 {
		return Header{}, &FormatError{Kind: ReservedBitsSet, Offset: 7}
	}
	// https://www.nesdev.org/wiki/INES#Flags_9
	flags9 := data[9]
	if flags9&0xFE != 0 {
		return Header{}, &FormatError{Kind: ReservedBitsSet, Offset: 9}
	}
	var sum int
	for _, b := range data[10:HeaderSize] {
		sum += int(b)
	}
	if sum != 0 {
		return Header{}, &FormatError{Kind: ReservedBitsSet, Offset: 10}
	}

	// https://www.nesdev.org/wiki/INES#Flags_6
	flags6 := data[6]
	h := Header{
		PRGBanks:       data[4],
		CHRBanks:       data[5],
		Mirroring:      Mirroring(flags6 & 1),
		HasBattery:     flags6&(1<<1) != 0,
		HasTrainer:     flags6&(1<<2) != 0,
		FourScreenVRAM: flags6&(1<<3) != 0,
		IsVSSystem:     flags7&1 != 0,
		Mapper:         flags7&0xF0 | flags6>>4,
		RAMBanks:       data[8],
		Region:         Region(flags9 & 1),
	}
	if d.LegacyTrainerBit {
		h.HasTrainer = flags6&legacyFlags6 != 0
	}
	// Older images leave byte 8 empty; assume one 8 KiB RAM bank.
	if h.RAMBanks == 0 {
		h.RAMBanks = 1
	}
	return h, nil
}

// Encode encodes the header back to its 16-byte form. Reserved bits are always zero.
func (h Header) Encode() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[:], magic[:])
	b[4] = h.PRGBanks
	b[5] = h.CHRBanks
	b[6] = (h.Mapper&0x0F)<<4 | byte(h.Mirroring&1)
	if h.HasBattery {
		b[6] |= 1 << 1
	}
	if h.HasTrainer {
		b[6] |= 1 << 2
	}
	if h.FourScreenVRAM {
		b[6] |= 1 << 3
	}
	b[7] = h.Mapper & 0xF0
	if h.IsVSSystem {
		b[7] |= 1
	}
	b[8] = h.RAMBanks
	b[9] = byte(h.Region & 1)
	return b
}

// Size is the total image size in bytes the header declares.
func (h Header) Size() int {
	return NewLayout(h).End
}

func (h Header) String() string {
	return fmt.Sprintf("mapper=%d prg=%dx16KiB chr=%dx8KiB ram=%dx8KiB mirroring=%s battery=%t trainer=%t four-screen=%t vs=%t region=%s",
		h.Mapper, h.PRGBanks, h.CHRBanks, h.RAMBanks, h.Mirroring, h.HasBattery, h.HasTrainer, h.FourScreenVRAM, h.IsVSSystem, h.Region)
}
