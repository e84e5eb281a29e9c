// Package ines decodes cartridge images in the classic iNES format.
//
// The package never performs I/O: callers read the whole file and hand
// the buffer to Parse, or to DecodeHeader and ExtractBanks separately.
package ines

import "fmt"

// Cartridge is a fully decoded iNES image.
type Cartridge struct {
	Header
	Image
}

// Parse decodes data with the default Decoder.
func Parse(data []byte) (*Cartridge, error) {
	return Decoder{}.Parse(data)
}

// Parse decodes the header and extracts the banks from data.
func (d Decoder) Parse(data []byte) (*Cartridge, error) {
	h, err := d.DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	img, err := ExtractBanks(data, h)
	if err != nil {
		return nil, err
	}
	return &Cartridge{h, img}, nil
}

// Layout returns the section offsets of the cartridge.
func (c *Cartridge) Layout() Layout {
	return NewLayout(c.Header)
}

// PRGBank returns the i-th 16 KiB PRG ROM bank.
func (c *Cartridge) PRGBank(i int) ([]byte, error) {
	return bank(c.PRGROM, PRGBankSize, i)
}

// CHRBank returns the i-th 8 KiB CHR ROM bank.
func (c *Cartridge) CHRBank(i int) ([]byte, error) {
	return bank(c.CHRROM, CHRBankSize, i)
}

func bank(rom []byte, size int, i int) ([]byte, error) {
	n := len(rom) / size
	if i < 0 || i >= n {
		return nil, fmt.Errorf("bank %d out of range, the cartridge has %d banks of %d bytes", i, n, size)
	}
	l := i * size
	r := l + size
	return rom[l:r:r], nil
}
