package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/shinypb/parsenes/ines"
)

const (
	tileSize         = 8
	tileBytes        = 16 // two bit planes of 8 bytes each
	tilesPerRow      = 16
	patternTableSize = 0x1000
	// Two pattern tables side by side.
	patternWidth  = 2 * tilesPerRow * tileSize
	patternHeight = tilesPerRow * tileSize
)

// Greys from the NES palette: $0D, $00, $10, $20.
var greys = [4]color.RGBA{
	{0x00, 0x00, 0x00, 255},
	{0x6D, 0x6D, 0x6D, 255},
	{0xB6, 0xB6, 0xB6, 255},
	{0xFF, 0xFF, 0xFF, 255},
}

// PatternTables renders an 8 KiB CHR bank as a 256px x 128px image, the
// $0000 table on the left and the $1000 table on the right.
// Reference: https://www.nesdev.org/wiki/PPU_pattern_tables
func PatternTables(bank []byte) (*image.RGBA, error) {
	if len(bank) != ines.CHRBankSize {
		return nil, fmt.Errorf("CHR bank must be %d bytes, got %d", ines.CHRBankSize, len(bank))
	}
	img := image.NewRGBA(image.Rect(0, 0, patternWidth, patternHeight))
	for table := 0; table < 2; table++ {
		base := table * patternTableSize
		for tile := 0; tile < tilesPerRow*tilesPerRow; tile++ {
			x0 := table*tilesPerRow*tileSize + (tile%tilesPerRow)*tileSize
			y0 := (tile / tilesPerRow) * tileSize
			drawTile(img, bank[base+tile*tileBytes:base+(tile+1)*tileBytes], x0, y0)
		}
	}
	return img, nil
}

func drawTile(img *image.RGBA, tile []byte, x0, y0 int) {
	for y := 0; y < tileSize; y++ {
		lo := tile[y]
		hi := tile[y+tileSize]
		for x := 0; x < tileSize; x++ {
			// bit 7 is the leftmost pixel
			shift := 7 - x
			v := (lo>>shift)&1 | ((hi>>shift)&1)<<1
			img.SetRGBA(x0+x, y0+y, greys[v])
		}
	}
}

// bankImage renders the i-th CHR bank of c.
func bankImage(c *ines.Cartridge, i int) (*image.RGBA, error) {
	bank, err := c.CHRBank(i)
	if err != nil {
		return nil, err
	}
	return PatternTables(bank)
}
