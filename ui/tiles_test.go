package ui

import (
	"testing"

	"github.com/shinypb/parsenes/ines"
)

func TestPatternTables(t *testing.T) {
	bank := make([]byte, ines.CHRBankSize)
	// Tile 1 of the left table: top row all color 1, second row all color 2,
	// third row alternates 3 and 0 starting from the left.
	bank[16+0] = 0xFF
	bank[16+8+1] = 0xFF
	bank[16+2] = 0xAA
	bank[16+8+2] = 0xAA
	// Tile 0 of the right table: bottom right pixel color 3.
	bank[0x1000+7] = 0x01
	bank[0x1000+15] = 0x01

	img, err := PatternTables(bank)
	if err != nil {
		t.Fatalf("PatternTables: %v", err)
	}
	if got := img.Rect.Size(); got.X != 256 || got.Y != 128 {
		t.Fatalf("size: got=%v, want=(256,128)", got)
	}
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{8, 0, 1},
		{15, 0, 1},
		{8, 1, 2},
		{8, 2, 3},
		{9, 2, 0},
		{15, 2, 0},
		{128 + 7, 7, 3},
		{128 + 6, 7, 0},
		{16, 0, 0},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != greys[tt.want] {
			t.Errorf("pixel (%d, %d): got=%v, want=%v", tt.x, tt.y, got, greys[tt.want])
		}
	}
}

func TestPatternTablesSize(t *testing.T) {
	if _, err := PatternTables(make([]byte, ines.CHRBankSize-1)); err == nil {
		t.Errorf("want an error for a short bank")
	}
}

func TestBankImage(t *testing.T) {
	h := ines.Header{CHRBanks: 2, RAMBanks: 1}
	enc := h.Encode()
	data := append(enc[:], make([]byte, 2*ines.CHRBankSize)...)
	data[ines.HeaderSize+ines.CHRBankSize] = 0x80
	cart, err := ines.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	img, err := bankImage(cart, 1)
	if err != nil {
		t.Fatalf("bankImage: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != greys[1] {
		t.Errorf("pixel (0, 0): got=%v, want=%v", got, greys[1])
	}
	if _, err := bankImage(cart, 2); err == nil {
		t.Errorf("bankImage(2): want error")
	}
}

func TestNextBank(t *testing.T) {
	tests := []struct {
		current, banks int
		next, prev     bool
		want           int
	}{
		{0, 4, true, false, 1},
		{3, 4, true, false, 0},
		{0, 4, false, true, 3},
		{2, 4, false, true, 1},
		{2, 4, true, true, 2},
		{2, 4, false, false, 2},
		{0, 0, true, false, 0},
	}
	for _, tt := range tests {
		if got := nextBank(tt.current, tt.banks, tt.next, tt.prev); got != tt.want {
			t.Errorf("nextBank(%d, %d, %t, %t): got=%d, want=%d", tt.current, tt.banks, tt.next, tt.prev, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got, want := title(0, 2), "parsenes - CHR bank 1/2"; got != want {
		t.Errorf("got=%q, want=%q", got, want)
	}
}
