package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/shinypb/parsenes/ines"
)

func writeROM(t *testing.T, h ines.Header, extra int) string {
	t.Helper()
	enc := h.Encode()
	data := append(enc[:], make([]byte, h.Size()-ines.HeaderSize+extra)...)
	p := filepath.Join(t.TempDir(), "test.nes")
	if err := ioutil.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	h := ines.Header{PRGBanks: 1, CHRBanks: 1, RAMBanks: 1}
	cart, err := load(writeROM(t, h, 0), ines.Decoder{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cart.Header != h {
		t.Errorf("got=%+v, want=%+v", cart.Header, h)
	}
	if len(cart.PRGROM) != 16384 || len(cart.CHRROM) != 8192 {
		t.Errorf("got prg=%d chr=%d, want prg=16384 chr=8192", len(cart.PRGROM), len(cart.CHRROM))
	}
}

func TestLoadErrors(t *testing.T) {
	h := ines.Header{PRGBanks: 1, CHRBanks: 1, RAMBanks: 1}
	_, err := load(writeROM(t, h, 1), ines.Decoder{})
	if !errors.Is(err, ines.ErrTrailingData) {
		t.Errorf("got=%v, want=%v", err, ines.ErrTrailingData)
	}
	_, err = load(filepath.Join(t.TempDir(), "missing.nes"), ines.Decoder{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got=%v, want=%v", err, os.ErrNotExist)
	}
}

func TestDescribe(t *testing.T) {
	h := ines.Header{PRGBanks: 1, CHRBanks: 1, HasTrainer: true, RAMBanks: 1}
	cart, err := load(writeROM(t, h, 0), ines.Decoder{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var b bytes.Buffer
	describe(&b, cart)
	want := h.String() + "\n" +
		"board   NROM\n" +
		"header  0x000000-0x000010 (16 bytes)\n" +
		"trainer 0x000010-0x000210 (512 bytes)\n" +
		"prg     0x000210-0x004210 (16384 bytes)\n" +
		"chr     0x004210-0x006210 (8192 bytes)\n"
	if got := b.String(); got != want {
		t.Errorf("got=%q, want=%q", got, want)
	}
}
