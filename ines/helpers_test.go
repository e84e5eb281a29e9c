package ines

// newTestHeader returns a valid header with the given flags, bytes 8-15 zero.
func newTestHeader(prg, chr, flags6, flags7 byte) []byte {
	return []byte{'N', 'E', 'S', 0x1A, prg, chr, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
}

// newTestROM appends a trainer (when flags 6 bit 2 is set) and the declared
// banks to header, each filled with a distinct marker byte, then extra bytes.
func newTestROM(header []byte, extra int) []byte {
	b := append([]byte{}, header...)
	if header[6]&(1<<2) != 0 {
		b = append(b, fill(TrainerSize, 0x77)...)
	}
	b = append(b, fill(int(header[4])*PRGBankSize, 0xAA)...)
	b = append(b, fill(int(header[5])*CHRBankSize, 0x55)...)
	return append(b, make([]byte, extra)...)
}

func fill(n int, x byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = x
	}
	return b
}
