package ines

import "fmt"

// Span is a half-open byte range [Start, End) within an image.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("0x%06x-0x%06x (%d bytes)", s.Start, s.End, s.Len())
}

// Layout is where each section of an image lives, in file order.
type Layout struct {
	Trainer Span
	PRGROM  Span
	CHRROM  Span
	End     int
}

// NewLayout computes the section offsets declared by h.
func NewLayout(h Header) Layout {
	var l Layout
	trainer := 0
	if h.HasTrainer {
		trainer = TrainerSize
	}
	l.Trainer = Span{HeaderSize, HeaderSize + trainer}
	l.PRGROM = Span{l.Trainer.End, l.Trainer.End + int(h.PRGBanks)*PRGBankSize}
	l.CHRROM = Span{l.PRGROM.End, l.PRGROM.End + int(h.CHRBanks)*CHRBankSize}
	l.End = l.CHRROM.End
	return l
}

// Image holds the sections following the header. Each slice aliases the
// buffer it was extracted from and has its capacity capped to its length.
type Image struct {
	Trainer []byte
	PRGROM  []byte
	CHRROM  []byte
}

// ExtractBanks slices the trainer, PRG ROM and CHR ROM out of data according
// to h. data must be exactly as long as h declares.
func ExtractBanks(data []byte, h Header) (Image, error) {
	l := NewLayout(h)
	if l.End > len(data) {
		return Image{}, newTruncated(len(data), l.End)
	}
	if l.End < len(data) {
		return Image{}, &FormatError{Kind: TrailingData, Offset: l.End, Excess: len(data) - l.End}
	}
	return Image{
		Trainer: view(data, l.Trainer),
		PRGROM:  view(data, l.PRGROM),
		CHRROM:  view(data, l.CHRROM),
	}, nil
}

func view(data []byte, s Span) []byte {
	return data[s.Start:s.End:s.End]
}
