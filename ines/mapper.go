package ines

import "fmt"

// Board names of common mappers, https://www.nesdev.org/wiki/Mapper
var mapperNames = map[uint8]string{
	0:  "NROM",
	1:  "MMC1",
	2:  "UxROM",
	3:  "CNROM",
	4:  "MMC3",
	5:  "MMC5",
	7:  "AxROM",
	9:  "MMC2",
	10: "MMC4",
	11: "Color Dreams",
	66: "GxROM",
	71: "Camerica",
}

// MapperName returns the board name of a mapper ID, or a generic name when unknown.
func MapperName(id uint8) string {
	if name, ok := mapperNames[id]; ok {
		return name
	}
	return fmt.Sprintf("mapper %d", id)
}
