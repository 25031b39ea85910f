package lilivm

import "encoding/binary"

// Magic identifies the target VM build this tool assembles for
// (CPython 3.10, magic word 3439). Containers carrying any other magic are
// rejected unless loading is forced.
var Magic = [4]byte{0x6F, 0x0D, 0x0D, 0x0A}

// MagicWord extracts the 16-bit little-endian version word from the first
// two bytes of a header, for the status surface.
func MagicWord(header []byte) uint16 {
	if len(header) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(header[:2])
}
