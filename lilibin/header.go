package lilibin

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dzshn/lili-v0/lilivm"
)

// Container layout, bit-exact: 4 bytes magic, 4 bytes little-endian flags
// with only the low 2 bits meaningful, 8 reserved bytes, then the
// serialized code-object graph.
const HeaderSize = 16

const flagsMask = 0b11

var (
	ErrTruncatedHeader  = errors.New("truncated container header")
	ErrMagicMismatch    = errors.New("container magic mismatch")
	ErrUnsupportedFlags = errors.New("unsupported container flags")
)

type Header struct {
	Magic [4]byte
	Flags uint32
}

func (h Header) MagicOK() bool {
	return h.Magic == lilivm.Magic
}

func (h Header) FlagsOK() bool {
	return h.Flags&^uint32(flagsMask) == 0
}

// Word is the 16-bit version number embedded in the magic, for display.
func (h Header) Word() uint16 {
	return lilivm.MagicWord(h.Magic[:])
}

// ReadHeader parses and validates the fixed 16-byte header. Truncation is
// always fatal; in forced mode the magic and flag checks are skipped and
// the caller inspects the returned header itself.
func ReadHeader(data []byte, force bool) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}
	var h Header
	copy(h.Magic[:], data[:4])
	h.Flags = binary.LittleEndian.Uint32(data[4:8])
	if force {
		return h, nil
	}
	if !h.MagicOK() {
		return h, fmt.Errorf("%w: % x", ErrMagicMismatch, h.Magic)
	}
	if !h.FlagsOK() {
		return h, fmt.Errorf("%w: %#x", ErrUnsupportedFlags, h.Flags)
	}
	return h, nil
}
