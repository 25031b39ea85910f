package lilibin

import (
	"encoding/binary"
	"fmt"

	"github.com/dzshn/lili-v0/lilivm"
)

// ReadPayload deserializes the object graph following the header. The graph
// is self-describing; nested code objects inside constant pools come back
// recursively without extra work here.
func ReadPayload(data []byte) (*lilivm.CodeUnit, error) {
	unit, err := lilivm.DecodeGob(data)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return unit, nil
}

// Load reads a whole container: header checks per mode, then the payload.
func Load(data []byte, force bool) (*lilivm.CodeUnit, Header, error) {
	h, err := ReadHeader(data, force)
	if err != nil {
		return nil, h, err
	}
	unit, err := ReadPayload(data[HeaderSize:])
	if err != nil {
		return nil, h, err
	}
	return unit, h, nil
}

// Encode writes a strict-loadable container for the unit.
func Encode(unit *lilivm.CodeUnit, flags uint32) ([]byte, error) {
	payload, err := unit.EncodeGob()
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	copy(out[:4], lilivm.Magic[:])
	binary.LittleEndian.PutUint32(out[4:8], flags&flagsMask)
	return append(out, payload...), nil
}
