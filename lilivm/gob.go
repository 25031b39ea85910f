package lilivm

import (
	"bytes"
	"encoding/gob"
)

func init() {
	gob.Register(&CodeUnit{})
	gob.Register(Value{})
	gob.Register(Pair{})
	gob.Register(Instr{})
	gob.Register([]Value{})
	gob.Register(Opcode(0))
}

// EncodeGob serializes the code-object graph, nested units included. Not
// named MarshalBinary on purpose: gob must encode the struct fields itself,
// not recurse into this method.
func (u *CodeUnit) EncodeGob() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(u); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeGob(data []byte) (*CodeUnit, error) {
	var u CodeUnit
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
