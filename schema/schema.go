package schema

import "encoding/json"

// Schema is the payload interface shared by tool inputs and outputs.
type Schema interface {
	String() string
}

// Stringify serializes a schema for transport to a reasoning engine.
func Stringify(s Schema) string {
	if v, ok := s.(String); ok {
		return string(v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

func ToBytes(s Schema) []byte {
	if v, ok := s.(String); ok {
		return []byte(v)
	}
	bs, _ := json.Marshal(s)
	return bs
}
