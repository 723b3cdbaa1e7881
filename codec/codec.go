// Package codec encodes search reports for the reporting adapters,
// one header followed by one body per stream.
package codec

import "io"

//Header precedes the body so a reader can tell what produced the snapshot
type Header struct {
	Tool      string
	Statistic string
	Faults    int
	Entries   int
}

type Codec interface {
	WriteHeader(header *Header) error
	WriteBody(body interface{}) error
	ReadHeader(header *Header) error
	ReadBody(body interface{}) error
}

type Type string

const (
	GobType  Type = "application/gob"
	JsonType Type = "application/json"
)

type NewCodecFunc func(rw io.ReadWriter) Codec

var NewCodecFuncMap map[Type]NewCodecFunc

func init() {
	NewCodecFuncMap = make(map[Type]NewCodecFunc)
	NewCodecFuncMap[GobType] = NewGobCodec
	NewCodecFuncMap[JsonType] = NewJsonCodec
}
