package codec

import (
	"bufio"
	"encoding/gob"
	"io"

	"github.com/DurantVivado/Draid/xlog"
)

type GobCodec struct {
	buf *bufio.Writer
	dec *gob.Decoder
	enc *gob.Encoder
}

var _ Codec = (*GobCodec)(nil)

func NewGobCodec(rw io.ReadWriter) Codec {
	buf := bufio.NewWriter(rw)
	return &GobCodec{
		buf: buf,
		dec: gob.NewDecoder(rw),
		enc: gob.NewEncoder(buf),
	}
}

func (g *GobCodec) ReadHeader(header *Header) error {
	return g.dec.Decode(header)
}

func (g *GobCodec) ReadBody(body interface{}) error {
	return g.dec.Decode(body)
}

func (g *GobCodec) WriteHeader(header *Header) error {
	if err := g.enc.Encode(header); err != nil {
		xlog.Errorln("report codec: gob error encoding header", err)
		return err
	}
	return g.buf.Flush()
}

func (g *GobCodec) WriteBody(body interface{}) error {
	if err := g.enc.Encode(body); err != nil {
		xlog.Errorln("report codec: gob error encoding body:", err)
		return err
	}
	return g.buf.Flush()
}
