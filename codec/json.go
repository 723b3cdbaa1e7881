package codec

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/DurantVivado/Draid/xlog"
)

type JsonCodec struct {
	buf *bufio.Writer
	dec *json.Decoder
	enc *json.Encoder
}

var _ Codec = (*JsonCodec)(nil)

func NewJsonCodec(rw io.ReadWriter) Codec {
	buf := bufio.NewWriter(rw)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return &JsonCodec{
		buf: buf,
		dec: json.NewDecoder(rw),
		enc: enc,
	}
}

func (j *JsonCodec) ReadHeader(header *Header) error {
	return j.dec.Decode(header)
}

func (j *JsonCodec) ReadBody(body interface{}) error {
	return j.dec.Decode(body)
}

func (j *JsonCodec) WriteHeader(header *Header) error {
	if err := j.enc.Encode(header); err != nil {
		xlog.Errorln("report codec: json error encoding header", err)
		return err
	}
	return j.buf.Flush()
}

func (j *JsonCodec) WriteBody(body interface{}) error {
	if err := j.enc.Encode(body); err != nil {
		xlog.Errorln("report codec: json error encoding body:", err)
		return err
	}
	return j.buf.Flush()
}
