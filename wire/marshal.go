package wire

import (
	"bytes"
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Marshal encodes m as a bare value.
func Marshal(m Marshaler) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := NewEncoder(buf).Encode(m); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// MarshalVariant encodes x boxed.
func MarshalVariant(x Variant) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := NewEncoder(buf).EncodeVariant(x); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// Unmarshal decodes data into u. Bytes left after the value are an error.
func Unmarshal(data []byte, u Unmarshaler) error {
	d := NewDecoder(bytes.NewReader(data))
	if err := d.Decode(u); err != nil {
		return err
	}
	return checkTrailing(d, data)
}

// UnmarshalVariant decodes a boxed value using t.
func UnmarshalVariant(data []byte, t *Table) (Variant, error) {
	d := NewDecoder(bytes.NewReader(data))
	v, err := ReadVariant(d, t)
	if err != nil {
		return nil, err
	}
	if err := checkTrailing(d, data); err != nil {
		return nil, err
	}
	return v, nil
}

func checkTrailing(d *Decoder, data []byte) error {
	if rest := int64(len(data)) - d.Offset(); rest > 0 {
		return fmt.Errorf("%w: %d bytes after offset %d", ErrTrailingData, rest, d.Offset())
	}
	return nil
}
