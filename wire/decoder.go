package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Decoder reads values in the wire format. It owns its reader for the
// duration of a call and is not safe for concurrent use.
type Decoder struct {
	r       io.Reader
	limits  Limits
	scratch [8]byte
	off     int64
}

func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderWithLimits(r, DefaultLimits())
}

func NewDecoderWithLimits(r io.Reader, limits Limits) *Decoder {
	return &Decoder{r: r, limits: limits.normalized()}
}

// Offset reports the number of bytes consumed so far.
func (d *Decoder) Offset() int64 { return d.off }

// Decode reads a bare value into u.
func (d *Decoder) Decode(u Unmarshaler) error {
	return u.UnmarshalTL(d)
}

func (d *Decoder) read(op string, b []byte) error {
	start := d.off
	n, err := io.ReadFull(d.r, b)
	d.off += int64(n)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return &ShortReadError{Op: op, Offset: start, Want: len(b), Got: n}
		}
		return fmt.Errorf("wire: read %s: %w", op, err)
	}
	return nil
}

func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *Decoder) ReadUint8() (uint8, error) {
	if err := d.read("uint8", d.scratch[:1]); err != nil {
		return 0, err
	}
	return d.scratch[0], nil
}

func (d *Decoder) ReadUint16() (uint16, error) {
	if err := d.read("uint16", d.scratch[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d.scratch[:2]), nil
}

func (d *Decoder) ReadUint32() (uint32, error) {
	if err := d.read("uint32", d.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.scratch[:4]), nil
}

func (d *Decoder) ReadUint64() (uint64, error) {
	if err := d.read("uint64", d.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d.scratch[:8]), nil
}

func (d *Decoder) ReadFloat32() (float32, error) {
	if err := d.read("float32", d.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(d.scratch[:4])), nil
}

func (d *Decoder) ReadFloat64() (float64, error) {
	if err := d.read("float64", d.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(d.scratch[:8])), nil
}

// ReadString reads the length header, the data and the padding that aligns
// the whole span, counted from the start of the header, to 4 bytes.
func (d *Decoder) ReadString() (string, error) {
	start := d.off
	if err := d.read("string header", d.scratch[:1]); err != nil {
		return "", err
	}
	header := 1
	l := int(d.scratch[0])
	switch d.scratch[0] {
	case longStringMarker:
		if err := d.read("string length", d.scratch[1:4]); err != nil {
			return "", err
		}
		l = int(d.scratch[1]) | int(d.scratch[2])<<8 | int(d.scratch[3])<<16
		header = 4
	case 255:
		return "", fmt.Errorf("%w: byte 255 at offset %d", ErrInvalidStringHeader, start)
	}
	if l > d.limits.MaxStringLen {
		return "", fmt.Errorf("%w: %d bytes at offset %d", ErrStringTooLong, l, start)
	}
	buf := make([]byte, l+padding(header+l))
	if err := d.read("string", buf); err != nil {
		return "", err
	}
	return string(buf[:l]), nil
}

func (d *Decoder) ReadBool() (bool, error)     { return false, unsupported("decode", "bool") }
func (d *Decoder) ReadChar() (rune, error)     { return 0, unsupported("decode", "char") }
func (d *Decoder) ReadBytes() ([]byte, error)  { return nil, unsupported("decode", "bytes") }
func (d *Decoder) ReadUnit() error             { return unsupported("decode", "unit") }
func (d *Decoder) ReadOptional() (bool, error) { return false, unsupported("decode", "optional") }
func (d *Decoder) ReadMap() (int, error)       { return 0, unsupported("decode", "map") }

// ReadSequenceLen reads a sequence element count.
func (d *Decoder) ReadSequenceLen() (int, error) {
	start := d.off
	n, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(d.limits.MaxSequenceLen) {
		return 0, fmt.Errorf("%w: %d elements at offset %d", ErrSequenceTooLong, n, start)
	}
	return int(n), nil
}

// ReadDiscriminator reads the id that prefixes a boxed value.
func (d *Decoder) ReadDiscriminator() (uint32, error) {
	if err := d.read("discriminator", d.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.scratch[:4]), nil
}

// ReadSlice reads a counted sequence, calling fn per element.
func ReadSlice[T any](d *Decoder, fn func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.ReadSequenceLen()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		e, err := fn(d)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ReadVariant reads a discriminator, selects the variant from t and decodes
// its record. An id missing from t is an *UnknownDiscriminatorError.
func ReadVariant(d *Decoder, t *Table) (Variant, error) {
	start := d.off
	id, err := d.ReadDiscriminator()
	if err != nil {
		return nil, err
	}
	newVariant, ok := t.Lookup(id)
	if !ok {
		return nil, &UnknownDiscriminatorError{Type: t.Name(), ID: id, Offset: start}
	}
	v := newVariant()
	if err := v.UnmarshalTL(d); err != nil {
		return nil, err
	}
	return v, nil
}

// ReadVariantAs is ReadVariant narrowed to the boxed type T.
func ReadVariantAs[T Variant](d *Decoder, t *Table) (T, error) {
	var zero T
	v, err := ReadVariant(d, t)
	if err != nil {
		return zero, err
	}
	x, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s variant %#08x is %T", ErrVariantType, t.Name(), v.TLID(), v)
	}
	return x, nil
}
