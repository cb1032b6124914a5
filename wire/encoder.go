package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encoder writes values in the wire format. It implements Visitor. An Encoder
// owns its writer for the duration of a call and is not safe for concurrent
// use.
type Encoder struct {
	w       io.Writer
	scratch [8]byte
	n       int64
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Written reports the number of bytes written so far.
func (e *Encoder) Written() int64 { return e.n }

// Encode writes m as a bare value.
func (e *Encoder) Encode(m Marshaler) error {
	return m.MarshalTL(e)
}

// EncodeVariant writes x boxed, discriminator first.
func (e *Encoder) EncodeVariant(x Variant) error {
	return VisitVariant(e, x)
}

func (e *Encoder) write(op string, b []byte) error {
	n, err := e.w.Write(b)
	e.n += int64(n)
	if err != nil {
		return fmt.Errorf("wire: write %s: %w", op, err)
	}
	return nil
}

func (e *Encoder) VisitInt8(v int8) error   { return e.VisitUint8(uint8(v)) }
func (e *Encoder) VisitInt16(v int16) error { return e.VisitUint16(uint16(v)) }
func (e *Encoder) VisitInt32(v int32) error { return e.VisitUint32(uint32(v)) }
func (e *Encoder) VisitInt64(v int64) error { return e.VisitUint64(uint64(v)) }

func (e *Encoder) VisitUint8(v uint8) error {
	e.scratch[0] = v
	return e.write("uint8", e.scratch[:1])
}

func (e *Encoder) VisitUint16(v uint16) error {
	binary.LittleEndian.PutUint16(e.scratch[:2], v)
	return e.write("uint16", e.scratch[:2])
}

func (e *Encoder) VisitUint32(v uint32) error {
	binary.LittleEndian.PutUint32(e.scratch[:4], v)
	return e.write("uint32", e.scratch[:4])
}

func (e *Encoder) VisitUint64(v uint64) error {
	binary.LittleEndian.PutUint64(e.scratch[:8], v)
	return e.write("uint64", e.scratch[:8])
}

func (e *Encoder) VisitFloat32(v float32) error {
	binary.LittleEndian.PutUint32(e.scratch[:4], math.Float32bits(v))
	return e.write("float32", e.scratch[:4])
}

func (e *Encoder) VisitFloat64(v float64) error {
	binary.LittleEndian.PutUint64(e.scratch[:8], math.Float64bits(v))
	return e.write("float64", e.scratch[:8])
}

// VisitString writes a length header (1 byte up to 253, otherwise 254 plus a
// 3-byte length), the data, and zero padding so header+data+padding is a
// multiple of 4.
func (e *Encoder) VisitString(v string) error {
	l := len(v)
	header := 1
	switch {
	case l <= shortStringMax:
		e.scratch[0] = byte(l)
	case l <= MaxStringLen:
		e.scratch[0] = longStringMarker
		e.scratch[1] = byte(l)
		e.scratch[2] = byte(l >> 8)
		e.scratch[3] = byte(l >> 16)
		header = 4
	default:
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, l)
	}
	if err := e.write("string header", e.scratch[:header]); err != nil {
		return err
	}
	if l > 0 {
		n, err := io.WriteString(e.w, v)
		e.n += int64(n)
		if err != nil {
			return fmt.Errorf("wire: write string: %w", err)
		}
	}
	if pad := padding(header + l); pad > 0 {
		var zero [3]byte
		return e.write("string padding", zero[:pad])
	}
	return nil
}

func (e *Encoder) VisitBool(bool) error     { return unsupported("encode", "bool") }
func (e *Encoder) VisitChar(rune) error     { return unsupported("encode", "char") }
func (e *Encoder) VisitBytes([]byte) error  { return unsupported("encode", "bytes") }
func (e *Encoder) VisitUnit() error         { return unsupported("encode", "unit") }
func (e *Encoder) VisitOptional(bool) error { return unsupported("encode", "optional") }
func (e *Encoder) VisitMap(int) error       { return unsupported("encode", "map") }

// BeginSequence writes the element count as a uint32.
func (e *Encoder) BeginSequence(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d elements", ErrSequenceTooLong, n)
	}
	return e.VisitUint32(uint32(n))
}

func (e *Encoder) EndSequence() error { return nil }

// Records are bare: no header, no trailer.
func (e *Encoder) BeginRecord(string) error { return nil }
func (e *Encoder) EndRecord() error         { return nil }

func (e *Encoder) BeginVariant(id uint32) error {
	binary.LittleEndian.PutUint32(e.scratch[:4], id)
	return e.write("discriminator", e.scratch[:4])
}
