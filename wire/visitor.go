package wire

import (
	"math"
	"reflect"
)

// Visitor receives the pieces of one value in declared order. The Encoder is
// the Visitor that writes bytes; generated MarshalTL methods drive it.
type Visitor interface {
	VisitInt8(v int8) error
	VisitInt16(v int16) error
	VisitInt32(v int32) error
	VisitInt64(v int64) error
	VisitUint8(v uint8) error
	VisitUint16(v uint16) error
	VisitUint32(v uint32) error
	VisitUint64(v uint64) error
	VisitFloat32(v float32) error
	VisitFloat64(v float64) error
	VisitString(v string) error

	// The format has no representation for these; implementations fail
	// with an *UnsupportedError.
	VisitBool(v bool) error
	VisitChar(v rune) error
	VisitBytes(v []byte) error
	VisitUnit() error
	VisitOptional(present bool) error
	VisitMap(n int) error

	BeginSequence(n int) error
	EndSequence() error
	BeginRecord(name string) error
	EndRecord() error
	// BeginVariant announces the discriminator of a boxed value; the
	// variant's record follows.
	BeginVariant(id uint32) error
}

// Marshaler is implemented by every generated constructor.
type Marshaler interface {
	MarshalTL(v Visitor) error
}

// Unmarshaler is implemented by every generated constructor.
type Unmarshaler interface {
	UnmarshalTL(d *Decoder) error
}

// Variant is one constructor of a boxed type.
type Variant interface {
	Marshaler
	Unmarshaler
	TLID() uint32
}

// VisitSlice visits s as a counted sequence, calling fn per element.
func VisitSlice[T any](v Visitor, s []T, fn func(Visitor, T) error) error {
	if err := v.BeginSequence(len(s)); err != nil {
		return err
	}
	for _, e := range s {
		if err := fn(v, e); err != nil {
			return err
		}
	}
	return v.EndSequence()
}

// VisitVariant visits x boxed: discriminator first, then its record. A nil
// interface and a nil pointer inside one both fail with ErrNilVariant before
// anything is visited.
func VisitVariant(v Visitor, x Variant) error {
	if isNil(x) {
		return ErrNilVariant
	}
	if err := v.BeginVariant(x.TLID()); err != nil {
		return err
	}
	return x.MarshalTL(v)
}

func isNil(x Variant) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Size returns the encoded length of m without writing it.
func Size(m Marshaler) (int, error) {
	var s sizer
	if err := m.MarshalTL(&s); err != nil {
		return 0, err
	}
	return s.n, nil
}

// sizer is a Visitor that counts bytes.
type sizer struct {
	n int
}

func (s *sizer) VisitInt8(int8) error       { s.n++; return nil }
func (s *sizer) VisitInt16(int16) error     { s.n += 2; return nil }
func (s *sizer) VisitInt32(int32) error     { s.n += 4; return nil }
func (s *sizer) VisitInt64(int64) error     { s.n += 8; return nil }
func (s *sizer) VisitUint8(uint8) error     { s.n++; return nil }
func (s *sizer) VisitUint16(uint16) error   { s.n += 2; return nil }
func (s *sizer) VisitUint32(uint32) error   { s.n += 4; return nil }
func (s *sizer) VisitUint64(uint64) error   { s.n += 8; return nil }
func (s *sizer) VisitFloat32(float32) error { s.n += 4; return nil }
func (s *sizer) VisitFloat64(float64) error { s.n += 8; return nil }

func (s *sizer) VisitString(v string) error {
	if len(v) > MaxStringLen {
		return ErrStringTooLong
	}
	s.n += StringSize(len(v))
	return nil
}

func (s *sizer) VisitBool(bool) error      { return unsupported("encode", "bool") }
func (s *sizer) VisitChar(rune) error      { return unsupported("encode", "char") }
func (s *sizer) VisitBytes([]byte) error   { return unsupported("encode", "bytes") }
func (s *sizer) VisitUnit() error          { return unsupported("encode", "unit") }
func (s *sizer) VisitOptional(bool) error  { return unsupported("encode", "optional") }
func (s *sizer) VisitMap(int) error        { return unsupported("encode", "map") }
func (s *sizer) EndSequence() error        { return nil }
func (s *sizer) BeginRecord(string) error  { return nil }
func (s *sizer) EndRecord() error          { return nil }
func (s *sizer) BeginVariant(uint32) error { s.n += 4; return nil }

func (s *sizer) BeginSequence(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return ErrSequenceTooLong
	}
	s.n += 4
	return nil
}
