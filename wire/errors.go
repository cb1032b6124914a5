package wire

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported          = errors.New("wire: unsupported for this format")
	ErrShortRead            = errors.New("wire: short read")
	ErrUnknownDiscriminator = errors.New("wire: unknown discriminator")
	ErrStringTooLong        = errors.New("wire: string too long")
	ErrSequenceTooLong      = errors.New("wire: sequence too long")
	ErrInvalidStringHeader  = errors.New("wire: invalid string header")
	ErrNilVariant           = errors.New("wire: nil variant")
	ErrVariantType          = errors.New("wire: variant type mismatch")
	ErrDuplicateVariant     = errors.New("wire: duplicate variant id")
	ErrTrailingData         = errors.New("wire: trailing data")
)

// UnsupportedError reports a value kind the format has no representation for.
type UnsupportedError struct {
	Op   string // "encode" or "decode"
	Kind string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("wire: %s %s: unsupported for this format", e.Op, e.Kind)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

func unsupported(op, kind string) error {
	return &UnsupportedError{Op: op, Kind: kind}
}

// ShortReadError reports fewer bytes than the format demands at Offset.
type ShortReadError struct {
	Op     string
	Offset int64
	Want   int
	Got    int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("wire: short read of %s at offset %d: want %d bytes, got %d", e.Op, e.Offset, e.Want, e.Got)
}

func (e *ShortReadError) Unwrap() error { return ErrShortRead }

// UnknownDiscriminatorError reports a boxed value whose id has no variant in
// the table for Type.
type UnknownDiscriminatorError struct {
	Type   string
	ID     uint32
	Offset int64
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("wire: unknown discriminator %#08x for %s at offset %d", e.ID, e.Type, e.Offset)
}

func (e *UnknownDiscriminatorError) Unwrap() error { return ErrUnknownDiscriminator }
