package wire

const (
	// shortStringMax is the longest string that uses the 1-byte length header.
	shortStringMax = 253
	// longStringMarker introduces the 3-byte little-endian length header.
	longStringMarker = 254
	// MaxStringLen is the longest string the 3-byte length header can carry.
	MaxStringLen = 1<<24 - 1
)

// Limits constrains decoder memory use.
type Limits struct {
	MaxSequenceLen int
	MaxStringLen   int
}

func DefaultLimits() Limits {
	return Limits{
		MaxSequenceLen: 1 << 20,
		MaxStringLen:   MaxStringLen,
	}
}

func (l Limits) normalized() Limits {
	d := DefaultLimits()
	if l.MaxSequenceLen <= 0 {
		l.MaxSequenceLen = d.MaxSequenceLen
	}
	if l.MaxStringLen <= 0 || l.MaxStringLen > MaxStringLen {
		l.MaxStringLen = d.MaxStringLen
	}
	return l
}

// padding returns the zero bytes needed to align n to 4.
func padding(n int) int {
	return (4 - n%4) % 4
}

// StringSize returns the encoded size of a string of l bytes, header and
// padding included.
func StringSize(l int) int {
	header := 1
	if l > shortStringMax {
		header = 4
	}
	return header + l + padding(header+l)
}
