package wire

// Hand-written equivalents of what the schema compiler emits, used by the
// codec tests.

// pair is the bare record pair a:int32 b:string.
type pair struct {
	A int32
	B string
}

func (*pair) TLID() uint32 { return 0x0badf00d }

func (m *pair) MarshalTL(v Visitor) error {
	if err := v.BeginRecord("pair"); err != nil {
		return err
	}
	if err := v.VisitInt32(m.A); err != nil {
		return err
	}
	if err := v.VisitString(m.B); err != nil {
		return err
	}
	return v.EndRecord()
}

func (m *pair) UnmarshalTL(d *Decoder) error {
	var err error
	if m.A, err = d.ReadInt32(); err != nil {
		return err
	}
	if m.B, err = d.ReadString(); err != nil {
		return err
	}
	return nil
}

// shape is a boxed type with two variants.
type shape interface {
	Variant
	isShape()
}

type circle struct {
	Radius int32
}

type label struct {
	Text  string
	Sizes []int64
}

func (*circle) isShape()     {}
func (*circle) TLID() uint32 { return 0x1 }
func (*label) isShape()      {}
func (*label) TLID() uint32  { return 0x2 }

func (m *circle) UnmarshalTL(d *Decoder) error {
	var err error
	m.Radius, err = d.ReadInt32()
	return err
}

func (m *circle) MarshalTL(v Visitor) error {
	if err := v.BeginRecord("circle"); err != nil {
		return err
	}
	if err := v.VisitInt32(m.Radius); err != nil {
		return err
	}
	return v.EndRecord()
}

func (m *label) MarshalTL(v Visitor) error {
	if err := v.BeginRecord("label"); err != nil {
		return err
	}
	if err := v.VisitString(m.Text); err != nil {
		return err
	}
	if err := VisitSlice(v, m.Sizes, func(v Visitor, e int64) error {
		return v.VisitInt64(e)
	}); err != nil {
		return err
	}
	return v.EndRecord()
}

func (m *label) UnmarshalTL(d *Decoder) error {
	var err error
	if m.Text, err = d.ReadString(); err != nil {
		return err
	}
	if m.Sizes, err = ReadSlice(d, func(d *Decoder) (int64, error) {
		return d.ReadInt64()
	}); err != nil {
		return err
	}
	return nil
}

var shapeTable = MustTable("shape",
	Entry{ID: 0x1, New: func() Variant { return new(circle) }},
	Entry{ID: 0x2, New: func() Variant { return new(label) }},
)

// drawing nests a boxed field and a sequence of boxed values in a record.
type drawing struct {
	Title  string
	Main   shape
	Others []shape
	Grid   [][]int32
}

func (*drawing) TLID() uint32 { return 0x3 }

func (m *drawing) MarshalTL(v Visitor) error {
	if err := v.BeginRecord("drawing"); err != nil {
		return err
	}
	if err := v.VisitString(m.Title); err != nil {
		return err
	}
	if err := VisitVariant(v, m.Main); err != nil {
		return err
	}
	if err := VisitSlice(v, m.Others, func(v Visitor, e shape) error {
		return VisitVariant(v, e)
	}); err != nil {
		return err
	}
	if err := VisitSlice(v, m.Grid, func(v Visitor, row []int32) error {
		return VisitSlice(v, row, func(v Visitor, e int32) error {
			return v.VisitInt32(e)
		})
	}); err != nil {
		return err
	}
	return v.EndRecord()
}

func (m *drawing) UnmarshalTL(d *Decoder) error {
	var err error
	if m.Title, err = d.ReadString(); err != nil {
		return err
	}
	if m.Main, err = ReadVariantAs[shape](d, shapeTable); err != nil {
		return err
	}
	if m.Others, err = ReadSlice(d, func(d *Decoder) (shape, error) {
		return ReadVariantAs[shape](d, shapeTable)
	}); err != nil {
		return err
	}
	if m.Grid, err = ReadSlice(d, func(d *Decoder) ([]int32, error) {
		return ReadSlice(d, func(d *Decoder) (int32, error) {
			return d.ReadInt32()
		})
	}); err != nil {
		return err
	}
	return nil
}

// flagged carries a bool, which the format cannot represent.
type flagged struct {
	On bool
}

func (*flagged) TLID() uint32 { return 0x4 }

func (m *flagged) MarshalTL(v Visitor) error {
	return v.VisitBool(m.On)
}

func (m *flagged) UnmarshalTL(d *Decoder) error {
	var err error
	m.On, err = d.ReadBool()
	return err
}
