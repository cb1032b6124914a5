package wire

import (
	"fmt"
	"sort"
)

// Entry binds a discriminator to the constructor of its variant.
type Entry struct {
	ID  uint32
	New func() Variant
}

// Table maps the discriminators of one boxed type to its variants. Tables are
// built once from generated metadata and are read-only afterwards, so they are
// safe to share between decoders.
type Table struct {
	name     string
	variants map[uint32]func() Variant
}

// NewTable builds a table for the boxed type name. Duplicate ids are rejected.
func NewTable(name string, entries ...Entry) (*Table, error) {
	t := &Table{name: name, variants: make(map[uint32]func() Variant, len(entries))}
	for _, e := range entries {
		if e.New == nil {
			return nil, fmt.Errorf("wire: table %s: nil constructor for %#08x", name, e.ID)
		}
		if _, dup := t.variants[e.ID]; dup {
			return nil, fmt.Errorf("%w: table %s: %#08x", ErrDuplicateVariant, name, e.ID)
		}
		t.variants[e.ID] = e.New
	}
	return t, nil
}

// MustTable is NewTable for package-level tables in generated code.
func MustTable(name string, entries ...Entry) *Table {
	t, err := NewTable(name, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Len() int { return len(t.variants) }

func (t *Table) Lookup(id uint32) (func() Variant, bool) {
	f, ok := t.variants[id]
	return f, ok
}

// IDs returns the registered discriminators in ascending order.
func (t *Table) IDs() []uint32 {
	ids := make([]uint32, 0, len(t.variants))
	for id := range t.variants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
