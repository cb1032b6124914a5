package compiler

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/danmuck/tlwire/internal/schema"
)

// WireImportPath is the codec package generated code is written against.
const WireImportPath = "github.com/danmuck/tlwire/wire"

// fileRenderer writes the Go source for one module. Every module shares the
// root package.
type fileRenderer struct {
	opts Options
	tr   *Translator
	tree *Tree
	mod  *Module

	typeNames  map[string]struct{}
	unresolved map[string]struct{}
	body       bytes.Buffer
}

func newFileRenderer(opts Options, tr *Translator, tree *Tree, mod *Module, typeNames map[string]struct{}) *fileRenderer {
	return &fileRenderer{
		opts:       opts,
		tr:         tr,
		tree:       tree,
		mod:        mod,
		typeNames:  typeNames,
		unresolved: make(map[string]struct{}),
	}
}

type field struct {
	name   string
	source string
	ref    *resolvedRef
}

func (f *fileRenderer) p(format string, args ...any) {
	fmt.Fprintf(&f.body, format, args...)
	f.body.WriteByte('\n')
}

func (f *fileRenderer) render() ([]byte, error) {
	for _, typ := range f.mod.SortedTypes() {
		var err error
		if typ.Boxed() {
			err = f.union(typ)
		} else {
			c := typ.Constructors[0]
			doc := fmt.Sprintf("%s is the constructor %s.", typ.GoName(), combinator(c.Predicate, c.ID))
			err = f.record(typ.GoName(), doc, c.Predicate, c.ID, c.Params)
		}
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", typ.Qualified(), err)
		}
	}
	if f.opts.EmitMethods {
		for _, m := range f.mod.SortedMethods() {
			name := requestName(f.tr, m.Method, f.mod.Name)
			doc := fmt.Sprintf("%s is the method %s returning %s.", name, combinator(m.Method, m.ID), m.Type)
			if err := f.record(name, doc, m.Method, m.ID, m.Params); err != nil {
				return nil, fmt.Errorf("method %s: %w", m.Method, err)
			}
		}
	}

	pkg := f.tr.RootPackage()
	var out bytes.Buffer
	out.WriteString("// Code generated by tlgen. DO NOT EDIT.\n\n")
	if f.mod.Name == "" {
		fmt.Fprintf(&out, "// Package %s holds the types of a TL schema. Types of the module m are\n", pkg)
		out.WriteString("// named with the prefix M.\n")
		fmt.Fprintf(&out, "package %s // import %q\n\n", pkg, f.opts.ImportPath)
	} else {
		fmt.Fprintf(&out, "// Schema module %s.\n\n", f.mod.Name)
		fmt.Fprintf(&out, "package %s\n\n", pkg)
	}
	if f.body.Len() > 0 {
		fmt.Fprintf(&out, "import %q\n\n", WireImportPath)
		out.Write(f.body.Bytes())
	}

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func combinator(name string, id int32) string {
	return fmt.Sprintf("%s#%08x", name, uint32(id))
}

func (f *fileRenderer) fields(params []schema.Parameter) ([]field, error) {
	out := make([]field, 0, len(params))
	for _, p := range params {
		ref, err := f.tr.resolve(p.Type, f.mod.Name)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if err := f.track(p.Type, ref); err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		out = append(out, field{name: fieldName(f.tr, p.Name, f.mod.Name), source: p.Name, ref: ref})
	}
	return out, nil
}

// track records bare names with no constructor in the schema; they are left
// for hand-written declarations in the same package. A qualified name with no
// constructor is an error.
func (f *fileRenderer) track(source string, ref *resolvedRef) error {
	switch ref.kind {
	case refSequence:
		return f.track(source, ref.elem)
	case refNamed:
		if _, ok := f.tree.lookupRef(ref); ok {
			return nil
		}
		if ref.module != "" {
			return fmt.Errorf("%w %q: no type %s.%s in the schema", ErrTypeReference, source, ref.module, ref.name)
		}
		f.unresolved[ref.name] = struct{}{}
	}
	return nil
}

// boxed reports whether a named reference is encoded with its discriminator.
// Names missing from the tree are declared elsewhere and treated as bare.
func (f *fileRenderer) boxed(ref *resolvedRef) bool {
	typ, ok := f.tree.lookupRef(ref)
	return ok && typ.Boxed()
}

func (f *fileRenderer) union(typ *Type) error {
	name := typ.GoName()
	f.p("// %s is the boxed type %s. Its values are one of", name, typ.Qualified())
	variants := make([]string, 0, len(typ.Constructors))
	for _, c := range typ.Constructors {
		variants = append(variants, variantName(f.tr, c.Predicate, f.mod.Name, f.typeNames))
	}
	for _, v := range variants {
		f.p("//   - %s", v)
	}
	f.p("type %s interface {", name)
	f.p("wire.Variant")
	f.p("is%s()", name)
	f.p("}")
	f.p("")
	f.p("// %sTable maps the discriminators of %s to its variants.", name, name)
	f.p("var %sTable = wire.MustTable(%q,", name, typ.Qualified())
	for i, c := range typ.Constructors {
		f.p("wire.Entry{ID: 0x%08x, New: func() wire.Variant { return new(%s) }},", uint32(c.ID), variants[i])
	}
	f.p(")")
	f.p("")
	for i, c := range typ.Constructors {
		doc := fmt.Sprintf("%s is the constructor %s of %s.", variants[i], combinator(c.Predicate, c.ID), typ.Qualified())
		if err := f.record(variants[i], doc, c.Predicate, c.ID, c.Params); err != nil {
			return fmt.Errorf("variant %s: %w", c.Predicate, err)
		}
		f.p("func (*%s) is%s() {}", variants[i], name)
		f.p("")
	}
	return nil
}

// record writes a struct and its codec methods.
func (f *fileRenderer) record(name, doc, wireName string, id int32, params []schema.Parameter) error {
	fields, err := f.fields(params)
	if err != nil {
		return err
	}

	f.p("// %s", doc)
	if len(fields) == 0 {
		f.p("type %s struct{}", name)
	} else {
		f.p("type %s struct {", name)
		for _, fd := range fields {
			f.p("%s %s // %s", fd.name, fd.ref.decl, fd.source)
		}
		f.p("}")
	}
	f.p("")
	f.p("func (*%s) TLID() uint32 { return 0x%08x }", name, uint32(id))
	f.p("")

	f.p("func (m *%s) MarshalTL(v wire.Visitor) error {", name)
	f.p("if err := v.BeginRecord(%q); err != nil {", wireName)
	f.p("return err")
	f.p("}")
	for _, fd := range fields {
		f.p("if err := %s; err != nil {", f.encode(fd.ref, "m."+fd.name, 0))
		f.p("return err")
		f.p("}")
	}
	f.p("return v.EndRecord()")
	f.p("}")
	f.p("")

	if len(fields) == 0 {
		f.p("func (*%s) UnmarshalTL(*wire.Decoder) error { return nil }", name)
		f.p("")
		return nil
	}
	f.p("func (m *%s) UnmarshalTL(d *wire.Decoder) error {", name)
	f.p("var err error")
	for _, fd := range fields {
		target := "m." + fd.name
		if fd.ref.kind == refNamed && !f.boxed(fd.ref) {
			f.p("if err = %s.UnmarshalTL(d); err != nil {", target)
		} else {
			f.p("if %s, err = %s; err != nil {", target, f.decode(fd.ref, 0))
		}
		f.p("return err")
		f.p("}")
	}
	f.p("return nil")
	f.p("}")
	f.p("")
	return nil
}

// encode returns an expression of type error that visits x.
func (f *fileRenderer) encode(ref *resolvedRef, x string, depth int) string {
	switch ref.kind {
	case refPrimitive:
		return fmt.Sprintf("v.Visit%s(%s)", ref.prim.kind, x)
	case refSequence:
		e := fmt.Sprintf("e%d", depth)
		return fmt.Sprintf("wire.VisitSlice(v, %s, func(v wire.Visitor, %s %s) error {\nreturn %s\n})",
			x, e, ref.elem.decl, f.encode(ref.elem, e, depth+1))
	default:
		if f.boxed(ref) {
			return fmt.Sprintf("wire.VisitVariant(v, %s)", x)
		}
		return fmt.Sprintf("%s.MarshalTL(v)", x)
	}
}

// decode returns an expression of type (T, error) reading one value. Bare
// named types have no such expression; callers handle them.
func (f *fileRenderer) decode(ref *resolvedRef, depth int) string {
	switch ref.kind {
	case refPrimitive:
		return fmt.Sprintf("d.Read%s()", ref.prim.kind)
	case refSequence:
		return fmt.Sprintf("wire.ReadSlice(d, func(d *wire.Decoder) (%s, error) {\n%s\n})",
			ref.elem.decl, f.decodeElem(ref.elem, depth))
	default:
		return fmt.Sprintf("wire.ReadVariantAs[%s](d, %sTable)", ref.decl, ref.decl)
	}
}

func (f *fileRenderer) decodeElem(ref *resolvedRef, depth int) string {
	if ref.kind == refNamed && !f.boxed(ref) {
		e := fmt.Sprintf("e%d", depth)
		return fmt.Sprintf("var %s %s\nerr := %s.UnmarshalTL(d)\nreturn %s, err", e, ref.decl, e, e)
	}
	return "return " + f.decode(ref, depth+1)
}
