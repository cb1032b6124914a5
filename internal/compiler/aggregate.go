package compiler

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/danmuck/tlwire/internal/schema"
)

var ErrAggregation = errors.New("compiler: aggregation error")

// Type is the set of constructors that share one type name.
type Type struct {
	Module       string
	Name         string
	Constructors []schema.Constructor
}

// Boxed reports whether values of t carry a discriminator on the wire.
func (t *Type) Boxed() bool { return len(t.Constructors) > 1 }

// Qualified returns the schema spelling, e.g. auth.SentCode.
func (t *Type) Qualified() string {
	if t.Module == "" {
		return t.Name
	}
	return t.Module + "." + t.Name
}

// GoName is the type's declaration name in the generated package.
func (t *Type) GoName() string { return ExportedName(t.Module, t.Name) }

type Kind string

const (
	KindSingleton Kind = "singleton"
	KindRecord    Kind = "record"
	KindUnion     Kind = "union"
)

func (t *Type) Kind() Kind {
	switch {
	case t.Boxed():
		return KindUnion
	case len(t.Constructors[0].Params) == 0:
		return KindSingleton
	default:
		return KindRecord
	}
}

// Module groups the types and methods whose names share a qualifier. The
// root module has an empty name.
type Module struct {
	Name    string
	Types   []*Type
	Methods []schema.Method

	types map[string]*Type
}

func newModule(name string) *Module {
	return &Module{Name: name, types: make(map[string]*Type)}
}

func (m *Module) Type(name string) (*Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

// SortedTypes returns the module's types ordered by name.
func (m *Module) SortedTypes() []*Type {
	names := maps.Keys(m.types)
	slices.Sort(names)
	out := make([]*Type, 0, len(names))
	for _, n := range names {
		out = append(out, m.types[n])
	}
	return out
}

// SortedMethods returns the module's methods ordered by name.
func (m *Module) SortedMethods() []schema.Method {
	out := slices.Clone(m.Methods)
	slices.SortStableFunc(out, func(a, b schema.Method) bool { return a.Method < b.Method })
	return out
}

// Tree is the module -> type -> constructor grouping of a schema. Modules and
// types are kept in first-seen order; emission goes through the sorted
// accessors.
type Tree struct {
	Modules []*Module

	modules  map[string]*Module
	owners   []idOwner
	excluded map[string]struct{}
}

type idOwner struct {
	id   int32
	name string
}

// Aggregate groups the schema's constructors by module and type. Built-in
// kinds and every kind in exclude are skipped. Methods are grouped by the
// module of their name; a method whose result kind is excluded is dropped.
func Aggregate(s *schema.Schema, exclude []string) *Tree {
	tree := &Tree{
		modules:  make(map[string]*Module),
		excluded: make(map[string]struct{}, len(exclude)),
	}
	for _, kind := range exclude {
		tree.excluded[kind] = struct{}{}
	}

	for _, c := range s.Constructors {
		tree.owners = append(tree.owners, idOwner{id: c.ID, name: "constructor " + c.Predicate})
		if schema.Builtin(c.Type) || tree.Excluded(c.Type) {
			log.Debug().Str("predicate", c.Predicate).Str("type", c.Type).Msg("constructor skipped")
			continue
		}
		modName, typeName := schema.SplitQualified(c.Type)
		mod := tree.module(modName)
		typ, ok := mod.types[typeName]
		if !ok {
			typ = &Type{Module: modName, Name: typeName}
			mod.types[typeName] = typ
			mod.Types = append(mod.Types, typ)
		}
		typ.Constructors = append(typ.Constructors, c)
	}

	for _, m := range s.Methods {
		tree.owners = append(tree.owners, idOwner{id: m.ID, name: "method " + m.Method})
		if tree.Excluded(m.Type) {
			log.Debug().Str("method", m.Method).Str("type", m.Type).Msg("method skipped")
			continue
		}
		modName, _ := schema.SplitQualified(m.Method)
		mod := tree.module(modName)
		mod.Methods = append(mod.Methods, m)
	}

	log.Debug().
		Int("modules", len(tree.Modules)).
		Int("constructors", len(s.Constructors)).
		Int("methods", len(s.Methods)).
		Msg("schema aggregated")
	return tree
}

func (tr *Tree) module(name string) *Module {
	mod, ok := tr.modules[name]
	if !ok {
		mod = newModule(name)
		tr.modules[name] = mod
		tr.Modules = append(tr.Modules, mod)
	}
	return mod
}

func (tr *Tree) Excluded(kind string) bool {
	_, ok := tr.excluded[kind]
	return ok
}

func (tr *Tree) Module(name string) (*Module, bool) {
	m, ok := tr.modules[name]
	return m, ok
}

// SortedModules returns the modules ordered by name, root first.
func (tr *Tree) SortedModules() []*Module {
	names := maps.Keys(tr.modules)
	slices.Sort(names)
	out := make([]*Module, 0, len(names))
	for _, n := range names {
		out = append(out, tr.modules[n])
	}
	return out
}

// Lookup finds the aggregated type for a kind such as "auth.SentCode" or
// "ResPQ". The emitter uses it to decide whether a field is boxed.
func (tr *Tree) Lookup(kind string) (*Type, bool) {
	modName, typeName := schema.SplitQualified(kind)
	mod, ok := tr.modules[modName]
	if !ok {
		return nil, false
	}
	return mod.Type(typeName)
}

// declaredTypes returns the Go names of every aggregated type.
func (tr *Tree) declaredTypes() map[string]struct{} {
	out := make(map[string]struct{})
	for _, mod := range tr.Modules {
		for _, typ := range mod.Types {
			out[typ.GoName()] = struct{}{}
		}
	}
	return out
}

func (tr *Tree) lookupRef(r *resolvedRef) (*Type, bool) {
	mod, ok := tr.modules[r.module]
	if !ok {
		return nil, false
	}
	return mod.Type(r.name)
}

// Stats counts what the tree will emit.
type Stats struct {
	Modules    int
	Types      int
	Records    int
	Singletons int
	Unions     int
	Variants   int
	Methods    int
}

func (tr *Tree) Stats() Stats {
	var s Stats
	for _, m := range tr.Modules {
		s.Modules++
		s.Methods += len(m.Methods)
		for _, t := range m.Types {
			s.Types++
			switch t.Kind() {
			case KindSingleton:
				s.Singletons++
			case KindRecord:
				s.Records++
			case KindUnion:
				s.Unions++
				s.Variants += len(t.Constructors)
			}
		}
	}
	return s
}

// Conflict is one reason a tree cannot be emitted.
type Conflict struct {
	Reason string
	Names  []string
}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s: %s", c.Reason, strings.Join(c.Names, ", "))
}

// AggregationError collects every conflict found by Validate.
type AggregationError struct {
	Conflicts []Conflict
}

func (e *AggregationError) Error() string {
	var merr *multierror.Error
	for _, c := range e.Conflicts {
		merr = multierror.Append(merr, c)
	}
	return "compiler: aggregation failed: " + merr.Error()
}

func (e *AggregationError) Unwrap() error { return ErrAggregation }

// Validate reports duplicate ids anywhere in the schema and Go name
// collisions the emitter would produce. All conflicts are returned together.
func (tr *Tree) Validate(t *Translator, emitMethods bool) error {
	var conflicts []Conflict

	seen := make(map[int32]string, len(tr.owners))
	for _, o := range tr.owners {
		if prev, dup := seen[o.id]; dup {
			conflicts = append(conflicts, Conflict{
				Reason: fmt.Sprintf("duplicate id %#08x", uint32(o.id)),
				Names:  []string{prev, o.name},
			})
			continue
		}
		seen[o.id] = o.name
	}

	for _, mod := range tr.SortedModules() {
		for _, typ := range mod.SortedTypes() {
			if typ.Boxed() {
				conflicts = append(conflicts, variantCollisions(t, typ)...)
			}
			for _, c := range typ.Constructors {
				conflicts = append(conflicts, paramCollisions(t, mod.Name, c.Predicate, c.Params)...)
				conflicts = append(conflicts, tr.missingReferences(t, mod.Name, c.Predicate, c.Params)...)
			}
		}
		if emitMethods {
			for _, m := range mod.Methods {
				conflicts = append(conflicts, paramCollisions(t, mod.Name, m.Method, m.Params)...)
				conflicts = append(conflicts, tr.missingReferences(t, mod.Name, m.Method, m.Params)...)
			}
		}
	}
	conflicts = append(conflicts, declCollisions(t, tr, emitMethods)...)

	conflicts = dedupe(conflicts)
	if len(conflicts) == 0 {
		return nil
	}
	return &AggregationError{Conflicts: conflicts}
}

// dedupe drops conflicts naming the same sources as an earlier one. A variant
// collision is also a declaration collision; it is reported once.
func dedupe(conflicts []Conflict) []Conflict {
	seen := make(map[string]struct{}, len(conflicts))
	out := conflicts[:0]
	for _, c := range conflicts {
		key := strings.Join(c.Names, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func variantCollisions(t *Translator, typ *Type) []Conflict {
	var out []Conflict
	seen := make(map[string]string, len(typ.Constructors))
	for _, c := range typ.Constructors {
		name := ExportedName(typ.Module, t.Identifier(c.Predicate, typ.Module))
		if prev, dup := seen[name]; dup {
			out = append(out, Conflict{
				Reason: fmt.Sprintf("variants of %s both translate to %s", typ.Qualified(), name),
				Names:  []string{prev, c.Predicate},
			})
			continue
		}
		seen[name] = c.Predicate
	}
	return out
}

func paramCollisions(t *Translator, module, owner string, params []schema.Parameter) []Conflict {
	var out []Conflict
	seen := make(map[string]string, len(params))
	for _, p := range params {
		name := fieldName(t, p.Name, module)
		if !token.IsIdentifier(name) {
			out = append(out, Conflict{
				Reason: fmt.Sprintf("parameter of %s is not a valid Go identifier", owner),
				Names:  []string{p.Name},
			})
			continue
		}
		if prev, dup := seen[name]; dup {
			out = append(out, Conflict{
				Reason: fmt.Sprintf("parameters of %s both translate to %s", owner, name),
				Names:  []string{prev, p.Name},
			})
			continue
		}
		seen[name] = p.Name
	}
	return out
}

// missingReferences reports module-qualified parameter types with no
// aggregated type behind them. Bare names may be declared by hand next to the
// generated code; a qualified one has nowhere else to come from. References
// that do not parse are left to the emitter.
func (tr *Tree) missingReferences(t *Translator, module, owner string, params []schema.Parameter) []Conflict {
	var out []Conflict
	for _, p := range params {
		ref, err := t.resolve(p.Type, module)
		if err != nil {
			continue
		}
		for ref.kind == refSequence {
			ref = ref.elem
		}
		if ref.kind != refNamed || ref.module == "" {
			continue
		}
		if _, ok := tr.lookupRef(ref); !ok {
			out = append(out, Conflict{
				Reason: fmt.Sprintf("parameter of %s refers to an undeclared type", owner),
				Names:  []string{p.Name + ":" + p.Type},
			})
		}
	}
	return out
}

// declCollisions checks every top-level name across all modules, which share
// one generated package.
func declCollisions(t *Translator, tr *Tree, emitMethods bool) []Conflict {
	var out []Conflict
	seen := make(map[string]string)
	typeNames := tr.declaredTypes()
	var decls []declaration
	for _, mod := range tr.SortedModules() {
		decls = append(decls, declarations(t, mod, emitMethods, typeNames)...)
	}
	for _, d := range decls {
		if !token.IsIdentifier(d.goName) {
			out = append(out, Conflict{
				Reason: "declaration is not a valid Go identifier",
				Names:  []string{d.source},
			})
			continue
		}
		if prev, dup := seen[d.goName]; dup {
			out = append(out, Conflict{
				Reason: fmt.Sprintf("declarations in package %s both named %s", t.RootPackage(), d.goName),
				Names:  []string{prev, d.source},
			})
			continue
		}
		seen[d.goName] = d.source
	}
	return out
}

// methodNames are the generated methods a field name must not shadow.
var methodNames = map[string]struct{}{
	"TLID":        {},
	"MarshalTL":   {},
	"UnmarshalTL": {},
}

func fieldName(t *Translator, param, module string) string {
	name := declName(t.Identifier(param, module))
	if _, clash := methodNames[name]; clash {
		name += "_"
	}
	return name
}

type declaration struct {
	goName string
	source string
}

// declarations lists every top-level Go name the emitter declares for mod,
// in emission order. typeNames holds the type names of the whole package.
func declarations(t *Translator, mod *Module, emitMethods bool, typeNames map[string]struct{}) []declaration {
	var out []declaration
	for _, typ := range mod.SortedTypes() {
		name := typ.GoName()
		out = append(out, declaration{goName: name, source: typ.Qualified()})
		if !typ.Boxed() {
			continue
		}
		out = append(out, declaration{goName: name + "Table", source: typ.Qualified() + " table"})
		for _, c := range typ.Constructors {
			out = append(out, declaration{goName: variantName(t, c.Predicate, mod.Name, typeNames), source: c.Predicate})
		}
	}
	if emitMethods {
		for _, m := range mod.SortedMethods() {
			out = append(out, declaration{goName: requestName(t, m.Method, mod.Name), source: m.Method})
		}
	}
	return out
}

// variantName names the struct of one union constructor. A name taken by a
// declared type gets a Ctor suffix.
func variantName(t *Translator, predicate, module string, typeNames map[string]struct{}) string {
	name := ExportedName(module, t.Identifier(predicate, module))
	if _, taken := typeNames[name]; taken {
		name += "Ctor"
	}
	return name
}

func requestName(t *Translator, method, module string) string {
	return ExportedName(module, t.Identifier(method, module)) + "Request"
}
