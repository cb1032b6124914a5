package compiler

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goKeywords are the identifiers a generated name may never be spelled as.
// "type" is the one schema field name that hits this in practice.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}

// initialisms keep Go's spelling for well-known abbreviations in GoName.
var initialisms = map[string]string{
	"api":  "API",
	"dc":   "DC",
	"http": "HTTP",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"ttl":  "TTL",
	"url":  "URL",
}

type primitive struct {
	goType string
	// kind is the suffix of the wire.Visitor and wire.Decoder methods.
	kind string
}

var primitives = map[string]primitive{
	"string": {goType: "string", kind: "String"},
	"Bool":   {goType: "bool", kind: "Bool"},
	"int":    {goType: "int32", kind: "Int32"},
	"long":   {goType: "int64", kind: "Int64"},
	"double": {goType: "float64", kind: "Float64"},
	"bytes":  {goType: "[]byte", kind: "Bytes"},
}

// Translator maps schema names and type references onto Go spellings. It is
// stateless after construction: the same input always produces the same
// output.
type Translator struct {
	rootPkg  string
	reserved map[string]struct{}
}

// NewTranslator returns a Translator whose externally declared types live in
// the package rootPkg. extra extends the reserved-word table.
func NewTranslator(rootPkg string, extra ...string) *Translator {
	t := &Translator{
		rootPkg:  rootPkg,
		reserved: make(map[string]struct{}, len(goKeywords)+len(extra)),
	}
	for _, w := range goKeywords {
		t.reserved[w] = struct{}{}
	}
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			t.reserved[w] = struct{}{}
		}
	}
	return t
}

func (t *Translator) RootPackage() string { return t.rootPkg }

// Reserved reports whether id is rewritten by Identifier.
func (t *Translator) Reserved(id string) bool {
	_, ok := t.reserved[id]
	return ok
}

func (t *Translator) escape(id string) string {
	if t.Reserved(id) {
		return id + "_"
	}
	return id
}

// Identifier translates a schema identifier seen from currentModule. A
// qualifier naming currentModule is dropped; reserved words get a trailing
// underscore.
func (t *Translator) Identifier(id, currentModule string) string {
	if mod, local, ok := strings.Cut(id, "."); ok {
		if mod == currentModule {
			return t.escape(local)
		}
		return mod + "." + t.escape(local)
	}
	return t.escape(id)
}

// generatedLocals are the names generated methods bind locally. A package
// qualifier spelled like one of them would be shadowed.
var generatedLocals = map[string]struct{}{
	"m":   {},
	"v":   {},
	"d":   {},
	"err": {},
}

// PackageName is the package qualifier TypeReference uses for a schema
// module. The emitter names the module's file after it.
func (t *Translator) PackageName(module string) string {
	if module == "" {
		return t.rootPkg
	}
	if module == "wire" || module == t.rootPkg || t.Reserved(module) || generatedLocal(module) {
		return module + "_"
	}
	return module
}

func generatedLocal(name string) bool {
	if _, ok := generatedLocals[name]; ok {
		return true
	}
	// e0, e1, ... name sequence elements.
	if len(name) < 2 || name[0] != 'e' {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GoName turns a translated identifier into an exported Go name:
// server_nonce becomes ServerNonce and type_ becomes Type. A module prefix
// is kept as is.
func GoName(id string) string {
	prefix := ""
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		prefix, id = id[:i+1], id[i+1:]
	}
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, part := range strings.Split(id, "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(caser.String(part))
	}
	if b.Len() == 0 {
		return prefix + "X"
	}
	return prefix + b.String()
}

// declName is GoName with any module prefix folded into the name, for
// declarations that must be a single identifier.
func declName(id string) string {
	return strings.ReplaceAll(GoName(id), ".", "")
}

// ExportedName is the declaration name of id, a translated identifier seen
// from module, in the generated package. Every module shares that package,
// so names outside the root module carry the module as a prefix:
// auth.sentCode becomes AuthSentCode.
func ExportedName(module, id string) string {
	if mod, local, ok := strings.Cut(id, "."); ok {
		module, id = mod, local
	}
	if module == "" {
		return GoName(id)
	}
	return GoName(module) + GoName(id)
}

type refKind int

const (
	refPrimitive refKind = iota
	refSequence
	refNamed
)

// resolvedRef is a type reference resolved against one module.
type resolvedRef struct {
	kind refKind
	prim primitive
	elem *resolvedRef
	// module and name locate a named type in the schema.
	module string
	name   string
	// goType is the spelling TypeReference returns, qualified by package
	// for names outside the current module.
	goType string
	// decl is the spelling inside the generated package.
	decl string
}

// TypeReference translates a schema type reference seen from currentModule
// into its Go spelling.
func (t *Translator) TypeReference(ref, currentModule string) (string, error) {
	r, err := t.resolve(ref, currentModule)
	if err != nil {
		return "", err
	}
	return r.goType, nil
}

func (t *Translator) resolve(ref, currentModule string) (*resolvedRef, error) {
	parsed, err := parseTypeRef(ref)
	if err != nil {
		return nil, err
	}
	return t.resolveParsed(ref, parsed, currentModule)
}

func (t *Translator) resolveParsed(ref string, r *typeRef, currentModule string) (*resolvedRef, error) {
	if r.Arg != nil {
		if r.qualified() || !sequenceWrapper(r.Name) {
			return nil, fmt.Errorf("%w %q: unknown generic wrapper %s", ErrTypeReference, ref, r.Name)
		}
		elem, err := t.resolveParsed(ref, r.Arg, currentModule)
		if err != nil {
			return nil, err
		}
		return &resolvedRef{kind: refSequence, elem: elem, goType: "[]" + elem.goType, decl: "[]" + elem.decl}, nil
	}
	if r.qualified() {
		return t.named(r.Name, r.Local, currentModule), nil
	}
	if p, ok := primitives[r.Name]; ok {
		return &resolvedRef{kind: refPrimitive, prim: p, goType: p.goType, decl: p.goType}, nil
	}
	if sequenceWrapper(r.Name) {
		return nil, fmt.Errorf("%w %q: %s needs an element type", ErrTypeReference, ref, r.Name)
	}
	// Any other bare name is declared in the root package.
	return t.named("", r.Name, currentModule), nil
}

func (t *Translator) named(module, name, currentModule string) *resolvedRef {
	goType := GoName(name)
	if module != currentModule {
		goType = t.PackageName(module) + "." + goType
	}
	return &resolvedRef{kind: refNamed, module: module, name: name, goType: goType, decl: ExportedName(module, name)}
}
