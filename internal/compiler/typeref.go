package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ErrTypeReference = errors.New("compiler: invalid type reference")

// typeRef is the parsed form of a schema type string:
//
//	Name | Module.Name | Wrapper<typeRef>
type typeRef struct {
	Name  string   `parser:"@Ident"`
	Local string   `parser:"( '.' @Ident )?"`
	Arg   *typeRef `parser:"( '<' @@ '>' )?"`
}

var (
	refLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[.<>]`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})
	refParser = participle.MustBuild[typeRef](
		participle.Lexer(refLexer),
		participle.Elide("Whitespace"),
	)
)

func parseTypeRef(ref string) (*typeRef, error) {
	parsed, err := refParser.ParseString("", ref)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrTypeReference, ref, err)
	}
	return parsed, nil
}

func (r *typeRef) qualified() bool { return r.Local != "" }

func (r *typeRef) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if r.Local != "" {
		b.WriteString(".")
		b.WriteString(r.Local)
	}
	if r.Arg != nil {
		b.WriteString("<")
		b.WriteString(r.Arg.String())
		b.WriteString(">")
	}
	return b.String()
}

// sequenceWrapper reports whether name is the generic sequence wrapper.
func sequenceWrapper(name string) bool {
	return name == "Vector" || name == "vector"
}
