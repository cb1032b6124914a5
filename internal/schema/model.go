// Package schema holds the parsed form of a TL JSON schema.
package schema

import "strings"

// Parameter is one named, typed field of a constructor or method.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Constructor is one record shape of a type. Ids are unique across all
// constructors and methods of a schema.
type Constructor struct {
	ID        int32       `json:"id"`
	Predicate string      `json:"predicate"`
	Params    []Parameter `json:"params"`
	Type      string      `json:"type"`
}

// Method is a remote call; Type names its result.
type Method struct {
	ID     int32       `json:"id"`
	Method string      `json:"method"`
	Params []Parameter `json:"params"`
	Type   string      `json:"type"`
}

type Schema struct {
	Constructors []Constructor `json:"constructors"`
	Methods      []Method      `json:"methods"`
}

// SplitQualified splits a kind on its first '.' into a module and a bare
// name. Unqualified kinds belong to the root module "".
func SplitQualified(kind string) (module, name string) {
	if mod, rest, ok := strings.Cut(kind, "."); ok {
		return mod, rest
	}
	return "", kind
}

// Builtin reports whether kind is one of the markers the compiler never
// emits.
func Builtin(kind string) bool {
	switch kind {
	case "Bool", "True", "Vector t", "Null":
		return true
	}
	return false
}
