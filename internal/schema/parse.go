package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

var ErrParse = errors.New("schema: parse error")

// ParseError reports why a schema document was rejected. Path locates the
// offending value, e.g. "constructors[3].params[0].type".
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "schema"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// Pointer fields tell a missing key apart from a zero value.
type rawSchema struct {
	Constructors *[]rawConstructor `json:"constructors"`
	Methods      *[]rawMethod      `json:"methods"`
}

type rawConstructor struct {
	ID        json.RawMessage `json:"id"`
	Predicate *string         `json:"predicate"`
	Params    *[]rawParameter `json:"params"`
	Type      *string         `json:"type"`
}

type rawMethod struct {
	ID     json.RawMessage `json:"id"`
	Method *string         `json:"method"`
	Params *[]rawParameter `json:"params"`
	Type   *string         `json:"type"`
}

type rawParameter struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// ParseReader reads the whole of r and parses it.
func ParseReader(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schema: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON schema document. Either the whole document is valid
// and a Schema is returned, or a *ParseError is.
func Parse(data []byte) (*Schema, error) {
	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError(err)
	}
	if raw.Constructors == nil {
		return nil, missing("", "constructors")
	}
	if raw.Methods == nil {
		return nil, missing("", "methods")
	}

	s := &Schema{
		Constructors: make([]Constructor, 0, len(*raw.Constructors)),
		Methods:      make([]Method, 0, len(*raw.Methods)),
	}
	for i, rc := range *raw.Constructors {
		c, err := rc.resolve(fmt.Sprintf("constructors[%d]", i))
		if err != nil {
			return nil, err
		}
		s.Constructors = append(s.Constructors, c)
	}
	for i, rm := range *raw.Methods {
		m, err := rm.resolve(fmt.Sprintf("methods[%d]", i))
		if err != nil {
			return nil, err
		}
		s.Methods = append(s.Methods, m)
	}
	log.Debug().
		Int("constructors", len(s.Constructors)).
		Int("methods", len(s.Methods)).
		Msg("schema parsed")
	return s, nil
}

func (rc rawConstructor) resolve(path string) (Constructor, error) {
	id, err := parseID(path, rc.ID)
	if err != nil {
		return Constructor{}, err
	}
	if rc.Predicate == nil {
		return Constructor{}, missing(path, "predicate")
	}
	if rc.Type == nil {
		return Constructor{}, missing(path, "type")
	}
	params, err := resolveParams(path, rc.Params)
	if err != nil {
		return Constructor{}, err
	}
	return Constructor{ID: id, Predicate: *rc.Predicate, Params: params, Type: *rc.Type}, nil
}

func (rm rawMethod) resolve(path string) (Method, error) {
	id, err := parseID(path, rm.ID)
	if err != nil {
		return Method{}, err
	}
	if rm.Method == nil {
		return Method{}, missing(path, "method")
	}
	if rm.Type == nil {
		return Method{}, missing(path, "type")
	}
	params, err := resolveParams(path, rm.Params)
	if err != nil {
		return Method{}, err
	}
	return Method{ID: id, Method: *rm.Method, Params: params, Type: *rm.Type}, nil
}

func resolveParams(path string, raw *[]rawParameter) ([]Parameter, error) {
	if raw == nil {
		return nil, missing(path, "params")
	}
	params := make([]Parameter, 0, len(*raw))
	for i, rp := range *raw {
		at := fmt.Sprintf("%s.params[%d]", path, i)
		if rp.Name == nil {
			return nil, missing(at, "name")
		}
		if rp.Type == nil {
			return nil, missing(at, "type")
		}
		params = append(params, Parameter{Name: *rp.Name, Type: *rp.Type})
	}
	return params, nil
}

// parseID accepts a JSON number or a decimal string holding a signed 32-bit
// integer.
func parseID(path string, raw json.RawMessage) (int32, error) {
	text := string(bytes.TrimSpace(raw))
	if text == "" || text == "null" {
		return 0, missing(path, "id")
	}
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, &ParseError{Path: path + ".id", Reason: "malformed string", Err: err}
		}
		text = s
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ParseError{Path: path + ".id", Reason: fmt.Sprintf("malformed number %q", text), Err: err}
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &ParseError{Path: path + ".id", Reason: fmt.Sprintf("%d is outside the 32-bit range", n)}
	}
	return int32(n), nil
}

func missing(path, field string) error {
	if path != "" {
		path += "."
	}
	return &ParseError{Path: path + field, Reason: "missing required field"}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ParseError{
			Path:   typeErr.Field,
			Reason: fmt.Sprintf("wrong JSON shape: got %s, want %s", typeErr.Value, typeErr.Type),
			Err:    err,
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Reason: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset), Err: err}
	}
	return &ParseError{Reason: "malformed JSON", Err: err}
}
