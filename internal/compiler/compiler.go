// Package compiler turns a parsed TL schema into Go declarations that drive
// the wire codec.
package compiler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/danmuck/tlwire/internal/logging"
	"github.com/danmuck/tlwire/internal/observability"
	"github.com/danmuck/tlwire/internal/schema"
)

// Options controls one compilation.
type Options struct {
	// Package is the name of the generated package.
	Package string
	// ImportPath is the import path of the generated package.
	ImportPath string
	// Exclude lists schema kinds that are never emitted, in addition to the
	// built-in markers.
	Exclude []string
	// ReservedWords extends the identifiers that get a trailing underscore.
	ReservedWords []string
	// EmitMethods adds a request record per schema method.
	EmitMethods bool
}

func DefaultOptions() Options {
	return Options{
		Package:     "tl",
		ImportPath:  "example.com/tl",
		EmitMethods: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Package == "" {
		o.Package = d.Package
	}
	if o.ImportPath == "" {
		o.ImportPath = d.ImportPath
	}
	return o
}

// Result summarizes a successful compilation.
type Result struct {
	Stats      Stats
	Bytes      int
	Files      []string
	Unresolved []string
}

// Kinds returns the emitted type counts keyed by kind.
func (r *Result) Kinds() map[string]int {
	return map[string]int{
		string(KindSingleton): r.Stats.Singletons,
		string(KindRecord):    r.Stats.Records,
		string(KindUnion):     r.Stats.Unions,
	}
}

// Compile aggregates and validates s, then writes the generated archive to
// w. Nothing reaches w when any stage fails.
func Compile(s *schema.Schema, w io.Writer, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	logger := logging.Logger("compiler")
	tr := NewTranslator(opts.Package, opts.ReservedWords...)

	done := observability.Stage(logger, "aggregate")
	tree := Aggregate(s, opts.Exclude)
	done(nil)

	done = observability.Stage(logger, "validate")
	err := tree.Validate(tr, opts.EmitMethods)
	done(err)
	if err != nil {
		return nil, err
	}

	done = observability.Stage(logger, "emit")
	var buf bytes.Buffer
	report, err := NewEmitter(tr, opts).EmitReport(&buf, tree)
	done(err)
	if err != nil {
		return nil, err
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compiler: write output: %w", err)
	}
	return &Result{
		Stats:      tree.Stats(),
		Bytes:      n,
		Files:      report.Files,
		Unresolved: report.Unresolved,
	}, nil
}

// Translate reads the schema at input and writes the generated archive to
// output. The output file is replaced atomically: on any error it is left
// untouched.
func Translate(input, output string, opts Options) (res *Result, err error) {
	start := time.Now()
	logger := logging.Logger("compiler")
	defer func() {
		var kinds map[string]int
		size := 0
		if res != nil {
			kinds, size = res.Kinds(), res.Bytes
		}
		observability.RecordTranslation(err, time.Since(start), kinds, size)
	}()

	done := observability.Stage(logger, "parse")
	data, err := os.ReadFile(input)
	if err != nil {
		err = fmt.Errorf("compiler: read schema: %w", err)
		done(err)
		return nil, err
	}
	s, err := schema.Parse(data)
	done(err)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	res, err = Compile(s, &buf, opts)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(output, buf.Bytes()); err != nil {
		return nil, err
	}

	logger.Info().
		Str("input", input).
		Str("output", output).
		Int("types", res.Stats.Types).
		Int("methods", res.Stats.Methods).
		Int("bytes", res.Bytes).
		Dur("duration", time.Since(start)).
		Msg("schema translated")
	return res, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("compiler: create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("compiler: write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("compiler: close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("compiler: chmod output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("compiler: replace output: %w", err)
	}
	return nil
}
