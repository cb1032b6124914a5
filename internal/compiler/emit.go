package compiler

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/txtar"
)

// Report describes one emission run.
type Report struct {
	// Files lists the archive members in order.
	Files []string
	// Unresolved lists bare type references with no constructor in the
	// schema. They are emitted as bare types assumed to be declared by hand
	// in the generated package.
	Unresolved []string
}

// Emitter renders an aggregated tree as a txtar archive holding one Go
// package, with one source file per module.
type Emitter struct {
	opts Options
	tr   *Translator
}

func NewEmitter(tr *Translator, opts Options) *Emitter {
	return &Emitter{opts: opts.withDefaults(), tr: tr}
}

// Emit renders tree and writes the archive to w.
func (e *Emitter) Emit(w io.Writer, tree *Tree) error {
	_, err := e.EmitReport(w, tree)
	return err
}

// EmitReport is Emit that also returns what was emitted. Nothing is written
// to w unless rendering succeeds.
func (e *Emitter) EmitReport(w io.Writer, tree *Tree) (*Report, error) {
	archive, report, err := e.Render(tree)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(txtar.Format(archive)); err != nil {
		return nil, fmt.Errorf("compiler: write archive: %w", err)
	}
	return report, nil
}

// Render builds the archive in memory. The root module's file always comes
// first and carries the package documentation, even when the root module
// declares nothing.
func (e *Emitter) Render(tree *Tree) (*txtar.Archive, *Report, error) {
	archive := &txtar.Archive{
		Comment: []byte(fmt.Sprintf("Code generated by tlgen. DO NOT EDIT.\nimport path: %s\n", e.opts.ImportPath)),
	}
	report := &Report{}
	unresolved := make(map[string]struct{})
	typeNames := tree.declaredTypes()

	modules := tree.SortedModules()
	if len(modules) == 0 || modules[0].Name != "" {
		modules = append([]*Module{newModule("")}, modules...)
	}
	for _, mod := range modules {
		r := newFileRenderer(e.opts, e.tr, tree, mod, typeNames)
		src, err := r.render()
		if err != nil {
			return nil, nil, fmt.Errorf("compiler: emit module %s: %w", moduleLabel(mod.Name), err)
		}
		name := e.filePath(mod.Name)
		archive.Files = append(archive.Files, txtar.File{Name: name, Data: src})
		report.Files = append(report.Files, name)
		for kind := range r.unresolved {
			unresolved[kind] = struct{}{}
		}
		log.Debug().Str("module", moduleLabel(mod.Name)).Str("file", name).Int("bytes", len(src)).Msg("module emitted")
	}

	for kind := range unresolved {
		report.Unresolved = append(report.Unresolved, kind)
	}
	sort.Strings(report.Unresolved)
	if len(report.Unresolved) > 0 {
		log.Warn().Strs("types", report.Unresolved).Msg("type references without constructors")
	}
	return archive, report, nil
}

// filePath places every module file in the package directory. The _gen
// suffix keeps a module named like a GOOS or GOARCH from turning into a
// build constraint.
func (e *Emitter) filePath(module string) string {
	root := e.tr.RootPackage()
	if module == "" {
		return root + "/" + root + "_gen.go"
	}
	return root + "/" + e.tr.PackageName(module) + "_gen.go"
}

func moduleLabel(name string) string {
	if name == "" {
		return "(root)"
	}
	return name
}
