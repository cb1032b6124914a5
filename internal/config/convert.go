package config

import "github.com/danmuck/tlwire/internal/compiler"

// CompilerOptions maps a loaded config onto compiler options.
func CompilerOptions(cfg Config) compiler.Options {
	return compiler.Options{
		Package:       cfg.Package,
		ImportPath:    cfg.ImportPath,
		Exclude:       append([]string(nil), cfg.Exclude...),
		ReservedWords: append([]string(nil), cfg.ReservedWords...),
		EmitMethods:   cfg.EmitMethods,
	}
}
