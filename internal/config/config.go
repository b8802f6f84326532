// Package config loads vesper.toml, a project-level manifest of resolver,
// layout and arena-size settings. The vesperc commands do not read it;
// they run with semantics.DefaultOptions().
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"vesper/internal/irtype"
)

// ResolveConfig controls the fixed-point resolver.
type ResolveConfig struct {
	MaxIterations  int `toml:"max_iterations"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// LayoutConfig controls the IR type mapper's struct-layout target.
type LayoutConfig struct {
	PtrSize  int `toml:"ptr_size"`
	PtrAlign int `toml:"ptr_align"`
}

// TableConfig sizes the scope graph's backing arenas up front.
type TableConfig struct {
	ScopeHint  int `toml:"scope_hint"`
	SymbolHint int `toml:"symbol_hint"`
}

// Config is the decoded shape of vesper.toml.
type Config struct {
	Resolve ResolveConfig `toml:"resolve"`
	Layout  LayoutConfig  `toml:"layout"`
	Table   TableConfig   `toml:"table"`
}

// Default returns the built-in defaults applied when vesper.toml is
// absent or leaves a field unset.
func Default() Config {
	return Config{
		Resolve: ResolveConfig{MaxIterations: 10, MaxDiagnostics: 100},
		Layout:  LayoutConfig{PtrSize: 8, PtrAlign: 8},
		Table:   TableConfig{ScopeHint: 64, SymbolHint: 256},
	}
}

// Target renders the decoded layout settings as an irtype.Target.
func (c Config) Target() irtype.Target {
	return irtype.Target{
		PtrSize:  uint32(c.Layout.PtrSize),
		PtrAlign: uint32(c.Layout.PtrAlign),
	}
}

// Load reads vesper.toml from dir, falling back field-by-field to
// Default() for anything the file leaves unset. A missing file is not an
// error — it simply yields Default().
func Load(dir string) (Config, error) {
	cfg := Default()
	path := filepath.Join(dir, "vesper.toml")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), err
	}

	if !meta.IsDefined("resolve", "max_iterations") || cfg.Resolve.MaxIterations <= 0 {
		cfg.Resolve.MaxIterations = Default().Resolve.MaxIterations
	}
	if !meta.IsDefined("resolve", "max_diagnostics") {
		cfg.Resolve.MaxDiagnostics = Default().Resolve.MaxDiagnostics
	}
	if !meta.IsDefined("layout", "ptr_size") || cfg.Layout.PtrSize <= 0 {
		cfg.Layout.PtrSize = Default().Layout.PtrSize
	}
	if !meta.IsDefined("layout", "ptr_align") || cfg.Layout.PtrAlign <= 0 {
		cfg.Layout.PtrAlign = Default().Layout.PtrAlign
	}
	if !meta.IsDefined("table", "scope_hint") {
		cfg.Table.ScopeHint = Default().Table.ScopeHint
	}
	if !meta.IsDefined("table", "symbol_hint") {
		cfg.Table.SymbolHint = Default().Table.SymbolHint
	}

	return cfg, nil
}

// FindProjectRoot walks up from dir looking for a vesper.toml, mirroring
// the teacher's findSurgeToml. It returns ("", false) if none is found
// before reaching the filesystem root — not an error, since a project
// root is optional.
func FindProjectRoot(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(current, "vesper.toml")); err == nil {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
