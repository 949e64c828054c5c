// Package config holds the zipgen configuration: the arity range, which
// combinator families to generate and where the output goes.
//
// A configuration is built once at start (defaults, then an optional hujson
// file, then command line flags) and validated before anything is
// rendered.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/tailscale/hujson"

	"github.com/grafana/zipgen/internal/family"
)

// Validation errors. Validate wraps them with the offending value.
var (
	ErrInvalidArity    = errors.New("arity must be at least 2")
	ErrArityRange      = errors.New("max_arity must not be below min_arity")
	ErrUnknownTarget   = errors.New("unknown target")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownEmitMode = errors.New("unknown emit mode")
	ErrMissingTarget   = errors.New("missing required target")
	ErrNoTargets       = errors.New("at least one target is required")
)

// EmitMode selects where combinator bodies are written.
type EmitMode string

const (
	// Files writes one zip_gen.go per target package.
	Files EmitMode = "files"
	// Listing concatenates every combinator body into one listing meant
	// for manual inclusion.
	Listing EmitMode = "listing"
)

// ParseEmitMode parses an emit mode by name or by its long alias.
func ParseEmitMode(s string) (EmitMode, bool) {
	switch s {
	case "files", "file-per-interface":
		return Files, true
	case "listing", "concatenated-listing":
		return Listing, true
	}
	return "", false
}

// DefaultImportPath is the import path of the module hosting the finisher,
// result, program and fiber packages.
const DefaultImportPath = "github.com/grafana/zipgen"

// Config is the zipgen configuration.
type Config struct {
	// MinArity is the smallest arity generated. It must be at least 2.
	MinArity int `json:"min_arity"`

	// MaxArity is the largest arity generated.
	MaxArity int `json:"max_arity"`

	// Targets lists the combinator targets, by name or long alias.
	Targets []string `json:"targets"`

	// Shapes lists the combinator shapes.
	Shapes []string `json:"shapes"`

	// EmitMode is either "files" or "listing".
	EmitMode string `json:"emit_mode"`

	// ImportPath is the import path of the module hosting the generated
	// packages.
	ImportPath string `json:"import_path"`

	// OutDir is the directory generated files are written below.
	OutDir string `json:"out_dir"`
}

// Default returns the configuration generating everything, for arities
// 2 through 9, into the current directory.
func Default() Config {
	return Config{
		MinArity:   2,
		MaxArity:   9,
		Targets:    []string{string(family.Result), string(family.Program), string(family.Fiber)},
		Shapes:     []string{string(family.Sequential), string(family.Parallel)},
		EmitMode:   string(Files),
		ImportPath: DefaultImportPath,
		OutDir:     ".",
	}
}

// Load reads the hujson file at path on top of the defaults. Keys missing
// from the file keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes hujson data (JSON with comments and trailing commas)
// into cfg.
func Decode(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports every invalid value of the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.MinArity < int(family.MinArity) {
		result = multierror.Append(result, fmt.Errorf("%w: min_arity is %d", ErrInvalidArity, c.MinArity))
	}
	if c.MaxArity < int(family.MinArity) {
		result = multierror.Append(result, fmt.Errorf("%w: max_arity is %d", ErrInvalidArity, c.MaxArity))
	}
	if c.MaxArity < c.MinArity {
		result = multierror.Append(result, fmt.Errorf("%w: %d < %d", ErrArityRange, c.MaxArity, c.MinArity))
	}

	if len(c.Targets) == 0 {
		result = multierror.Append(result, ErrNoTargets)
	}
	for _, t := range c.Targets {
		if _, ok := family.ParseTarget(t); !ok {
			result = multierror.Append(result, fmt.Errorf("%w %q", ErrUnknownTarget, t))
		}
	}
	for _, s := range c.Shapes {
		if _, ok := family.ParseShape(s); !ok {
			result = multierror.Append(result, fmt.Errorf("%w %q", ErrUnknownShape, s))
		}
	}
	if _, ok := ParseEmitMode(c.EmitMode); !ok {
		result = multierror.Append(result, fmt.Errorf("%w %q", ErrUnknownEmitMode, c.EmitMode))
	}

	targets := make(map[family.Target]bool)
	for _, t := range c.ParsedTargets() {
		targets[t] = true
	}
	for _, t := range c.ParsedTargets() {
		for _, s := range c.ParsedShapes() {
			for _, req := range family.Requires(t, s) {
				if !targets[req] {
					result = multierror.Append(result, fmt.Errorf("%w: %s/%s needs %s", ErrMissingTarget, t, s, req))
				}
			}
		}
	}

	return result.ErrorOrNil()
}

// ParsedTargets returns the valid targets, deduplicated, in the order they
// are emitted.
func (c Config) ParsedTargets() []family.Target {
	want := make(map[family.Target]bool)
	for _, name := range c.Targets {
		if t, ok := family.ParseTarget(name); ok {
			want[t] = true
		}
	}
	var out []family.Target
	for _, t := range family.Targets() {
		if want[t] {
			out = append(out, t)
		}
	}
	return out
}

// ParsedShapes returns the valid shapes, deduplicated, in the order they
// are emitted.
func (c Config) ParsedShapes() []family.Shape {
	want := make(map[family.Shape]bool)
	for _, name := range c.Shapes {
		if s, ok := family.ParseShape(name); ok {
			want[s] = true
		}
	}
	var out []family.Shape
	for _, s := range family.Shapes() {
		if want[s] {
			out = append(out, s)
		}
	}
	return out
}

// Mode returns the parsed emit mode, defaulting to Files.
func (c Config) Mode() EmitMode {
	if m, ok := ParseEmitMode(c.EmitMode); ok {
		return m
	}
	return Files
}

// Arities returns every arity of the configured range, in order.
func (c Config) Arities() []family.Arity {
	var out []family.Arity
	for n := c.MinArity; n <= c.MaxArity; n++ {
		out = append(out, family.Arity(n))
	}
	return out
}
