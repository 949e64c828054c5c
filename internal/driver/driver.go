// Package driver runs the template families over the configured arity range
// and collects what they emit.
package driver

import (
	"fmt"

	"github.com/apex/log"

	"github.com/grafana/zipgen/internal/codejen"
	"github.com/grafana/zipgen/internal/config"
	"github.com/grafana/zipgen/internal/family"
)

// Generator is the name written in the header of every generated file.
const Generator = "zipgen"

// Output is the result of one run.
type Output struct {
	// FS holds the files to write below the output directory: the finisher
	// declarations and, in files mode, one zip_gen.go per target.
	FS *codejen.FS

	// Listing holds the concatenated combinator bodies in listing mode, and
	// is nil otherwise.
	Listing []byte
}

// Run validates cfg and renders the families of fams it selects, for every
// arity of its range. Nothing is returned unless every family rendered
// cleanly for every arity.
func Run(cfg config.Config, fams []family.Family) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selected := family.Select(fams, cfg.ParsedTargets(), cfg.ParsedShapes())
	var decls, combinators []family.Family
	for _, f := range selected {
		if f.Shape == family.Declaration {
			decls = append(decls, f)
		} else {
			combinators = append(combinators, f)
		}
	}
	family.SortCombinators(combinators)
	arities := cfg.Arities()
	log.Debugf("rendering %d families for arities %d..%d", len(selected), cfg.MinArity, cfg.MaxArity)

	files := newList()
	for _, f := range decls {
		files.AppendOneToOne(declarationJenny{fam: f})
	}
	if cfg.Mode() == config.Files {
		for _, target := range cfg.ParsedTargets() {
			j := combinatorJenny{target: target, importPath: cfg.ImportPath}
			for _, f := range combinators {
				if f.Target == target {
					j.fams = append(j.fams, f)
				}
			}
			files.AppendManyToOne(j)
		}
	}
	log.Debugf("running %v", files.Names())

	jfs, err := files.GenerateFS(arities)
	if err != nil {
		return nil, err
	}
	if jfs == nil {
		jfs = codejen.NewFS()
	}
	out := &Output{FS: jfs}

	if cfg.Mode() == config.Listing {
		listing := newList()
		listing.AppendManyToOne(listingJenny{fams: combinators})
		lfs, err := listing.GenerateFS(arities)
		if err != nil {
			return nil, err
		}
		if f, ok := lfs.Get(ListingFile); ok {
			out.Listing = f.Data
		}
	}

	log.Debugf("generated %d files", out.FS.Len())
	return out, nil
}

func newList() *codejen.JennyList[family.Arity] {
	jl := codejen.JennyListWithNamer(func(n family.Arity) string {
		return fmt.Sprintf("arity %d", n)
	})
	jl.AddPostprocessors(codejen.HeaderMapper(Generator), codejen.GofmtMapper())
	return jl
}
