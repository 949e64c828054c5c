package driver

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"

	"github.com/grafana/zipgen/internal/codejen"
	"github.com/grafana/zipgen/internal/family"
	"github.com/grafana/zipgen/internal/naming"
)

// ListingFile is the path the listing is generated at. It is never written
// to disk.
const ListingFile = "zipgen.listing"

// declarationJenny renders one finisher file per arity.
type declarationJenny struct {
	fam family.Family
}

var _ codejen.OneToOne[family.Arity] = declarationJenny{}

func (j declarationJenny) JennyName() string {
	return "DeclarationJenny[" + j.fam.Name() + "]"
}

func (j declarationJenny) Generate(n family.Arity) (*codejen.File, error) {
	body, err := j.fam.Render(n)
	if err != nil {
		return nil, err
	}
	pkg := j.fam.Target.Package()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.Write(body)
	return &codejen.File{
		RelativePath: path.Join(pkg, naming.FinisherFile(int(n))),
		Data:         buf.Bytes(),
	}, nil
}

// combinatorJenny renders the combinator families of one target, for every
// arity, into that target's zip_gen.go.
type combinatorJenny struct {
	target     family.Target
	fams       []family.Family
	importPath string
}

var _ codejen.ManyToOne[family.Arity] = combinatorJenny{}

func (j combinatorJenny) JennyName() string {
	return "CombinatorJenny[" + string(j.target) + "]"
}

func (j combinatorJenny) imports() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, f := range j.fams {
		for _, t := range f.Imports {
			p := path.Join(j.importPath, t.Package())
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	sort.Strings(paths)
	return paths
}

func (j combinatorJenny) Generate(arities []family.Arity) (*codejen.File, error) {
	if len(j.fams) == 0 || len(arities) == 0 {
		return nil, nil
	}
	pkg := j.target.Package()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n", pkg)
	if imports := j.imports(); len(imports) > 0 {
		buf.WriteString("\nimport (\n")
		for _, p := range imports {
			fmt.Fprintf(&buf, "\t%q\n", p)
		}
		buf.WriteString(")\n")
	}
	for _, f := range j.fams {
		for _, n := range arities {
			body, err := f.Render(n)
			if err != nil {
				return nil, err
			}
			buf.WriteByte('\n')
			buf.Write(body)
		}
	}
	return &codejen.File{
		RelativePath: path.Join(pkg, naming.CombinatorFile),
		Data:         buf.Bytes(),
	}, nil
}

// listingJenny concatenates every combinator family, for every arity, into
// one listing meant to be pasted into hand-written code. Each family starts
// with a "// >>>> <target> <shape>" marker.
type listingJenny struct {
	fams []family.Family
}

var _ codejen.ManyToOne[family.Arity] = listingJenny{}

func (j listingJenny) JennyName() string {
	return "ListingJenny"
}

func (j listingJenny) Generate(arities []family.Arity) (*codejen.File, error) {
	if len(j.fams) == 0 || len(arities) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	for i, f := range j.fams {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "// >>>> %s %s\n", f.Target, f.Shape)
		for _, n := range arities {
			body, err := f.Render(n)
			if err != nil {
				return nil, err
			}
			buf.WriteByte('\n')
			buf.Write(body)
		}
	}

	// a listing is a list of declarations, which gofmt accepts on its own
	data, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt listing: %w", err)
	}
	return &codejen.File{
		RelativePath: ListingFile,
		Data:         data,
	}, nil
}
