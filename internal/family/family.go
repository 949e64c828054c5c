// Package family defines the template families rendered for every arity.
//
// A family is identified by the abstraction it targets and the shape of
// what it emits. Families are plain values: [Defaults] builds a fresh list
// on every call, and the driver receives the list it should run explicitly.
package family

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"text/template"

	"github.com/grafana/zipgen/internal/chain"
	"github.com/grafana/zipgen/internal/naming"
	"github.com/grafana/zipgen/internal/runtimex"
)

// Arity is the number of inputs of a generated declaration.
type Arity int

// MinArity is the smallest arity anything is generated for. A single input
// degenerates to a plain Map, which is hand-written.
const MinArity Arity = 2

// Target is the abstraction a family emits code for.
type Target string

const (
	// Interface is the target of the finisher declarations.
	Interface Target = "interface"
	// Result is the result type, result.Result.
	Result Target = "result"
	// Program is the deferred computation type, program.Program.
	Program Target = "program"
	// Fiber is the concurrent handle type, fiber.Fiber.
	Fiber Target = "fiber"
)

// Targets lists the combinator targets in emission order.
func Targets() []Target {
	return []Target{Result, Program, Fiber}
}

var targetAliases = map[string]Target{
	"result":                    Result,
	"result-type":               Result,
	"program":                   Program,
	"deferred-computation-type": Program,
	"fiber":                     Fiber,
	"concurrent-handle-type":    Fiber,
}

// ParseTarget parses a combinator target by name or by its long alias.
func ParseTarget(s string) (Target, bool) {
	t, ok := targetAliases[s]
	return t, ok
}

// Package returns the directory and package name hosting the target.
func (t Target) Package() string {
	if t == Interface {
		return "finisher"
	}
	return string(t)
}

// Shape is the kind of declaration a family emits.
type Shape string

const (
	// Declaration emits the finisher interface and its helpers.
	Declaration Shape = "declaration"
	// Sequential emits ZipN.
	Sequential Shape = "sequential"
	// Parallel emits ParZipN.
	Parallel Shape = "parallel"
)

// Shapes lists the combinator shapes in emission order.
func Shapes() []Shape {
	return []Shape{Sequential, Parallel}
}

// ParseShape parses a combinator shape.
func ParseShape(s string) (Shape, bool) {
	switch Shape(s) {
	case Sequential, Parallel:
		return Shape(s), true
	}
	return "", false
}

// Family is one template rendered once per arity.
type Family struct {
	// Target is the abstraction the family emits code for.
	Target Target

	// Shape is the kind of declaration emitted.
	Shape Shape

	// Imports lists the targets whose packages the emitted code refers to.
	Imports []Target

	container *chain.Container
	tmpl      *template.Template
}

// Name returns a unique, human readable name for the family.
func (f Family) Name() string {
	return string(f.Target) + "/" + string(f.Shape)
}

// New parses text into a Family. container must be non-nil for every shape
// but Declaration, since it describes what the chain is built over.
func New(target Target, shape Shape, text string, container *chain.Container, imports []Target) (Family, error) {
	if shape != Declaration && container == nil {
		return Family{}, fmt.Errorf("family %s/%s: a container is required", target, shape)
	}
	tmpl, err := template.New(string(target) + "/" + string(shape)).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return Family{}, fmt.Errorf("family %s/%s: %w", target, shape, err)
	}
	return Family{
		Target:    target,
		Shape:     shape,
		Imports:   imports,
		container: container,
		tmpl:      tmpl,
	}, nil
}

// Render executes the family's template for arity n. The output is a list
// of Go declarations without package clause or imports.
func (f Family) Render(n Arity) ([]byte, error) {
	if n < MinArity {
		return nil, fmt.Errorf("family %s: arity %d is below %d", f.Name(), n, MinArity)
	}
	d := Data{
		N:         int(n),
		Last:      int(n) - 1,
		Finisher:  naming.Finisher(int(n)),
		Func:      naming.Func(int(n)),
		Of:        naming.Of(int(n)),
		FirstName: naming.First(int(n)),
		LastName:  naming.Last(int(n)),
		Zip:       naming.Zip(int(n)),
		ParZip:    naming.ParZip(int(n)),
		Output:    naming.Output,
		State:     naming.State,
		Fn:        naming.FinisherArg,
		Exec:      naming.ExecutorArg,
		Res:       naming.NamedResult,
		Combine:   naming.Combine,
	}
	if f.container != nil {
		c, err := chain.Build(int(n), *f.container)
		if err != nil {
			return nil, fmt.Errorf("family %s: %w", f.Name(), err)
		}
		d.Chain = c.Expr(1)
		d.container = *f.container
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("family %s: rendering arity %d: %w", f.Name(), n, err)
	}
	return buf.Bytes(), nil
}

//go:embed templates/*.tmpl
var templates embed.FS

// Containers describing how each combinator target chains its values.
var (
	resultContainer = chain.Container{
		FlatMap: "FlatMap",
		Map:     "Map",
		Var:     naming.ResultVar,
		Type:    "Result[%s]",
	}
	programContainer = chain.Container{
		FlatMap: "FlatMap",
		Map:     "Map",
		Var:     naming.ProgramVar,
		Type:    "Program[S, %s]",
	}
	fiberContainer = chain.Container{
		FlatMap: "FlatMap",
		Map:     "Map",
		Var:     naming.FiberVar,
		Type:    "*Fiber[%s]",
	}
)

// Requires returns the targets whose generated code the (target, shape)
// family calls into, besides its own and the finisher declarations.
func Requires(target Target, shape Shape) []Target {
	if target == Program && shape == Parallel {
		return []Target{Fiber}
	}
	return nil
}

// Defaults returns the families zipgen ships with: the finisher
// declarations, ZipN for every target and ParZipN for programs.
func Defaults() []Family {
	type spec struct {
		target    Target
		shape     Shape
		file      string
		container *chain.Container
		imports   []Target
	}
	specs := []spec{
		{Interface, Declaration, "finisher.tmpl", nil, nil},
		{Result, Sequential, "result_zip.tmpl", &resultContainer, []Target{Interface}},
		{Program, Sequential, "program_zip.tmpl", &programContainer, []Target{Interface}},
		{Program, Parallel, "program_parzip.tmpl", &programContainer, []Target{Fiber, Interface}},
		{Fiber, Sequential, "fiber_zip.tmpl", &fiberContainer, []Target{Interface}},
	}

	families := make([]Family, 0, len(specs))
	for _, s := range specs {
		text, err := templates.ReadFile("templates/" + s.file)
		runtimex.PanicOnError(err, "reading embedded template")
		f, err := New(s.target, s.shape, string(text), s.container, s.imports)
		runtimex.PanicOnError(err, "parsing embedded template")
		families = append(families, f)
	}
	return families
}

// Select returns the families of fams matching one of the targets and one
// of the shapes, in the order of fams. Declaration families are always
// selected, since every combinator depends on them.
func Select(fams []Family, targets []Target, shapes []Shape) []Family {
	wantTarget := make(map[Target]bool, len(targets))
	for _, t := range targets {
		wantTarget[t] = true
	}
	wantShape := make(map[Shape]bool, len(shapes))
	for _, s := range shapes {
		wantShape[s] = true
	}

	var out []Family
	for _, f := range fams {
		if f.Shape == Declaration || (wantTarget[f.Target] && wantShape[f.Shape]) {
			out = append(out, f)
		}
	}
	return out
}

// SortCombinators orders combinator families by target (see [Targets]) and,
// within a target, by shape (see [Shapes]). The sort is stable.
func SortCombinators(fams []Family) {
	rank := func(f Family) int {
		r := 0
		for i, t := range Targets() {
			if t == f.Target {
				r = i * 10
			}
		}
		for i, s := range Shapes() {
			if s == f.Shape {
				r += i
			}
		}
		return r
	}
	sort.SliceStable(fams, func(i, j int) bool {
		return rank(fams[i]) < rank(fams[j])
	})
}
