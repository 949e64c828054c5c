package family

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"

	"github.com/grafana/zipgen/internal/naming"
)

func find(t *testing.T, fams []Family, target Target, shape Shape) Family {
	t.Helper()
	for _, f := range fams {
		if f.Target == target && f.Shape == shape {
			return f
		}
	}
	t.Fatalf("no family %s/%s", target, shape)
	return Family{}
}

// parse renders f for n and parses the output as the body of a Go file.
func parse(t *testing.T, f Family, n Arity) *ast.File {
	t.Helper()
	body, err := f.Render(n)
	if err != nil {
		t.Fatal(err)
	}
	src := "package " + f.Target.Package() + "\n\n" + string(body)
	file, err := parser.ParseFile(token.NewFileSet(), f.Name()+".go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("%s arity %d does not parse: %v\n%s", f.Name(), n, err, src)
	}
	return file
}

func funcDecl(t *testing.T, file *ast.File, name string) *ast.FuncDecl {
	t.Helper()
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Recv == nil && fd.Name.Name == name {
			return fd
		}
	}
	t.Fatalf("no func %s", name)
	return nil
}

func fieldNames(fl *ast.FieldList) []string {
	var names []string
	for _, f := range fl.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}
	return names
}

func TestDeclarationShape(t *testing.T) {
	is := is.New(t)
	decl := find(t, Defaults(), Interface, Declaration)
	for n := MinArity; n <= 9; n++ {
		file := parse(t, decl, n)

		var iface *ast.TypeSpec
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, s := range gd.Specs {
				if ts := s.(*ast.TypeSpec); ts.Name.Name == naming.Finisher(int(n)) {
					iface = ts
				}
			}
		}
		is.True(iface != nil)

		// N inputs plus one output, in slot order
		want := append(naming.Names(naming.TypeParam, int(n)), naming.Output)
		if diff := cmp.Diff(want, fieldNames(iface.TypeParams)); diff != "" {
			t.Fatalf("arity %d type params (-want +got):\n%s", n, diff)
		}

		methods := iface.Type.(*ast.InterfaceType).Methods.List
		is.Equal(len(methods), 1)
		is.Equal(methods[0].Names[0].Name, "Apply")
		fn := methods[0].Type.(*ast.FuncType)
		if diff := cmp.Diff(naming.Names(naming.FinisherParam, int(n)), fieldNames(fn.Params)); diff != "" {
			t.Fatalf("arity %d Apply params (-want +got):\n%s", n, diff)
		}
		for i, p := range fn.Params.List {
			is.Equal(p.Type.(*ast.Ident).Name, naming.Name(naming.TypeParam, i))
		}
		is.Equal(fn.Results.List[0].Type.(*ast.Ident).Name, naming.Output)

		// the name alone gives the arity back
		got, ok := naming.ArityOf(iface.Name.Name)
		is.True(ok)
		is.Equal(got, int(n))

		funcDecl(t, file, naming.Of(int(n)))
		funcDecl(t, file, naming.First(int(n)))
		funcDecl(t, file, naming.Last(int(n)))
	}
}

func TestCombinatorShapes(t *testing.T) {
	is := is.New(t)
	fams := Defaults()
	for _, tc := range []struct {
		target  Target
		shape   Shape
		name    func(int) string
		leading []string
		extra   []string
	}{
		{Result, Sequential, naming.Zip, nil, []string{naming.FinisherArg}},
		{Program, Sequential, naming.Zip, []string{naming.State}, []string{naming.FinisherArg}},
		{Program, Parallel, naming.ParZip, []string{naming.State}, []string{naming.FinisherArg, naming.ExecutorArg}},
		{Fiber, Sequential, naming.Zip, nil, []string{naming.FinisherArg}},
	} {
		f := find(t, fams, tc.target, tc.shape)
		for n := MinArity; n <= 9; n++ {
			fd := funcDecl(t, parse(t, f, n), tc.name(int(n)))

			typeParams := append(append([]string{}, tc.leading...), naming.Names(naming.TypeParam, int(n))...)
			typeParams = append(typeParams, naming.Output)
			if diff := cmp.Diff(typeParams, fieldNames(fd.Type.TypeParams)); diff != "" {
				t.Fatalf("%s arity %d type params (-want +got):\n%s", f.Name(), n, diff)
			}

			vars := naming.Names(f.container.Var, int(n))
			params := append(vars, tc.extra...)
			if diff := cmp.Diff(params, fieldNames(fd.Type.Params)); diff != "" {
				t.Fatalf("%s arity %d params (-want +got):\n%s", f.Name(), n, diff)
			}
			is.True(fd.Doc != nil)
		}
	}
}

func TestResultZipText(t *testing.T) {
	is := is.New(t)
	body, err := find(t, Defaults(), Result, Sequential).Render(2)
	is.NoErr(err)
	want := `// Zip2 combines 2 results with fn.
//
// The results are inspected in slot order and the first failure is returned
// as is. fn is only invoked, once, when every result is a success; a
// panic in fn is returned as a *PanicError failure.
func Zip2[T0, T1, R any](r0 Result[T0], r1 Result[T1], fn finisher.Finisher2[T0, T1, R]) (res Result[R]) {
	defer Recover(&res)
	return FlatMap(r0, func(v0 T0) Result[R] {
		return Map(r1, func(v1 T1) R {
			return fn.Apply(v0, v1)
		})
	})
}
`
	if diff := cmp.Diff(want, string(body)); diff != "" {
		t.Fatalf("unexpected Zip2 (-want +got):\n%s", diff)
	}
}

func TestParZipText(t *testing.T) {
	is := is.New(t)
	body, err := find(t, Defaults(), Program, Parallel).Render(2)
	is.NoErr(err)
	s := string(body)
	is.True(strings.Contains(s, "combine := finisher.Of2(func(f0 *fiber.Fiber[T0], f1 *fiber.Fiber[T1]) *fiber.Fiber[R] {\n"))
	is.True(strings.Contains(s, "\t\treturn fiber.Zip2(f0, f1, fn)\n"))
	is.True(strings.Contains(s, "\treturn FlatMap(Zip2(Fork(p0, exec), Fork(p1, exec), combine), Join[S, R])\n"))
}

func TestRenderIsDeterministic(t *testing.T) {
	is := is.New(t)
	first, second := Defaults(), Defaults()
	for i := range first {
		a, err := first[i].Render(7)
		is.NoErr(err)
		b, err := second[i].Render(7)
		is.NoErr(err)
		is.Equal(string(a), string(b))
	}
}

func TestRenderRejectsSmallArity(t *testing.T) {
	is := is.New(t)
	for _, f := range Defaults() {
		_, err := f.Render(1)
		is.True(err != nil)
		_, err = f.Render(0)
		is.True(err != nil)
	}
}

func TestNewErrors(t *testing.T) {
	is := is.New(t)

	_, err := New(Result, Sequential, "{{.Zip}}", nil, nil)
	is.True(err != nil) // container is required

	_, err = New(Interface, Declaration, "{{.Finisher", nil, nil)
	is.True(err != nil) // malformed

	// an undefined slot only shows up when rendering, and aborts it
	f, err := New(Interface, Declaration, "{{.Undefined}}", nil, nil)
	is.NoErr(err)
	_, err = f.Render(2)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "interface/declaration"))
}

func TestSelect(t *testing.T) {
	is := is.New(t)
	names := func(fams []Family) []string {
		var out []string
		for _, f := range fams {
			out = append(out, f.Name())
		}
		return out
	}

	all := Select(Defaults(), Targets(), Shapes())
	is.Equal(len(all), len(Defaults()))

	only := Select(Defaults(), []Target{Result}, Shapes())
	is.Equal(names(only), []string{"interface/declaration", "result/sequential"})

	seq := Select(Defaults(), []Target{Program}, []Shape{Sequential})
	is.Equal(names(seq), []string{"interface/declaration", "program/sequential"})
}

func TestSortCombinators(t *testing.T) {
	is := is.New(t)
	fams := Select(Defaults(), Targets(), Shapes())[1:]
	// reverse, then sort back into emission order
	for i, j := 0, len(fams)-1; i < j; i, j = i+1, j-1 {
		fams[i], fams[j] = fams[j], fams[i]
	}
	SortCombinators(fams)
	var got []string
	for _, f := range fams {
		got = append(got, f.Name())
	}
	is.Equal(got, []string{"result/sequential", "program/sequential", "program/parallel", "fiber/sequential"})
}

func TestParse(t *testing.T) {
	is := is.New(t)
	for alias, want := range map[string]Target{
		"result":                    Result,
		"deferred-computation-type": Program,
		"concurrent-handle-type":    Fiber,
	} {
		got, ok := ParseTarget(alias)
		is.True(ok)
		is.Equal(got, want)
	}
	_, ok := ParseTarget("interface")
	is.True(!ok) // declarations are not selectable
	_, ok = ParseShape("declaration")
	is.True(!ok)
	s, ok := ParseShape("parallel")
	is.True(ok)
	is.Equal(s, Parallel)

	is.Equal(Interface.Package(), "finisher")
	is.Equal(Fiber.Package(), "fiber")
	is.Equal(len(Requires(Program, Parallel)), 1)
	is.Equal(len(Requires(Result, Sequential)), 0)
}

// Every target a default family depends on is one its code imports.
func TestRequiresMatchesImports(t *testing.T) {
	is := is.New(t)
	for _, f := range Defaults() {
		imported := make(map[Target]bool, len(f.Imports))
		for _, imp := range f.Imports {
			imported[imp] = true
		}
		for _, req := range Requires(f.Target, f.Shape) {
			is.True(imported[req]) // required target is imported
		}
	}
}
