package chain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"

	"github.com/grafana/zipgen/internal/naming"
)

var resultContainer = Container{
	FlatMap: "FlatMap",
	Map:     "Map",
	Var:     naming.ResultVar,
	Type:    "Result[%s]",
}

func TestBuildRejectsSmallArity(t *testing.T) {
	is := is.New(t)
	for _, n := range []int{-1, 0, 1} {
		_, err := Build(n, resultContainer)
		is.True(errors.Is(err, ErrArity))
	}
}

func TestBuildRejectsIncompleteContainer(t *testing.T) {
	is := is.New(t)
	_, err := Build(2, Container{FlatMap: "FlatMap", Map: "Map", Type: "Result"})
	is.True(err != nil)
	_, err = Build(2, Container{Map: "Map", Type: "Result[%s]"})
	is.True(err != nil)
}

func TestSteps(t *testing.T) {
	is := is.New(t)
	c, err := Build(3, resultContainer)
	is.NoErr(err)

	want := []Step{
		{Op: "FlatMap", Container: "r0", Value: "v0", ValueType: "T0", Returns: "Result[R]"},
		{Op: "FlatMap", Container: "r1", Value: "v1", ValueType: "T1", Returns: "Result[R]"},
		{Op: "Map", Container: "r2", Value: "v2", ValueType: "T2", Returns: "R"},
	}
	if diff := cmp.Diff(want, c.Steps()); diff != "" {
		t.Fatalf("unexpected steps (-want +got):\n%s", diff)
	}
	is.Equal(c.Finish(), "fn.Apply(v0, v1, v2)")
}

func TestStepsIsACopy(t *testing.T) {
	is := is.New(t)
	c, err := Build(2, resultContainer)
	is.NoErr(err)
	steps := c.Steps()
	steps[0].Op = "Mutated"
	is.Equal(c.Steps()[0].Op, "FlatMap")
}

func TestExprArity2(t *testing.T) {
	c, err := Build(2, resultContainer)
	if err != nil {
		t.Fatal(err)
	}
	want := "FlatMap(r0, func(v0 T0) Result[R] {\n" +
		"\treturn Map(r1, func(v1 T1) R {\n" +
		"\t\treturn fn.Apply(v0, v1)\n" +
		"\t})\n" +
		"})"
	if diff := cmp.Diff(want, c.Expr(0)); diff != "" {
		t.Fatalf("unexpected expression (-want +got):\n%s", diff)
	}
}

func TestExprArity3Indented(t *testing.T) {
	c, err := Build(3, Container{
		FlatMap: "FlatMap",
		Map:     "Map",
		Var:     naming.ProgramVar,
		Type:    "Program[S, %s]",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "FlatMap(p0, func(v0 T0) Program[S, R] {\n" +
		"\t\treturn FlatMap(p1, func(v1 T1) Program[S, R] {\n" +
		"\t\t\treturn Map(p2, func(v2 T2) R {\n" +
		"\t\t\t\treturn fn.Apply(v0, v1, v2)\n" +
		"\t\t\t})\n" +
		"\t\t})\n" +
		"\t})"
	if diff := cmp.Diff(want, c.Expr(1)); diff != "" {
		t.Fatalf("unexpected expression (-want +got):\n%s", diff)
	}
}

// The containers must appear left to right, each exactly once, and the
// finisher exactly once in the innermost closure.
func TestExprOrder(t *testing.T) {
	is := is.New(t)
	for n := 2; n <= 9; n++ {
		c, err := Build(n, resultContainer)
		is.NoErr(err)
		expr := c.Expr(1)

		last := -1
		for _, name := range naming.Names(naming.ResultVar, n) {
			pos := strings.Index(expr, "("+name+",")
			is.True(pos > last)
			is.Equal(strings.Count(expr, "("+name+","), 1)
			last = pos
		}
		is.Equal(strings.Count(expr, "fn.Apply("), 1)
		is.Equal(strings.Count(expr, "Map("), n) // n-1 FlatMap plus one Map
	}
}
