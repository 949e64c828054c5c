// Package chain builds the nested FlatMap/Map expression that threads N
// containers into one finisher call.
//
// For containers c0..cN-1 the expression is built right to left:
//
//	chain = Map(cN-1, func(vN-1 TN-1) R { return fn.Apply(v0, ..., vN-1) })
//	chain = FlatMap(ci, func(vi Ti) X[R] { return chain })   // i = N-2 .. 0
//
// Evaluated, it inspects c0 first and only moves on to ci+1 when ci succeeded,
// so the first failure short-circuits everything to its right and the
// finisher runs once, with every value in slot order. The shape only assumes
// a container with short-circuiting FlatMap and Map operations; the same
// builder serves every target abstraction.
package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/zipgen/internal/naming"
)

// ErrArity is returned when a chain is requested for fewer than two inputs.
// A single input is a plain Map and is never generated.
var ErrArity = errors.New("chain: arity must be at least 2")

// Container describes the abstraction a chain is threaded through.
type Container struct {
	// FlatMap is the short-circuiting bind operation, called as
	// FlatMap(c, func(v T) X[R] { ... }).
	FlatMap string

	// Map is the terminal operation, called as Map(c, func(v T) R { ... }).
	Map string

	// Var is the naming role of the container parameters.
	Var naming.Role

	// Type is a format string rendering the container type around an
	// element type, e.g. "Result[%s]" or "Program[S, %s]".
	Type string
}

// TypeOf renders the container type around elem.
func (c Container) TypeOf(elem string) string {
	return fmt.Sprintf(c.Type, elem)
}

// Step is one link of a chain, in evaluation order.
type Step struct {
	// Op is either the container's FlatMap or Map operation.
	Op string
	// Container is the container parameter consumed by this step.
	Container string
	// Value is the name the container's success value is bound to.
	Value string
	// ValueType is the type parameter of Value.
	ValueType string
	// Returns is the result type of the step's closure.
	Returns string
}

// Chain is the nested composition for one arity and one container.
type Chain struct {
	steps  []Step
	finish string
}

// Build returns the chain for arity n over c. The finisher invoked in the
// innermost closure is [naming.FinisherArg].
func Build(n int, c Container) (*Chain, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrArity, n)
	}
	if c.FlatMap == "" || c.Map == "" || !strings.Contains(c.Type, "%s") {
		return nil, fmt.Errorf("chain: incomplete container %+v", c)
	}

	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{
			Op:        c.FlatMap,
			Container: naming.Name(c.Var, i),
			Value:     naming.Name(naming.Value, i),
			ValueType: naming.Name(naming.TypeParam, i),
			Returns:   c.TypeOf(naming.Output),
		}
	}
	steps[n-1].Op = c.Map
	steps[n-1].Returns = naming.Output

	return &Chain{
		steps:  steps,
		finish: FinisherCall(n),
	}, nil
}

// FinisherCall renders the call of the caller's finisher over the values of
// slots [0, n), in slot order.
func FinisherCall(n int) string {
	return naming.FinisherArg + ".Apply(" + strings.Join(naming.Names(naming.Value, n), ", ") + ")"
}

// Steps returns the links of the chain in evaluation order.
func (c *Chain) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Finish returns the finisher call made by the innermost closure.
func (c *Chain) Finish() string {
	return c.finish
}

// Expr renders the chain as Go source. The first line carries no
// indentation; every following line is indented by depth tabs, so that the
// expression can be placed after a return statement at that depth.
func (c *Chain) Expr(depth int) string {
	last := c.steps[len(c.steps)-1]
	expr := closure(last, c.finish)
	for i := len(c.steps) - 2; i >= 0; i-- {
		expr = closure(c.steps[i], indent(expr, 1))
	}
	return indent(expr, depth)
}

func closure(s Step, body string) string {
	return fmt.Sprintf("%s(%s, func(%s %s) %s {\n\treturn %s\n})", s.Op, s.Container, s.Value, s.ValueType, s.Returns, body)
}

func indent(s string, depth int) string {
	if depth <= 0 {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat("\t", depth))
}
