package family

import (
	"fmt"
	"strings"

	"github.com/grafana/zipgen/internal/chain"
	"github.com/grafana/zipgen/internal/naming"
)

// Data is what every family template is executed against. All identifiers
// come from package naming, so that templates never spell a name on their
// own.
type Data struct {
	N    int
	Last int

	Finisher  string
	Func      string
	Of        string
	FirstName string
	LastName  string
	Zip       string
	ParZip    string

	Output  string
	State   string
	Fn      string
	Exec    string
	Res     string
	Combine string

	// Chain is the nested FlatMap/Map expression, indented for a return
	// statement at function body level. Empty for declarations.
	Chain string

	container chain.Container
}

func (d Data) join(role naming.Role, format func(i int, name string) string) string {
	parts := make([]string, d.N)
	for i := range parts {
		parts[i] = format(i, naming.Name(role, i))
	}
	return strings.Join(parts, ", ")
}

// TypeParams renders "T0, T1, ...".
func (d Data) TypeParams() string {
	return strings.Join(naming.Names(naming.TypeParam, d.N), ", ")
}

// TypeAt returns the type parameter of slot i.
func (d Data) TypeAt(i int) string {
	return naming.Name(naming.TypeParam, i)
}

// ParamAt returns the finisher parameter of slot i.
func (d Data) ParamAt(i int) string {
	return naming.Name(naming.FinisherParam, i)
}

// Params renders the finisher parameter list "t0 T0, t1 T1, ...".
func (d Data) Params() string {
	return d.join(naming.FinisherParam, func(i int, name string) string {
		return name + " " + d.TypeAt(i)
	})
}

// Args renders the finisher arguments "t0, t1, ...".
func (d Data) Args() string {
	return strings.Join(naming.Names(naming.FinisherParam, d.N), ", ")
}

// Keep renders the finisher parameter list with every parameter but the
// one of slot keep left blank.
func (d Data) Keep(keep int) string {
	return d.join(naming.FinisherParam, func(i int, name string) string {
		if i != keep {
			name = "_"
		}
		return name + " " + d.TypeAt(i)
	})
}

// Containers renders the container parameter list, e.g.
// "r0 Result[T0], r1 Result[T1]".
func (d Data) Containers() string {
	return d.join(d.container.Var, func(i int, name string) string {
		return name + " " + d.container.TypeOf(d.TypeAt(i))
	})
}

// ContainerOf renders the container type around elem.
func (d Data) ContainerOf(elem string) string {
	return d.container.TypeOf(elem)
}

// Forks renders "Fork(p0, exec), Fork(p1, exec), ...".
func (d Data) Forks() string {
	return d.join(d.container.Var, func(_ int, name string) string {
		return fmt.Sprintf("Fork(%s, %s)", name, d.Exec)
	})
}

// Handles renders the fiber parameter list of the handle-level finisher,
// "f0 *fiber.Fiber[T0], f1 *fiber.Fiber[T1], ...".
func (d Data) Handles() string {
	return d.join(naming.FiberVar, func(i int, name string) string {
		return name + " *fiber.Fiber[" + d.TypeAt(i) + "]"
	})
}

// HandleArgs renders "f0, f1, ...".
func (d Data) HandleArgs() string {
	return strings.Join(naming.Names(naming.FiberVar, d.N), ", ")
}
