// Package naming maps (role, slot) and (family, arity) pairs to the
// identifiers used by generated code.
//
// Every function in this package is pure. The same input always yields the
// same identifier, and distinct inputs never share one: generated files are
// diffed against the committed tree, so names must be stable across runs.
package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// Role identifies what a slot identifier is used for inside one generated
// declaration.
type Role int

const (
	// TypeParam is the type parameter of the i-th input (T0, T1, ...).
	TypeParam Role = iota
	// Value is the unwrapped value of the i-th input (v0, v1, ...).
	Value
	// ResultVar is the i-th result.Result parameter (r0, r1, ...).
	ResultVar
	// ProgramVar is the i-th program.Program parameter (p0, p1, ...).
	ProgramVar
	// FiberVar is the i-th fiber.Fiber parameter (f0, f1, ...).
	FiberVar
	// FinisherParam is the i-th parameter of a finisher method (t0, t1, ...).
	FinisherParam
)

var rolePrefixes = map[Role]string{
	TypeParam:     "T",
	Value:         "v",
	ResultVar:     "r",
	ProgramVar:    "p",
	FiberVar:      "f",
	FinisherParam: "t",
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{TypeParam, Value, ResultVar, ProgramVar, FiberVar, FinisherParam}
}

func (r Role) String() string {
	switch r {
	case TypeParam:
		return "type-param"
	case Value:
		return "value"
	case ResultVar:
		return "result-var"
	case ProgramVar:
		return "program-var"
	case FiberVar:
		return "fiber-var"
	case FinisherParam:
		return "finisher-param"
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// Name returns the identifier for slot i in the given role.
func Name(role Role, i int) string {
	prefix, ok := rolePrefixes[role]
	if !ok {
		panic(fmt.Sprintf("naming: unknown role %d", role))
	}
	return prefix + strconv.Itoa(i)
}

// Names returns the identifiers of slots [0, n) in the given role.
func Names(role Role, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = Name(role, i)
	}
	return names
}

// Identifiers reserved by the generated code. Slot identifiers must never
// shadow them.
const (
	// Output is the type parameter of a finisher's result.
	Output = "R"
	// State is the state type parameter of program.Program.
	State = "S"
	// FinisherArg is the parameter holding the caller's finisher.
	FinisherArg = "fn"
	// ExecutorArg is the parameter holding the fiber.Executor of ParZip.
	ExecutorArg = "exec"
	// NamedResult is the named return value recovered into by result.Zip.
	NamedResult = "res"
	// Combine is the local handle-level finisher built by ParZip.
	Combine = "combine"
)

// Reserved returns the set of identifiers slot names must not collide with.
func Reserved() map[string]bool {
	return map[string]bool{
		Output:      true,
		State:       true,
		FinisherArg: true,
		ExecutorArg: true,
		NamedResult: true,
		Combine:     true,
		"ctx":       true,
		"state":     true,
		"finisher":  true,
		"result":    true,
		"program":   true,
		"fiber":     true,
	}
}

// Check verifies that, for arity n, every slot identifier is distinct from
// every other slot identifier and from the reserved set.
func Check(n int) error {
	reserved := Reserved()
	seen := make(map[string]Role)
	for _, role := range Roles() {
		for i := 0; i < n; i++ {
			name := Name(role, i)
			if reserved[name] {
				return fmt.Errorf("naming: %s %d is %q, which is reserved", role, i, name)
			}
			if prev, has := seen[name]; has {
				return fmt.Errorf("naming: %s %d and %s both map to %q", role, i, prev, name)
			}
			seen[name] = role
		}
	}
	return nil
}

// Finisher returns the name of the N-ary finisher interface.
func Finisher(n int) string { return "Finisher" + strconv.Itoa(n) }

// Func returns the name of the func adapter implementing Finisher(n).
func Func(n int) string { return "Func" + strconv.Itoa(n) }

// Of returns the name of the constructor turning a plain func into a
// Finisher(n).
func Of(n int) string { return "Of" + strconv.Itoa(n) }

// First returns the name of the projection keeping the first value.
func First(n int) string { return "First" + strconv.Itoa(n) }

// Last returns the name of the projection keeping the last value.
func Last(n int) string { return "Last" + strconv.Itoa(n) }

// Zip returns the name of the sequential combinator.
func Zip(n int) string { return "Zip" + strconv.Itoa(n) }

// ParZip returns the name of the parallel combinator.
func ParZip(n int) string { return "ParZip" + strconv.Itoa(n) }

// FinisherFile returns the file name of the N-ary finisher declaration.
func FinisherFile(n int) string { return "finisher" + strconv.Itoa(n) + ".go" }

// CombinatorFile is the file name of the combinators generated for one
// target package.
const CombinatorFile = "zip_gen.go"

var arityRe = regexp.MustCompile(`^(?:Finisher|Func|Of|First|Last|Zip|ParZip|finisher)([0-9]+)(?:\.go)?$`)

// ArityOf recovers the arity from any per-arity identifier or file name
// produced by this package.
func ArityOf(name string) (int, bool) {
	m := arityRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
