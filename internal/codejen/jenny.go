// Package codejen is a small framework for composable code generators.
//
// A Jenny is one generator with one narrow responsibility: zipgen has one
// jenny per template family. Jennies take either one Input (OneToOne) or
// the whole input set (ManyToOne) and produce at most one [File] per call.
// A [JennyList] runs an ordered list of jennies over the same inputs and
// collects their output into an [FS], which can then be written to disk or
// verified against what is already on disk.
package codejen

// A Jenny is a code generator working on exactly one Input type.
//
// Go's generics cannot express "one of OneToOne or ManyToOne" in the Jenny
// interface itself, so the concrete kinds are separate interfaces and
// [JennyList] dispatches on them.
type Jenny[Input any] interface {
	// JennyName returns the name of the generator.
	JennyName() string
}

// NamedJenny is the non-generic part of every Jenny. It is what a [File]
// records as its provenance.
type NamedJenny interface {
	JennyName() string
}

// OneToOne is a Jenny that produces at most one File per Input.
type OneToOne[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates one [File]. A nil File (or one
	// for which [File.Exists] is false) indicates the jenny was a no-op for
	// the provided Input.
	Generate(Input) (*File, error)
}

// ManyToOne is a Jenny that produces at most one File from the whole
// Input set.
type ManyToOne[Input any] interface {
	Jenny[Input]

	// Generate takes all Inputs, in order, and generates one [File]. A nil
	// File indicates the jenny was a no-op for the provided Inputs.
	Generate([]Input) (*File, error)
}
