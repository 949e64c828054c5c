// Package zipgen hosts the zipgen code generator and the packages it
// generates code for.
//
// For every arity N from 2 to 9, zipgen writes:
//
//   - finisher.FinisherN, the N-ary function interface, with the FuncN
//     adapter, the OfN constructor and the FirstN and LastN projections;
//   - result.ZipN, program.ZipN and fiber.ZipN, which combine N containers
//     with a FinisherN, stopping at the first failure in slot order;
//   - program.ParZipN, which forks N programs on an executor before joining
//     their fibers.
//
// The generated files are committed. Run go generate after changing a
// template, and zipgen verify in CI.
package zipgen

//go:generate go run ./cmd/zipgen generate --config zipgen.hujson
