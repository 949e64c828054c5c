package codejen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
)

type jnode struct {
	next *jnode
	j    NamedJenny
}

// JennyListWithNamer creates a new JennyList that decorates errors using the
// provided namer func, which derives a meaningful identifier string from an
// Input.
func JennyListWithNamer[Input any](namer func(t Input) string) *JennyList[Input] {
	return &JennyList[Input]{
		inputnamer: namer,
	}
}

// JennyList is an ordered collection of jennies. When generating, it calls
// each of its jennies in the order they were appended and collects their
// output into one [FS].
//
// The output of all member jennies shares one relative path namespace:
// JennyList does not modify emitted paths, and path uniqueness is enforced
// across the aggregate set of Files.
//
// Every jenny is run even when an earlier one failed, so that one run
// reports every broken family; the errors are returned together.
type JennyList[Input any] struct {
	mu sync.RWMutex

	// entrypoint to the singly linked list of jennies
	first *jnode

	// postprocessors, run FIFO on every file returned by a jenny
	post []FileMapper

	// inputnamer, if non-nil, gives a name to an input.
	inputnamer func(t Input) string
}

func (jl *JennyList[Input]) last() *jnode {
	j := jl.first
	for j != nil && j.next != nil {
		j = j.next
	}
	return j
}

// JennyName implements [Jenny].
func (jl *JennyList[Input]) JennyName() string {
	return fmt.Sprintf("JennyList[%s]", reflect.TypeOf(new(Input)).Elem().Name())
}

// Names returns the names of the contained jennies, in run order.
func (jl *JennyList[Input]) Names() []string {
	jl.mu.RLock()
	defer jl.mu.RUnlock()
	var names []string
	for jn := jl.first; jn != nil; jn = jn.next {
		names = append(names, jn.j.JennyName())
	}
	return names
}

func (jl *JennyList[Input]) wrapinerr(in Input, err error) error {
	if err == nil || jl.inputnamer == nil {
		return err
	}
	return fmt.Errorf("%w for %s", err, jl.inputnamer(in))
}

// GenerateFS runs every jenny over objs and returns the resulting FS. A nil
// FS and nil error are returned when the list is empty.
func (jl *JennyList[Input]) GenerateFS(objs []Input) (*FS, error) {
	jl.mu.RLock()
	defer jl.mu.RUnlock()

	if jl.first == nil {
		return nil, nil
	}

	jfs := NewFS()

	output := func(j NamedJenny, f *File, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", j.JennyName(), err)
		}
		if f == nil || !f.Exists() {
			return nil
		}

		of := *f
		of.From = append([]NamedJenny{jl}, append(of.From, j)...)
		if err := (Files{of}).Validate(); err != nil {
			return fmt.Errorf("%s returned an invalid File: %w", j.JennyName(), err)
		}
		for _, post := range jl.post {
			pf, err := post(of)
			if err != nil {
				return fmt.Errorf("postprocessing of %s from %s failed: %w", of.RelativePath, jennystack(of.From), err)
			}
			of = pf
		}
		return jfs.addValidated(of)
	}

	result := new(multierror.Error)
	for jn := jl.first; jn != nil; jn = jn.next {
		switch jenny := jn.j.(type) {
		case OneToOne[Input]:
			for _, obj := range objs {
				f, err := jenny.Generate(obj)
				if procerr := jl.wrapinerr(obj, output(jenny, f, err)); procerr != nil {
					result = multierror.Append(result, procerr)
				}
			}
		case ManyToOne[Input]:
			f, err := jenny.Generate(objs)
			if procerr := output(jenny, f, err); procerr != nil {
				result = multierror.Append(result, procerr)
			}
		default:
			panic("unreachable")
		}
	}

	if result.ErrorOrNil() != nil {
		return nil, multierror.Flatten(result)
	}
	return jfs, nil
}

// Generate is like [JennyList.GenerateFS], but returns the files as a
// sorted slice.
func (jl *JennyList[Input]) Generate(objs []Input) (Files, error) {
	jfs, err := jl.GenerateFS(objs)
	if err != nil || jfs == nil {
		return nil, err
	}
	return jfs.AsFiles(), nil
}

func (jl *JennyList[Input]) append(n ...*jnode) {
	if len(n) == 0 {
		return
	}
	jl.mu.Lock()
	defer jl.mu.Unlock()
	last := jl.last()
	if last == nil {
		jl.first = n[0]
		n = n[1:]
		last = jl.first
	}
	for _, jn := range n {
		last.next = jn
		last = last.next
	}
}

func tojnode[J NamedJenny](jennies ...J) []*jnode {
	nlist := make([]*jnode, len(jennies))
	for i, j := range jennies {
		nlist[i] = &jnode{
			j: j,
		}
	}
	return nlist
}

// Append adds Jennies to the end of the JennyList. In Generate, Jennies are
// called in the order they were appended.
//
// All provided jennies must also implement either [OneToOne] or
// [ManyToOne], or this method will panic. For proper type safety, use the
// Append* methods.
func (jl *JennyList[Input]) Append(jennies ...Jenny[Input]) {
	nlist := make([]*jnode, len(jennies))
	for i, j := range jennies {
		switch j.(type) {
		case OneToOne[Input], ManyToOne[Input]:
			nlist[i] = &jnode{
				j: j,
			}
		default:
			panic(fmt.Sprintf("%T is not a valid Jenny, must implement (OneToOne | ManyToOne)", j))
		}
	}
	jl.append(nlist...)
}

// AppendOneToOne is like [JennyList.Append], but typesafe for OneToOne jennies.
func (jl *JennyList[Input]) AppendOneToOne(jennies ...OneToOne[Input]) {
	jl.append(tojnode(jennies...)...)
}

// AppendManyToOne is like [JennyList.Append], but typesafe for ManyToOne jennies.
func (jl *JennyList[Input]) AppendManyToOne(jennies ...ManyToOne[Input]) {
	jl.append(tojnode(jennies...)...)
}

// AddPostprocessors appends to the list of postprocessors. Postprocessors
// are run (FIFO) on every File produced by the JennyList.
func (jl *JennyList[Input]) AddPostprocessors(fn ...FileMapper) {
	jl.mu.Lock()
	jl.post = append(jl.post, fn...)
	jl.mu.Unlock()
}
