package naming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestNames(t *testing.T) {
	is := is.New(t)
	is.Equal(Name(TypeParam, 0), "T0")
	is.Equal(Name(Value, 3), "v3")
	is.Equal(Name(ResultVar, 8), "r8")
	is.Equal(Name(ProgramVar, 1), "p1")
	is.Equal(Name(FiberVar, 2), "f2")
	is.Equal(Name(FinisherParam, 4), "t4")

	if diff := cmp.Diff([]string{"T0", "T1", "T2"}, Names(TypeParam, 3)); diff != "" {
		t.Fatalf("unexpected type params (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	for n := 0; n <= 64; n++ {
		if err := Check(n); err != nil {
			t.Fatalf("arity %d: %v", n, err)
		}
	}
}

func TestInjective(t *testing.T) {
	is := is.New(t)
	seen := make(map[string]int)
	for n := 2; n <= 9; n++ {
		for _, name := range []string{
			Finisher(n), Func(n), Of(n), First(n), Last(n), Zip(n), ParZip(n), FinisherFile(n),
		} {
			_, has := seen[name]
			is.True(!has) // name produced twice
			seen[name] = n

			got, ok := ArityOf(name)
			is.True(ok)
			is.Equal(got, n)
		}
	}
}

func TestArityOf(t *testing.T) {
	is := is.New(t)
	for _, name := range []string{"Finisher", "Zip", "zip_gen.go", "Unrelated3", "Zip3x"} {
		_, ok := ArityOf(name)
		is.True(!ok)
	}
	n, ok := ArityOf("ParZip12")
	is.True(ok)
	is.Equal(n, 12)
}

func TestUnknownRolePanics(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	Name(Role(99), 0)
}

func TestRoleString(t *testing.T) {
	is := is.New(t)
	is.Equal(TypeParam.String(), "type-param")
	is.Equal(Role(42).String(), "Role(42)")
}
