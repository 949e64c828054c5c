package finisher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFunc(t *testing.T) {
	is := is.New(t)
	var f Finisher2[int, string, string] = Func2[int, string, string](func(i int, s string) string {
		return fmt.Sprint(i, s)
	})
	is.Equal(f.Apply(1, "a"), "1 a")

	join := Of3(func(a, b, c string) string { return a + b + c })
	is.Equal(join.Apply("x", "y", "z"), "xyz")
}

func TestProjections(t *testing.T) {
	is := is.New(t)
	is.Equal(First2[string, int]().Apply("first", 2), "first")
	is.Equal(Last2[string, int]().Apply("first", 2), 2)

	is.Equal(First9[int, int, int, int, int, int, int, int, string]().Apply(1, 2, 3, 4, 5, 6, 7, 8, "nine"), 1)
	is.Equal(Last9[int, int, int, int, int, int, int, int, string]().Apply(1, 2, 3, 4, 5, 6, 7, 8, "nine"), "nine")
}

func TestArgumentOrder(t *testing.T) {
	is := is.New(t)
	f := Of9(func(a, b, c, d, e, f, g, h, i string) string {
		return strings.Join([]string{a, b, c, d, e, f, g, h, i}, "")
	})
	is.Equal(f.Apply("a", "b", "c", "d", "e", "f", "g", "h", "i"), "abcdefghi")

	g := Of5(func(a, b, c, d, e int) []int { return []int{a, b, c, d, e} })
	is.Equal(g.Apply(5, 4, 3, 2, 1), []int{5, 4, 3, 2, 1})
}
