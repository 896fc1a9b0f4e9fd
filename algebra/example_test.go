package algebra_test

import (
	"fmt"

	"github.com/hasbyte1/go-prelude/algebra"
)

func ExampleResolve() {
	for _, v := range []any{nil, "hi", []int{1, 2}, map[int]string{0: "a", 1: "b"}, map[string]int{"a": 1}, 42} {
		fmt.Println(algebra.Resolve(v).Variant())
	}
	// Output:
	// empty
	// text
	// list
	// list
	// dict
	// identity
}

func ExampleList_Bind() {
	w := algebra.NewList(1, 2, 3).Bind(func(x any) any {
		n := x.(int)
		if n == 2 {
			return nil
		}
		return []int{n, n * 10}
	})
	fmt.Println(w.Export())
	// Output: [1 10 3 30]
}

func ExampleDict_Append() {
	a := algebra.Resolve(map[string]int{"a": 1, "b": 2})
	b := algebra.Resolve(map[string]int{"b": 20, "c": 30})
	fmt.Println(a.Append(b).Export())
	// Output: map[a:1 b:20 c:30]
}

func ExampleIdentity_Append() {
	fmt.Println(algebra.NewIdentity("x").Append(algebra.NewIdentity("y")).Export())
	// Output: [x y]
}

func ExamplePath() {
	doc := algebra.Resolve(map[string]any{"servers": []any{
		map[string]any{"host": "a.example"},
		map[string]any{"host": "b.example"},
	}})
	host, _ := algebra.Path(doc, "servers.1.host")
	fmt.Println(host)
	// Output: b.example
}
