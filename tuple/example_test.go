package tuple_test

import (
	"fmt"

	"maptuple/tuple"
)

func ExampleMap2V2() {
	p := tuple.New2(5, "hello")

	q := tuple.Map2V2(p, func(s string) int { return len(s) })

	fmt.Println(q.V1, q.V2)
	// Output: 5 5
}

func ExampleMap3V3() {
	v := tuple.New3(1, 2.5, true)

	fmt.Println(tuple.Map3V3(v, func(b bool) bool { return !b }))
	// Output: {1 2.5 false}
}
