package genring_test

import (
	"fmt"

	"github.com/teenjuna/genring"
)

func Example() {
	buffer, _ := genring.New[int](2)

	// Fill the buffer.
	h1 := buffer.Push(10)
	h2 := buffer.Push(20)

	// Wrap around: this overwrites the slot h1 points at.
	h3 := buffer.Push(30)

	_, ok := buffer.Get(h1)
	fmt.Println("h1 valid:", ok)

	v2, _ := buffer.Get(h2)
	v3, _ := buffer.Get(h3)
	fmt.Println("h2:", v2)
	fmt.Println("h3:", v3)
	fmt.Println("len:", buffer.Len())

	// Output:
	// h1 valid: false
	// h2: 20
	// h3: 30
	// len: 2
}
