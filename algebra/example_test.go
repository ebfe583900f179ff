package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/clifford/algebra"
)

// ExampleContext_SignTable prints the sign part of the Cl(2,0) multiplication table.
func ExampleContext_SignTable() {
	ctx, err := algebra.New(2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ctx)
	for _, row := range ctx.SignTable() {
		fmt.Println(row)
	}

	// Output:
	// Cl(2,0)[sig=0x0]
	// [1 1 1 1]
	// [1 1 -1 -1]
	// [1 1 1 1]
	// [1 1 -1 -1]
}
