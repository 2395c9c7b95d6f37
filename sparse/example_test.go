package sparse_test

import (
	"fmt"
	"os"

	"github.com/jafarpenot/ter/sparse"
)

// ExampleMatrix_Product assembles a small matrix incrementally and applies it.
func ExampleMatrix_Product() {
	a, _ := sparse.New[float64](3, 3)
	_ = a.AddInteraction(0, 0, 2)
	_ = a.AddInteraction(0, 1, 1)
	_ = a.AddInteraction(1, 1, 3)
	_ = a.AddInteraction(2, 2, 5)

	y := make([]float64, 3)
	a.Product([]float64{1, 1, 1}, y)
	fmt.Println(y)
	// Output: [3 3 5]
}

// ExampleMatrix_WriteText shows the "row column value" dump.
func ExampleMatrix_WriteText() {
	a, _ := sparse.New[float64](2, 2)
	_ = a.AddInteraction(1, 0, 0.5)
	_ = a.AddInteraction(0, 1, 2)
	_ = a.AddInteraction(0, 1, 2) // accumulates

	_ = a.Transpose().WriteText(os.Stdout)
	// Output:
	// 0 1 0.5
	// 1 0 4
}

// ExampleMatrix_Add shows that coinciding entries accumulate.
func ExampleMatrix_Add() {
	a, _ := sparse.New[complex128](1, 2)
	b, _ := sparse.New[complex128](1, 2)
	_ = a.AddInteraction(0, 0, 1+1i)
	_ = b.AddInteraction(0, 0, 1-1i)
	_ = b.AddInteraction(0, 1, 3i)

	fmt.Print(a.Add(b))
	// Output:
	// 0 0 (2+0i)
	// 0 1 (0+3i)
}
