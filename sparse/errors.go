// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every public accessor that can fail returns one of these sentinels, wrapped
// with call-site context by sparseErrorf. Callers match with errors.Is.
//
// Shape mismatches in algebra kernels are programmer errors: they panic with
// an error value wrapping ErrDimensionMismatch instead of returning it.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row, column or slot index outside valid bounds.
	// Only reported when bounds checking is enabled (see WithBoundsCheck).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrZeroDiagonal signals a missing or zero diagonal entry where an
	// invertible diagonal is required.
	ErrZeroDiagonal = errors.New("sparse: zero diagonal entry")

	// ErrBadPermutation indicates a permutation vector that is not a bijection on [0,n).
	ErrBadPermutation = errors.New("sparse: invalid permutation")

	// ErrIO marks failures of the text dump destination.
	ErrIO = errors.New("sparse: i/o failure")
)

// Operation tags used in error wrappers and panic values.
const (
	opAt          = "At"
	opIndex       = "Index"
	opValue       = "Value"
	opSetIndex    = "SetIndex"
	opSetValue    = "SetValue"
	opRow         = "Row"
	opAddInteract = "AddInteraction"
	opReallocate  = "Reallocate"
	opProduct     = "Product"
	opProductAdd  = "ProductAdd"
	opAdd         = "Add"
	opMatMul      = "MatMul"
	opSSOR        = "ApplySSOR"
	opInvDiagonal = "InvDiagonal"
	opPermute     = "Permute"
	opDump        = "DumpText"
)

// sparseErrorf wraps err with an operation tag and the offending coordinates.
// Format: "Matrix.<op>(i,j): <err>". Must only be called with a non-nil err.
func sparseErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, i, j, err)
}

// rowErrorf is the Row counterpart of sparseErrorf for slot-indexed access.
func rowErrorf(op string, slot int, err error) error {
	return fmt.Errorf("Row.%s(%d): %w", op, slot, err)
}

// shapePanic aborts on an operand shape mismatch. The panic value is an error
// so that recover() callers can still match ErrDimensionMismatch.
func shapePanic(op string, am, an, bm, bn int) {
	panic(fmt.Errorf("Matrix.%s: %dx%d vs %dx%d: %w", op, am, an, bm, bn, ErrDimensionMismatch))
}

// lengthPanic aborts on a vector length mismatch.
func lengthPanic(op string, want, got int) {
	panic(fmt.Errorf("Matrix.%s: vector length %d, want %d: %w", op, got, want, ErrDimensionMismatch))
}
