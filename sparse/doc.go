// Package sparse provides row-wise sparse matrices for assembling and applying
// linear systems.
//
// The sparse package provides:
//
//   - Row, an ordered container of (column, value) pairs with accumulate-on-insert
//     semantics (AddInteraction), kept sorted by column at all times.
//   - Matrix, m such rows over n columns, with matrix-vector products
//     (Product, ProductAdd), elementwise sum (Add), scaling (Scale), Transpose,
//     sparse×sparse multiplication (MatMul) and one SSOR relaxation sweep
//     (ApplySSOR).
//   - A write-only text dump ("row column value" per line), a coordinate export
//     (Triplets) and symmetric permutation (Permute).
//   - gonum interoperability (View, Dense, FromDense).
//
// Element types are float32, float64, complex64 and complex128 (see Scalar).
// Products use the unconjugated bilinear form, as required by complex-symmetric
// solvers.
//
// Bounds checking is a per-matrix configuration chosen at construction with
// WithBoundsCheck. Checked matrices report ErrOutOfRange from accessors and
// AddInteraction; unchecked matrices skip those comparisons. Operand shape
// mismatches in algebra kernels are programmer errors and panic.
//
// Rows are expected to stay short (tens of entries): lookups and insertions
// are linear scans over contiguous slices.
package sparse
