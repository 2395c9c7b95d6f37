// SPDX-License-Identifier: MIT

// Package sparse - text dump and coordinate export.
//
// Text format: one line per stored entry, "row column value", 0-based indices,
// values rendered with %v (shortest round-trip form; complex values as
// "(re+imi)"). Entries appear in row-major slot order. Write-only.

package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Triplet is one stored entry in coordinate form.
type Triplet[T Scalar] struct {
	Row, Col int
	Value    T
}

// Triplets returns the stored entries in row-major slot order.
// With upperOnly, only entries on or above the diagonal (Row <= Col) are kept.
func (a *Matrix[T]) Triplets(upperOnly bool) []Triplet[T] {
	out := make([]Triplet[T], 0, a.NonZeros())
	a.Do(func(i, j int, v T) {
		if upperOnly && i > j {
			return
		}
		out = append(out, Triplet[T]{Row: i, Col: j, Value: v})
	})

	return out
}

// WriteText writes the text dump of a to w.
//
// Errors:
//   - any write failure, wrapped with ErrIO.
func (a *Matrix[T]) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range a.rows {
		r := &a.rows[i]
		for k, c := range r.index {
			if _, err := fmt.Fprintf(bw, "%d %d %v\n", i, c, r.value[k]); err != nil {
				return fmt.Errorf("%s: %w: %w", opDump, ErrIO, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w: %w", opDump, ErrIO, err)
	}

	return nil
}

// DumpText creates (or truncates) the file at path and writes the text dump.
// The file is closed on every path; a close failure is reported when no
// earlier error occurred.
//
// Errors:
//   - ErrIO wrapping the underlying *os.PathError or write error.
func (a *Matrix[T]) DumpText(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", opDump, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w: %w", opDump, ErrIO, cerr)
		}
	}()

	return a.WriteText(f)
}

// String returns the text dump as a string.
func (a *Matrix[T]) String() string {
	var sb strings.Builder
	_ = a.WriteText(&sb)

	return sb.String()
}
