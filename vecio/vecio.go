// SPDX-License-Identifier: MIT

// Package vecio writes solution vectors for post-processing tools.
//
// Binary layout: an optional int32 element count followed by the elements,
// in the host byte order or, with WithSwap, in the opposite one. Reals can be
// written in single or double precision. Medit ".bb" files hold one scalar
// field (real part, imaginary part or modulus of a complex vector) as text.
package vecio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
)

var (
	// ErrUnknownPrecision is returned for a Precision outside Single/Double.
	ErrUnknownPrecision = errors.New("vecio: unknown precision")

	// ErrUnknownPart is returned for a Part outside Real/Imag/Modulus.
	ErrUnknownPart = errors.New("vecio: unknown part")

	// ErrOverflow is returned when a count or an integer does not fit in int32.
	ErrOverflow = errors.New("vecio: value does not fit in int32")
)

// Precision selects the on-disk width of real values.
type Precision int

const (
	// Double writes float64 values.
	Double Precision = iota
	// Single writes float32 values.
	Single
)

// Part selects which scalar field of a complex vector is written.
type Part int

const (
	Real Part = iota
	Imag
	Modulus
)

// Defaults.
const (
	// DefaultWithSize writes the int32 count prefix.
	DefaultWithSize = true
	// DefaultSwap keeps the host byte order.
	DefaultSwap = false
)

// Option configures the binary writers.
type Option func(*Options)

// Options is the effective writer configuration.
type Options struct {
	withSize bool
	swap     bool
}

// WithSize toggles the int32 element-count prefix.
func WithSize(enabled bool) Option {
	return func(o *Options) { o.withSize = enabled }
}

// WithSwap writes values in the byte order opposite to the host's.
func WithSwap(enabled bool) Option {
	return func(o *Options) { o.swap = enabled }
}

func gatherOptions(opts ...Option) Options {
	o := Options{withSize: DefaultWithSize, swap: DefaultSwap}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// nativeIsLittle reports whether the host stores integers little-endian.
var nativeIsLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// order resolves the byte order to write with.
func (o Options) order() binary.ByteOrder {
	switch {
	case !o.swap:
		return binary.NativeEndian
	case nativeIsLittle:
		return binary.BigEndian
	default:
		return binary.LittleEndian
	}
}

// writeSize emits the optional count prefix.
func writeSize(w io.Writer, bo binary.ByteOrder, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrOverflow, n)
	}

	return binary.Write(w, bo, int32(n))
}

// WriteFloats writes v in the requested precision.
func WriteFloats(w io.Writer, v []float64, p Precision, opts ...Option) error {
	o := gatherOptions(opts...)
	bo := o.order()
	var data any
	switch p {
	case Double:
		data = v
	case Single:
		f := make([]float32, len(v))
		for i, x := range v {
			f[i] = float32(x)
		}
		data = f
	default:
		return fmt.Errorf("WriteFloats: %w: %d", ErrUnknownPrecision, int(p))
	}
	if o.withSize {
		if err := writeSize(w, bo, len(v)); err != nil {
			return fmt.Errorf("WriteFloats: %w", err)
		}
	}
	if err := binary.Write(w, bo, data); err != nil {
		return fmt.Errorf("WriteFloats: %w", err)
	}

	return nil
}

// WriteInts writes v as int32 values.
func WriteInts(w io.Writer, v []int, opts ...Option) error {
	o := gatherOptions(opts...)
	bo := o.order()
	data := make([]int32, len(v))
	for i, x := range v {
		if x > math.MaxInt32 || x < math.MinInt32 {
			return fmt.Errorf("WriteInts: value %d at %d: %w", x, i, ErrOverflow)
		}
		data[i] = int32(x)
	}
	if o.withSize {
		if err := writeSize(w, bo, len(v)); err != nil {
			return fmt.Errorf("WriteInts: %w", err)
		}
	}
	if err := binary.Write(w, bo, data); err != nil {
		return fmt.Errorf("WriteInts: %w", err)
	}

	return nil
}

// WriteMedit writes one field of u as a Medit ".bb" solution file: the header
// "2 1 <n> 2" then one value per line with 8 significant digits.
func WriteMedit(w io.Writer, u []complex128, part Part) error {
	var field func(complex128) float64
	switch part {
	case Real:
		field = func(c complex128) float64 { return real(c) }
	case Imag:
		field = func(c complex128) float64 { return imag(c) }
	case Modulus:
		field = cmplx.Abs
	default:
		return fmt.Errorf("WriteMedit: %w: %d", ErrUnknownPart, int(part))
	}
	if _, err := fmt.Fprintf(w, "2 1 %d 2\n", len(u)); err != nil {
		return fmt.Errorf("WriteMedit: %w", err)
	}
	for _, c := range u {
		if _, err := io.WriteString(w, strconv.FormatFloat(field(c), 'g', 8, 64)+"\n"); err != nil {
			return fmt.Errorf("WriteMedit: %w", err)
		}
	}

	return nil
}
