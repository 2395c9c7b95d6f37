// SPDX-License-Identifier: MIT

// Vector kernels for the Krylov loop. float64 and complex128 slices go
// through gonum's floats/cmplxs; other element types use the generic loops.
// All inner products are unconjugated.

package solver

import (
	"math"
	"math/cmplx"
	"reflect"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/jafarpenot/ter/sparse"
)

// dotu returns Σ x[i]·y[i] without conjugation.
// cmplxs.Dot conjugates its first argument, so complex slices use the loop.
func dotu[T sparse.Scalar](x, y []T) T {
	if xs, ok := any(x).([]float64); ok {
		return any(floats.Dot(xs, any(y).([]float64))).(T)
	}
	var s T
	for i, v := range x {
		s += v * y[i]
	}

	return s
}

// nrm2 returns the Euclidean norm of x.
func nrm2[T sparse.Scalar](x []T) float64 {
	switch xs := any(x).(type) {
	case []float64:
		return floats.Norm(xs, 2)
	case []complex128:
		return cmplxs.Norm(xs, 2)
	}
	var s float64
	for _, v := range x {
		a := modulus(v)
		s += a * a
	}

	return math.Sqrt(s)
}

// modulus returns |v| as a float64.
func modulus[T sparse.Scalar](v T) float64 {
	switch c := any(v).(type) {
	case float64:
		return math.Abs(c)
	case float32:
		return math.Abs(float64(c))
	case complex128:
		return cmplx.Abs(c)
	case complex64:
		return cmplx.Abs(complex128(c))
	}
	// named element types
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	default:
		return math.Abs(rv.Float())
	}
}

// axpy computes y += alpha·x.
func axpy[T sparse.Scalar](alpha T, x, y []T) {
	switch ys := any(y).(type) {
	case []float64:
		floats.AddScaled(ys, any(alpha).(float64), any(x).([]float64))
		return
	case []complex128:
		cmplxs.AddScaled(ys, any(alpha).(complex128), any(x).([]complex128))
		return
	}
	for i, v := range x {
		y[i] += alpha * v
	}
}

// scaleAdd computes p = beta·p + z.
func scaleAdd[T sparse.Scalar](beta T, p, z []T) {
	switch ps := any(p).(type) {
	case []float64:
		floats.Scale(any(beta).(float64), ps)
		floats.Add(ps, any(z).([]float64))
		return
	case []complex128:
		cmplxs.Scale(any(beta).(complex128), ps)
		cmplxs.Add(ps, any(z).([]complex128))
		return
	}
	for i := range p {
		p[i] = beta*p[i] + z[i]
	}
}

// finite reports whether f is neither NaN nor ±Inf.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
