// SPDX-License-Identifier: MIT

// Command cocg assembles a finite-difference model problem on a square grid
// and solves it with the preconditioned conjugate orthogonal conjugate
// gradient method.
//
// Without a shift the problem is the real 2-D Poisson equation. With
// --shift-k the operator becomes the damped Helmholtz matrix
// L − k²h²(1 + iη)·I, which is complex symmetric and non-Hermitian.
//
// Flags can also be given as COCG_* environment variables or through a
// YAML/TOML/JSON file passed with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
