// Package wignerd computes Wigner small-d matrices d^l_{m,m'}(β) by a
// stateful degree-by-degree recursion.
//
// 🚀 What is a Wigner-d plane?
//
//	The real (2l+1)×(2l+1) matrix of rotation coefficients for a fixed
//	degree l and polar angle β. It projects and synthesizes spherical
//	harmonic content under rotation: with the convention used here,
//	Y_lm(θ,φ) = sqrt((2l+1)/4π) · d^l_{m,0}(θ) · e^{imφ}.
//
// The recursion is inherently sequential: the plane for degree l is derived
// from the plane for degree l-1. Package wignerd makes out-of-order use
// structurally impossible: a Recursion cursor offers a single operation,
// Advance, which produces degree 0, then 1, then 2, … up to L-1. There is
// no way to request a degree directly.
//
// ✨ Two interchangeable methods:
//
//   - Risbo — two half-angle interpolation steps per degree; valid at any
//     angle β. The default.
//   - Trapani — eighth-plane three-term recursion plus symmetry fill;
//     valid only at β = π/2, the angle the fast forward transform uses.
//
// Both produce identical values (up to rounding) wherever both apply; the
// choice only affects performance and numerical stability, never results.
//
// ⚙️ Usage:
//
//	rec, err := wignerd.NewRecursion(L, beta, wignerd.Risbo)
//	for l := 0; l < L; l++ {
//	  dl, err := rec.Advance() // plane for degree l
//	  v := dl.At(m, mm)        // d^l_{m,mm}(beta)
//	}
//
// Complexity: Advance to degree l costs O(l²); a full sweep to L-1 is O(L³).
package wignerd
