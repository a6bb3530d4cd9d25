// Package sampling provides the equiangular MW sample grids on the sphere
// and on the rotation group SO(3), together with the flat-index maps used to
// pack harmonic coefficients (l,m) and Wigner coefficients (l,m,n) into
// one-dimensional vectors.
//
// 🚀 What does sampling provide?
//
//	Everything the transform packages need to know about where samples live
//	and where coefficients go:
//	  • Sphere grid: L colatitudes θ_t = π(2t+1)/(2L-1) and 2L-1
//	    longitudes φ_p = 2πp/(2L-1) — the minimal MW sampling for
//	    band-limit L.
//	  • Rotation-group grid: (2N-1) × L × (2L-1) Euler-angle samples
//	    (γ, θ, φ), orientation outermost.
//	  • Harmonic index: (l,m) ↦ l²+l+m, vectors of length L².
//	  • Wigner index: (l,m,n) ↦ flat offset under one of four storage
//	    layouts (padded/compact × zero-first/neg-first), honoring the
//	    triangular truncation |n| ≤ l.
//
// ✨ Why four layouts?
//
//   - Padded layouts keep a fixed stride L² per orientation frequency n,
//     wasting n² zero slots but keeping offsets trivial.
//   - Compact layouts store only the L²-n² coefficients with l ≥ |n|,
//     wasting nothing at the price of block-offset arithmetic.
//   - Zero-first orders n as 0, 1, …, N-1, -N+1, …, -1 (FFT order);
//     neg-first orders n as -N+1, …, N-1 (natural order).
//
// All functions validate their inputs and return package sentinel errors;
// see errors.Is-friendly variables in types.go.
//
// ⚙️ Usage:
//
//	thetas, phis, err := sampling.SphereGrid(L)
//	ind, err := sampling.FlmnIndex(l, m, n, L, N, sampling.CompactZeroFirst)
//	size, err := sampling.FlmnSize(L, N, sampling.CompactZeroFirst)
//
// Complexity: every function is O(1) except the compact block-offset walk,
// which is O(N).
package sampling
