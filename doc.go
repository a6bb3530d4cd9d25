// Package so3 computes exact harmonic transforms of band-limited functions
// on the sphere S² and on the rotation group SO(3), using the equiangular
// MW sampling theorem.
//
// 🚀 What is so3?
//
//	A pure-Go transform library built around three ideas:
//	  • Direct inverse: brute-force synthesis on the sphere — the slow,
//	    easy-to-verify ground truth.
//	  • Factoring of rotations: a fast forward spherical transform that
//	    trades a pole-singular quadrature for a 90°-rotated Fourier
//	    problem plus a closed-form deconvolution.
//	  • Fourier reduction of SO(3): the three-angle Wigner transform as a
//	    stack of two-angle spherical transforms coupled by one Fourier
//	    pass over the orientation angle.
//
// ✨ Why choose so3?
//
//   - Exact — aliasing-free analysis/synthesis from minimal sample counts
//   - Checkable — every fast path ships with its brute-force oracle
//   - Flexible storage — four coefficient layouts (padded/compact ×
//     zero-first/neg-first) under one index map
//   - No hidden state — every transform is a pure function of its inputs
//
// Everything is organized under four subpackages:
//
//	sampling/ — MW grids on S² and SO(3), coefficient index maps & sizes
//	wignerd/  — Wigner-d matrix recursions (Risbo, Trapani), degree cursor
//	sht/      — spherical harmonic transforms (direct inverse, fast forward)
//	wigner/   — SO(3) Wigner transforms over all storage layouts & n-modes
package so3
