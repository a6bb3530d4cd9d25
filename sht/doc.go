// Package sht computes spherical harmonic transforms of band-limited
// functions sampled on the equiangular MW grid.
//
// 🚀 What does sht provide?
//
//	Two transforms between a length-L² coefficient vector flm and a
//	L × (2L-1) sample grid, both taking an integer pole order s (spin):
//	  • Inverse — brute-force synthesis. For every grid point it advances a
//	    fresh Wigner-d recursion through all degrees and accumulates every
//	    (l,m) term directly. O(L⁵) and deliberately unoptimized: it is the
//	    ground-truth oracle the fast path is validated against.
//	  • Forward — fast analysis by factoring of rotations: two 1-D Fourier
//	    analyses, a closed-form deconvolution kernel, and a Wigner-d
//	    weighted degree reduction at β = π/2.
//
// ✨ The factoring-of-rotations trick:
//
//	Direct quadrature of the MW grid is singular near the poles. Rotating
//	the problem by 90° turns it into a well-conditioned Fourier extraction
//	over an extended colatitude domain, at the cost of one extra
//	deconvolution pass with the kernel
//
//	  w(d) = ∫₀^π e^{idθ} sinθ dθ =
//	         iπd/2     if |d| = 1,
//	         2/(1-d²)  if d even,
//	         0         otherwise,
//
//	exposed as Weight for standalone verification.
//
// Every pass of Forward is written as the direct sum it mathematically is;
// a production engine may substitute FFT primitives for the Fourier passes
// without changing any value beyond rounding.
//
// ⚙️ Usage:
//
//	f, err := sht.Inverse(flm, L, 0)
//	got, err := sht.Forward(f, L, 0, nil) // got ≈ flm
//
// Errors: ErrBandLimit, ErrCoeffLength, ErrSampleLength (see types.go).
package sht
