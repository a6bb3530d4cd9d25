// Package wigner computes forward and inverse Wigner transforms of
// band-limited functions on the rotation group SO(3), sampled on the
// equiangular MW grid.
//
// 🚀 How the 3-angle problem is reduced:
//
//	The third Euler angle γ is a plain Fourier dimension. The transform
//	treats each orientation frequency n = -N+1..N-1 as an independent
//	2-angle problem and delegates it to the spherical harmonic engine
//	(package sht) with pole order -n, then couples the slices back together
//	with one Fourier transform of length 2N-1 over the orientation axis:
//
//	  inverse: unpack n-block → scale by sqrt((2l+1)/16π³) → sht.Inverse
//	           → (-1)^n sign → backward orientation FFT
//	  forward: forward orientation FFT × 2π/(2N-1) → sht.Forward
//	           → sign(n)·sqrt(4π/(2l+1)) → pack n-block
//
//	Physical storage keeps the orientation axis outermost in the FFT order
//	0, 1, …, N-1, -N+1, …, -1 (negative n wrapped to n+2N-1).
//
// ✨ Storage layouts and n-modes:
//
//   - Coefficients honor the triangular truncation |n| ≤ l and are packed
//     under any of the four sampling.Storage layouts; the layout is
//     dispatched once per transform, never per coefficient.
//   - An optional NMode restricts work to a subset of orientation
//     frequencies (all, even, odd, or only |n| = N-1); skipped slices
//     contribute exact zeros.
//
// Each n-slice is independent of every other slice; only the shared
// orientation FFT requires all slices to be resolved first. The transforms
// are single-threaded, synchronous and free of cross-call state.
//
// ⚙️ Usage:
//
//	opts := wigner.DefaultOptions()
//	opts.Storage = sampling.CompactNegFirst
//	f, err := wigner.Inverse(flmn, L, N, &opts)
//	got, err := wigner.Forward(f, L, N, &opts) // got ≈ flmn
//
// Errors: ErrBandLimit, ErrOrientationBand, ErrCoeffLength,
// ErrSampleLength, ErrNMode, and sampling.ErrStorage for bad layout tags.
package wigner
