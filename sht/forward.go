package sht

import (
	"math"

	"github.com/valgur/so3/sampling"
	"github.com/valgur/so3/wignerd"
)

// Weight returns the deconvolution kernel value
//
//	w(d) = ∫₀^π e^{idθ} sinθ dθ
//
// which is iπd/2 at |d| = 1, 2/(1-d²) for even d, and 0 for every other
// odd d. It compensates the 90°-rotated quadrature of the fast forward
// transform.
func Weight(d int) complex128 {
	switch {
	case d == 1:
		return complex(0, math.Pi/2)
	case d == -1:
		return complex(0, -math.Pi/2)
	case d&1 == 0:
		return complex(2/float64(1-d*d), 0)
	default:
		return 0
	}
}

// Forward — fast forward spherical harmonic transform by factoring of
// rotations
//
// Description:
//
//	Analyzes a function sampled on the L × (2L-1) MW grid into its
//	length-L² coefficient vector. Five passes, each fully materialized
//	before the next begins:
//
//	 1. Azimuthal analysis: fm(m,t) = (1/(2L-1)) Σ_p f(t,p) e^{-imφ_p}.
//	 2. Polar extension: the colatitude grid is symmetric about the
//	    equator up to the sign (-1)^(m+s), so the reflected half of the
//	    extended θ ∈ [0,2π) domain is filled by indexing alone:
//	    fm(m,t) = (-1)^(m+s) fm(m, 2L-2-t) for t = L..2L-2.
//	 3. Double Fourier analysis over the extended colatitude:
//	    fmm(m,mm) = (1/(2L-1)) Σ_t fm(m,t) e^{-i·mm·θ_t}.
//	 4. Deconvolution: gmm(m,mm) = 2π Σ_{mm'} fmm(m,mm') · Weight(mm'-mm).
//	 5. Degree reduction at β = π/2, advancing a Wigner-d recursion from
//	    degree 0 to L-1:
//	    flm(l,m) = (-1)^s i^(m+s) sqrt((2l+1)/4π)
//	               · Σ_{mm} d^l_{mm,m}(π/2) d^l_{mm,-s}(π/2) gmm(m,mm).
//
//	Every pass is the direct sum it mathematically is; passes 1, 3 and the
//	inner sums of 4-5 are discrete Fourier transforms and may be replaced
//	by FFT primitives without changing any value beyond rounding.
//
//	All intermediate arrays (fm, fmm, gmm) are owned by a single call and
//	released on return; the transform has no cross-call state.
//
// Errors:
//   - ErrBandLimit    — L < 1.
//   - ErrSampleLength — len(f) != L·(2L-1).
//   - wignerd.ErrMethod / wignerd.ErrMethodAngle — invalid Options.Method.
func Forward(f []complex128, L, spin int, opts *Options) ([]complex128, error) {
	if L < 1 {
		return nil, ErrBandLimit
	}
	nphi := 2*L - 1
	if len(f) != L*nphi {
		return nil, ErrSampleLength
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	// Fail fast on a bad method before any transient allocation.
	rec, err := wignerd.NewRecursion(L, math.Pi/2, o.Method)
	if err != nil {
		return nil, err
	}

	_, phis, err := sampling.SphereGrid(L)
	if err != nil {
		return nil, err
	}

	// Pass 1: azimuthal analysis, one Fourier coefficient per order m and
	// sampled colatitude t. fm rows are m + L-1, columns the extended
	// colatitude index t = 0..2L-2.
	fm := make([]complex128, nphi*nphi)
	for m := -(L - 1); m < L; m++ {
		row := (m + L - 1) * nphi
		for t := 0; t < L; t++ {
			var sum complex128
			for p := 0; p < nphi; p++ {
				sum += f[t*nphi+p] * expi(-float64(m)*phis[p])
			}
			fm[row+t] = sum / complex(float64(nphi), 0)
		}
	}

	// Pass 2: polar extension by equatorial symmetry.
	for m := -(L - 1); m < L; m++ {
		row := (m + L - 1) * nphi
		sign := complex(spinSign(m+spin), 0)
		for t := L; t < nphi; t++ {
			fm[row+t] = sign * fm[row+(2*L-2-t)]
		}
	}

	// Pass 3: Fourier analysis over the extended colatitude domain.
	// θ_t = π(2t+1)/(2L-1) covers [0, 2π) for t = 0..2L-2.
	fmm := make([]complex128, nphi*nphi)
	for m := -(L - 1); m < L; m++ {
		row := (m + L - 1) * nphi
		for mm := -(L - 1); mm < L; mm++ {
			var sum complex128
			for t := 0; t < nphi; t++ {
				theta := math.Pi * float64(2*t+1) / float64(nphi)
				sum += fm[row+t] * expi(-float64(mm)*theta)
			}
			fmm[row+mm+L-1] = sum / complex(float64(nphi), 0)
		}
	}

	// Pass 4: deconvolution with the antipodal kernel.
	gmm := make([]complex128, nphi*nphi)
	for m := -(L - 1); m < L; m++ {
		row := (m + L - 1) * nphi
		for mm := -(L - 1); mm < L; mm++ {
			var sum complex128
			for mmp := -(L - 1); mmp < L; mmp++ {
				sum += fmm[row+mmp+L-1] * Weight(mmp-mm)
			}
			gmm[row+mm+L-1] = complex(2*math.Pi, 0) * sum
		}
	}

	// Pass 5: Wigner-d weighted degree reduction at β = π/2.
	flm := make([]complex128, L*L)
	ssign := spinSign(spin)
	for l := 0; l < L; l++ {
		dl, err := rec.Advance()
		if err != nil {
			return nil, err
		}
		if l < abs(spin) {
			continue
		}
		norm := ssign * harmonicNorm(l)
		for m := -l; m <= l; m++ {
			row := (m + L - 1) * nphi
			var sum complex128
			for mm := -l; mm <= l; mm++ {
				sum += gmm[row+mm+L-1] * complex(dl.At(mm, m)*dl.At(mm, -spin), 0)
			}
			flm[l*l+l+m] = complex(norm, 0) * ipow(m+spin) * sum
		}
	}
	return flm, nil
}
