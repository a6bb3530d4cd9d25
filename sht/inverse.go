package sht

import (
	"github.com/valgur/so3/sampling"
	"github.com/valgur/so3/wignerd"
)

// Inverse — direct inverse spherical harmonic transform
//
// Description:
//
//	Synthesizes sampled function values on the MW grid from harmonic
//	coefficients by brute force:
//
//	  f(θ_t, φ_p) = Σ_{l,m} flm(l,m) · (-1)^s · sqrt((2l+1)/4π)
//	                · d^l_{m,-s}(θ_t) · e^{imφ_p}
//
//	with s the pole order (spin). Coefficients with l < |s| do not
//	contribute. For every grid point a fresh Wigner-d recursion is advanced
//	from degree 0 through L-1 — no caching across points. That costs O(L³)
//	per sample and O(L⁵) overall and is intentional: this is the easiest
//	code path to verify and serves as the reference oracle for the fast
//	forward transform, never as a production transform.
//
// Errors:
//   - ErrBandLimit   — L < 1.
//   - ErrCoeffLength — len(flm) != L².
func Inverse(flm []complex128, L, spin int) ([]complex128, error) {
	if L < 1 {
		return nil, ErrBandLimit
	}
	if len(flm) != L*L {
		return nil, ErrCoeffLength
	}

	thetas, phis, err := sampling.SphereGrid(L)
	if err != nil {
		return nil, err
	}

	ssign := spinSign(spin)
	f := make([]complex128, L*(2*L-1))
	for t, theta := range thetas {
		for p, phi := range phis {
			rec, err := wignerd.NewRecursion(L, theta, wignerd.Risbo)
			if err != nil {
				return nil, err
			}
			var sum complex128
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
					c := flm[l*l+l+m]
					if c == 0 {
						continue
					}
					sum += c * complex(norm*dl.At(m, -spin), 0) * expi(float64(m)*phi)
				}
			}
			f[t*(2*L-1)+p] = sum
		}
	}
	return f, nil
}
