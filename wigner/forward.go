package wigner

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/valgur/so3/sampling"
	"github.com/valgur/so3/sht"
)

// Forward — forward SO(3) Wigner transform
//
// Description:
//
//	Analyzes sampled function values on the (2N-1) × L × (2L-1)
//	rotation-group grid into Wigner coefficients f_lmn. First a forward
//	Fourier transform of length 2N-1 runs across the orientation
//	dimension, scaled by 2π/(2N-1); slot k of the result holds orientation
//	frequency n = k for k < N and n = k-(2N-1) otherwise. Then for each
//	frequency n kept by the NMode filter:
//
//	 a. run the spherical forward engine on that slice with pole order -n;
//	 b. rescale each degree-l coefficient by sign(n)·sqrt(4π/(2l+1)),
//	    where sign(n) = -1 for odd n and +1 for even n;
//	 c. write the block through the storage layout's index map (compact:
//	    only l ≥ |n|; padded: the full L² block, whose l < |n| head is
//	    zero).
//
//	Coefficients of skipped frequencies stay at their zero-initialized
//	default.
//
// Errors:
//   - ErrBandLimit / ErrOrientationBand / ErrNMode — bad configuration.
//   - sampling.ErrStorage — unknown layout tag.
//   - ErrSampleLength — len(f) != (2N-1)·L·(2L-1).
//   - wignerd.ErrMethod / wignerd.ErrMethodAngle — invalid Options.Method.
func Forward(f []complex128, L, N int, opts *Options) ([]complex128, error) {
	o, size, err := validate(L, N, opts)
	if err != nil {
		return nil, err
	}
	stride := L * (2*L - 1)
	if len(f) != (2*N-1)*stride {
		return nil, ErrSampleLength
	}

	// Forward Fourier transform over the orientation dimension.
	fft := fourier.NewCmplxFFT(2*N - 1)
	in := make([]complex128, 2*N-1)
	out := make([]complex128, 2*N-1)
	fn := make([]complex128, (2*N-1)*stride)
	scale := complex(2*math.Pi/float64(2*N-1), 0)
	for i := 0; i < stride; i++ {
		for g := 0; g < 2*N-1; g++ {
			in[g] = f[g*stride+i]
		}
		out = fft.Coefficients(out, in)
		for k := 0; k < 2*N-1; k++ {
			fn[k*stride+i] = out[k] * scale
		}
	}

	shtOpts := sht.Options{Method: o.Method}
	flmn := make([]complex128, size)
	for n := -N + 1; n < N; n++ {
		if o.NMode.skips(n, N) {
			continue
		}

		offset := n
		if n < 0 {
			offset = n + 2*N - 1
		}
		flm, err := sht.Forward(fn[offset*stride:(offset+1)*stride], L, -n, &shtOpts)
		if err != nil {
			return nil, err
		}

		sign := 1.0
		if n&1 != 0 {
			sign = -1.0
		}
		start, _, err := sampling.FlmnBlock(n, L, N, o.Storage)
		if err != nil {
			return nil, err
		}
		lo, shift := 0, 0
		if !o.Storage.Padded() {
			lo, shift = abs(n), n*n
		}
		for l := lo; l < L; l++ {
			s := complex(sign*math.Sqrt(4*math.Pi/float64(2*l+1)), 0)
			for i := l * l; i < (l+1)*(l+1); i++ {
				flmn[start+i-shift] = flm[i] * s
			}
		}
	}
	return flmn, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
