package wigner

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/valgur/so3/sampling"
	"github.com/valgur/so3/sht"
)

// Inverse — inverse SO(3) Wigner transform
//
// Description:
//
//	Synthesizes sampled function values on the (2N-1) × L × (2L-1)
//	rotation-group grid from Wigner coefficients f_lmn. For each
//	orientation frequency n:
//
//	 a. extract the degree/order block belonging to n from the storage
//	    layout (padded: contiguous L² copy; compact: L²-n² copy with the
//	    l < |n| head zero-filled);
//	 b. rescale each coefficient of degree l by sqrt((2l+1)/16π³);
//	 c. run the spherical inverse engine with pole order -n;
//	 d. negate the slice when n is odd (Euler-angle sign convention);
//	 e. store the slice at orientation slot n, with n < 0 wrapped to
//	    n+2N-1 so physical order is 0, 1, …, N-1, -N+1, …, -1.
//
//	Slices excluded by the NMode filter stay zero. Once all slices are
//	resolved, one unnormalized backward Fourier transform of length 2N-1
//	runs across the orientation dimension, batched over the L·(2L-1)
//	sphere positions.
//
// Errors:
//   - ErrBandLimit / ErrOrientationBand / ErrNMode — bad configuration.
//   - sampling.ErrStorage — unknown layout tag.
//   - ErrCoeffLength — len(flmn) does not match the layout size for (L, N).
func Inverse(flmn []complex128, L, N int, opts *Options) ([]complex128, error) {
	o, size, err := validate(L, N, opts)
	if err != nil {
		return nil, err
	}
	if len(flmn) != size {
		return nil, ErrCoeffLength
	}

	stride := L * (2*L - 1)
	fn := make([]complex128, (2*N-1)*stride)
	flm := make([]complex128, L*L)

	for n := -N + 1; n < N; n++ {
		if o.NMode.skips(n, N) {
			continue
		}

		start, length, err := sampling.FlmnBlock(n, L, N, o.Storage)
		if err != nil {
			return nil, err
		}
		if o.Storage.Padded() {
			copy(flm, flmn[start:start+length])
		} else {
			for i := 0; i < n*n; i++ {
				flm[i] = 0
			}
			copy(flm[n*n:], flmn[start:start+length])
		}

		for l := 0; l < L; l++ {
			scale := complex(math.Sqrt(float64(2*l+1)/(16*math.Pi*math.Pi*math.Pi)), 0)
			for i := l * l; i < (l+1)*(l+1); i++ {
				flm[i] *= scale
			}
		}

		slice, err := sht.Inverse(flm, L, -n)
		if err != nil {
			return nil, err
		}
		if n&1 != 0 {
			for i := range slice {
				slice[i] = -slice[i]
			}
		}

		offset := n
		if n < 0 {
			offset = n + 2*N - 1
		}
		copy(fn[offset*stride:(offset+1)*stride], slice)
	}

	// Backward Fourier transform over the orientation dimension, one
	// length-(2N-1) series per sphere position.
	fft := fourier.NewCmplxFFT(2*N - 1)
	in := make([]complex128, 2*N-1)
	out := make([]complex128, 2*N-1)
	f := make([]complex128, (2*N-1)*stride)
	for i := 0; i < stride; i++ {
		for g := 0; g < 2*N-1; g++ {
			in[g] = fn[g*stride+i]
		}
		out = fft.Sequence(out, in)
		for g := 0; g < 2*N-1; g++ {
			f[g*stride+i] = out[g]
		}
	}
	return f, nil
}

// validate checks the shared preconditions of both transforms and resolves
// the effective options and coefficient vector size.
func validate(L, N int, opts *Options) (Options, int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if L < 1 {
		return o, 0, ErrBandLimit
	}
	if N < 1 || N > L {
		return o, 0, ErrOrientationBand
	}
	if !o.NMode.Valid() {
		return o, 0, ErrNMode
	}
	size, err := sampling.FlmnSize(L, N, o.Storage)
	if err != nil {
		return o, 0, err
	}
	return o, size, nil
}
