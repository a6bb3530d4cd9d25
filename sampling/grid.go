package sampling

import "math"

// SphereGrid returns the MW sample coordinates on the sphere for harmonic
// band-limit L: the L colatitudes θ_t = π(2t+1)/(2L-1), t = 0..L-1, and the
// 2L-1 longitudes φ_p = 2πp/(2L-1), p = 0..2L-2.
//
// Returns ErrBandLimit if L < 1.
func SphereGrid(L int) (thetas, phis []float64, err error) {
	if L < 1 {
		return nil, nil, ErrBandLimit
	}
	thetas = make([]float64, L)
	for t := 0; t < L; t++ {
		thetas[t] = math.Pi * float64(2*t+1) / float64(2*L-1)
	}
	phis = make([]float64, 2*L-1)
	for p := 0; p < 2*L-1; p++ {
		phis[p] = 2 * math.Pi * float64(p) / float64(2*L-1)
	}
	return thetas, phis, nil
}

// RotationGridSizes returns the number of samples along each Euler angle of
// the MW rotation-group grid for band-limits (L, N):
// nAlpha = 2L-1 azimuths, nBeta = L colatitudes, nGamma = 2N-1 orientations.
//
// Returns ErrBandLimit if L < 1 and ErrOrientationBand if N is outside 1..L.
func RotationGridSizes(L, N int) (nAlpha, nBeta, nGamma int, err error) {
	if L < 1 {
		return 0, 0, 0, ErrBandLimit
	}
	if N < 1 || N > L {
		return 0, 0, 0, ErrOrientationBand
	}
	return 2*L - 1, L, 2*N - 1, nil
}

// Alphas returns the 2L-1 azimuth samples α_a = 2πa/(2L-1).
// Returns ErrBandLimit if L < 1.
func Alphas(L int) ([]float64, error) {
	if L < 1 {
		return nil, ErrBandLimit
	}
	alphas := make([]float64, 2*L-1)
	for a := 0; a < 2*L-1; a++ {
		alphas[a] = 2 * math.Pi * float64(a) / float64(2*L-1)
	}
	return alphas, nil
}

// Betas returns the L colatitude samples β_b = π(2b+1)/(2L-1).
// Returns ErrBandLimit if L < 1.
func Betas(L int) ([]float64, error) {
	if L < 1 {
		return nil, ErrBandLimit
	}
	betas := make([]float64, L)
	for b := 0; b < L; b++ {
		betas[b] = math.Pi * float64(2*b+1) / float64(2*L-1)
	}
	return betas, nil
}

// Gammas returns the 2N-1 orientation samples γ_g = 2πg/(2N-1).
// Returns ErrOrientationBand if N < 1.
func Gammas(N int) ([]float64, error) {
	if N < 1 {
		return nil, ErrOrientationBand
	}
	gammas := make([]float64, 2*N-1)
	for g := 0; g < 2*N-1; g++ {
		gammas[g] = 2 * math.Pi * float64(g) / float64(2*N-1)
	}
	return gammas, nil
}
