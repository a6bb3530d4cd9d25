package sampling

// FlmSize returns the length of a spherical harmonic coefficient vector for
// band-limit L, i.e. L². Returns ErrBandLimit if L < 1.
func FlmSize(L int) (int, error) {
	if L < 1 {
		return 0, ErrBandLimit
	}
	return L * L, nil
}

// FlmIndex returns the canonical flat offset of the spherical harmonic
// coefficient (l,m): l²+l+m, matching the ordering
// (0,0), (1,-1), (1,0), (1,1), (2,-2), …
//
// Returns ErrIndexRange if l < 0 or |m| > l.
func FlmIndex(l, m int) (int, error) {
	if l < 0 || m < -l || m > l {
		return 0, ErrIndexRange
	}
	return l*l + l + m, nil
}

// FlmnSize returns the length of a complex SO(3) Wigner coefficient vector
// for band-limits (L, N) under the given storage layout:
//
//	padded:  (2N-1)·L²
//	compact: (2N-1)·(3L²-N(N-1))/3
//
// Returns ErrBandLimit, ErrOrientationBand or ErrStorage on invalid input.
func FlmnSize(L, N int, storage Storage) (int, error) {
	if err := validateBands(L, N, storage); err != nil {
		return 0, err
	}
	if storage.Padded() {
		return (2*N - 1) * L * L, nil
	}
	return (2*N - 1) * (3*L*L - N*(N-1)) / 3, nil
}

// FlmnSizeReal returns the length of a real SO(3) Wigner coefficient vector,
// which stores only the n >= 0 half of the spectrum:
//
//	padded:  N·L²
//	compact: N·(6L²-(N-1)(2N-1))/6
//
// Returns ErrBandLimit, ErrOrientationBand or ErrStorage on invalid input.
func FlmnSizeReal(L, N int, storage Storage) (int, error) {
	if err := validateBands(L, N, storage); err != nil {
		return 0, err
	}
	if storage.Padded() {
		return N * L * L, nil
	}
	return N * (6*L*L - (N-1)*(2*N-1)) / 6, nil
}

// FlmnBlock returns the flat offset and length of the coefficient block that
// holds orientation frequency n, -N+1 <= n <= N-1, under the given storage
// layout. Padded blocks have length L² and start at the (l=0, m=0) slot;
// compact blocks have length L²-n² and start at the (l=|n|, m=-|n|) slot.
//
// Returns ErrIndexRange if n is outside -N+1..N-1, plus the usual band and
// storage validation errors.
func FlmnBlock(n, L, N int, storage Storage) (start, length int, err error) {
	if err = validateBands(L, N, storage); err != nil {
		return 0, 0, err
	}
	if n <= -N || n >= N {
		return 0, 0, ErrIndexRange
	}
	for k := 0; k < 2*N-1; k++ {
		bn := blockFrequency(k, N, storage)
		bs := blockSize(bn, L, storage)
		if bn == n {
			return start, bs, nil
		}
		start += bs
	}
	// Unreachable: every n in -N+1..N-1 appears exactly once in block order.
	return 0, 0, ErrIndexRange
}

// FlmnIndex returns the flat offset of the Wigner coefficient (l,m,n) under
// the given storage layout. The triple is valid only under the triangular
// truncation |n| <= l < L with |m| <= l and |n| < N; anything else returns
// ErrIndexRange.
func FlmnIndex(l, m, n, L, N int, storage Storage) (int, error) {
	if err := validateBands(L, N, storage); err != nil {
		return 0, err
	}
	if l < 0 || l >= L || m < -l || m > l || n < -l || n > l || n <= -N || n >= N {
		return 0, ErrIndexRange
	}
	start, _, err := FlmnBlock(n, L, N, storage)
	if err != nil {
		return 0, err
	}
	if storage.Padded() {
		return start + l*l + l + m, nil
	}
	return start + l*l + l + m - n*n, nil
}

// FlmnFromIndex inverts FlmnIndex: given a flat offset into a coefficient
// vector of layout storage, it returns the (l,m,n) triple stored there.
// For padded layouts the offset may land in a zero-padding slot with l < |n|;
// the corresponding triple is still returned.
//
// Returns ErrOffsetRange if ind is outside the vector, plus the usual band
// and storage validation errors.
func FlmnFromIndex(ind, L, N int, storage Storage) (l, m, n int, err error) {
	if err = validateBands(L, N, storage); err != nil {
		return 0, 0, 0, err
	}
	size, _ := FlmnSize(L, N, storage)
	if ind < 0 || ind >= size {
		return 0, 0, 0, ErrOffsetRange
	}
	offset := ind
	for k := 0; k < 2*N-1; k++ {
		bn := blockFrequency(k, N, storage)
		bs := blockSize(bn, L, storage)
		if offset >= bs {
			offset -= bs
			continue
		}
		if !storage.Padded() {
			offset += bn * bn
		}
		l = isqrt(offset)
		m = offset - l*l - l
		return l, m, bn, nil
	}
	return 0, 0, 0, ErrOffsetRange
}

// validateBands checks the shared (L, N, storage) preconditions.
func validateBands(L, N int, storage Storage) error {
	if L < 1 {
		return ErrBandLimit
	}
	if N < 1 || N > L {
		return ErrOrientationBand
	}
	if !storage.Valid() {
		return ErrStorage
	}
	return nil
}

// blockFrequency returns the orientation frequency stored in the k-th block,
// k = 0..2N-2, under the layout's n ordering.
func blockFrequency(k, N int, storage Storage) int {
	if storage.ZeroFirst() {
		if k < N {
			return k
		}
		return k - (2*N - 1)
	}
	return k - (N - 1)
}

// blockSize returns the number of coefficients stored for orientation
// frequency n.
func blockSize(n, L int, storage Storage) int {
	if storage.Padded() {
		return L * L
	}
	return L*L - n*n
}

// isqrt returns the integer square root of a non-negative int.
func isqrt(v int) int {
	r := 0
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
