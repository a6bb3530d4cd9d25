// Package wigner defines options and sentinel errors for the SO(3) Wigner
// transform subpackage of github.com/valgur/so3.
package wigner

import (
	"errors"

	"github.com/valgur/so3/sampling"
	"github.com/valgur/so3/wignerd"
)

// Sentinel errors for SO(3) transforms.
var (
	// ErrBandLimit indicates a non-positive harmonic band-limit L.
	ErrBandLimit = errors.New("wigner: harmonic band-limit must be positive")
	// ErrOrientationBand indicates an orientational band-limit N outside 1..L.
	ErrOrientationBand = errors.New("wigner: orientational band-limit must satisfy 1 <= N <= L")
	// ErrCoeffLength indicates a coefficient vector whose length does not
	// match the storage layout's size formula for (L, N).
	ErrCoeffLength = errors.New("wigner: coefficient vector length does not match storage layout")
	// ErrSampleLength indicates a sample grid whose length is not
	// (2N-1)·L·(2L-1).
	ErrSampleLength = errors.New("wigner: sample grid length must equal (2N-1)*L*(2L-1)")
	// ErrNMode indicates an unsupported orientation-frequency filter tag.
	ErrNMode = errors.New("wigner: unsupported n-mode filter")
)

// NMode filters which orientation frequencies a transform computes.
// Skipped frequencies contribute exact zeros: zero sample content in the
// inverse direction, zero coefficients in the forward direction.
type NMode int

const (
	// NModeAll computes every n in -N+1..N-1. The base algorithm.
	NModeAll NMode = iota
	// NModeEven computes only even n (including n = 0).
	NModeEven
	// NModeOdd computes only odd n.
	NModeOdd
	// NModeMaximum computes only |n| = N-1.
	NModeMaximum
)

// Valid reports whether m is a supported filter.
func (m NMode) Valid() bool {
	return m >= NModeAll && m <= NModeMaximum
}

// skips reports whether orientation frequency n is excluded by the filter.
func (m NMode) skips(n, N int) bool {
	switch m {
	case NModeEven:
		return n&1 != 0
	case NModeOdd:
		return n&1 == 0
	case NModeMaximum:
		return n != N-1 && n != -(N - 1)
	default:
		return false
	}
}

// String returns the filter name.
func (m NMode) String() string {
	switch m {
	case NModeAll:
		return "NModeAll"
	case NModeEven:
		return "NModeEven"
	case NModeOdd:
		return "NModeOdd"
	case NModeMaximum:
		return "NModeMaximum"
	default:
		return "NMode(unknown)"
	}
}

// Options configures the SO(3) transforms.
//
// Fields:
//   - Storage — coefficient packing layout (see sampling.Storage).
//   - NMode   — orientation-frequency filter; NModeAll computes everything.
//   - Method  — Wigner-d recursion variant handed to the spherical engine.
type Options struct {
	Storage sampling.Storage
	NMode   NMode
	Method  wignerd.Method
}

// DefaultOptions returns the default configuration:
// Storage=PaddedZeroFirst, NMode=NModeAll, Method=Risbo.
func DefaultOptions() Options {
	return Options{
		Storage: sampling.PaddedZeroFirst,
		NMode:   NModeAll,
		Method:  wignerd.Risbo,
	}
}
