// Package sht defines options and sentinel errors for the spherical
// harmonic transform subpackage of github.com/valgur/so3.
package sht

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/valgur/so3/wignerd"
)

// Sentinel errors for spherical harmonic transforms.
var (
	// ErrBandLimit indicates a non-positive harmonic band-limit L.
	ErrBandLimit = errors.New("sht: harmonic band-limit must be positive")
	// ErrCoeffLength indicates a coefficient vector whose length is not L².
	ErrCoeffLength = errors.New("sht: coefficient vector length must equal L*L")
	// ErrSampleLength indicates a sample grid whose length is not L·(2L-1).
	ErrSampleLength = errors.New("sht: sample grid length must equal L*(2L-1)")
)

// Options configures the fast forward transform.
//
// Fields:
//   - Method — Wigner-d recursion variant for the β = π/2 degree reduction
//     (wignerd.Risbo or wignerd.Trapani). Numerically equivalent; affects
//     stability and speed only.
type Options struct {
	Method wignerd.Method
}

// DefaultOptions returns the default configuration: Method=Risbo.
func DefaultOptions() Options {
	return Options{Method: wignerd.Risbo}
}

// expi returns e^{ix}.
func expi(x float64) complex128 {
	return cmplx.Rect(1, x)
}

// ipow returns i^k for any integer k.
func ipow(k int) complex128 {
	switch ((k % 4) + 4) % 4 {
	case 0:
		return 1
	case 1:
		return 1i
	case 2:
		return -1
	default:
		return -1i
	}
}

// spinSign returns (-1)^s.
func spinSign(s int) float64 {
	if s&1 == 0 {
		return 1
	}
	return -1
}

// harmonicNorm returns sqrt((2l+1)/4π).
func harmonicNorm(l int) float64 {
	return math.Sqrt(float64(2*l+1) / (4 * math.Pi))
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
