// Package sampling defines core types and sentinel errors for the sampling
// subpackage of github.com/valgur/so3.
package sampling

import "errors"

// Sentinel errors for sampling operations.
var (
	// ErrBandLimit indicates a non-positive harmonic band-limit L.
	ErrBandLimit = errors.New("sampling: harmonic band-limit must be positive")
	// ErrOrientationBand indicates an orientational band-limit N outside 1..L.
	ErrOrientationBand = errors.New("sampling: orientational band-limit must satisfy 1 <= N <= L")
	// ErrStorage indicates an unsupported storage layout tag.
	ErrStorage = errors.New("sampling: unsupported storage layout")
	// ErrIndexRange indicates an (l,m,n) triple outside |m| <= l, |n| <= l < L, |n| < N.
	ErrIndexRange = errors.New("sampling: harmonic index out of range")
	// ErrOffsetRange indicates a flat offset outside the storage vector.
	ErrOffsetRange = errors.New("sampling: flat offset out of range")
)

// Storage selects how SO(3) Wigner coefficients f_lmn are packed into a flat
// vector. Two independent binary choices — padded vs compact stride, and
// zero-first vs neg-first ordering of the orientation frequency n — give four
// layouts in total.
type Storage int

const (
	// PaddedZeroFirst uses stride L² per n, n ordered 0, 1, …, N-1, -N+1, …, -1.
	PaddedZeroFirst Storage = iota
	// PaddedNegFirst uses stride L² per n, n ordered -N+1, …, -1, 0, 1, …, N-1.
	PaddedNegFirst
	// CompactZeroFirst uses stride L²-n² per n, n ordered 0, 1, …, N-1, -N+1, …, -1.
	CompactZeroFirst
	// CompactNegFirst uses stride L²-n² per n, n ordered -N+1, …, -1, 0, 1, …, N-1.
	CompactNegFirst
)

// Valid reports whether s is one of the four supported layouts.
func (s Storage) Valid() bool {
	return s >= PaddedZeroFirst && s <= CompactNegFirst
}

// Padded reports whether s stores a fixed L² block per orientation frequency,
// keeping explicit zeros for the l < |n| slots.
func (s Storage) Padded() bool {
	return s == PaddedZeroFirst || s == PaddedNegFirst
}

// ZeroFirst reports whether s orders orientation frequencies as
// 0, 1, …, N-1, -N+1, …, -1 rather than -N+1, …, N-1.
func (s Storage) ZeroFirst() bool {
	return s == PaddedZeroFirst || s == CompactZeroFirst
}

// String returns the canonical name of the layout.
func (s Storage) String() string {
	switch s {
	case PaddedZeroFirst:
		return "PaddedZeroFirst"
	case PaddedNegFirst:
		return "PaddedNegFirst"
	case CompactZeroFirst:
		return "CompactZeroFirst"
	case CompactNegFirst:
		return "CompactNegFirst"
	default:
		return "Storage(unknown)"
	}
}
