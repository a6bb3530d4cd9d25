// Package wignerd defines the recursion cursor types and sentinel errors for
// the wignerd subpackage of github.com/valgur/so3.
package wignerd

import "errors"

// Sentinel errors for Wigner-d recursions.
var (
	// ErrBandLimit indicates a non-positive band-limit L.
	ErrBandLimit = errors.New("wignerd: band-limit must be positive")
	// ErrMethod indicates an unsupported recursion method tag.
	ErrMethod = errors.New("wignerd: unsupported recursion method")
	// ErrMethodAngle indicates a method restricted to β = π/2 was requested
	// at a different angle.
	ErrMethodAngle = errors.New("wignerd: recursion method requires angle pi/2")
	// ErrExhausted indicates Advance was called after degree L-1.
	ErrExhausted = errors.New("wignerd: recursion advanced past final degree")
)

// Method selects the recursion variant used to extend a plane from degree
// l-1 to l. All methods are numerically equivalent where they apply; the
// choice affects stability and performance only.
type Method int

const (
	// Risbo recursion: two half-angle interpolation steps per degree.
	// Valid at any angle.
	Risbo Method = iota
	// Trapani recursion: eighth-plane three-term recursion with symmetry
	// fill. Valid only at β = π/2.
	Trapani
)

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == Risbo || m == Trapani
}

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Risbo:
		return "Risbo"
	case Trapani:
		return "Trapani"
	default:
		return "Method(unknown)"
	}
}

// Plane holds one (2L-1)×(2L-1) Wigner-d plane. For the plane of degree l,
// only entries with |m|, |m'| <= l are meaningful; the surrounding border is
// left over from lower degrees and must not be read.
type Plane struct {
	size int // 2L-1
	off  int // L-1, the index of m = 0
	v    []float64
}

// At returns d^l_{m,mm}(β) for the degree the plane currently holds.
// Indices outside [-(L-1), L-1] are the caller's error and will panic on the
// underlying slice access.
func (p *Plane) At(m, mm int) float64 {
	return p.v[(m+p.off)*p.size+(mm+p.off)]
}

// set writes one plane entry.
func (p *Plane) set(m, mm int, v float64) {
	p.v[(m+p.off)*p.size+(mm+p.off)] = v
}

// add accumulates into one plane entry.
func (p *Plane) add(m, mm int, v float64) {
	p.v[(m+p.off)*p.size+(mm+p.off)] += v
}

// newPlane allocates a zeroed plane for band-limit L.
func newPlane(L int) *Plane {
	return &Plane{
		size: 2*L - 1,
		off:  L - 1,
		v:    make([]float64, (2*L-1)*(2*L-1)),
	}
}
