package wignerd

import "math"

// Recursion — Wigner-d degree cursor
//
// Description:
//
//	A Recursion owns one Wigner-d plane for a fixed angle β and extends it
//	degree by degree. Advance produces degree 0 on its first call, then 1,
//	2, … up to L-1. The cursor shape makes the sequencing contract of the
//	recursion (degree strictly increasing from 0) impossible to violate.
//
// Algorithm Outline (Risbo):
//  1. Degree 0 is the 1×1 identity plane.
//  2. Degree l is built from degree l-1 with two half-angle interpolation
//     steps through the half-integer degree l-1/2: each element of the
//     source plane scatters into four elements of the target with weights
//     built from cos(β/2), sin(β/2) and a square-root table.
//  3. Both steps share one scratch buffer owned by the cursor; no
//     allocation happens inside Advance.
//
// Errors:
//   - ErrBandLimit   — L < 1 at construction.
//   - ErrMethod      — unknown Method tag at construction.
//   - ErrMethodAngle — Trapani requested at an angle other than π/2.
//   - ErrExhausted   — Advance called after degree L-1.
type Recursion struct {
	L      int
	beta   float64
	method Method
	next   int // degree the next Advance call will produce
	plane  *Plane
	dd     []float64 // Risbo half-step scratch, stride 2L
	seed   []float64 // Trapani column seeds
	sqt    []float64 // sqt[i] = sqrt(i)
	coshb  float64   // cos(beta/2)
	sinhb  float64   // sin(beta/2)
}

// halfPiTol bounds |beta - pi/2| for methods restricted to the equator.
const halfPiTol = 1e-14

// NewRecursion creates a degree cursor for band-limit L at angle beta.
// The first Advance call yields degree 0.
func NewRecursion(L int, beta float64, method Method) (*Recursion, error) {
	if L < 1 {
		return nil, ErrBandLimit
	}
	if !method.Valid() {
		return nil, ErrMethod
	}
	if method == Trapani && math.Abs(beta-math.Pi/2) > halfPiTol {
		return nil, ErrMethodAngle
	}

	r := &Recursion{
		L:      L,
		beta:   beta,
		method: method,
		plane:  newPlane(L),
		sqt:    make([]float64, 2*L),
		coshb:  math.Cos(beta / 2),
		sinhb:  math.Sin(beta / 2),
	}
	for i := range r.sqt {
		r.sqt[i] = math.Sqrt(float64(i))
	}
	switch method {
	case Risbo:
		r.dd = make([]float64, 2*L*2*L)
	case Trapani:
		r.seed = make([]float64, L)
	}
	return r, nil
}

// Degree returns the degree of the plane produced by the last Advance call,
// or -1 before the first call.
func (r *Recursion) Degree() int { return r.next - 1 }

// Advance extends the plane to the next degree and returns it. The returned
// Plane is owned by the cursor and is valid until the next Advance call.
func (r *Recursion) Advance() (*Plane, error) {
	if r.next >= r.L {
		return nil, ErrExhausted
	}
	el := r.next
	switch r.method {
	case Risbo:
		r.advanceRisbo(el)
	default:
		r.advanceTrapani(el)
	}
	r.next++
	return r.plane, nil
}

// advanceRisbo extends the plane from degree el-1 to el with two half-angle
// interpolation steps (degree el-1 → el-1/2 → el).
func (r *Recursion) advanceRisbo(el int) {
	p := r.plane
	if el == 0 {
		p.set(0, 0, 1)
		return
	}

	stride := 2 * r.L
	for i := 0; i <= 2*el; i++ {
		for k := 0; k <= 2*el; k++ {
			r.dd[i*stride+k] = 0
		}
	}

	// Step one: degree el-1 (size 2el-1) into the half-integer plane
	// (size 2el) held in scratch. Row index i maps to m = i - (el-1).
	j := 2*el - 1
	for k := 0; k < j; k++ {
		for i := 0; i < j; i++ {
			a := p.At(i-(el-1), k-(el-1)) / float64(j)
			r.dd[i*stride+k] += r.sqt[j-i] * r.sqt[j-k] * a * r.coshb
			r.dd[(i+1)*stride+k] -= r.sqt[i+1] * r.sqt[j-k] * a * r.sinhb
			r.dd[i*stride+k+1] += r.sqt[j-i] * r.sqt[k+1] * a * r.sinhb
			r.dd[(i+1)*stride+k+1] += r.sqt[i+1] * r.sqt[k+1] * a * r.coshb
		}
	}

	// Step two: half-integer plane into degree el. Row index i maps to
	// m = i - el.
	j = 2 * el
	for m := -el; m <= el; m++ {
		for mm := -el; mm <= el; mm++ {
			p.set(m, mm, 0)
		}
	}
	for k := 0; k < j; k++ {
		for i := 0; i < j; i++ {
			a := r.dd[i*stride+k] / float64(j)
			p.add(i-el, k-el, r.sqt[j-i]*r.sqt[j-k]*a*r.coshb)
			p.add(i+1-el, k-el, -r.sqt[i+1]*r.sqt[j-k]*a*r.sinhb)
			p.add(i-el, k+1-el, r.sqt[j-i]*r.sqt[k+1]*a*r.sinhb)
			p.add(i+1-el, k+1-el, r.sqt[i+1]*r.sqt[k+1]*a*r.coshb)
		}
	}
}

// signpow returns (-1)^k.
func signpow(k int) float64 {
	if k&1 == 0 {
		return 1
	}
	return -1
}
