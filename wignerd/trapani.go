package wignerd

import "math"

// advanceTrapani extends the plane from degree el-1 to el at β = π/2 using
// the Trapani-Navaza recursion: seed the m = el row from the previous
// degree, recurse downward in m over one eighth of the plane, then fill the
// rest from the π/2 symmetries
//
//	d_{m',m}  = (-1)^(m+m')  · d_{m,m'}
//	d_{m,-m'} = (-1)^(el+m)  · d_{m,m'}
//	d_{-m,m'} = (-1)^(el+m') · d_{m,m'}.
func (r *Recursion) advanceTrapani(el int) {
	p := r.plane
	if el == 0 {
		p.set(0, 0, 1)
		return
	}

	// Seeds d_{el,mm} for mm = 0..el, read from row el-1 of degree el-1
	// before anything is overwritten.
	r.seed[0] = -math.Sqrt(float64(2*el-1)/float64(2*el)) * p.At(el-1, 0)
	for mm := 1; mm <= el; mm++ {
		r.seed[mm] = math.Sqrt(float64(el)/2*float64(2*el-1)/float64((el+mm)*(el+mm-1))) *
			p.At(el-1, mm-1)
	}
	for mm := 0; mm <= el; mm++ {
		p.set(el, mm, r.seed[mm])
	}

	// Three-term recursion downward in m for each column mm >= 0. The
	// m = el-1 row has no second term.
	for mm := 0; mm <= el; mm++ {
		m := el - 1
		p.set(m, mm, float64(2*mm)/math.Sqrt(float64((el-m)*(el+m+1)))*p.At(m+1, mm))
		for m = el - 2; m >= mm; m-- {
			t1 := float64(2*mm) / math.Sqrt(float64((el-m)*(el+m+1))) * p.At(m+1, mm)
			t2 := math.Sqrt(float64((el-m-1)*(el+m+2))/float64((el-m)*(el+m+1))) * p.At(m+2, mm)
			p.set(m, mm, t1-t2)
		}
	}

	// Transpose into the 0 <= m < mm <= el triangle.
	for m := 0; m < el; m++ {
		for mm := m + 1; mm <= el; mm++ {
			p.set(m, mm, signpow(m+mm)*p.At(mm, m))
		}
	}
	// Negative columns for non-negative rows.
	for m := 0; m <= el; m++ {
		for mm := 1; mm <= el; mm++ {
			p.set(m, -mm, signpow(el+m)*p.At(m, mm))
		}
	}
	// Negative rows.
	for m := 1; m <= el; m++ {
		for mm := -el; mm <= el; mm++ {
			p.set(-m, mm, signpow(el+mm)*p.At(m, mm))
		}
	}
}
