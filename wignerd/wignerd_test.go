package wignerd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valgur/so3/wignerd"
)

const tol = 1e-12

// advanceTo runs the cursor from degree 0 up to and including el.
func advanceTo(t *testing.T, rec *wignerd.Recursion, el int) *wignerd.Plane {
	t.Helper()
	var dl *wignerd.Plane
	var err error
	for l := 0; l <= el; l++ {
		dl, err = rec.Advance()
		require.NoError(t, err, "degree %d", l)
	}
	return dl
}

// TestRisbo_DegreeOne checks the full d¹ matrix against the closed form at
// an arbitrary angle.
func TestRisbo_DegreeOne(t *testing.T) {
	beta := 0.7
	rec, err := wignerd.NewRecursion(4, beta, wignerd.Risbo)
	require.NoError(t, err)
	dl := advanceTo(t, rec, 1)

	c2 := math.Cos(beta / 2)
	s2 := math.Sin(beta / 2)
	sb := math.Sin(beta)

	assert.InDelta(t, c2*c2, dl.At(-1, -1), tol)
	assert.InDelta(t, sb/math.Sqrt2, dl.At(-1, 0), tol)
	assert.InDelta(t, s2*s2, dl.At(-1, 1), tol)
	assert.InDelta(t, -sb/math.Sqrt2, dl.At(0, -1), tol)
	assert.InDelta(t, math.Cos(beta), dl.At(0, 0), tol)
	assert.InDelta(t, sb/math.Sqrt2, dl.At(0, 1), tol)
	assert.InDelta(t, s2*s2, dl.At(1, -1), tol)
	assert.InDelta(t, -sb/math.Sqrt2, dl.At(1, 0), tol)
	assert.InDelta(t, c2*c2, dl.At(1, 1), tol)
}

// TestRisbo_DegreeTwo spot-checks d² entries against closed forms.
func TestRisbo_DegreeTwo(t *testing.T) {
	beta := 1.1
	rec, err := wignerd.NewRecursion(5, beta, wignerd.Risbo)
	require.NoError(t, err)
	dl := advanceTo(t, rec, 2)

	cb := math.Cos(beta)
	sb := math.Sin(beta)

	assert.InDelta(t, (3*cb*cb-1)/2, dl.At(0, 0), tol)
	assert.InDelta(t, math.Sqrt(3.0/8.0)*sb*sb, dl.At(2, 0), tol)
	assert.InDelta(t, -math.Sqrt(3.0/2.0)*sb*cb, dl.At(1, 0), tol)
	q := (1 + cb) / 2
	assert.InDelta(t, q*q, dl.At(2, 2), tol)
}

// TestRisbo_IdentityAtZero verifies d^l(0) is the identity block.
func TestRisbo_IdentityAtZero(t *testing.T) {
	const L = 6
	rec, err := wignerd.NewRecursion(L, 0, wignerd.Risbo)
	require.NoError(t, err)
	for l := 0; l < L; l++ {
		dl, err := rec.Advance()
		require.NoError(t, err)
		for m := -l; m <= l; m++ {
			for mm := -l; mm <= l; mm++ {
				want := 0.0
				if m == mm {
					want = 1.0
				}
				assert.InDelta(t, want, dl.At(m, mm), tol, "l=%d m=%d mm=%d", l, m, mm)
			}
		}
	}
}

// TestRisbo_RowOrthonormality checks that rows of d^l are orthonormal,
// a defining property of the rotation matrices.
func TestRisbo_RowOrthonormality(t *testing.T) {
	const L, el = 8, 7
	rec, err := wignerd.NewRecursion(L, 0.9, wignerd.Risbo)
	require.NoError(t, err)
	dl := advanceTo(t, rec, el)

	for m1 := -el; m1 <= el; m1++ {
		for m2 := m1; m2 <= el; m2++ {
			dot := 0.0
			for mm := -el; mm <= el; mm++ {
				dot += dl.At(m1, mm) * dl.At(m2, mm)
			}
			want := 0.0
			if m1 == m2 {
				want = 1.0
			}
			assert.InDelta(t, want, dot, 1e-11, "m1=%d m2=%d", m1, m2)
		}
	}
}

// TestTrapani_MatchesRisboAtHalfPi verifies that the two methods agree on
// every plane entry at β = π/2 for every degree.
func TestTrapani_MatchesRisboAtHalfPi(t *testing.T) {
	const L = 8
	risbo, err := wignerd.NewRecursion(L, math.Pi/2, wignerd.Risbo)
	require.NoError(t, err)
	trapani, err := wignerd.NewRecursion(L, math.Pi/2, wignerd.Trapani)
	require.NoError(t, err)

	for l := 0; l < L; l++ {
		dr, err := risbo.Advance()
		require.NoError(t, err)
		dt, err := trapani.Advance()
		require.NoError(t, err)
		for m := -l; m <= l; m++ {
			for mm := -l; mm <= l; mm++ {
				assert.InDelta(t, dr.At(m, mm), dt.At(m, mm), tol,
					"l=%d m=%d mm=%d", l, m, mm)
			}
		}
	}
}

// TestNewRecursion_Validation covers the construction error paths.
func TestNewRecursion_Validation(t *testing.T) {
	_, err := wignerd.NewRecursion(0, 0.5, wignerd.Risbo)
	assert.ErrorIs(t, err, wignerd.ErrBandLimit)

	_, err = wignerd.NewRecursion(4, 0.5, wignerd.Method(9))
	assert.ErrorIs(t, err, wignerd.ErrMethod)

	_, err = wignerd.NewRecursion(4, 1.0, wignerd.Trapani)
	assert.ErrorIs(t, err, wignerd.ErrMethodAngle)
}

// TestAdvance_Exhaustion verifies the cursor refuses to run past degree L-1
// and reports its current degree along the way.
func TestAdvance_Exhaustion(t *testing.T) {
	const L = 3
	rec, err := wignerd.NewRecursion(L, 0.4, wignerd.Risbo)
	require.NoError(t, err)
	assert.Equal(t, -1, rec.Degree())

	for l := 0; l < L; l++ {
		_, err := rec.Advance()
		require.NoError(t, err)
		assert.Equal(t, l, rec.Degree())
	}
	_, err = rec.Advance()
	assert.ErrorIs(t, err, wignerd.ErrExhausted)
}

// TestMethod_String pins the method names.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "Risbo", wignerd.Risbo.String())
	assert.Equal(t, "Trapani", wignerd.Trapani.String())
	assert.Equal(t, "Method(unknown)", wignerd.Method(7).String())
}
