// Package fourvec provides the minimal four-momentum algebra needed for
// resonance reconstruction: building a vector from cartesian momentum plus an
// assumed rest mass, summing vectors, and reading back invariant mass,
// transverse momentum and rapidity.
package fourvec

import "math"

// Vec is a four-momentum in (px, py, pz, E) representation, in GeV.
type Vec struct {
	Px, Py, Pz, E float64
}

// XYZM builds a four-momentum from cartesian momentum components and an
// assumed rest mass.
func XYZM(px, py, pz, m float64) Vec {
	return Vec{
		Px: px,
		Py: py,
		Pz: pz,
		E:  math.Sqrt(px*px + py*py + pz*pz + m*m),
	}
}

// Add returns the component-wise sum v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{
		Px: v.Px + u.Px,
		Py: v.Py + u.Py,
		Pz: v.Pz + u.Pz,
		E:  v.E + u.E,
	}
}

// Pt returns the transverse momentum.
func (v Vec) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P2 returns the squared three-momentum magnitude.
func (v Vec) P2() float64 {
	return v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz
}

// M2 returns the squared invariant mass E^2 - |p|^2. It can be slightly
// negative for a single massless-limit vector due to rounding.
func (v Vec) M2() float64 {
	return v.E*v.E - v.P2()
}

// M returns the invariant mass. A negative M2 maps to -sqrt(-M2) so that
// rounding below zero stays visible instead of being clamped away.
func (v Vec) M() float64 {
	m2 := v.M2()
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}
	return math.Sqrt(m2)
}

// Rapidity returns 0.5*ln((E+pz)/(E-pz)).
func (v Vec) Rapidity() float64 {
	return 0.5 * math.Log((v.E+v.Pz)/(v.E-v.Pz))
}
