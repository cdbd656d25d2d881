package phugoid

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// AngleUnit defines the unit of a rotation angle.
type AngleUnit uint8

const (
	// Degrees are converted to radians before any trigonometry.
	Degrees AngleUnit = iota
	// Radians are used as provided.
	Radians
)

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	}
	panic("cannot stringify unknown angle unit")
}

// RotMat returns the planar rotation matrix for the downward-z frame.
// With depth increasing along +z, the sign of the z component is flipped
// compared to the conventional upward-y rotation: this is the upper-left
// 2x2 block of a 3-axis rotation.
func RotMat(θ float64) *mat64.Dense {
	s, c := math.Sincos(θ)
	return mat64.NewDense(2, 2, []float64{c, s, -s, c})
}

// MxV22 multiplies a matrix with a planar vector. Note that there is no
// dimension check!
func MxV22(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0)}
}

// Rotate is the same as RotateAbout with the default center (the origin)
// and the default unit (degrees).
func Rotate(x, z, angle float64) (float64, float64) {
	return RotateAbout(x, z, 0, 0, angle, Degrees)
}

// RotateAbout rotates the point (x, z) about the center (xc, zc) by the
// given signed angle. The same angle applied through RotateBatch yields
// the same result element-wise.
func RotateAbout(x, z, xc, zc, angle float64, unit AngleUnit) (float64, float64) {
	if unit == Degrees {
		angle *= deg2rad
	}
	r := MxV22(RotMat(angle), []float64{x - xc, z - zc})
	return xc + r[0], zc + r[1]
}

// RotateBatch rotates equal-length coordinate slices about (xc, zc) by the
// given signed angle, returning freshly allocated slices. It panics if the
// slice lengths differ.
func RotateBatch(xs, zs []float64, xc, zc, angle float64, unit AngleUnit) ([]float64, []float64) {
	if len(xs) != len(zs) {
		panic(fmt.Errorf("mismatched coordinate slices (%d x, %d z)", len(xs), len(zs)))
	}
	if unit == Degrees {
		angle *= deg2rad
	}
	n := len(xs)
	pts := mat64.NewDense(2, n, nil)
	for i := 0; i < n; i++ {
		pts.Set(0, i, xs[i]-xc)
		pts.Set(1, i, zs[i]-zc)
	}
	var rot mat64.Dense
	rot.Mul(RotMat(angle), pts)
	outX := make([]float64, n)
	outZ := make([]float64, n)
	for i := 0; i < n; i++ {
		outX[i] = xc + rot.At(0, i)
		outZ[i] = zc + rot.At(1, i)
	}
	return outX, outZ
}
