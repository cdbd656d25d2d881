package phugoid

import (
	"fmt"
	"testing"

	"github.com/gonum/floats"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// pointsEqual returns whether two planar points agree within tolerance.
func pointsEqual(x0, z0, x1, z1 float64) (bool, error) {
	if !floats.EqualWithinAbs(x0, x1, 1e-9) || !floats.EqualWithinAbs(z0, z1, 1e-9) {
		return false, fmt.Errorf("(%f, %f) != (%f, %f)", x0, z0, x1, z1)
	}
	return true, nil
}
