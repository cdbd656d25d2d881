package phugoid

import "math"

/* Closed-form phugoid curvature relation, from Lanchester's analysis. */

// RadiusOfCurvature returns the local radius of the osculating circle at
// depth z for a glider trimmed at depth zt with integration constant C.
// No domain checks are performed: a zero depth yields a signed infinity and
// a negative zt/z ratio yields NaN under the fractional power, both of
// which propagate per the fault policy of the caller.
func RadiusOfCurvature(z, zt, C float64) float64 {
	return zt / (1/3. - (C/2)*math.Pow(zt/z, 1.5))
}

// IntegrationConstant returns the conserved constant of one phugoid
// trajectory from its initial conditions. θ0 is in radians. The constant
// parameterizes the family of phugoid curves and must be computed exactly
// once per trajectory.
func IntegrationConstant(z0, zt, θ0 float64) float64 {
	return (math.Cos(θ0) - (1/3.)*(z0/zt)) * math.Sqrt(z0/zt)
}
