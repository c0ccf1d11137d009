package cosmo

import "math"

// DistanceModulus returns the distance modulus mu = 5*log10(d/10pc) for a
// distance d given in parsecs.
func DistanceModulus(distPc float64) float64 {
	return 5 * math.Log10(distPc/10)
}

// DistancePc inverts DistanceModulus, returning the distance in parsecs
// implied by a distance modulus mu.
func DistancePc(mu float64) float64 {
	return 10 * math.Pow(10, mu/5)
}

// DistanceModulusMks is DistanceModulus for a distance given in meters.
func DistanceModulusMks(distMks float64) float64 {
	return DistanceModulus(distMks / PcMks)
}

// DistanceMks inverts DistanceModulusMks, returning a distance in meters.
func DistanceMks(mu float64) float64 {
	return DistancePc(mu) * PcMks
}
