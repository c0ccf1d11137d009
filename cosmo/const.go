package cosmo

// Fundamental constants in MKS units, needed to convert between
// cosmological unit systems and the parsec-based distances used by the
// photometric distance modulus.
const (
	// MpcMks is one megaparsec in meters.
	MpcMks = 3.0856775814913673e22
	// PcMks is one parsec in meters.
	PcMks = MpcMks / 1e6
	// GMks is Newton's gravitational constant in m^3 kg^-1 s^-2.
	GMks = 6.674e-11
	// MSunMks is one solar mass in kg.
	MSunMks = 1.98892e30
)
