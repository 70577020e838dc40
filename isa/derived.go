package isa

// Coefficients derived from the primary constants. All are exact constant
// expressions except TropopausePressure, which is pinned to the BADA value
// so that both pressure branches share a single boundary.
const (
	// U is the exponent coefficient used in CAS / TAS conversions,
	// (kappa - 1) / kappa. BADA Eq 3.2-14.
	U = (AdiabaticIndex - 1) / AdiabaticIndex

	// InvU is the reciprocal of U. BADA Eq 3.2-14.
	InvU = 1 / U

	// PressurePower is the power relating the temperature ratio to the
	// pressure ratio below the tropopause. BADA Eq 3.1-18.
	PressurePower = -Gravity / (TemperatureGradient * GasConstant)

	// TemperaturePower is the reciprocal of PressurePower. BADA Eq 3.1-8.
	TemperaturePower = 1 / PressurePower

	// TropopausePressure is the pressure at TropopauseAltitude in Pa.
	// BADA Eq 3.1-19.
	TropopausePressure = 22632.0400950781

	// TropopausePressureFactor is the exponential decay rate of pressure
	// and density above the tropopause in 1/m. BADA Eq 3.2-16.
	TropopausePressureFactor = -Gravity / (GasConstant * TropopauseTemperature)
)
