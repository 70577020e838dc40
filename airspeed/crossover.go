package airspeed

import (
	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
)

// crossoverPressureRatio returns the pressure ratio at which the given
// calibrated airspeed and Mach number correspond to the same true airspeed.
// BADA Rev 3.12, Eq 3.1-29.
// Panics unless mach is positive.
func crossoverPressureRatio[T units.Float](cas units.MetresPerSecond[T], mach T) T {
	const halfKappaMinusOne = (isa.AdiabaticIndex - 1) / 2

	if mach <= 0 {
		panic("airspeed: non-positive Mach number")
	}

	casMach := cas.V() / isa.SeaLevelSpeedOfSound
	numerator := pow(1+halfKappaMinusOne*casMach*casMach, T(isa.InvU)) - 1
	denominator := pow(1+halfKappaMinusOne*mach*mach, T(isa.InvU)) - 1

	return numerator / denominator
}

// CrossoverAltitude returns the altitude at which the true airspeeds for the
// given calibrated airspeed and Mach number coincide. Below it a constant
// CAS gives the higher TAS, above it the constant Mach number does. The
// altitude follows in closed form from the crossover pressure ratio and the
// troposphere temperature relation, with no iteration.
// BADA Rev 3.12, Eq 3.1-27.
// Panics unless mach is positive.
func CrossoverAltitude[T units.Float](cas units.MetresPerSecond[T], mach T) units.Metres[T] {
	if mach <= 0 {
		panic("airspeed: non-positive Mach number")
	}

	temperatureRatio := pow(crossoverPressureRatio(cas, mach), T(isa.TemperaturePower))

	return units.NewMetres(isa.SeaLevelTemperature * (1 - temperatureRatio) / -isa.TemperatureGradient)
}
