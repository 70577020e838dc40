// Package airspeed converts between calibrated airspeed, true airspeed and
// Mach number in the standard atmosphere, including the CAS / Mach crossover
// altitude used in climb and descent schedules.
//
// The conversions are the compressible-flow relations from the EUROCONTROL
// BADA User Manual Rev 3.12, Section 3.1, evaluated in closed form. All
// functions are pure and generic over float32 and float64.
package airspeed

import (
	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
)

// TrueAirspeed returns the true airspeed for the given calibrated airspeed
// at the given ambient pressure and temperature. BADA Rev 3.12, Eq 3.1-23.
func TrueAirspeed[T units.Float](cas units.MetresPerSecond[T], pressure units.Pascals[T],
	temperature units.Kelvin[T]) units.MetresPerSecond[T] {
	const (
		innerFactor = isa.U / (2 * isa.GasConstant * isa.SeaLevelTemperature)
		outerFactor = 2 * isa.GasConstant / isa.U
	)

	casFactor := pow(1+innerFactor*cas.V()*cas.V(), T(isa.InvU)) - 1
	casPressureFactor := pow(1+isa.SeaLevelPressure*casFactor/pressure.V(), T(isa.U)) - 1

	return units.NewMetresPerSecond(sqrt(outerFactor * temperature.V() * casPressureFactor))
}

// CalibratedAirspeed returns the calibrated airspeed for the given true
// airspeed at the given ambient pressure and temperature. It is the exact
// algebraic inverse of TrueAirspeed at fixed pressure and temperature.
// BADA Rev 3.12, Eq 3.1-24.
func CalibratedAirspeed[T units.Float](tas units.MetresPerSecond[T], pressure units.Pascals[T],
	temperature units.Kelvin[T]) units.MetresPerSecond[T] {
	const (
		innerFactor = isa.U / (2 * isa.GasConstant)
		outerFactor = 2 * isa.GasConstant * isa.SeaLevelTemperature / isa.U
	)

	tasFactor := pow(1+innerFactor*tas.V()*tas.V()/temperature.V(), T(isa.InvU)) - 1
	tasPressureFactor := pow(1+pressure.V()*tasFactor/isa.SeaLevelPressure, T(isa.U)) - 1

	return units.NewMetresPerSecond(sqrt(outerFactor * tasPressureFactor))
}

// MachTrueAirspeed returns the true airspeed for the given Mach number at
// the given temperature. BADA Rev 3.12, Eq 3.1-22.
// Panics unless mach is positive.
func MachTrueAirspeed[T units.Float](mach T, temperature units.Kelvin[T]) units.MetresPerSecond[T] {
	if mach <= 0 {
		panic("airspeed: non-positive Mach number")
	}

	return units.NewMetresPerSecond(mach * isa.SpeedOfSound(temperature).V())
}
