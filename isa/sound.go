package isa

import "github.com/atmo/atmogo/units"

// SpeedOfSound returns the speed of sound in air at the given temperature.
// ICAO Doc 7488/3, Eq (21).
// Panics unless temperature is positive.
func SpeedOfSound[T units.Float](temperature units.Kelvin[T]) units.MetresPerSecond[T] {
	if temperature.V() <= 0 {
		panic("isa: non-positive temperature")
	}

	return units.NewMetresPerSecond(sqrt(AdiabaticIndex * GasConstant * temperature.V()))
}
