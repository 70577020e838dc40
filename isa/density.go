package isa

import "github.com/atmo/atmogo/units"

// Density returns the air density for the given pressure and temperature
// from the ideal gas law. ICAO Doc 7488/3, Eq (3).
// Panics unless temperature is positive.
func Density[T units.Float](pressure units.Pascals[T], temperature units.Kelvin[T]) units.KilogramsPerCubicMetre[T] {
	if temperature.V() <= 0 {
		panic("isa: non-positive temperature")
	}

	return units.NewKilogramsPerCubicMetre(pressure.V() / (GasConstant * temperature.V()))
}
