package isa

import "github.com/atmo/atmogo/units"

// TemperatureWithOffset returns the atmosphere temperature at the given
// pressure altitude on a non-standard day, offset Kelvin warmer or colder
// than ISA at sea level. The profile falls at TemperatureGradient up to the
// tropopause and is clamped to TropopauseTemperature above it.
// ICAO Doc 7488/3, Eq (11).
func TemperatureWithOffset[T units.Float](altitude units.Metres[T], offset units.Kelvin[T]) units.Kelvin[T] {
	temperature := SeaLevelTemperature + offset.V() + TemperatureGradient*altitude.V()

	if temperature > TropopauseTemperature {
		return units.NewKelvin(temperature)
	}
	return units.NewKelvin[T](TropopauseTemperature)
}

// Temperature returns the standard atmosphere temperature at the given
// pressure altitude.
func Temperature[T units.Float](altitude units.Metres[T]) units.Kelvin[T] {
	return TemperatureWithOffset(altitude, units.NewKelvin[T](0))
}
