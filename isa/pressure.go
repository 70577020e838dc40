package isa

import "github.com/atmo/atmogo/units"

// tropospherePressure returns the pressure below the tropopause for the
// given pressure altitude. BADA Rev 3.12, Eq 3.1-18.
// Panics if altitude is above TropopauseAltitude.
func tropospherePressure[T units.Float](altitude units.Metres[T]) units.Pascals[T] {
	if altitude.V() > TropopauseAltitude {
		panic("isa: altitude above the tropopause")
	}

	return units.NewPascals(SeaLevelPressure *
		pow(1+altitude.V()*TemperatureGradient/SeaLevelTemperature, T(PressurePower)))
}

// tropopausePressure returns the pressure at or above the tropopause for the
// given pressure altitude. BADA Rev 3.12, Eq 3.1-20.
// Panics if altitude is below TropopauseAltitude.
func tropopausePressure[T units.Float](altitude units.Metres[T]) units.Pascals[T] {
	if altitude.V() < TropopauseAltitude {
		panic("isa: altitude below the tropopause")
	}

	return units.NewPascals(TropopausePressure *
		exp(T(TropopausePressureFactor)*(altitude.V()-TropopauseAltitude)))
}

// Pressure returns the standard atmosphere pressure at the given pressure
// altitude. Total over all altitudes: the power-law branch applies below the
// tropopause, the isothermal exponential branch at and above it.
// BADA Rev 3.12, Eq 3.1-18 and Eq 3.1-20.
func Pressure[T units.Float](altitude units.Metres[T]) units.Pascals[T] {
	if altitude.V() < TropopauseAltitude {
		return tropospherePressure(altitude)
	}
	return tropopausePressure(altitude)
}

// troposphereAltitude returns the pressure altitude below the tropopause for
// the given pressure. BADA Rev 3.12, Eq 3.1-8.
func troposphereAltitude[T units.Float](pressure units.Pascals[T]) units.Metres[T] {
	pressureRatio := pressure.V() / SeaLevelPressure
	altitudeRatio := pow(pressureRatio, T(TemperaturePower)) - 1

	return units.NewMetres(altitudeRatio * SeaLevelTemperature / TemperatureGradient)
}

// tropopauseAltitude returns the pressure altitude at or above the
// tropopause for the given pressure. BADA Rev 3.12, Eq 3.1-20.
func tropopauseAltitude[T units.Float](pressure units.Pascals[T]) units.Metres[T] {
	altitudeDelta := log(pressure.V()/TropopausePressure) / T(TropopausePressureFactor)

	return units.NewMetres(TropopauseAltitude + altitudeDelta)
}

// Altitude returns the pressure altitude corresponding to the given
// pressure, the inverse of Pressure. Pressures above TropopausePressure
// resolve through the troposphere branch, the rest through the tropopause
// branch, the same split Pressure uses, so the round trip is exact at the
// boundary.
func Altitude[T units.Float](pressure units.Pascals[T]) units.Metres[T] {
	if pressure.V() > TropopausePressure {
		return troposphereAltitude(pressure)
	}
	return tropopauseAltitude(pressure)
}
