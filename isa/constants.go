// Package isa implements the International Standard Atmosphere model:
// pressure and pressure altitude, the temperature profile, air density and
// the speed of sound.
//
// The model is piecewise. Below the tropopause (11000 m) temperature falls
// linearly with altitude and pressure follows a power law; at and above it
// the atmosphere is isothermal and pressure decays exponentially. Both
// branches meet at TropopausePressure, so Pressure and Altitude are
// continuous across the boundary and exact inverses of each other.
//
// All functions are pure and generic over float32 and float64. Preconditions
// are contract checks: an out-of-domain argument panics rather than returning
// a sentinel value.
//
// References: ICAO Doc 7488/3, "Manual of the ICAO Standard Atmosphere";
// EUROCONTROL BADA User Manual Rev 3.12, Section 3.1.
package isa

// Constants from ICAO Doc 7488/3, Table A. Untyped so that generic code
// picks them up at either precision.
const (
	// Gravity is the acceleration due to gravity in m/s^2 at latitude
	// 45°32'33'' using Lambert's equation.
	Gravity = 9.80665

	// AdiabaticIndex is the adiabatic index of air (kappa), dimensionless.
	AdiabaticIndex = 1.4

	// GasConstant is the real gas constant for air in m^2/(K*s^2).
	GasConstant = 287.05287

	// SeaLevelTemperature is the ISA sea level temperature in K.
	SeaLevelTemperature = 288.15

	// SeaLevelPressure is the ISA sea level pressure in Pa.
	SeaLevelPressure = 101325.0

	// SeaLevelDensity is the ISA sea level density in kg/m^3.
	SeaLevelDensity = 1.225
)

// Constants from ICAO Doc 7488/3, Tables C and D.
const (
	// SeaLevelSpeedOfSound is the ISA sea level speed of sound in m/s.
	SeaLevelSpeedOfSound = 340.294

	// TropopauseTemperature is the ISA temperature at and above the
	// tropopause in K.
	TropopauseTemperature = 216.65

	// TemperatureGradient is the ISA temperature lapse rate between sea
	// level and the tropopause in K/m.
	TemperatureGradient = -0.0065

	// TropopauseAltitude is the ISA tropopause altitude in m.
	TropopauseAltitude = 11000.0
)
