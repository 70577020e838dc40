package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRoundTrip(t *testing.T) {
	assert.Equal(t, 11000.0, NewMetres(11000.0).V())
	assert.Equal(t, 101325.0, NewPascals(101325.0).V())
	assert.Equal(t, 288.15, NewKelvin(288.15).V())
	assert.Equal(t, 340.294, NewMetresPerSecond(340.294).V())
	assert.Equal(t, 9.80665, NewMetresPerSecondSquared(9.80665).V())
	assert.Equal(t, 1.225, NewKilogramsPerCubicMetre(1.225).V())
}

func TestValueRoundTripFloat32(t *testing.T) {
	assert.Equal(t, float32(11000), NewMetres[float32](11000).V())
	assert.Equal(t, float32(101325), NewPascals[float32](101325).V())
	assert.Equal(t, float32(288.15), NewKelvin[float32](288.15).V())
}

func TestRatio(t *testing.T) {
	// A Mach number is the ratio of a speed to the local speed of sound.
	mach := NewMetresPerSecond(170.147).Ratio(NewMetresPerSecond(340.294))
	assert.InDelta(t, 0.5, mach, 1e-12)

	delta := NewPascals(50662.5).Ratio(NewPascals(101325.0))
	assert.InDelta(t, 0.5, delta, 1e-12)

	theta := NewKelvin(216.65).Ratio(NewKelvin(288.15))
	assert.InDelta(t, 0.75186, theta, 1e-5)

	sigma := NewKilogramsPerCubicMetre(0.3639).Ratio(NewKilogramsPerCubicMetre(1.225))
	assert.InDelta(t, 0.29706, sigma, 1e-5)
}

func TestString(t *testing.T) {
	assert.Equal(t, "11000 m", NewMetres(11000.0).String())
	assert.Equal(t, "101325 Pa", NewPascals(101325.0).String())
	assert.Equal(t, "216.65 K", NewKelvin(216.65).String())
	assert.Equal(t, "340.294 m/s", NewMetresPerSecond(340.294).String())
	assert.Equal(t, "9.80665 m/s^2", NewMetresPerSecondSquared(9.80665).String())
	assert.Equal(t, "1.225 kg/m^3", NewKilogramsPerCubicMetre(1.225).String())
}
