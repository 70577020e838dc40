package isa

import (
	"testing"

	"github.com/atmo/atmogo/units"
	"github.com/stretchr/testify/assert"
)

func TestTemperature(t *testing.T) {
	tests := []struct {
		name     string
		altitude float64
		want     float64
	}{
		{"sea level", 0.0, 288.15},
		{"500 m", 500.0, 288.15 - 3.25},
		{"2000 m", 2000.0, 288.15 - 13.0},
		{"tropopause", 11000.0, 216.65},
		{"12000 m", 12000.0, 216.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Temperature(units.NewMetres(tt.altitude))
			assert.Equal(t, tt.want, got.V())
		})
	}
}

func TestTemperatureClampedAboveTropopause(t *testing.T) {
	for altitude := 11000.0; altitude <= 30000.0; altitude += 500.0 {
		got := Temperature(units.NewMetres(altitude))

		assert.Equal(t, 216.65, got.V(), "altitude %v m", altitude)
	}
}

func TestTemperatureWithOffset(t *testing.T) {
	// ISA+15 day at sea level.
	warm := TemperatureWithOffset(units.NewMetres(0.0), units.NewKelvin(15.0))
	assert.InDelta(t, 303.15, warm.V(), 1e-12)

	// The offset shifts the whole profile below the tropopause.
	at2000 := TemperatureWithOffset(units.NewMetres(2000.0), units.NewKelvin(10.0))
	assert.InDelta(t, 288.15-13.0+10.0, at2000.V(), 1e-12)

	// A cold day still clamps to the tropopause temperature.
	cold := TemperatureWithOffset(units.NewMetres(0.0), units.NewKelvin(-80.0))
	assert.Equal(t, 216.65, cold.V())
}

func TestDensity(t *testing.T) {
	// Sea level density is derived from the primary constants, so it only
	// approximates the table value.
	sea := Density(units.NewPascals(101325.0), units.NewKelvin(288.15))
	assert.InEpsilon(t, 1.225, sea.V(), 2e-6)

	tropopause := Density(units.NewPascals(22632.0400950781), units.NewKelvin(216.65))
	assert.InEpsilon(t, 0.36391765, tropopause.V(), 1e-8)
}

func TestDensityContract(t *testing.T) {
	assert.PanicsWithValue(t, "isa: non-positive temperature", func() {
		Density(units.NewPascals(101325.0), units.NewKelvin(0.0))
	})
}

func TestSpeedOfSound(t *testing.T) {
	sea := SpeedOfSound(units.NewKelvin(288.15))
	assert.InEpsilon(t, 340.294, sea.V(), 1e-7)

	tropopause := SpeedOfSound(units.NewKelvin(216.65))
	assert.InEpsilon(t, 295.0694935, tropopause.V(), 1e-8)
}

func TestSpeedOfSoundContract(t *testing.T) {
	assert.PanicsWithValue(t, "isa: non-positive temperature", func() {
		SpeedOfSound(units.NewKelvin(-56.5))
	})
}

func TestAtmosphereFloat32(t *testing.T) {
	temperature := Temperature(units.NewMetres[float32](2000))
	assert.InDelta(t, 275.15, float64(temperature.V()), 1e-3)

	density := Density(units.NewPascals[float32](101325), units.NewKelvin[float32](288.15))
	assert.InEpsilon(t, 1.225, float64(density.V()), 1e-5)

	sound := SpeedOfSound(units.NewKelvin[float32](216.65))
	assert.InEpsilon(t, 295.0694935, float64(sound.V()), 1e-5)
}
