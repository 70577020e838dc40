package airspeed

import (
	"testing"

	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
	"github.com/stretchr/testify/assert"
)

func TestTrueAirspeed(t *testing.T) {
	// At sea level conditions CAS and TAS coincide.
	sea := TrueAirspeed(units.NewMetresPerSecond(150.0),
		units.NewPascals(101325.0), units.NewKelvin(288.15))
	assert.InDelta(t, 150.0, sea.V(), 1e-9)

	// BADA worked example at 2000 m.
	at2000 := TrueAirspeed(units.NewMetresPerSecond(150.0),
		units.NewPascals(79495.202), units.NewKelvin(288.15-13.0))
	assert.InDelta(t, 164.457894, at2000.V(), 1e-6)
}

func TestCalibratedAirspeed(t *testing.T) {
	sea := CalibratedAirspeed(units.NewMetresPerSecond(150.0),
		units.NewPascals(101325.0), units.NewKelvin(288.15))
	assert.InDelta(t, 150.0, sea.V(), 1e-9)

	at2000 := CalibratedAirspeed(units.NewMetresPerSecond(164.457894),
		units.NewPascals(79495.202), units.NewKelvin(288.15-13.0))
	assert.InDelta(t, 150.0, at2000.V(), 1e-6)
}

func TestCalibratedTrueAirspeedInverse(t *testing.T) {
	pressures := []float64{1000.0, 22632.0400950781, 60000.0, 101325.0}
	temperatures := []float64{200.0, 250.0, 288.15, 320.0}

	for _, pressure := range pressures {
		for _, temperature := range temperatures {
			for cas := 50.0; cas <= 300.0; cas += 25.0 {
				tas := TrueAirspeed(units.NewMetresPerSecond(cas),
					units.NewPascals(pressure), units.NewKelvin(temperature))
				back := CalibratedAirspeed(tas,
					units.NewPascals(pressure), units.NewKelvin(temperature))

				assert.InEpsilon(t, cas, back.V(), 1e-9,
					"cas %v m/s at %v Pa, %v K", cas, pressure, temperature)
			}
		}
	}
}

func TestMachTrueAirspeed(t *testing.T) {
	sea := MachTrueAirspeed(0.8, units.NewKelvin(288.15))
	assert.InEpsilon(t, 0.8*340.294, sea.V(), 1e-7)

	tropopause := MachTrueAirspeed(0.85, units.NewKelvin(216.65))
	assert.InEpsilon(t, 0.85*295.0694935, tropopause.V(), 1e-8)
}

func TestMachTrueAirspeedContract(t *testing.T) {
	assert.PanicsWithValue(t, "airspeed: non-positive Mach number", func() {
		MachTrueAirspeed(0.0, units.NewKelvin(288.15))
	})
	assert.PanicsWithValue(t, "airspeed: non-positive Mach number", func() {
		MachTrueAirspeed(-0.5, units.NewKelvin(288.15))
	})
}

func TestAirspeedFloat32(t *testing.T) {
	tas := TrueAirspeed(units.NewMetresPerSecond[float32](150),
		units.NewPascals[float32](79495.202), units.NewKelvin[float32](275.15))
	assert.InEpsilon(t, 164.457894, float64(tas.V()), 1e-4)

	back := CalibratedAirspeed(tas,
		units.NewPascals[float32](79495.202), units.NewKelvin[float32](275.15))
	assert.InEpsilon(t, 150.0, float64(back.V()), 1e-4)

	mach := MachTrueAirspeed[float32](0.8, units.NewKelvin[float32](288.15))
	assert.InEpsilon(t, 0.8*340.294, float64(mach.V()), 1e-5)
}

// TAS monotonically increases with altitude at constant CAS, the reason
// climb schedules switch from CAS to Mach at the crossover altitude.
func TestTrueAirspeedGrowsWithAltitude(t *testing.T) {
	cas := units.NewMetresPerSecond(155.0)

	previous := 0.0
	for altitude := 0.0; altitude <= 11000.0; altitude += 1000.0 {
		pressure := isa.Pressure(units.NewMetres(altitude))
		temperature := isa.Temperature(units.NewMetres(altitude))
		tas := TrueAirspeed(cas, pressure, temperature)

		assert.Greater(t, tas.V(), previous, "altitude %v m", altitude)
		previous = tas.V()
	}
}
