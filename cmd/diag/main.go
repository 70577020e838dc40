package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/akamensky/argparse"

	"github.com/atmo/atmogo/airspeed"
	"github.com/atmo/atmogo/internal/profile"
	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
)

const footMetres = 0.3048

func main() {
	parser := argparse.NewParser("atmodiag", "Prints standard atmosphere and airspeed diagnostics")

	mode := parser.Selector("m", "mode", []string{"point", "table", "crossover"}, &argparse.Options{
		Default: "point",
		Help:    "Report a single level, an altitude table, or a crossover altitude"})

	altitude := parser.Float("a", "altitude", &argparse.Options{
		Default: 10000.0,
		Help:    "Pressure altitude in metres (point mode)"})

	offset := parser.Float("", "offset", &argparse.Options{
		Default: 0.0,
		Help:    "Temperature offset from the standard atmosphere in kelvin"})

	cas := parser.Float("", "cas", &argparse.Options{
		Default: 0.0,
		Help:    "Calibrated airspeed in m/s (adds a TAS column, required for crossover)"})

	mach := parser.Float("", "mach", &argparse.Options{
		Default: 0.0,
		Help:    "Mach number (adds a TAS column, required for crossover)"})

	start := parser.Float("", "start", &argparse.Options{
		Default: 0.0,
		Help:    "First altitude in metres (table mode)"})

	end := parser.Float("", "end", &argparse.Options{
		Default: 20000.0,
		Help:    "Last altitude in metres (table mode)"})

	levels := parser.Int("", "levels", &argparse.Options{
		Default: 21,
		Help:    "Number of rows (table mode)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	switch *mode {
	case "point":
		printPoint(*altitude, *offset, *cas, *mach)
	case "table":
		printTable(*start, *end, *levels, *offset, *cas, *mach)
	case "crossover":
		printCrossover(*cas, *mach)
	}
}

func printPoint(altitudeM, offsetK, casMps, mach float64) {
	altitude := units.NewMetres(altitudeM)
	pressure := isa.Pressure(altitude)
	temperature := isa.TemperatureWithOffset(altitude, units.NewKelvin(offsetK))
	density := isa.Density(pressure, temperature)
	sound := isa.SpeedOfSound(temperature)

	fmt.Printf("Altitude:       %.1f m (%.0f ft)\n", altitudeM, altitudeM/footMetres)
	if offsetK != 0 {
		fmt.Printf("ISA offset:     %+.1f K\n", offsetK)
	}
	fmt.Printf("Pressure:       %.2f Pa\n", pressure.V())
	fmt.Printf("Temperature:    %.2f K (%.2f degC)\n", temperature.V(), temperature.V()-273.15)
	fmt.Printf("Density:        %.4f kg/m^3\n", density.V())
	fmt.Printf("Speed of sound: %.2f m/s\n", sound.V())

	if casMps > 0 {
		tas := airspeed.TrueAirspeed(units.NewMetresPerSecond(casMps), pressure, temperature)
		fmt.Printf("TAS from CAS %.1f m/s: %.2f m/s (Mach %.3f)\n", casMps, tas.V(), tas.Ratio(sound))
	}
	if mach > 0 {
		tas := airspeed.MachTrueAirspeed(mach, temperature)
		fmt.Printf("TAS from Mach %.2f: %.2f m/s\n", mach, tas.V())
	}
}

func printTable(startM, endM float64, levels int, offsetK, casMps, mach float64) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	evaluator := profile.NewEvaluator(runtime.NumCPU(), logger)

	rows, err := evaluator.Evaluate(context.Background(), profile.Request{
		StartAltitude: startM,
		EndAltitude:   endM,
		Levels:        levels,
		OffsetK:       offsetK,
		CasMps:        casMps,
		Mach:          mach,
	})
	if err != nil {
		fmt.Println("ERROR evaluating profile:", err)
		os.Exit(1)
	}

	fmt.Printf("%10s %12s %9s %11s %9s", "alt m", "press Pa", "temp K", "dens kg/m3", "sound m/s")
	if casMps > 0 {
		fmt.Printf(" %9s", "TAS(CAS)")
	}
	if mach > 0 {
		fmt.Printf(" %9s", "TAS(Mach)")
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Printf("%10.1f %12.2f %9.2f %11.4f %9.2f",
			row.AltitudeM, row.PressurePa, row.TemperatureK, row.DensityKgM3, row.SpeedOfSoundMps)
		if casMps > 0 {
			fmt.Printf(" %9.2f", row.TasFromCasMps)
		}
		if mach > 0 {
			fmt.Printf(" %9.2f", row.TasFromMachMps)
		}
		fmt.Println()
	}
}

func printCrossover(casMps, mach float64) {
	if casMps <= 0 || mach <= 0 {
		fmt.Println("ERROR: crossover mode requires --cas and --mach")
		os.Exit(1)
	}

	crossover := airspeed.CrossoverAltitude(units.NewMetresPerSecond(casMps), mach)
	pressure := isa.Pressure(crossover)
	temperature := isa.Temperature(crossover)

	// Both schedules should produce the same TAS at the crossover altitude.
	tasFromCas := airspeed.TrueAirspeed(units.NewMetresPerSecond(casMps), pressure, temperature)
	tasFromMach := airspeed.MachTrueAirspeed(mach, temperature)

	fmt.Printf("Crossover of CAS %.1f m/s and Mach %.2f:\n", casMps, mach)
	fmt.Printf("  Altitude:      %.1f m (%.0f ft)\n", crossover.V(), crossover.V()/footMetres)
	fmt.Printf("  TAS from CAS:  %.2f m/s\n", tasFromCas.V())
	fmt.Printf("  TAS from Mach: %.2f m/s\n", tasFromMach.V())
}
