// Package profile evaluates batches of atmosphere levels in parallel.
//
// A request names an altitude range and a level count; the evaluator expands
// the range into evenly spaced levels and computes pressure, temperature,
// density and speed of sound for each, plus true airspeed columns when the
// request carries a calibrated airspeed or a Mach number. Rows come back in
// altitude order regardless of which worker computed them.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/atmo/atmogo/airspeed"
	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
)

var (
	// ErrLevelCount reports a request with fewer than two levels.
	ErrLevelCount = errors.New("profile: at least two levels required")

	// ErrAltitudeBounds reports a non-finite start or end altitude.
	ErrAltitudeBounds = errors.New("profile: altitude bounds must be finite")
)

// evaluateJob is a unit of work for the worker pool.
type evaluateJob struct {
	index    int
	altitude float64 // metres
}

// evaluateResult is the output of a single level evaluation.
type evaluateResult struct {
	index int
	row   Row
}

// Evaluator manages a fixed number of goroutines for parallel level evaluation.
type Evaluator struct {
	workers int
	logger  *slog.Logger
}

// NewEvaluator creates an evaluator with the given number of workers.
func NewEvaluator(workers int, logger *slog.Logger) *Evaluator {
	if workers < 1 {
		workers = 1
	}
	return &Evaluator{
		workers: workers,
		logger:  logger,
	}
}

// Evaluate computes one row per level across the requested altitude range,
// endpoints included. Rows are ordered from StartAltitude to EndAltitude.
// If ctx is cancelled before every level is done, no rows are returned.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) ([]Row, error) {
	if req.Levels < 2 {
		return nil, ErrLevelCount
	}
	if !isFinite(req.StartAltitude) || !isFinite(req.EndAltitude) {
		return nil, ErrAltitudeBounds
	}

	start := time.Now()
	altitudes := floats.Span(make([]float64, req.Levels), req.StartAltitude, req.EndAltitude)

	jobs := make(chan evaluateJob, e.workers*2)
	results := make(chan evaluateResult, e.workers*2)

	// Start workers.
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				result := evaluateResult{
					index: job.index,
					row:   evaluateRow(job.altitude, req),
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed jobs in a goroutine.
	go func() {
		defer close(jobs)
		for i, altitude := range altitudes {
			job := evaluateJob{index: i, altitude: altitude}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results when all workers are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results into altitude order.
	rows := make([]Row, req.Levels)
	done := 0
	for result := range results {
		rows[result.index] = result.row
		done++
	}

	if done != req.Levels {
		return nil, ctx.Err()
	}

	e.logger.Debug("profile evaluated",
		"levels", req.Levels,
		"workers", e.workers,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}

// evaluateRow computes the atmosphere state at one level, with true airspeed
// columns when the request asks for them.
func evaluateRow(altitudeM float64, req Request) Row {
	altitude := units.NewMetres(altitudeM)
	pressure := isa.Pressure(altitude)
	temperature := isa.TemperatureWithOffset(altitude, units.NewKelvin(req.OffsetK))

	row := Row{
		AltitudeM:       altitudeM,
		PressurePa:      pressure.V(),
		TemperatureK:    temperature.V(),
		DensityKgM3:     isa.Density(pressure, temperature).V(),
		SpeedOfSoundMps: isa.SpeedOfSound(temperature).V(),
	}
	if req.CasMps > 0 {
		cas := units.NewMetresPerSecond(req.CasMps)
		row.TasFromCasMps = airspeed.TrueAirspeed(cas, pressure, temperature).V()
	}
	if req.Mach > 0 {
		row.TasFromMachMps = airspeed.MachTrueAirspeed(req.Mach, temperature).V()
	}
	return row
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
