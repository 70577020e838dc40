// Package api implements the HTTP endpoints for atmosphere and airspeed
// queries.
//
// Single evaluations are served from GET endpoints under /api/v1 and take
// their inputs as query parameters. Batch profiles are served from
// POST /api/v1/profile, which evaluates a whole altitude range in one request
// through a worker pool and is rate limited per client IP.
//
// The model functions accept any finite value, so every handler checks its
// inputs against the published validity band first. A request that passes
// validation cannot reach a contract violation in the isa or airspeed
// packages.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/atmo/atmogo/airspeed"
	"github.com/atmo/atmogo/internal/httputil"
	"github.com/atmo/atmogo/internal/metrics"
	"github.com/atmo/atmogo/internal/profile"
	"github.com/atmo/atmogo/isa"
	"github.com/atmo/atmogo/units"
)

// Input bounds enforced by the HTTP layer.
const (
	minAltitudeM  = -5000.0
	maxAltitudeM  = 50000.0
	minPressurePa = 1.0
	maxPressurePa = 110000.0
	maxOffsetK    = 100.0
	minSpeedMps   = 1.0
	maxCasMps     = 500.0
	maxTasMps     = 1000.0
	minMach       = 0.01
	maxMach       = 5.0
)

const (
	defaultMaxLevels    = 4096
	defaultMaxPerIP     = 4
	maxProfileBodyBytes = 1 << 20
)

// Handler serves the atmosphere and airspeed endpoints.
type Handler struct {
	evaluator  *profile.Evaluator
	limiter    *profileLimiter
	maxLevels  int
	trustProxy bool
	logger     *slog.Logger
}

// NewHandler creates the endpoint handler set for the given configuration.
// Zero valued limits fall back to the package defaults.
func NewHandler(cfg Config, logger *slog.Logger) *Handler {
	workers := cfg.ProfileWorkers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	maxLevels := cfg.ProfileMaxLevels
	if maxLevels < 2 {
		maxLevels = defaultMaxLevels
	}
	maxPerIP := cfg.MaxConcurrentPerIP
	if maxPerIP < 1 {
		maxPerIP = defaultMaxPerIP
	}

	metrics.SetProfileWorkers(workers)

	return &Handler{
		evaluator:  profile.NewEvaluator(workers, logger),
		limiter:    newProfileLimiter(maxPerIP),
		maxLevels:  maxLevels,
		trustProxy: cfg.TrustProxy,
		logger:     logger,
	}
}

// HandleAtmosphere reports the atmosphere state at one altitude.
// GET /api/v1/atmosphere?altitude_m=10000&offset_k=15
func (h *Handler) HandleAtmosphere(w http.ResponseWriter, r *http.Request) {
	altitudeM, err := queryFloat(r, "altitude_m", minAltitudeM, maxAltitudeM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offsetK, err := queryFloatDefault(r, "offset_k", 0, -maxOffsetK, maxOffsetK)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	altitude := units.NewMetres(altitudeM)
	pressure := isa.Pressure(altitude)
	temperature := isa.TemperatureWithOffset(altitude, units.NewKelvin(offsetK))
	density := isa.Density(pressure, temperature)

	metrics.RecordEvaluation("atmosphere")
	writeJSON(w, http.StatusOK, atmosphereResponse{
		AltitudeM:       altitudeM,
		OffsetK:         offsetK,
		PressurePa:      pressure.V(),
		TemperatureK:    temperature.V(),
		DensityKgM3:     density.V(),
		SpeedOfSoundMps: isa.SpeedOfSound(temperature).V(),
		Delta:           pressure.Ratio(units.NewPascals(isa.SeaLevelPressure)),
		Theta:           temperature.Ratio(units.NewKelvin(isa.SeaLevelTemperature)),
		Sigma:           density.Ratio(units.NewKilogramsPerCubicMetre(isa.SeaLevelDensity)),
	})
}

// HandleAltitude reports the pressure altitude for a static pressure.
// GET /api/v1/altitude?pressure_pa=79495.2
func (h *Handler) HandleAltitude(w http.ResponseWriter, r *http.Request) {
	pressurePa, err := queryFloat(r, "pressure_pa", minPressurePa, maxPressurePa)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	altitude := isa.Altitude(units.NewPascals(pressurePa))

	metrics.RecordEvaluation("altitude")
	writeJSON(w, http.StatusOK, altitudeResponse{
		PressurePa: pressurePa,
		AltitudeM:  altitude.V(),
	})
}

// HandleTrueAirspeed converts calibrated airspeed to true airspeed at an
// altitude.
// GET /api/v1/airspeed/tas?cas_mps=150&altitude_m=10000&offset_k=0
func (h *Handler) HandleTrueAirspeed(w http.ResponseWriter, r *http.Request) {
	casMps, err := queryFloat(r, "cas_mps", minSpeedMps, maxCasMps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	altitudeM, err := queryFloat(r, "altitude_m", minAltitudeM, maxAltitudeM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offsetK, err := queryFloatDefault(r, "offset_k", 0, -maxOffsetK, maxOffsetK)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	altitude := units.NewMetres(altitudeM)
	pressure := isa.Pressure(altitude)
	temperature := isa.TemperatureWithOffset(altitude, units.NewKelvin(offsetK))
	tas := airspeed.TrueAirspeed(units.NewMetresPerSecond(casMps), pressure, temperature)

	metrics.RecordEvaluation("tas")
	writeJSON(w, http.StatusOK, trueAirspeedResponse{
		CasMps:       casMps,
		AltitudeM:    altitudeM,
		OffsetK:      offsetK,
		PressurePa:   pressure.V(),
		TemperatureK: temperature.V(),
		TasMps:       tas.V(),
		Mach:         tas.Ratio(isa.SpeedOfSound(temperature)),
	})
}

// HandleCalibratedAirspeed converts true airspeed back to calibrated airspeed
// at an altitude.
// GET /api/v1/airspeed/cas?tas_mps=240&altitude_m=10000&offset_k=0
func (h *Handler) HandleCalibratedAirspeed(w http.ResponseWriter, r *http.Request) {
	tasMps, err := queryFloat(r, "tas_mps", minSpeedMps, maxTasMps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	altitudeM, err := queryFloat(r, "altitude_m", minAltitudeM, maxAltitudeM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offsetK, err := queryFloatDefault(r, "offset_k", 0, -maxOffsetK, maxOffsetK)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	altitude := units.NewMetres(altitudeM)
	pressure := isa.Pressure(altitude)
	temperature := isa.TemperatureWithOffset(altitude, units.NewKelvin(offsetK))
	tas := units.NewMetresPerSecond(tasMps)
	cas := airspeed.CalibratedAirspeed(tas, pressure, temperature)

	metrics.RecordEvaluation("cas")
	writeJSON(w, http.StatusOK, calibratedAirspeedResponse{
		TasMps:       tasMps,
		AltitudeM:    altitudeM,
		OffsetK:      offsetK,
		PressurePa:   pressure.V(),
		TemperatureK: temperature.V(),
		CasMps:       cas.V(),
		Mach:         tas.Ratio(isa.SpeedOfSound(temperature)),
	})
}

// HandleCrossover reports the altitude where a constant CAS climb hands over
// to a constant Mach climb, together with the TAS both schedules share there.
// GET /api/v1/airspeed/crossover?cas_mps=155&mach=0.79
func (h *Handler) HandleCrossover(w http.ResponseWriter, r *http.Request) {
	casMps, err := queryFloat(r, "cas_mps", minSpeedMps, maxCasMps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mach, err := queryFloat(r, "mach", minMach, maxMach)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	crossover := airspeed.CrossoverAltitude(units.NewMetresPerSecond(casMps), mach)
	temperature := isa.Temperature(crossover)
	tas := airspeed.MachTrueAirspeed(mach, temperature)

	metrics.RecordEvaluation("crossover")
	writeJSON(w, http.StatusOK, crossoverResponse{
		CasMps:             casMps,
		Mach:               mach,
		CrossoverAltitudeM: crossover.V(),
		TasMps:             tas.V(),
	})
}

// HandleProfile evaluates a batch of evenly spaced atmosphere levels.
// POST /api/v1/profile
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProfileBodyBytes)

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Enforce the level budget before any evaluation work.
	if req.Levels < 2 || req.Levels > h.maxLevels {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":      fmt.Sprintf("levels must be between 2 and %d", h.maxLevels),
			"max_levels": h.maxLevels,
		})
		return
	}
	if !inRange(req.StartAltitudeM, minAltitudeM, maxAltitudeM) || !inRange(req.EndAltitudeM, minAltitudeM, maxAltitudeM) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("start_altitude_m and end_altitude_m must be between %g and %g", minAltitudeM, maxAltitudeM))
		return
	}
	if !inRange(req.OffsetK, -maxOffsetK, maxOffsetK) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("offset_k must be between %g and %g", -maxOffsetK, maxOffsetK))
		return
	}
	if req.CasMps != 0 && !inRange(req.CasMps, minSpeedMps, maxCasMps) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("cas_mps must be between %g and %g", minSpeedMps, maxCasMps))
		return
	}
	if req.Mach != 0 && !inRange(req.Mach, minMach, maxMach) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("mach must be between %g and %g", minMach, maxMach))
		return
	}

	// Rate limiting: enforce the concurrent evaluation limit per IP.
	ip := httputil.ClientIP(r, h.trustProxy)
	if !h.limiter.acquire(ip) {
		h.logger.Warn("profile rate limit exceeded",
			"remote_ip", ip,
			"current_count", h.limiter.count(ip),
		)
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusTooManyRequests, "too many concurrent profile evaluations")
		return
	}
	defer h.limiter.release(ip)

	start := time.Now()
	rows, err := h.evaluator.Evaluate(r.Context(), profile.Request{
		StartAltitude: req.StartAltitudeM,
		EndAltitude:   req.EndAltitudeM,
		Levels:        req.Levels,
		OffsetK:       req.OffsetK,
		CasMps:        req.CasMps,
		Mach:          req.Mach,
	})
	if err != nil {
		if errors.Is(err, profile.ErrLevelCount) || errors.Is(err, profile.ErrAltitudeBounds) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Context cancelled: the client went away mid evaluation.
		h.logger.Debug("profile evaluation aborted", "remote_ip", ip, "error", err)
		return
	}

	metrics.RecordProfile(len(rows), time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, profileResponse{
		Levels: len(rows),
		Rows:   rows,
	})
}

// queryFloat parses a required float query parameter and checks it lies in
// [lo, hi].
func queryFloat(r *http.Request, name string, lo, hi float64) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !inRange(f, lo, hi) {
		return 0, fmt.Errorf("invalid %s parameter, must be between %g and %g", name, lo, hi)
	}
	return f, nil
}

// queryFloatDefault parses an optional float query parameter, returning def
// when the parameter is absent.
func queryFloatDefault(r *http.Request, name string, def, lo, hi float64) (float64, error) {
	if r.URL.Query().Get(name) == "" {
		return def, nil
	}
	return queryFloat(r, name, lo, hi)
}

// inRange reports whether v lies in [lo, hi]. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Endpoint payload types.

type atmosphereResponse struct {
	AltitudeM       float64 `json:"altitude_m"`
	OffsetK         float64 `json:"offset_k"`
	PressurePa      float64 `json:"pressure_pa"`
	TemperatureK    float64 `json:"temperature_k"`
	DensityKgM3     float64 `json:"density_kg_m3"`
	SpeedOfSoundMps float64 `json:"speed_of_sound_mps"`
	Delta           float64 `json:"delta"`
	Theta           float64 `json:"theta"`
	Sigma           float64 `json:"sigma"`
}

type altitudeResponse struct {
	PressurePa float64 `json:"pressure_pa"`
	AltitudeM  float64 `json:"altitude_m"`
}

type trueAirspeedResponse struct {
	CasMps       float64 `json:"cas_mps"`
	AltitudeM    float64 `json:"altitude_m"`
	OffsetK      float64 `json:"offset_k"`
	PressurePa   float64 `json:"pressure_pa"`
	TemperatureK float64 `json:"temperature_k"`
	TasMps       float64 `json:"tas_mps"`
	Mach         float64 `json:"mach"`
}

type calibratedAirspeedResponse struct {
	TasMps       float64 `json:"tas_mps"`
	AltitudeM    float64 `json:"altitude_m"`
	OffsetK      float64 `json:"offset_k"`
	PressurePa   float64 `json:"pressure_pa"`
	TemperatureK float64 `json:"temperature_k"`
	CasMps       float64 `json:"cas_mps"`
	Mach         float64 `json:"mach"`
}

type crossoverResponse struct {
	CasMps             float64 `json:"cas_mps"`
	Mach               float64 `json:"mach"`
	CrossoverAltitudeM float64 `json:"crossover_altitude_m"`
	TasMps             float64 `json:"tas_mps"`
}

type profileRequest struct {
	StartAltitudeM float64 `json:"start_altitude_m"`
	EndAltitudeM   float64 `json:"end_altitude_m"`
	Levels         int     `json:"levels"`
	OffsetK        float64 `json:"offset_k"`
	CasMps         float64 `json:"cas_mps"`
	Mach           float64 `json:"mach"`
}

type profileResponse struct {
	Levels int           `json:"levels"`
	Rows   []profile.Row `json:"rows"`
}
