package profile

// Request holds the parameters for a profile evaluation request.
type Request struct {
	StartAltitude float64 // metres (pressure altitude of the first row)
	EndAltitude   float64 // metres (pressure altitude of the last row)
	Levels        int     // number of evenly spaced rows, endpoints included
	OffsetK       float64 // temperature offset from the standard atmosphere, kelvin
	CasMps        float64 // calibrated airspeed in m/s; values <= 0 omit the TAS column
	Mach          float64 // Mach number; values <= 0 omit the TAS column
}

// Row holds the atmosphere state at a single altitude level.
type Row struct {
	AltitudeM       float64 `json:"altitude_m"`
	PressurePa      float64 `json:"pressure_pa"`
	TemperatureK    float64 `json:"temperature_k"`
	DensityKgM3     float64 `json:"density_kg_m3"`
	SpeedOfSoundMps float64 `json:"speed_of_sound_mps"`
	TasFromCasMps   float64 `json:"tas_from_cas_mps,omitempty"`
	TasFromMachMps  float64 `json:"tas_from_mach_mps,omitempty"`
}
