// Package config loads and validates the navigation core's runtime tuning
// parameters from JSON, grounded on the teacher's TuningConfig pattern
// (internal/config/tuning.go): path validation, a size cap, and a
// Validate() pass after unmarshal.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ConnorCrwf/robot-nav-core/internal/latency"
	"github.com/ConnorCrwf/robot-nav-core/internal/localize"
	"github.com/ConnorCrwf/robot-nav-core/internal/planner"
)

// maxConfigFileSize mirrors the teacher's 1MB cap on tuning.json inputs --
// this file is hand-edited, not generated, so anything larger signals a
// malformed or adversarial input.
const maxConfigFileSize = 1 * 1024 * 1024

// Config is the explicit configuration record replacing the source's
// dynamic per-key lookup (spec §9 "Parameter object"), holding every
// option enumerated in spec §6.
type Config struct {
	NumParticles     int     `json:"num_particles"`
	DShort           float64 `json:"d_short"`
	DLong            float64 `json:"d_long"`
	VarObs           float64 `json:"var_obs"`
	K1               float64 `json:"k1"`
	K2               float64 `json:"k2"`
	K3               float64 `json:"k3"`
	K4               float64 `json:"k4"`
	ResampleInterval int     `json:"resample_interval"`

	Resolution      float64 `json:"resolution"`
	ClearanceOffset float64 `json:"clearance_offset"`

	ActuationDelay   float64 `json:"actuation_delay"`
	ObservationDelay float64 `json:"observation_delay"`
	DeltaT           float64 `json:"delta_t"`

	Seed int64 `json:"seed"`
}

// DefaultConfig returns the spec-documented defaults for every component,
// assembled from each component package's own DefaultConfig.
func DefaultConfig() Config {
	loc := localize.DefaultConfig()
	plan := planner.DefaultConfig()
	lat := latency.DefaultConfig()
	return Config{
		NumParticles:     loc.NumParticles,
		DShort:           loc.DShort,
		DLong:            loc.DLong,
		VarObs:           loc.VarObs,
		K1:               loc.K1,
		K2:               loc.K2,
		K3:               loc.K3,
		K4:               loc.K4,
		ResampleInterval: loc.ResampleInterval,
		Resolution:       plan.Resolution,
		ClearanceOffset:  plan.ClearanceOffset,
		ActuationDelay:   lat.ActuationDelay,
		ObservationDelay: lat.ObservationDelay,
		DeltaT:           lat.DeltaT,
		Seed:             loc.Seed,
	}
}

// LoadConfig reads and validates a JSON configuration file. Fields omitted
// from the file retain DefaultConfig's values (partial configs are safe),
// matching the teacher's "EmptyTuningConfig seeded then unmarshalled over
// defaults" pattern but applied to plain (non-pointer) fields: defaults are
// seeded before Unmarshal so missing JSON keys leave them untouched.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that every tunable falls within a physically sane range.
func (c Config) Validate() error {
	if c.NumParticles <= 0 {
		return fmt.Errorf("num_particles must be positive, got %d", c.NumParticles)
	}
	if c.VarObs <= 0 {
		return fmt.Errorf("var_obs must be positive, got %f", c.VarObs)
	}
	if c.DShort < 0 || c.DLong < 0 {
		return fmt.Errorf("d_short/d_long must be non-negative, got %f/%f", c.DShort, c.DLong)
	}
	if c.ResampleInterval <= 0 {
		return fmt.Errorf("resample_interval must be positive, got %d", c.ResampleInterval)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %f", c.Resolution)
	}
	if c.ClearanceOffset < 0 {
		return fmt.Errorf("clearance_offset must be non-negative, got %f", c.ClearanceOffset)
	}
	if c.ActuationDelay < 0 || c.ObservationDelay < 0 {
		return fmt.Errorf("actuation_delay/observation_delay must be non-negative, got %f/%f", c.ActuationDelay, c.ObservationDelay)
	}
	if c.DeltaT <= 0 {
		return fmt.Errorf("delta_t must be positive, got %f", c.DeltaT)
	}
	return nil
}

// LocalizeConfig projects the shared record onto localize.Config.
func (c Config) LocalizeConfig() localize.Config {
	cfg := localize.DefaultConfig()
	cfg.NumParticles = c.NumParticles
	cfg.DShort = c.DShort
	cfg.DLong = c.DLong
	cfg.VarObs = c.VarObs
	cfg.K1, cfg.K2, cfg.K3, cfg.K4 = c.K1, c.K2, c.K3, c.K4
	cfg.ResampleInterval = c.ResampleInterval
	cfg.Seed = c.Seed
	return cfg
}

// PlannerConfig projects the shared record onto planner.Config.
func (c Config) PlannerConfig() planner.Config {
	return planner.Config{Resolution: c.Resolution, ClearanceOffset: c.ClearanceOffset}
}

// LatencyConfig projects the shared record onto latency.Config.
func (c Config) LatencyConfig() latency.Config {
	return latency.Config{
		ActuationDelay:   c.ActuationDelay,
		ObservationDelay: c.ObservationDelay,
		DeltaT:           c.DeltaT,
	}
}
