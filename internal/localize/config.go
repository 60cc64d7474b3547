package localize

// Config holds the particle filter's tunable parameters, lifted out of
// file-scope constants in the style of the teacher's TrackerConfig /
// DefaultTrackerConfig pair (internal/lidar/tracking.go) so every filter
// instance owns its own knobs instead of sharing process-wide state.
type Config struct {
	NumParticles     int // N, default 50
	ResampleInterval int // R, default 5

	// Motion-model noise constants (§4.4).
	K1, K2, K3, K4 float64

	// Sensor-model parameters (§4.4).
	DShort float64 // d_short
	DLong  float64 // d_long
	VarObs float64 // sigma^2_obs

	RaySubsampleDivisor int // num_ranges is divided by this to get M; default 10

	LaserForwardOffset float64 // meters, laser origin ahead of base-link along heading

	// InitSigmaPos/InitSigmaAngle seed the initial particle cloud's spread.
	InitSigmaPos   float64 // default 0.25m per axis
	InitSigmaAngle float64 // default pi/6 rad

	// OdometrySanityBound is the per-tick translation beyond which
	// ObserveOdometry re-baselines instead of propagating (1m default).
	OdometrySanityBound float64

	// Laser update gate: only runs if movement since the last sensor
	// update is within [LaserMinMove, LaserMaxMove].
	LaserMinMove float64
	LaserMaxMove float64

	// Parallel enables a goroutine-per-particle fan-out in ObserveLaser.
	// Default false: deterministic single-threaded execution is the
	// reference (see spec §9 "Parallelization").
	Parallel bool

	Seed int64
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		NumParticles:        50,
		ResampleInterval:    5,
		K1:                  0.50,
		K2:                  0.25,
		K3:                  0.50,
		K4:                  0.75,
		DShort:              1.0,
		DLong:               1.0,
		VarObs:              1.0,
		RaySubsampleDivisor: 10,
		LaserForwardOffset:  0.2,
		InitSigmaPos:        0.25,
		InitSigmaAngle:      0.523598775598299, // pi/6
		OdometrySanityBound: 1.0,
		LaserMinMove:        0.1,
		LaserMaxMove:        1.0,
		Parallel:            false,
		Seed:                1,
	}
}
