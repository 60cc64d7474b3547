// Package nav implements the navigation coordinator (spec C7): it binds
// the localizer's pose estimate, the global planner's waypoints, and the
// latency compensator's predicted pose into a single per-tick target for
// the external local planner, and decides when the active path must be
// replanned.
package nav

// Config holds the coordinator's tunable thresholds. None of these are
// named in spec §6's configuration table (they govern C7's internal
// tick logic, not a single component's tuning), so defaults are chosen
// to be conservative for an indoor ground robot.
type Config struct {
	CarrotRadius        float64 // meters; max lookahead along the path
	DivergenceThreshold float64 // meters; triggers replan when exceeded
	ObstacleClearance   float64 // meters; live-scan intrusion distance
}

// DefaultConfig returns conservative defaults for an indoor ground robot.
func DefaultConfig() Config {
	return Config{
		CarrotRadius:        1.5,
		DivergenceThreshold: 0.75,
		ObstacleClearance:   0.25,
	}
}
