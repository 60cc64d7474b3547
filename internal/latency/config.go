// Package latency implements the kinematic latency compensator (spec C6):
// a ring buffer of recently issued commands is forward-integrated over the
// unreported actuation/observation delay window so the navigation
// coordinator can target the pose the robot will actually occupy when its
// next command takes effect.
package latency

// Config holds the compensator's tunable delay parameters (spec §4.6, §6).
type Config struct {
	ActuationDelay   float64 // seconds, Delta_a
	ObservationDelay float64 // seconds, Delta_o
	DeltaT           float64 // seconds, control period used to integrate each record
}

// TotalDelay returns Delta_s = Delta_a + Delta_o, the horizon the
// compensator forward-simulates.
func (c Config) TotalDelay() float64 {
	return c.ActuationDelay + c.ObservationDelay
}

// DefaultConfig returns reasonable defaults for a control loop running at
// 20 Hz with a modest actuation/observation pipeline delay.
func DefaultConfig() Config {
	return Config{
		ActuationDelay:   0.1,
		ObservationDelay: 0.1,
		DeltaT:           0.05,
	}
}
