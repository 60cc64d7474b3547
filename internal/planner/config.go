// Package planner implements the global grid planner (spec C5): a uniform
// 2D lattice rooted at the start location, searched with an A*-style
// frontier for a shortest collision-free path through the same vector map
// the localizer uses, with clearance-validated edges.
package planner

// Config holds the planner's tunable parameters, named after the options
// enumerated in spec §6.
type Config struct {
	Resolution      float64 // meters between adjacent lattice nodes
	ClearanceOffset float64 // meters; car half-width plus safety margin
}

// DefaultConfig returns reasonable defaults for a small indoor/outdoor robot.
func DefaultConfig() Config {
	return Config{
		Resolution:      0.25,
		ClearanceOffset: 0.2,
	}
}
