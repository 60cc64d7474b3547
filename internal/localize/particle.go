package localize

import "github.com/ConnorCrwf/robot-nav-core/internal/geom"

// Particle is a candidate pose hypothesis weighted by how well it explains
// observations. LogWeight is meaningful only relative to the maximum
// log-weight of its generation; absolute values are not comparable across
// resampling events.
type Particle struct {
	Pose      geom.Pose2D
	LogWeight float64
}

// LaserOrigin returns the particle's laser frame origin: the point offset
// forward along heading by offset meters, base_link frame (0, 0) shifted by
// (offset, 0) and transformed into map frame.
func (p Particle) LaserOrigin(offset float64) geom.Point {
	return p.Pose.ToMap(geom.Point{X: offset, Y: 0})
}
