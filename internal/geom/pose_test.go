package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ToBaseLink composed with ToMap (and vice versa) is the identity to
// floating-point tolerance, for any pose and any point (spec §8).
func TestMapBaseLinkRoundTripIsIdentity(t *testing.T) {
	poses := []Pose2D{
		NewPose2D(0, 0, 0),
		NewPose2D(1.5, -2.25, math.Pi/4),
		NewPose2D(-3, 4, math.Pi),
		NewPose2D(0.1, 0.2, -math.Pi/2),
		NewPose2D(10, -10, 3),
	}
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: -2, Y: 3.5},
		{X: 0.05, Y: -7},
	}

	for _, pose := range poses {
		for _, pt := range points {
			mapRoundTrip := pose.ToMap(pose.ToBaseLink(pt))
			assert.InDelta(t, pt.X, mapRoundTrip.X, 1e-9)
			assert.InDelta(t, pt.Y, mapRoundTrip.Y, 1e-9)

			baseRoundTrip := pose.ToBaseLink(pose.ToMap(pt))
			assert.InDelta(t, pt.X, baseRoundTrip.X, 1e-9)
			assert.InDelta(t, pt.Y, baseRoundTrip.Y, 1e-9)
		}
	}
}

func TestToMapRotatesAndTranslates(t *testing.T) {
	pose := NewPose2D(1, 1, math.Pi/2)
	got := pose.ToMap(Point{X: 1, Y: 0})
	assert.InDelta(t, 1.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
}

func TestToBaseLinkIsOriginAtPose(t *testing.T) {
	pose := NewPose2D(3, 4, math.Pi/3)
	got := pose.ToBaseLink(Point{X: 3, Y: 4})
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 0.0, got.Y, 1e-9)
}
