package localize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestObserveOdometry_FirstCallBaselinesOnly(t *testing.T) {
	f := newTestFilter(5)
	before := make([]geom.Pose2D, len(f.particles))
	for i, p := range f.particles {
		before[i] = p.Pose
	}

	f.ObserveOdometry(geom.Point{X: 1, Y: 1}, 0.2)

	for i, p := range f.particles {
		require.Equal(t, before[i], p.Pose)
	}
	require.True(t, f.haveOdom)
}

// Scenario 6: a teleport bigger than the sanity bound must leave particles
// unchanged and reset the baseline.
func TestObserveOdometry_TeleportGateResetsBaseline(t *testing.T) {
	f := newTestFilter(5)
	f.ObserveOdometry(geom.Point{X: 0, Y: 0}, 0) // baseline

	before := make([]geom.Pose2D, len(f.particles))
	for i, p := range f.particles {
		before[i] = p.Pose
	}

	f.ObserveOdometry(geom.Point{X: 5, Y: 0}, 0) // 5m teleport

	for i, p := range f.particles {
		require.Equal(t, before[i], p.Pose)
	}
	require.Equal(t, geom.Point{X: 5, Y: 0}, f.prevOdomLoc)
}

func TestObserveOdometry_ZeroNoiseExactShift(t *testing.T) {
	f := newTestFilter(10)
	f.Config.K1, f.Config.K2, f.Config.K3, f.Config.K4 = 0, 0, 0, 0

	f.ObserveOdometry(geom.Point{X: 0, Y: 0}, 0) // baseline

	before := make([]geom.Pose2D, len(f.particles))
	for i, p := range f.particles {
		before[i] = p.Pose
	}

	f.ObserveOdometry(geom.Point{X: 1, Y: 0}, 0)

	for i, p := range f.particles {
		want := before[i].Translate(1, 0, 0)
		require.InDelta(t, want.X, p.Pose.X, 1e-9)
		require.InDelta(t, want.Y, p.Pose.Y, 1e-9)
		require.InDelta(t, want.Theta, p.Pose.Theta, 1e-9)
	}
}

func TestObserveOdometry_PosesStayFinite(t *testing.T) {
	f := newTestFilter(20)
	rng := rand.New(rand.NewSource(5))
	loc := geom.Point{X: 0, Y: 0}
	theta := 0.0
	f.ObserveOdometry(loc, theta)

	for i := 0; i < 200; i++ {
		dx := (rng.Float64() - 0.5) * 1.9 // with dy, every step stays under the 1m sanity bound
		dy := (rng.Float64() - 0.5) * 0.1
		dtheta := (rng.Float64() - 0.5) * 0.2
		loc = geom.Point{X: loc.X + dx, Y: loc.Y + dy}
		theta = geom.WrapAngle(theta + dtheta)
		f.ObserveOdometry(loc, theta)
		for _, p := range f.particles {
			require.True(t, p.Pose.Finite())
		}
	}
}

func TestPose2D_WrapWithinRange(t *testing.T) {
	for theta := -10.0; theta < 10.0; theta += 0.37 {
		w := geom.WrapAngle(theta)
		require.True(t, w > -math.Pi-1e-9 && w <= math.Pi+1e-9)
	}
}
