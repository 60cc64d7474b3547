// Package localize implements the particle-filter localizer (spec C4): a
// motion model fusing wheel odometry, a laser sensor model ray-cast against
// a line-segment vector map, low-variance resampling, and a weighted pose
// estimate.
package localize

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/monitoring"
	"github.com/ConnorCrwf/robot-nav-core/internal/randsrc"
)

// FilterState owns the particle set, the previous-odometry pose, the
// shared map, an RNG, and the tuning parameters. It is created on initial
// pose and replaced wholesale on each re-initialization; per-instance
// bookkeeping that the teacher's source kept as file-scope mutable state
// (updatesSinceResample, lastUpdateLoc) lives here instead (spec §9).
type FilterState struct {
	Config Config

	particles []Particle
	rng       *randsrc.Source
	vmap      *geom.VectorMap

	haveOdom     bool
	prevOdomLoc  geom.Point
	prevOdomTheta float64

	lastUpdateLoc geom.Point

	maxLogWeight float64

	updatesSinceResample int
}

// New constructs an uninitialized FilterState; call Initialize before use.
func New(cfg Config) *FilterState {
	return &FilterState{Config: cfg}
}

// Initialize loads the named map and seeds NumParticles particles from
// Gaussians centered on loc/angle, clearing any previous particle set.
// This both creates the filter's working state and tears down anything
// from a prior re-initialization (spec §3 lifecycle, §5 cancellation).
func (f *FilterState) Initialize(mapDir, mapName string, loc geom.Point, angle float64) error {
	vmap, err := geom.LoadMap(mapDir, mapName)
	if err != nil {
		return err
	}
	f.vmap = vmap
	f.rng = randsrc.New(f.Config.Seed)

	n := f.Config.NumParticles
	if n <= 0 {
		n = 50
	}
	particles := make([]Particle, n)
	for i := range particles {
		x := f.rng.Gaussian(loc.X, f.Config.InitSigmaPos)
		y := f.rng.Gaussian(loc.Y, f.Config.InitSigmaPos)
		theta := f.rng.Gaussian(angle, f.Config.InitSigmaAngle)
		particles[i] = Particle{Pose: geom.NewPose2D(x, y, theta), LogWeight: 0}
	}
	f.particles = particles
	f.maxLogWeight = 0
	f.updatesSinceResample = 0

	f.haveOdom = false
	f.lastUpdateLoc = loc

	return nil
}

// Particles returns the current particle set (read-only view for
// visualization and tests).
func (f *FilterState) Particles() []Particle {
	return f.particles
}

// Map returns the shared vector map the filter was initialized with, or
// nil if Initialize hasn't run yet.
func (f *FilterState) Map() *geom.VectorMap {
	return f.vmap
}

// GetLocation returns the weighted mean pose: a weighted Cartesian mean of
// particle positions via gonum/stat.Mean, and a circular mean of headings
// (spec §9 resolves the open question in favor of the circular mean over the
// source's ill-defined arithmetic mean near +/-pi) -- the circular mean is
// itself two stat.Mean calls over each particle's weighted sin/cos, since
// atan2 is invariant to the common sum-of-weights scale factor stat.Mean
// divides out.
//
// Invalid states (no particles, zero total weight) are silently ignored by
// returning the zero pose; callers must only poll after a successful
// observation cycle (spec §4.4 failure semantics).
func (f *FilterState) GetLocation() geom.Pose2D {
	if len(f.particles) == 0 {
		return geom.Pose2D{}
	}

	n := len(f.particles)
	weights := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	sins := make([]float64, n)
	coss := make([]float64, n)

	var sumW float64
	for i, p := range f.particles {
		w := math.Exp(p.LogWeight - f.maxLogWeight)
		weights[i] = w
		xs[i] = p.Pose.X
		ys[i] = p.Pose.Y
		sins[i] = math.Sin(p.Pose.Theta)
		coss[i] = math.Cos(p.Pose.Theta)
		sumW += w
	}
	if sumW == 0 {
		return geom.Pose2D{}
	}

	meanX := stat.Mean(xs, weights)
	meanY := stat.Mean(ys, weights)
	meanTheta := math.Atan2(stat.Mean(sins, weights), stat.Mean(coss, weights))
	return geom.NewPose2D(meanX, meanY, meanTheta)
}

func (f *FilterState) logTransient(format string, v ...interface{}) {
	monitoring.LogTransient("localize", format, v...)
}
