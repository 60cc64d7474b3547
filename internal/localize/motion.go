package localize

import (
	"math"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
)

// ObserveOdometry propagates every particle by the odometry delta since the
// last call, expressed in each particle's own heading frame, with Gaussian
// noise scaled by the magnitude of the motion (spec §4.4).
//
// On the first call after Initialize, or whenever the reported translation
// exceeds the sanity bound (a teleport or a dropped odometry frame), the
// call re-baselines the stored previous-odometry pose without propagating
// any particle. Neither case returns an error: the first call is a silent
// state-machine gate (spec §7(d)), and a teleport is logged as a transient
// sensor error (spec §7(b)).
func (f *FilterState) ObserveOdometry(odomLoc geom.Point, odomAngle float64) {
	if len(f.particles) == 0 {
		return
	}

	if !f.haveOdom {
		f.prevOdomLoc = odomLoc
		f.prevOdomTheta = odomAngle
		f.haveOdom = true
		return
	}

	dx := odomLoc.X - f.prevOdomLoc.X
	dy := odomLoc.Y - f.prevOdomLoc.Y
	transNorm := math.Hypot(dx, dy)

	if transNorm > f.Config.OdometrySanityBound {
		f.logTransient("odometry teleport rejected: %.3fm since last tick, re-baselining", transNorm)
		f.prevOdomLoc = odomLoc
		f.prevOdomTheta = odomAngle
		return
	}

	dThetaOdom := geom.WrapAngle(odomAngle - f.prevOdomTheta)

	sigmaT := f.Config.K1*transNorm + f.Config.K2*math.Abs(dThetaOdom)
	sigmaR := f.Config.K3*transNorm + f.Config.K4*math.Abs(dThetaOdom)

	for i := range f.particles {
		p := &f.particles[i]

		angleDelta := p.Pose.Theta - f.prevOdomTheta
		cos, sin := math.Cos(angleDelta), math.Sin(angleDelta)
		rotDx := dx*cos - dy*sin
		rotDy := dx*sin + dy*cos

		newX := p.Pose.X + rotDx + f.rng.Gaussian(0, sigmaT)
		newY := p.Pose.Y + rotDy + f.rng.Gaussian(0, sigmaT)
		newTheta := p.Pose.Theta + dThetaOdom + f.rng.Gaussian(0, sigmaR)

		p.Pose = geom.NewPose2D(newX, newY, newTheta)
	}

	f.prevOdomLoc = odomLoc
	f.prevOdomTheta = odomAngle
}
