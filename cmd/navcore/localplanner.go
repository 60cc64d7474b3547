package main

import (
	"math"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/nav"
)

// simpleLocalPlanner is a minimal proportional go-to-point controller
// standing in for the external local planner/trajectory scorer that spec
// §1 explicitly leaves unspecified ("its internal trajectory scoring is
// not specified here"). It exists only so this binary has something to
// hand the coordinator's carrot target to and produce a runnable demo.
type simpleLocalPlanner struct {
	maxSpeed    float64
	maxTurnRate float64
}

func newSimpleLocalPlanner() *simpleLocalPlanner {
	return &simpleLocalPlanner{maxSpeed: 0.5, maxTurnRate: 1.0}
}

func (p *simpleLocalPlanner) PlanLocal(predicted geom.Pose2D, target geom.Point, _ nav.LiveScan) nav.Command {
	dx, dy := target.X-predicted.X, target.Y-predicted.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		return nav.Command{}
	}

	bearing := geom.WrapAngle(math.Atan2(dy, dx) - predicted.Theta)

	omega := 2.0 * bearing
	if omega > p.maxTurnRate {
		omega = p.maxTurnRate
	} else if omega < -p.maxTurnRate {
		omega = -p.maxTurnRate
	}

	vx := p.maxSpeed
	if math.Abs(bearing) > math.Pi/2 {
		vx = 0 // facing away from target: turn in place first
	}

	return nav.Command{Vx: vx, Vy: 0, Omega: omega}
}
