package nav

import "github.com/ConnorCrwf/robot-nav-core/internal/geom"

// LiveScan is the set of live-sensed obstacle points in map frame, used for
// the carrot-target reachability check and the blocked-path replan trigger
// (spec §4.7). Converting a raw laser scan (ranges + bearings) into map-frame
// points is the transport/perception collaborator's job (spec §1 scope);
// the coordinator only consumes the already-projected points.
type LiveScan struct {
	Points []geom.Point
}

// Command is the velocity command the external local planner returns each
// tick (spec §6 outbound "Velocity command").
type Command struct {
	Vx, Vy float64
	Omega  float64
}

// LocalPlanner is the external collaborator the spec states but does not
// define internally (spec §1): given the latency-compensated predicted
// pose, the chosen carrot waypoint, and the live scan, it returns a
// steering/velocity command.
type LocalPlanner interface {
	PlanLocal(predicted geom.Pose2D, target geom.Point, scan LiveScan) Command
}
